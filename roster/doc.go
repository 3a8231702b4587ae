// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster stores participants and performs the atomic target claim.

# Backends

Store has two implementations:

  - SQLStore: the participant table on PostgreSQL or SQLite
  - MongoStore: the participants collection on MongoDB

Both enforce unique id, unique name and unique selected target in storage.
Nothing is cached in process.

# Claiming

ClaimTarget is one conditional write, "set the selected target where it is
still unset":

	err := store.ClaimTarget(ctx, pickerID, targetID)
	switch {
	case errors.Is(err, roster.ErrAlreadyAssigned): // picker already chose
	case errors.Is(err, roster.ErrTargetTaken):     // someone else holds it
	}

# Rebuilds

ReplaceAll drops the current generation and seeds ids 1..N from the given
names after trimming and dropping blanks. Every constraint is recreated.
*/
package roster
