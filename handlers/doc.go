// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the gift draw API.

# Handler Types

  - ParticipantHandler: public roster, taken targets, login by name
  - SelectionHandler: target claims through the selection engine
  - AdminHandler: admin login, roster seeding and the full roster view

Handlers are created via constructor functions:

	participants := handlers.NewParticipantHandler(store, logger)

# Public Flow

	GET  /api/names  → ListNames (id, name, display_name)
	GET  /api/taken  → ListTaken (best-effort hint)
	POST /api/login  → Login (participant record, selection included)
	POST /api/select → Select

# Selection Errors

	400 invalid_input     ids missing, malformed or not positive
	400 self_selection    picker_id == target_id
	404 not_found         unknown picker or target
	409 already_assigned  picker already chose
	409 target_taken      someone else holds the target

Races lost at commit time answer with the same codes.

# Admin Flow

	POST /api/admin/login   → Login (sets admin_session cookie)
	POST /api/admin/logout  → Logout
	POST /api/admin/seed    → Seed (destroys the current roster)
	GET  /api/admin/seed    → SeedCount
	GET  /api/admin/players → Players (with resolved target names)

Seed, SeedCount and Players require the admin session cookie.
*/
package handlers
