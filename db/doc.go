// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens storage connections and owns the SQL schema.

# Connections

Open returns a pinged *sql.DB for "sqlite" (modernc.org/sqlite) or
"postgres" (github.com/lib/pq):

	conn, err := db.Open(ctx, db.TypePostgres, url)

OpenMongo returns a connected *mongo.Client for the document-store backend.

SQLite connections are capped at one open connection.

# Schema Creation

CreateSchema initializes the participant table:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. ResetSchema drops and
recreates the table and is used by roster rebuilds inside a transaction.

# Tables

	participant (
	    id                 BIGINT PRIMARY KEY,
	    name               TEXT NOT NULL UNIQUE,
	    selected_target_id BIGINT UNIQUE,
	    CHECK (selected_target_id <> id)
	)

The UNIQUE constraint on selected_target_id is what keeps two pickers from
ever holding the same target.

# Constraint Errors

IsUniqueViolation and IsCheckViolation classify driver errors from both
PostgreSQL (SQLSTATE 23505 / 23514) and SQLite (extended result codes).
*/
package db
