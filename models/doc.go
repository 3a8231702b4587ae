// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - LoginRequest: name
  - SelectRequest: picker_id, target_id
  - AdminLoginRequest: password
  - SeedRequest: names

# Response Types

Types for JSON responses:

  - NamesResponse: public roster (id, name, display_name)
  - TakenResponse: ids already claimed as targets
  - LoginResponse: the participant record
  - SeedResponse, CountResponse: admin roster operations
  - AdminRosterResponse: roster with resolved target names
  - ErrorResponse: error, code, message

# Domain Types

  - Participant: id, name and the optional selected target id

Participant carries both json and bson tags since the same value is stored
in SQL rows and MongoDB documents.

# Error Codes

ErrorResponse.Code is one of:

	invalid_input, not_found, self_selection,
	already_assigned, target_taken, duplicate_name,
	unauthorized, internal
*/
package models
