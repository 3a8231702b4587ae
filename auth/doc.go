// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin authentication for the roster endpoints.

# Passwords

The admin password is either a plain shared secret (ADMIN_PASSWORD),
compared in constant time, or a bcrypt hash (ADMIN_PASSWORD_HASH):

	a := auth.NewAdminAuth(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.SessionSecret)
	err := a.CheckPassword(password)

HashPassword produces a hash for the configuration.

# Sessions

A successful login issues an HS256 JWT stored in the admin_session cookie:

	token, expires, err := a.IssueSession()
	err = a.ValidateSession(token)

Sessions last SessionTTL (7 days). The token carries no roster data; it only
proves the holder passed the password check.
*/
package auth
