// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags, environment
variables and an optional YAML file.

# Precedence

For every setting the first non-empty source wins:

 1. CLI flag
 2. Environment variable
 3. YAML config file (-c or CONFIG_PATH)
 4. Default

main loads a .env file into the environment before parsing.

# Settings

	Flag              Env                  Default
	-p                PORT                 3318
	-d                DATABASE_URL         (required)
	-t                DATABASE_TYPE        sqlite
	-mongo-db         MONGODB_DB           giftdraw
	-log-level        LOG_LEVEL            info
	-env              ENV                  dev
	-admin-password   ADMIN_PASSWORD       giftcode-admin
	                  ADMIN_PASSWORD_HASH  (optional bcrypt hash)
	-session-secret   SESSION_SECRET       (required)

# Config File

	server:
	  port: 8080
	  log_level: debug
	database:
	  type: postgres
	  url: postgres://...
	admin:
	  session_secret: change-me
*/
package cliparse
