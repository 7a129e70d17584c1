// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse parses server configuration from command-line flags with
environment-variable fallback.

	quizhost -p 3000 -store file -data ./data -questions ./questions

Every flag has an env counterpart (PORT, STORE_TYPE, DATA_DIR,
DATABASE_URL, QUESTION_DIR, SIGNAL_TTL) so deployments can be configured
entirely through the environment, typically via a .env file loaded with
godotenv before parsing. ADMIN_PASSWORD and SESSION_SALT are required and
have no defaults.

Team credentials are not configuration; they are read directly from the
environment by the registry package (TEAM_ID_* variables).
*/
package cliparse
