// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers: request logging,
JSON request/response encoding, CORS, and the admin session gate.

Response conventions:

  - JSONResponse / ErrorResponse: protocol-level outcomes (400, 401, 404,
    500) with an ErrorResponse body
  - Refused: business-rule rejections as 200 + {success:false, message},
    so a client can distinguish "malformed" from "understood but refused"

RequireAdmin wraps admin handlers and validates the quiz_admin session
cookie issued by POST /admin/login.
*/
package middleware
