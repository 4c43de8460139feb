// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP cross-cutting helpers.

  - WithLogging: request start/finish logging with duration
  - AdminOnly: X-Admin-Key guard for admin endpoints
  - JSONResponse / ErrorResponse: response encoding
  - ParseJSONBody: request decoding
  - CORS: cross-origin support with preflight handling
*/
package middleware
