// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth derives and validates the admin key.

The key is an HMAC of a fixed scope string under the deployment's
ADMIN_KEY_SALT, so it never needs to be stored:

	key := auth.GenerateAdminKey(cfg.AdminKeySalt)
	err := auth.ValidateAdminKey(presented, cfg.AdminKeySalt)

Admin endpoints present it via the X-Admin-Key header; validation is
constant-time.
*/
package auth
