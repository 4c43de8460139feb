// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package notify is the outbound announcement surface.

The cycle talks to a Notifier; it never learns whether a delivery worked.
Two implementations ship:

  - Telegram: announcements to a public chat, anonymous answers to a
    moderation chat
  - Log: structured-log fallback when no token is configured

Message texts are built by pure formatting helpers so tests can assert on
them directly.
*/
package notify
