// Copyright 2026 The Postsmith Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"context"
	"errors"
	"net"
)

// Sentinel errors for the failure categories callers present to the user.
// Providers wrap these with their own prefix and detail, so callers match
// with errors.Is.
var (
	// ErrInvalidAPIKey means the API rejected the credential.
	ErrInvalidAPIKey = errors.New("invalid API key")

	// ErrQuotaExhausted means the account has no credit left.
	ErrQuotaExhausted = errors.New("insufficient quota")

	// ErrRateLimited means the API asked us to slow down.
	ErrRateLimited = errors.New("rate limited")

	// ErrTokenLimit means the request or response exceeded the token budget.
	ErrTokenLimit = errors.New("token limit exceeded")

	// ErrRefused means the model declined to produce the requested document.
	ErrRefused = errors.New("model refused the request")

	// ErrConnection means the API could not be reached at all.
	ErrConnection = errors.New("connection failed")
)

// isConnectionError reports whether err is a transport-level failure rather
// than an API-level one. Context cancellation is not a connection error.
func isConnectionError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
