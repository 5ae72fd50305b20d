// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the guard middleware when inspecting request
// headers. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts (i.e. the token value is missing entirely).
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrAdminRequired is returned by the admin middleware when the
	// authenticated user does not hold the admin role.
	ErrAdminRequired = errors.New("admin privileges required")

	// ErrInvalidAdminAPIKey is returned by the API-key middleware when the
	// "x-admin-api-key" header is missing, wrong, or no key is configured.
	ErrInvalidAdminAPIKey = errors.New("invalid admin API key")
)
