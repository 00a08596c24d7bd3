// Package repository defines the store abstraction for users, events,
// bookings and refresh tokens, together with its MySQL and in-memory
// implementations. Sentinel errors let handlers translate storage outcomes
// into HTTP statuses without inspecting driver-specific errors.
package repository

import "errors"

// ErrUsernameExists is returned when registration hits an existing username.
// Handlers translate it into HTTP 409.
var ErrUsernameExists = errors.New("username already exists")

// ErrNotFound is returned when a referenced record is absent. Handlers
// translate it into HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrTokenInvalid is returned when a refresh token is unknown, expired or
// revoked. Handlers translate it into HTTP 401.
var ErrTokenInvalid = errors.New("invalid refresh token")
