// Package common defines shared constants and sentinel errors used across
// the server and client layers of the project manager. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Partial update errors, raised before a statement reaches the store.
	ErrorUnknownField = errors.New("unknown field")
	ErrorInvalidValue = errors.New("invalid value")
)
