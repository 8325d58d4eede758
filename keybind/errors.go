package keybind

import "errors"

// Keybind errors.
var (
	// ErrNoIdentifier is returned when a keybind is created without an
	// identifier.
	ErrNoIdentifier = errors.New("keybind has no identifier")

	// ErrInvalidKey is returned when a key specification cannot be parsed.
	ErrInvalidKey = errors.New("invalid key")
)
