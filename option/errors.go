package option

import "errors"

// Option errors.
var (
	// ErrNoIdentifier is returned when an option is created without an
	// identifier.
	ErrNoIdentifier = errors.New("option has no identifier")

	// ErrTypeMismatch is returned when a loaded or assigned value has the
	// wrong type.
	ErrTypeMismatch = errors.New("option value type mismatch")

	// ErrOutOfRange is returned when a slider value is outside its range.
	ErrOutOfRange = errors.New("option value out of range")

	// ErrInvalidChoice is returned when a dropdown value is not one of
	// its choices.
	ErrInvalidChoice = errors.New("option value not a valid choice")

	// ErrInvalidRange is returned when a slider is constructed with an
	// empty or inverted range.
	ErrInvalidRange = errors.New("invalid option range")

	// ErrNoChoices is returned when a dropdown is constructed without
	// choices.
	ErrNoChoices = errors.New("dropdown option has no choices")

	// ErrNilKeybind is returned when deriving an option from a nil
	// keybind.
	ErrNilKeybind = errors.New("keybind is nil")
)
