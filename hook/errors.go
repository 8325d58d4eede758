package hook

import "errors"

// Hook errors.
var (
	// ErrNilDescriptor is returned when binding a nil descriptor.
	ErrNilDescriptor = errors.New("hook descriptor is nil")

	// ErrBinding is returned when a descriptor cannot be bound, such as
	// a missing event name or callback.
	ErrBinding = errors.New("hook binding failed")
)
