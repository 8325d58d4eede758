package mod

import (
	"errors"
	"fmt"
)

// Mod construction errors.
var (
	// ErrNoName is returned when a mod is created without a name.
	ErrNoName = errors.New("mod has no name")

	// ErrDefinition indicates an invalid mod definition, such as two
	// declared members sharing one identity.
	ErrDefinition = errors.New("invalid mod definition")
)

// DefinitionError reports a problem with a mod definition discovered at
// collection time. The mod is never constructed.
type DefinitionError struct {
	// Category is the member category ("option", "keybind", "command",
	// "hook").
	Category string

	// Identifier is the conflicting member identity, if any.
	Identifier string

	// Message describes the problem.
	Message string
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	if e.Identifier != "" {
		return fmt.Sprintf("mod definition: %s %q: %s", e.Category, e.Identifier, e.Message)
	}
	return "mod definition: " + e.Message
}

// Is implements error matching against ErrDefinition.
func (e *DefinitionError) Is(target error) bool {
	return target == ErrDefinition
}
