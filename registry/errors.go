package registry

import (
	"errors"
	"fmt"
)

// Registry errors.
var (
	// ErrNilMod is returned when registering a nil mod.
	ErrNilMod = errors.New("mod is nil")

	// ErrNotRegistered is returned when enabling or disabling a mod the
	// registry does not know.
	ErrNotRegistered = errors.New("mod is not registered")

	// ErrDuplicateIdentity is returned when registering a mod whose name
	// collides with an already-registered mod.
	ErrDuplicateIdentity = errors.New("mod name already registered")

	// ErrDispatchRejected is returned when a collaborator refuses a
	// member during enable. The enable is rolled back in full.
	ErrDispatchRejected = errors.New("collaborator rejected registration")
)

// DuplicateIdentityError reports a name collision on Register. The
// already-registered mod is untouched.
type DuplicateIdentityError struct {
	// Name is the colliding mod name.
	Name string
}

// Error implements the error interface.
func (e *DuplicateIdentityError) Error() string {
	return fmt.Sprintf("mod %q is already registered", e.Name)
}

// Is implements error matching against ErrDuplicateIdentity.
func (e *DuplicateIdentityError) Is(target error) bool {
	return target == ErrDuplicateIdentity
}

// DispatchRejectionError reports a collaborator refusing a hook, keybind,
// command, or option during enable. The mod remains disabled with every
// partial registration rolled back.
type DispatchRejectionError struct {
	// Mod is the mod being enabled.
	Mod string

	// Member describes the refused member.
	Member string

	// Err is the collaborator's error.
	Err error
}

// Error implements the error interface.
func (e *DispatchRejectionError) Error() string {
	return fmt.Sprintf("enable %q: %s refused: %v", e.Mod, e.Member, e.Err)
}

// Unwrap returns the collaborator's error.
func (e *DispatchRejectionError) Unwrap() error {
	return e.Err
}

// Is implements error matching against ErrDispatchRejected.
func (e *DispatchRejectionError) Is(target error) bool {
	return target == ErrDispatchRejected
}
