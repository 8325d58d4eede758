package luamod

import (
	"errors"
	"fmt"
)

var (
	// ErrNoModTable means the script did not return a mod table.
	ErrNoModTable = errors.New("luamod: script did not return a mod table")

	// ErrBadMember means a member entry in the mod table is malformed.
	ErrBadMember = errors.New("luamod: bad member entry")
)

// ScriptError wraps a failure to load one script with the script's path.
type ScriptError struct {
	Path string
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("luamod: %s: %v", e.Path, e.Err)
}

func (e *ScriptError) Unwrap() error { return e.Err }
