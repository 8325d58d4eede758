package command

import (
	"errors"
	"strings"
)

// Command errors.
var (
	// ErrInvalidName is returned when a command name is empty or
	// contains whitespace.
	ErrInvalidName = errors.New("invalid command name")

	// ErrDisabled is returned when invoking a command whose mod is
	// disabled.
	ErrDisabled = errors.New("command is disabled")
)

// Callback handles a console invocation. args holds the whitespace-split
// arguments after the command name.
type Callback func(args []string) error

// Command is a named console command.
type Command struct {
	name        string
	description string
	callback    Callback
	enabled     bool
}

// Option configures a Command.
type Option func(*Command)

// WithDescription sets the help text shown for the command.
func WithDescription(desc string) Option {
	return func(c *Command) {
		c.description = desc
	}
}

// New creates a command. Names are stored lowercase and may not contain
// whitespace.
func New(name string, callback Callback, opts ...Option) (*Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || strings.ContainsAny(name, " \t") {
		return nil, ErrInvalidName
	}

	c := &Command{name: name, callback: callback}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustNew creates a command and panics on error. For static declarations
// on mod definitions.
func MustNew(name string, callback Callback, opts ...Option) *Command {
	c, err := New(name, callback, opts...)
	if err != nil {
		panic("command: " + name + ": " + err.Error())
	}
	return c
}

// Name returns the command name.
func (c *Command) Name() string { return c.name }

// Description returns the command's help text.
func (c *Command) Description() string { return c.description }

// Enabled returns true while the owning mod is enabled.
func (c *Command) Enabled() bool { return c.enabled }

// SetEnabled flips the enabled flag. The mod registry owns this during
// enable/disable transitions.
func (c *Command) SetEnabled(enabled bool) { c.enabled = enabled }

// Invoke runs the command callback. Disabled commands refuse to run.
func (c *Command) Invoke(args []string) error {
	if !c.enabled {
		return ErrDisabled
	}
	if c.callback == nil {
		return nil
	}
	return c.callback(args)
}
