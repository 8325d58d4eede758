package option

// Option is the interface all option descriptors implement.
type Option interface {
	// Identifier returns the option's stable identity, used for
	// de-duplication and settings persistence.
	Identifier() string

	// DisplayName returns the name shown in the options menu.
	DisplayName() string

	// Description returns a short description of the option.
	Description() string

	// IsHidden returns true if the option is kept out of the options menu.
	IsHidden() bool

	// Reset restores the default value.
	Reset()

	// SaveValue returns the current value in persistable form. ok is
	// false for options with nothing to persist (buttons).
	SaveValue() (value any, ok bool)

	// LoadValue applies a previously saved value. Values arrive as
	// decoded JSON types (bool, int64, float64, string).
	LoadValue(value any) error
}

// meta carries the identity and display metadata shared by all option
// types.
type meta struct {
	identifier  string
	displayName string
	description string
	hidden      bool
}

func newMeta(identifier string, opts []MetaOption) meta {
	m := meta{identifier: identifier}
	for _, opt := range opts {
		opt(&m)
	}
	if m.displayName == "" {
		m.displayName = m.identifier
	}
	return m
}

// Identifier implements Option.
func (m *meta) Identifier() string { return m.identifier }

// DisplayName implements Option.
func (m *meta) DisplayName() string { return m.displayName }

// Description implements Option.
func (m *meta) Description() string { return m.description }

// IsHidden implements Option.
func (m *meta) IsHidden() bool { return m.hidden }

// MetaOption configures the display metadata of an option.
type MetaOption func(*meta)

// WithDisplayName sets the name shown in the options menu. Defaults to the
// identifier.
func WithDisplayName(name string) MetaOption {
	return func(m *meta) {
		m.displayName = name
	}
}

// WithDescription sets a short description of the option.
func WithDescription(desc string) MetaOption {
	return func(m *meta) {
		m.description = desc
	}
}

// AsHidden keeps the option out of the options menu. Its value still
// persists, so mods can stash state in hidden options.
func AsHidden() MetaOption {
	return func(m *meta) {
		m.hidden = true
	}
}
