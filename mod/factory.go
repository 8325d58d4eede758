package mod

import (
	"fmt"

	"github.com/dshills/modkit/command"
	"github.com/dshills/modkit/hook"
	"github.com/dshills/modkit/keybind"
	"github.com/dshills/modkit/option"
)

// ConfigSource is a read-only key lookup into host configuration,
// consumed for display metadata. This library never writes configuration.
type ConfigSource interface {
	// Lookup returns the value for a key and whether it exists.
	Lookup(key string) (string, bool)
}

// DisplayVersionKey is the ConfigSource key consulted for a
// human-readable version string.
const DisplayVersionKey = "display_version"

// builder accumulates factory options.
type builder struct {
	def          any
	explicit     Members
	settingsFile string
	autoEnable   bool
	source       ConfigSource
}

// BuildOption configures mod construction.
type BuildOption func(*builder)

// WithDefinition supplies the author's definition struct. Its declared
// descriptor fields are auto-discovered.
func WithDefinition(def any) BuildOption {
	return func(b *builder) {
		b.def = def
	}
}

// WithOptions supplies explicit option members. They merge with, and on
// identity conflicts override, discovered options.
func WithOptions(opts ...option.Option) BuildOption {
	return func(b *builder) {
		b.explicit.Options = append(b.explicit.Options, opts...)
	}
}

// WithKeybinds supplies explicit keybind members.
func WithKeybinds(binds ...*keybind.Keybind) BuildOption {
	return func(b *builder) {
		b.explicit.Keybinds = append(b.explicit.Keybinds, binds...)
	}
}

// WithCommands supplies explicit command members.
func WithCommands(cmds ...*command.Command) BuildOption {
	return func(b *builder) {
		b.explicit.Commands = append(b.explicit.Commands, cmds...)
	}
}

// WithHooks supplies explicit hook descriptors.
func WithHooks(hooks ...*hook.Descriptor) BuildOption {
	return func(b *builder) {
		b.explicit.Hooks = append(b.explicit.Hooks, hooks...)
	}
}

// WithSettingsFile sets the path the mod's settings persist to.
func WithSettingsFile(path string) BuildOption {
	return func(b *builder) {
		b.settingsFile = path
	}
}

// AutoEnable makes the mod re-enable itself from saved settings on load.
func AutoEnable() BuildOption {
	return func(b *builder) {
		b.autoEnable = true
	}
}

// WithConfigSource sets the host configuration used to resolve display
// metadata.
func WithConfigSource(src ConfigSource) BuildOption {
	return func(b *builder) {
		b.source = src
	}
}

// New constructs a mod: it collects declared and explicit members, binds
// every hook descriptor to the new instance, and resolves the display
// version. Construction is inert: nothing is attached to the live game
// until the registry enables the mod.
//
// Collection and binding errors are returned to the caller, which is
// expected to skip this one mod and keep loading others.
func New(info Info, opts ...BuildOption) (*Mod, error) {
	if info.Name == "" {
		return nil, ErrNoName
	}

	var b builder
	for _, opt := range opts {
		opt(&b)
	}

	members, err := Collect(b.def, b.explicit)
	if err != nil {
		return nil, fmt.Errorf("mod %q: %w", info.Name, err)
	}

	m := &Mod{
		info:         info,
		settingsFile: b.settingsFile,
		autoEnable:   b.autoEnable,
		def:          b.def,
		options:      members.Options,
		keybinds:     members.Keybinds,
		commands:     members.Commands,
	}

	for _, d := range members.Hooks {
		bound, err := hook.Bind(d, m)
		if err != nil {
			return nil, fmt.Errorf("mod %q: event %q: %w", info.Name, d.EventName(), err)
		}
		if containsSame(m.hooks, bound) {
			continue
		}
		m.hooks = append(m.hooks, bound)
	}

	m.displayVersion = resolveDisplayVersion(b.source, info)
	return m, nil
}

// containsSame reports whether an equal bound hook is already present.
func containsSame(hooks []*hook.Bound, b *hook.Bound) bool {
	for _, h := range hooks {
		if h.Same(b) {
			return true
		}
	}
	return false
}

// resolveDisplayVersion consults host configuration for a human-readable
// version string, falling back to the mod's own version.
func resolveDisplayVersion(src ConfigSource, info Info) string {
	if src != nil {
		if v, ok := src.Lookup(DisplayVersionKey); ok && v != "" {
			return v
		}
	}
	return info.Version
}
