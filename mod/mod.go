package mod

import (
	"slices"

	"github.com/dshills/modkit/command"
	"github.com/dshills/modkit/hook"
	"github.com/dshills/modkit/keybind"
	"github.com/dshills/modkit/option"
)

// Info carries a mod's identity and author metadata.
type Info struct {
	// Name is the mod's identity. At most one mod with a given name can
	// be registered at a time.
	Name string

	// Version is the mod's version string.
	Version string

	// Author names the mod's author.
	Author string

	// Description is a short description shown in the mod menu.
	Description string
}

// Mod is a constructed mod instance: identity, metadata, and the ordered
// member lists the registry pushes to the host on enable. A Mod owns its
// members for its whole lifetime.
type Mod struct {
	info           Info
	displayVersion string
	settingsFile   string
	autoEnable     bool
	def            any

	options  []option.Option
	keybinds []*keybind.Keybind
	commands []*command.Command
	hooks    []*hook.Bound

	enabled bool
}

// Name returns the mod's identity.
func (m *Mod) Name() string { return m.info.Name }

// Version returns the mod's version string.
func (m *Mod) Version() string { return m.info.Version }

// Author returns the mod's author.
func (m *Mod) Author() string { return m.info.Author }

// Description returns the mod's description.
func (m *Mod) Description() string { return m.info.Description }

// DisplayVersion returns the human-readable version resolved at
// construction. The registry and UI read it without re-deriving.
func (m *Mod) DisplayVersion() string { return m.displayVersion }

// SettingsFile returns the path this mod's settings persist to, "" when
// the mod has no settings file.
func (m *Mod) SettingsFile() string { return m.settingsFile }

// AutoEnable reports whether the mod re-enables itself from saved
// settings on load.
func (m *Mod) AutoEnable() bool { return m.autoEnable }

// Def returns the author's definition value, if the mod was built from
// one. Method-style hooks recover their state through it.
func (m *Mod) Def() any { return m.def }

// Options returns the mod's options in declaration order.
func (m *Mod) Options() []option.Option { return slices.Clone(m.options) }

// Keybinds returns the mod's keybinds in declaration order.
func (m *Mod) Keybinds() []*keybind.Keybind { return slices.Clone(m.keybinds) }

// Commands returns the mod's commands in declaration order.
func (m *Mod) Commands() []*command.Command { return slices.Clone(m.commands) }

// Hooks returns the mod's bound hooks in declaration order.
func (m *Mod) Hooks() []*hook.Bound { return slices.Clone(m.hooks) }

// Enabled reports whether the mod is currently enabled.
func (m *Mod) Enabled() bool { return m.enabled }

// SetEnabled flips the enabled flag. The registry owns this during
// enable/disable transitions; mods and UIs should go through the
// registry instead.
func (m *Mod) SetEnabled(enabled bool) { m.enabled = enabled }
