package key

import "strings"

// Mod is a bitmask of keyboard modifier keys.
type Mod uint8

const (
	// ModNone indicates no modifiers.
	ModNone Mod = 0

	// ModShift indicates the Shift key.
	ModShift Mod = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the given modifier.
func (m Mod) Has(mod Mod) bool {
	return m&mod != 0
}

// With returns m with the given modifier added.
func (m Mod) With(mod Mod) Mod {
	return m | mod
}

// Without returns m with the given modifier removed.
func (m Mod) Without(mod Mod) Mod {
	return m &^ mod
}

// String returns a canonical representation like "Ctrl+Alt". Modifiers
// appear in fixed order regardless of how they were combined.
func (m Mod) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "Alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "Shift")
	}
	if m.Has(ModMeta) {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// modNames maps lowercase modifier names to their flags.
var modNames = map[string]Mod{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"a":       ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"super":   ModMeta,
	"win":     ModMeta,
	"m":       ModMeta,
}

// ModFromName returns the modifier for a name, case-insensitively.
// Returns ModNone for unrecognized names.
func ModFromName(name string) Mod {
	return modNames[lower(name)]
}
