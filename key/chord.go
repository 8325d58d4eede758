package key

import (
	"strings"
	"unicode"
)

// Chord is a single key press: a key (or character) plus modifiers.
type Chord struct {
	// Key identifies the key. KeyRune for character keys.
	Key Key

	// Rune is the character for KeyRune chords.
	Rune rune

	// Mods contains the active modifier keys.
	Mods Mod
}

// NewChord creates a chord for a special key.
func NewChord(k Key, mods Mod) Chord {
	return Chord{Key: k, Mods: mods}
}

// NewRuneChord creates a chord for a character key.
func NewRuneChord(r rune, mods Mod) Chord {
	return Chord{Key: KeyRune, Rune: r, Mods: mods}
}

// IsZero returns true if the chord is empty.
func (c Chord) IsZero() bool {
	return c.Key == KeyNone && c.Rune == 0 && c.Mods == ModNone
}

// IsRune returns true if this is a character chord.
func (c Chord) IsRune() bool {
	return c.Key == KeyRune && c.Rune != 0
}

// Equals reports whether two chords represent the same key press.
func (c Chord) Equals(other Chord) bool {
	return c.Key == other.Key && c.Rune == other.Rune && c.Mods == other.Mods
}

// String returns the canonical specification for the chord, which Parse
// accepts and round-trips. Examples: "a", "A", "Ctrl+S", "Enter",
// "Ctrl+Shift+F5".
func (c Chord) String() string {
	var parts []string
	if mods := c.displayMods(); mods != "" {
		parts = append(parts, mods)
	}

	switch {
	case c.Key == KeyRune && c.Rune == ' ':
		parts = append(parts, "Space")
	case c.Key == KeyRune:
		r := c.Rune
		// A lone Shift is shown as the uppercase rune; with other
		// modifiers present the letter is shown uppercase as well.
		if c.Mods != ModNone {
			r = unicode.ToUpper(r)
		}
		parts = append(parts, string(r))
	default:
		parts = append(parts, c.Key.String())
	}

	return strings.Join(parts, "+")
}

// displayMods returns the modifier prefix for String. A lone Shift on a
// character chord is folded into the rune itself ("A", not "Shift+a").
func (c Chord) displayMods() string {
	mods := c.Mods
	if c.IsRune() && mods == ModShift {
		mods = ModNone
	}
	return mods.String()
}

// Matches checks the chord against a specification string. Invalid
// specifications match nothing.
func (c Chord) Matches(spec string) bool {
	parsed, err := Parse(spec)
	if err != nil {
		return false
	}
	return c.Equals(parsed)
}
