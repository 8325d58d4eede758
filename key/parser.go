package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors.
var (
	// ErrEmptySpec indicates an empty key specification.
	ErrEmptySpec = errors.New("empty key specification")

	// ErrInvalidSpec indicates a malformed key specification.
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a Chord.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Key names: "Enter", "Escape", "F5", "Space" (case-insensitive,
//     common aliases like "Esc" and "PgUp" accepted)
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+P"
func Parse(spec string) (Chord, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Chord{}, ErrEmptySpec
	}

	// "+" alone is the plus character, not a separator.
	if strings.Contains(spec, "+") && spec != "+" {
		return parseCombo(spec)
	}
	return parseSingle(spec, ModNone)
}

// parseCombo parses "Mod+...+Key" notation. Every part but the last must
// name a modifier.
func parseCombo(spec string) (Chord, error) {
	parts := strings.Split(spec, "+")

	// A trailing separator means the key itself is "+": "Ctrl++".
	keyPart := parts[len(parts)-1]
	modParts := parts[:len(parts)-1]
	if keyPart == "" && len(modParts) > 0 {
		keyPart = "+"
		modParts = modParts[:len(modParts)-1]
	}

	var mods Mod
	for _, p := range modParts {
		p = strings.TrimSpace(p)
		mod := ModFromName(p)
		if mod == ModNone {
			return Chord{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods = mods.With(mod)
	}

	return parseSingle(strings.TrimSpace(keyPart), mods)
}

// parseSingle parses a bare key name or single character with known
// modifiers.
func parseSingle(spec string, mods Mod) (Chord, error) {
	if spec == "" {
		return Chord{}, ErrInvalidSpec
	}

	if k := FromName(spec); k != KeyNone {
		return NewChord(k, mods), nil
	}

	runes := []rune(spec)
	if len(runes) != 1 {
		return Chord{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, spec)
	}

	r := runes[0]
	switch {
	case mods.Has(ModCtrl) || mods.Has(ModAlt) || mods.Has(ModMeta):
		// Letters in combos are stored lowercase so "Ctrl+S" and
		// "Ctrl+s" are the same chord.
		r = unicode.ToLower(r)
	case mods.Has(ModShift):
		// "Shift+a" is the same chord as "A".
		r = unicode.ToUpper(r)
	case unicode.IsUpper(r):
		// Bare uppercase letters carry an implicit Shift.
		mods = mods.With(ModShift)
	}

	return NewRuneChord(r, mods), nil
}

// MustParse parses a key specification and panics on error. For
// known-valid specs in initialization code.
func MustParse(spec string) Chord {
	c, err := Parse(spec)
	if err != nil {
		panic("key: invalid specification " + spec + ": " + err.Error())
	}
	return c
}

// Normalize parses a specification and returns its canonical form.
func Normalize(spec string) (string, error) {
	c, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
