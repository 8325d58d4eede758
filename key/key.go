package key

// Key identifies a non-character keyboard key. Character keys use KeyRune
// with the character stored in Chord.Rune.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeySpace
	KeyPause
	KeyPrintScreen
	KeyCapsLock
	KeyNumLock
	KeyScrollLock

	// KeyRune marks a character key; the character lives in Chord.Rune.
	KeyRune
)

// keyNames maps keys to their canonical display names. Parsing accepts
// these names case-insensitively, plus the aliases in keyAliases.
var keyNames = map[Key]string{
	KeyEscape:      "Escape",
	KeyEnter:       "Enter",
	KeyTab:         "Tab",
	KeyBackspace:   "Backspace",
	KeyDelete:      "Delete",
	KeyInsert:      "Insert",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyF1:          "F1",
	KeyF2:          "F2",
	KeyF3:          "F3",
	KeyF4:          "F4",
	KeyF5:          "F5",
	KeyF6:          "F6",
	KeyF7:          "F7",
	KeyF8:          "F8",
	KeyF9:          "F9",
	KeyF10:         "F10",
	KeyF11:         "F11",
	KeyF12:         "F12",
	KeySpace:       "Space",
	KeyPause:       "Pause",
	KeyPrintScreen: "PrintScreen",
	KeyCapsLock:    "CapsLock",
	KeyNumLock:     "NumLock",
	KeyScrollLock:  "ScrollLock",
}

// keyAliases maps additional lowercase spellings to keys.
var keyAliases = map[string]Key{
	"esc":    KeyEscape,
	"return": KeyEnter,
	"cr":     KeyEnter,
	"bs":     KeyBackspace,
	"del":    KeyDelete,
	"ins":    KeyInsert,
	"pgup":   KeyPageUp,
	"pgdn":   KeyPageDown,
	"prtsc":  KeyPrintScreen,
}

// nameToKey is the lowercase canonical-name lookup, built from keyNames.
var nameToKey = func() map[string]Key {
	m := make(map[string]Key, len(keyNames))
	for k, name := range keyNames {
		m[lower(name)] = k
	}
	return m
}()

// String returns the canonical display name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyRune {
		return "Rune"
	}
	return "None"
}

// IsSpecial returns true for non-character keys.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// FromName returns the key for a name, case-insensitively. Returns KeyNone
// if the name is not a known key name or alias.
func FromName(name string) Key {
	name = lower(name)
	if k, ok := nameToKey[name]; ok {
		return k
	}
	if k, ok := keyAliases[name]; ok {
		return k
	}
	return KeyNone
}

// lower is an ASCII-only strings.ToLower; key names are ASCII.
func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
