// Package key models keyboard keys, modifiers, and key chords for mod
// keybinds.
//
// A chord combines a key (or character) with modifier flags and has a
// canonical string form ("Ctrl+Shift+F5"). Keybind specifications written
// by mod authors are parsed and normalized through this package, so two
// binds written as "ctrl+s" and "Ctrl+S" compare equal.
package key
