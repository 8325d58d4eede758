// Package keybind defines the keybind descriptor: a named, rebindable key
// binding with an input callback.
//
// A keybind captures its default key once at construction; rebinding
// changes the current key but never the default, so "reset to default"
// always restores the original binding. Callbacks may return Block to
// swallow the input instead of passing it back to the host game.
package keybind
