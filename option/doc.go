// Package option defines the option descriptors a mod exposes in the host
// options menu: typed values with defaults, buttons, and keybind-derived
// options.
//
// Every option carries an immutable identity (its identifier) and mutable
// runtime state (the current value). Concrete option types validate on
// Set; Reset restores the default captured at construction.
package option
