// Package mod defines the mod entity and the factory that turns a
// declarative mod definition into a fully wired instance.
//
// Authors declare options, keybinds, commands, and hook descriptors as
// fields on a definition struct, pass more of them explicitly to New, or
// both. The factory collects and merges the two declaration sources,
// binds each hook descriptor to the new instance, and resolves display
// metadata. Construction never touches the live game; only the registry's
// Enable does.
package mod
