// Package registry maintains the process-wide set of known mods and owns
// their enable/disable lifecycle.
//
// The registry is the only component that touches the external
// collaborators: enabling a mod attaches its hooks to the dispatch
// collaborator and shows its keybinds, commands, and options through the
// UI collaborator; disabling reverses both. Enable is all-or-nothing: a
// rejected attachment rolls back everything registered so far and leaves
// the mod disabled.
//
// The library runs on the host's single control thread, so the registry
// takes no locks; instead every mutating entry point tolerates being
// re-entered from a callback it triggered, resolving to the last
// requested state.
package registry
