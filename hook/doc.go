// Package hook defines engine-event hooks: unbound descriptors authored
// on a mod definition, and the bound hooks produced by attaching a
// descriptor to one specific mod instance.
//
// A descriptor is plain data: a target event name, a pre/post ordering
// slot, and a callback. Binding is an explicit, side-effect-free step; a
// bound hook only reaches the live game when the mod registry attaches it
// during enable.
package hook
