package keybind

import (
	"fmt"

	"github.com/dshills/modkit/key"
)

// Signal is a keybind callback's verdict on the input event.
type Signal uint8

const (
	// Pass lets the input continue into the game.
	Pass Signal = iota

	// Block swallows the input so the game never sees it.
	Block
)

// Kind identifies the input event kind a callback sees.
type Kind uint8

const (
	// Press fires when the key goes down.
	Press Kind = iota

	// Repeat fires on key auto-repeat.
	Repeat

	// Release fires when the key comes up.
	Release
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	case Release:
		return "release"
	default:
		return "unknown"
	}
}

// InputEvent is a key press delivered to a keybind callback.
type InputEvent struct {
	// Chord is the key combination that fired.
	Chord key.Chord

	// Kind is the event kind (press, repeat, release).
	Kind Kind
}

// Callback handles an input event for a keybind.
type Callback func(ev InputEvent) Signal

// Keybind is a named key binding with an input callback.
type Keybind struct {
	identifier       string
	displayName      string
	description      string
	descriptionTitle string
	hidden           bool
	rebindable       bool
	enabled          bool

	callback Callback

	// filterAll disables the event-kind filter; by default only filterKind
	// events reach the callback.
	filterAll  bool
	filterKind Kind

	// spec is the normalized current key, "" when unbound. defaultSpec is
	// captured at construction and never changes on rebind.
	spec        string
	defaultSpec string
	chord       key.Chord
}

// Option configures a Keybind.
type Option func(*Keybind)

// WithDisplayName sets the name shown in the options menu. Defaults to the
// identifier.
func WithDisplayName(name string) Option {
	return func(k *Keybind) {
		k.displayName = name
	}
}

// WithDescription sets a short description of the bind.
func WithDescription(desc string) Option {
	return func(k *Keybind) {
		k.description = desc
	}
}

// WithDescriptionTitle sets the title of the description. Defaults to the
// display name.
func WithDescriptionTitle(title string) Option {
	return func(k *Keybind) {
		k.descriptionTitle = title
	}
}

// Hidden keeps the keybind out of the options menu.
func Hidden() Option {
	return func(k *Keybind) {
		k.hidden = true
	}
}

// NotRebindable marks the key as fixed in the options menu.
func NotRebindable() Option {
	return func(k *Keybind) {
		k.rebindable = false
	}
}

// OnEvent makes the callback fire only for the given event kind instead of
// the default Press.
func OnEvent(kind Kind) Option {
	return func(k *Keybind) {
		k.filterKind = kind
	}
}

// AllEvents delivers every event kind to the callback.
func AllEvents() Option {
	return func(k *Keybind) {
		k.filterAll = true
	}
}

// New creates a keybind. spec is the default key ("" for initially
// unbound); it is validated and normalized through the key package.
func New(identifier, spec string, callback Callback, opts ...Option) (*Keybind, error) {
	if identifier == "" {
		return nil, ErrNoIdentifier
	}

	k := &Keybind{
		identifier: identifier,
		rebindable: true,
		callback:   callback,
		filterKind: Press,
	}
	for _, opt := range opts {
		opt(k)
	}

	if k.displayName == "" {
		k.displayName = k.identifier
	}
	if k.descriptionTitle == "" {
		k.descriptionTitle = k.displayName
	}

	if spec != "" {
		if err := k.setKey(spec); err != nil {
			return nil, err
		}
	}
	k.defaultSpec = k.spec

	return k, nil
}

// MustNew creates a keybind and panics on error. For static declarations
// on mod definitions.
func MustNew(identifier, spec string, callback Callback, opts ...Option) *Keybind {
	k, err := New(identifier, spec, callback, opts...)
	if err != nil {
		panic("keybind: " + err.Error())
	}
	return k
}

// Identifier returns the keybind's identifier.
func (k *Keybind) Identifier() string { return k.identifier }

// DisplayName returns the name shown in the options menu.
func (k *Keybind) DisplayName() string { return k.displayName }

// Description returns the short description of the bind.
func (k *Keybind) Description() string { return k.description }

// DescriptionTitle returns the title of the description.
func (k *Keybind) DescriptionTitle() string { return k.descriptionTitle }

// IsHidden returns true if the keybind is kept out of the options menu.
func (k *Keybind) IsHidden() bool { return k.hidden }

// IsRebindable returns true if the key may be rebound.
func (k *Keybind) IsRebindable() bool { return k.rebindable }

// Enabled returns true while the owning mod is enabled.
func (k *Keybind) Enabled() bool { return k.enabled }

// SetEnabled flips the enabled flag. The mod registry owns this during
// enable/disable transitions.
func (k *Keybind) SetEnabled(enabled bool) { k.enabled = enabled }

// Key returns the current key specification, "" when unbound.
func (k *Keybind) Key() string { return k.spec }

// DefaultKey returns the key the bind was registered with. Rebinding does
// not change it.
func (k *Keybind) DefaultKey() string { return k.defaultSpec }

// IsBound returns true if a key is currently assigned.
func (k *Keybind) IsBound() bool { return k.spec != "" }

// Rebind assigns a new key. The spec is validated and normalized.
func (k *Keybind) Rebind(spec string) error {
	if spec == "" {
		k.Unbind()
		return nil
	}
	return k.setKey(spec)
}

// Unbind clears the current key.
func (k *Keybind) Unbind() {
	k.spec = ""
	k.chord = key.Chord{}
}

// ResetToDefault restores the key the bind was registered with.
func (k *Keybind) ResetToDefault() {
	if k.defaultSpec == "" {
		k.Unbind()
		return
	}
	// The default was validated at construction.
	_ = k.setKey(k.defaultSpec)
}

// Matches returns true if the chord matches the currently bound key.
// Unbound keybinds match nothing.
func (k *Keybind) Matches(c key.Chord) bool {
	return k.spec != "" && k.chord.Equals(c)
}

// Handle runs the callback for an input event. Disabled binds, events
// filtered out by kind, and callback-less binds all yield Pass.
func (k *Keybind) Handle(ev InputEvent) Signal {
	if !k.enabled || k.callback == nil {
		return Pass
	}
	if !k.filterAll && ev.Kind != k.filterKind {
		return Pass
	}
	return k.callback(ev)
}

// setKey validates, normalizes, and stores a key spec.
func (k *Keybind) setKey(spec string) error {
	c, err := key.Parse(spec)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidKey, spec, err)
	}
	k.chord = c
	k.spec = c.String()
	return nil
}
