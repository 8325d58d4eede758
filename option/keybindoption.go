package option

import (
	"fmt"

	"github.com/dshills/modkit/keybind"
)

// KeybindOption exposes a keybind in the options menu as a rebindable
// value. It is derived from the keybind itself: the option's default is
// the keybind's registered default key, so resetting the option restores
// the exact original binding.
type KeybindOption struct {
	meta
	bind *keybind.Keybind
}

// FromKeybind derives an option from a keybind. Identity and display
// metadata are forwarded from the bind unless overridden.
func FromKeybind(bind *keybind.Keybind, opts ...MetaOption) (*KeybindOption, error) {
	if bind == nil {
		return nil, ErrNilKeybind
	}

	o := &KeybindOption{bind: bind}
	o.meta = newMeta(bind.Identifier(), opts)
	if o.displayName == bind.Identifier() {
		o.displayName = bind.DisplayName()
	}
	if o.description == "" {
		o.description = bind.Description()
	}
	if bind.IsHidden() {
		o.hidden = true
	}
	return o, nil
}

// MustFromKeybind derives an option from a keybind and panics on error.
func MustFromKeybind(bind *keybind.Keybind, opts ...MetaOption) *KeybindOption {
	o, err := FromKeybind(bind, opts...)
	if err != nil {
		panic("option: " + err.Error())
	}
	return o
}

// Keybind returns the underlying bind.
func (o *KeybindOption) Keybind() *keybind.Keybind { return o.bind }

// Get returns the currently bound key, "" when unbound.
func (o *KeybindOption) Get() string { return o.bind.Key() }

// Default returns the keybind's registered default key.
func (o *KeybindOption) Default() string { return o.bind.DefaultKey() }

// Set rebinds the underlying keybind.
func (o *KeybindOption) Set(spec string) error { return o.bind.Rebind(spec) }

// Reset implements Option: restores the keybind's original default key.
func (o *KeybindOption) Reset() { o.bind.ResetToDefault() }

// SaveValue implements Option. Non-rebindable binds persist nothing.
func (o *KeybindOption) SaveValue() (any, bool) {
	if !o.bind.IsRebindable() {
		return nil, false
	}
	if !o.bind.IsBound() {
		return nil, true
	}
	return o.bind.Key(), true
}

// LoadValue implements Option. nil unbinds.
func (o *KeybindOption) LoadValue(val any) error {
	if val == nil {
		o.bind.Unbind()
		return nil
	}
	spec, ok := val.(string)
	if !ok {
		return fmt.Errorf("%w: %s: expected string key, got %T", ErrTypeMismatch, o.identifier, val)
	}
	return o.bind.Rebind(spec)
}
