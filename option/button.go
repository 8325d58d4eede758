package option

// Button is a display-only option that runs a callback when pressed in
// the options menu. It has no value and nothing to persist.
type Button struct {
	meta
	onPress func() error
}

// NewButton creates a button option.
func NewButton(identifier string, onPress func() error, opts ...MetaOption) (*Button, error) {
	if identifier == "" {
		return nil, ErrNoIdentifier
	}
	return &Button{meta: newMeta(identifier, opts), onPress: onPress}, nil
}

// MustButton creates a button option and panics on error.
func MustButton(identifier string, onPress func() error, opts ...MetaOption) *Button {
	b, err := NewButton(identifier, onPress, opts...)
	if err != nil {
		panic("option: " + err.Error())
	}
	return b
}

// Press runs the button's callback.
func (b *Button) Press() error {
	if b.onPress == nil {
		return nil
	}
	return b.onPress()
}

// Reset implements Option. Buttons have no value to reset.
func (b *Button) Reset() {}

// SaveValue implements Option. Buttons persist nothing.
func (b *Button) SaveValue() (any, bool) { return nil, false }

// LoadValue implements Option. Saved values for buttons are ignored.
func (b *Button) LoadValue(any) error { return nil }
