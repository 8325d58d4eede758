package option

import (
	"fmt"
	"slices"
)

// value is the shared typed-value core: a default captured at
// construction plus the mutable current value.
type value[T comparable] struct {
	def      T
	cur      T
	onChange func(T)
}

// Get returns the current value.
func (v *value[T]) Get() T { return v.cur }

// Default returns the default value.
func (v *value[T]) Default() T { return v.def }

// Reset restores the default value.
func (v *value[T]) Reset() { v.assign(v.def) }

func (v *value[T]) assign(val T) {
	if val == v.cur {
		return
	}
	v.cur = val
	if v.onChange != nil {
		v.onChange(val)
	}
}

// Bool is an on/off option.
type Bool struct {
	meta
	value[bool]
}

// NewBool creates a boolean option.
func NewBool(identifier string, def bool, opts ...MetaOption) (*Bool, error) {
	if identifier == "" {
		return nil, ErrNoIdentifier
	}
	b := &Bool{meta: newMeta(identifier, opts)}
	b.def = def
	b.cur = def
	return b, nil
}

// MustBool creates a boolean option and panics on error. For static
// declarations on mod definitions.
func MustBool(identifier string, def bool, opts ...MetaOption) *Bool {
	b, err := NewBool(identifier, def, opts...)
	if err != nil {
		panic("option: " + err.Error())
	}
	return b
}

// OnChange registers a change callback and returns the option for
// chaining in declarations.
func (b *Bool) OnChange(fn func(bool)) *Bool {
	b.onChange = fn
	return b
}

// Set assigns a new value.
func (b *Bool) Set(val bool) { b.assign(val) }

// SaveValue implements Option.
func (b *Bool) SaveValue() (any, bool) { return b.cur, true }

// LoadValue implements Option.
func (b *Bool) LoadValue(val any) error {
	v, ok := val.(bool)
	if !ok {
		return fmt.Errorf("%w: %s: expected bool, got %T", ErrTypeMismatch, b.identifier, val)
	}
	b.assign(v)
	return nil
}

// Slider is an integer option constrained to [min, max].
type Slider struct {
	meta
	value[int]
	min  int
	max  int
	step int
}

// NewSlider creates a slider option. The default must lie within
// [min, max].
func NewSlider(identifier string, def, min, max int, opts ...MetaOption) (*Slider, error) {
	if identifier == "" {
		return nil, ErrNoIdentifier
	}
	if min > max {
		return nil, fmt.Errorf("%w: %s: [%d, %d]", ErrInvalidRange, identifier, min, max)
	}
	if def < min || def > max {
		return nil, fmt.Errorf("%w: %s: default %d outside [%d, %d]", ErrOutOfRange, identifier, def, min, max)
	}
	s := &Slider{meta: newMeta(identifier, opts), min: min, max: max, step: 1}
	s.def = def
	s.cur = def
	return s, nil
}

// MustSlider creates a slider option and panics on error.
func MustSlider(identifier string, def, min, max int, opts ...MetaOption) *Slider {
	s, err := NewSlider(identifier, def, min, max, opts...)
	if err != nil {
		panic("option: " + err.Error())
	}
	return s
}

// Step sets the slider increment and returns the option for chaining.
func (s *Slider) Step(step int) *Slider {
	if step > 0 {
		s.step = step
	}
	return s
}

// OnChange registers a change callback and returns the option for
// chaining.
func (s *Slider) OnChange(fn func(int)) *Slider {
	s.onChange = fn
	return s
}

// Min returns the lower bound.
func (s *Slider) Min() int { return s.min }

// Max returns the upper bound.
func (s *Slider) Max() int { return s.max }

// Increment returns the slider step.
func (s *Slider) Increment() int { return s.step }

// Set assigns a new value, rejecting values outside the range.
func (s *Slider) Set(val int) error {
	if val < s.min || val > s.max {
		return fmt.Errorf("%w: %s: %d outside [%d, %d]", ErrOutOfRange, s.identifier, val, s.min, s.max)
	}
	s.assign(val)
	return nil
}

// SaveValue implements Option.
func (s *Slider) SaveValue() (any, bool) { return s.cur, true }

// LoadValue implements Option.
func (s *Slider) LoadValue(val any) error {
	n, ok := toInt(val)
	if !ok {
		return fmt.Errorf("%w: %s: expected integer, got %T", ErrTypeMismatch, s.identifier, val)
	}
	return s.Set(n)
}

// Dropdown is a string option restricted to a fixed set of choices.
type Dropdown struct {
	meta
	value[string]
	choices []string
}

// NewDropdown creates a dropdown option. The default must be one of the
// choices.
func NewDropdown(identifier, def string, choices []string, opts ...MetaOption) (*Dropdown, error) {
	if identifier == "" {
		return nil, ErrNoIdentifier
	}
	if len(choices) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoChoices, identifier)
	}
	if !slices.Contains(choices, def) {
		return nil, fmt.Errorf("%w: %s: %q", ErrInvalidChoice, identifier, def)
	}
	d := &Dropdown{meta: newMeta(identifier, opts), choices: slices.Clone(choices)}
	d.def = def
	d.cur = def
	return d, nil
}

// MustDropdown creates a dropdown option and panics on error.
func MustDropdown(identifier, def string, choices []string, opts ...MetaOption) *Dropdown {
	d, err := NewDropdown(identifier, def, choices, opts...)
	if err != nil {
		panic("option: " + err.Error())
	}
	return d
}

// OnChange registers a change callback and returns the option for
// chaining.
func (d *Dropdown) OnChange(fn func(string)) *Dropdown {
	d.onChange = fn
	return d
}

// Choices returns the allowed values.
func (d *Dropdown) Choices() []string { return slices.Clone(d.choices) }

// Set assigns a new value, rejecting values not in the choices.
func (d *Dropdown) Set(val string) error {
	if !slices.Contains(d.choices, val) {
		return fmt.Errorf("%w: %s: %q", ErrInvalidChoice, d.identifier, val)
	}
	d.assign(val)
	return nil
}

// SaveValue implements Option.
func (d *Dropdown) SaveValue() (any, bool) { return d.cur, true }

// LoadValue implements Option.
func (d *Dropdown) LoadValue(val any) error {
	v, ok := val.(string)
	if !ok {
		return fmt.Errorf("%w: %s: expected string, got %T", ErrTypeMismatch, d.identifier, val)
	}
	return d.Set(v)
}

// Hidden is a never-displayed option mods use to stash arbitrary
// persistable state.
type Hidden struct {
	meta
	def any
	cur any
}

// NewHidden creates a hidden option holding any JSON-representable value.
func NewHidden(identifier string, def any) (*Hidden, error) {
	if identifier == "" {
		return nil, ErrNoIdentifier
	}
	h := &Hidden{meta: newMeta(identifier, nil), def: def, cur: def}
	h.hidden = true
	return h, nil
}

// MustHidden creates a hidden option and panics on error.
func MustHidden(identifier string, def any) *Hidden {
	h, err := NewHidden(identifier, def)
	if err != nil {
		panic("option: " + err.Error())
	}
	return h
}

// Get returns the current value.
func (h *Hidden) Get() any { return h.cur }

// Set assigns a new value.
func (h *Hidden) Set(val any) { h.cur = val }

// Reset implements Option.
func (h *Hidden) Reset() { h.cur = h.def }

// SaveValue implements Option.
func (h *Hidden) SaveValue() (any, bool) { return h.cur, true }

// LoadValue implements Option.
func (h *Hidden) LoadValue(val any) error {
	h.cur = val
	return nil
}

// toInt coerces decoded JSON numbers to int.
func toInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int64(v)) {
			return int(v), true
		}
	}
	return 0, false
}
