package option_test

import (
	"errors"
	"testing"

	"github.com/dshills/modkit/keybind"
	"github.com/dshills/modkit/option"
)

// TestBool verifies default capture, set, and reset.
func TestBool(t *testing.T) {
	b := option.MustBool("crosshair", true)

	if b.DisplayName() != "crosshair" {
		t.Errorf("display name = %q, want identifier copy", b.DisplayName())
	}
	if !b.Get() {
		t.Error("expected default true")
	}

	b.Set(false)
	if b.Get() {
		t.Error("expected false after Set")
	}
	if !b.Default() {
		t.Error("default must not change on Set")
	}

	b.Reset()
	if !b.Get() {
		t.Error("expected default restored after Reset")
	}
}

// TestBoolOnChange verifies the change callback fires only on real changes.
func TestBoolOnChange(t *testing.T) {
	count := 0
	b := option.MustBool("crosshair", true).OnChange(func(bool) { count++ })

	b.Set(true) // no change
	if count != 0 {
		t.Errorf("callback fired %d times on no-op set, want 0", count)
	}
	b.Set(false)
	if count != 1 {
		t.Errorf("callback fired %d times, want 1", count)
	}
}

// TestSliderRange verifies range validation on construction and Set.
func TestSliderRange(t *testing.T) {
	if _, err := option.NewSlider("volume", 150, 0, 100); !errors.Is(err, option.ErrOutOfRange) {
		t.Errorf("NewSlider with default outside range = %v, want ErrOutOfRange", err)
	}
	if _, err := option.NewSlider("volume", 0, 10, 5); !errors.Is(err, option.ErrInvalidRange) {
		t.Errorf("NewSlider with inverted range = %v, want ErrInvalidRange", err)
	}

	s := option.MustSlider("volume", 50, 0, 100)
	if err := s.Set(101); !errors.Is(err, option.ErrOutOfRange) {
		t.Errorf("Set(101) = %v, want ErrOutOfRange", err)
	}
	if s.Get() != 50 {
		t.Errorf("value = %d after rejected Set, want 50", s.Get())
	}
	if err := s.Set(75); err != nil {
		t.Errorf("Set(75) error: %v", err)
	}
	s.Reset()
	if s.Get() != 50 {
		t.Errorf("value = %d after Reset, want 50", s.Get())
	}
}

// TestSliderLoadValue verifies JSON number coercion.
func TestSliderLoadValue(t *testing.T) {
	s := option.MustSlider("volume", 50, 0, 100)

	if err := s.LoadValue(float64(75)); err != nil {
		t.Errorf("LoadValue(float64) error: %v", err)
	}
	if s.Get() != 75 {
		t.Errorf("value = %d, want 75", s.Get())
	}
	if err := s.LoadValue(int64(25)); err != nil {
		t.Errorf("LoadValue(int64) error: %v", err)
	}
	if err := s.LoadValue("75"); !errors.Is(err, option.ErrTypeMismatch) {
		t.Errorf("LoadValue(string) = %v, want ErrTypeMismatch", err)
	}
	if err := s.LoadValue(float64(75.5)); !errors.Is(err, option.ErrTypeMismatch) {
		t.Errorf("LoadValue(75.5) = %v, want ErrTypeMismatch", err)
	}
}

// TestDropdown verifies choice validation.
func TestDropdown(t *testing.T) {
	if _, err := option.NewDropdown("difficulty", "hard", []string{"easy", "normal"}); !errors.Is(err, option.ErrInvalidChoice) {
		t.Errorf("NewDropdown with bad default = %v, want ErrInvalidChoice", err)
	}
	if _, err := option.NewDropdown("difficulty", "", nil); !errors.Is(err, option.ErrNoChoices) {
		t.Errorf("NewDropdown without choices = %v, want ErrNoChoices", err)
	}

	d := option.MustDropdown("difficulty", "normal", []string{"easy", "normal", "hard"})
	if err := d.Set("nightmare"); !errors.Is(err, option.ErrInvalidChoice) {
		t.Errorf("Set(nightmare) = %v, want ErrInvalidChoice", err)
	}
	if err := d.Set("hard"); err != nil {
		t.Errorf("Set(hard) error: %v", err)
	}
	d.Reset()
	if d.Get() != "normal" {
		t.Errorf("value = %q after Reset, want %q", d.Get(), "normal")
	}
}

// TestButtonPersistsNothing verifies buttons are skipped by persistence.
func TestButtonPersistsNothing(t *testing.T) {
	pressed := false
	b := option.MustButton("clear_cache", func() error {
		pressed = true
		return nil
	})

	if _, ok := b.SaveValue(); ok {
		t.Error("buttons must not persist a value")
	}
	if err := b.Press(); err != nil {
		t.Errorf("Press error: %v", err)
	}
	if !pressed {
		t.Error("expected callback to run on Press")
	}
}

// TestKeybindOptionDefaultRoundTrip verifies resetting the derived option
// restores the keybind's exact original default key.
func TestKeybindOptionDefaultRoundTrip(t *testing.T) {
	kb := keybind.MustNew("quick_save", "F5", nil)
	o := option.MustFromKeybind(kb)

	if o.Default() != "F5" {
		t.Errorf("derived default = %q, want source default %q", o.Default(), "F5")
	}

	if err := o.Set("Ctrl+S"); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if kb.Key() != "Ctrl+S" {
		t.Errorf("keybind key = %q after option set, want %q", kb.Key(), "Ctrl+S")
	}
	// The derived default tracks the source, not the intermediate value.
	if o.Default() != "F5" {
		t.Errorf("derived default = %q after rebind, want %q", o.Default(), "F5")
	}

	o.Reset()
	if kb.Key() != "F5" {
		t.Errorf("keybind key = %q after option reset, want original default %q", kb.Key(), "F5")
	}
}

// TestKeybindOptionMetadataForwarding verifies display metadata copies from
// the bind.
func TestKeybindOptionMetadataForwarding(t *testing.T) {
	kb := keybind.MustNew("quick_save", "F5", nil,
		keybind.WithDisplayName("Quick Save"),
		keybind.WithDescription("Save without the menu"))
	o := option.MustFromKeybind(kb)

	if o.Identifier() != "quick_save" {
		t.Errorf("identifier = %q, want %q", o.Identifier(), "quick_save")
	}
	if o.DisplayName() != "Quick Save" {
		t.Errorf("display name = %q, want %q", o.DisplayName(), "Quick Save")
	}
	if o.Description() != "Save without the menu" {
		t.Errorf("description = %q, want forwarded bind description", o.Description())
	}
}

// TestKeybindOptionNonRebindable verifies non-rebindable binds persist nothing.
func TestKeybindOptionNonRebindable(t *testing.T) {
	kb := keybind.MustNew("menu", "Escape", nil, keybind.NotRebindable())
	o := option.MustFromKeybind(kb)
	if _, ok := o.SaveValue(); ok {
		t.Error("non-rebindable keybind options must not persist")
	}
}

// TestKeybindOptionLoadNil verifies a nil saved value unbinds.
func TestKeybindOptionLoadNil(t *testing.T) {
	kb := keybind.MustNew("quick_save", "F5", nil)
	o := option.MustFromKeybind(kb)
	if err := o.LoadValue(nil); err != nil {
		t.Fatalf("LoadValue(nil) error: %v", err)
	}
	if kb.IsBound() {
		t.Error("expected keybind unbound after loading nil")
	}
}

// TestAsHiddenMetadata verifies any option type can be kept out of the
// menu while the dedicated Hidden type stays available for stash state.
func TestAsHiddenMetadata(t *testing.T) {
	b := option.MustBool("internal_flag", false, option.AsHidden())
	if !b.IsHidden() {
		t.Error("AsHidden must hide the option")
	}
	if _, ok := b.SaveValue(); !ok {
		t.Error("hidden options still persist their value")
	}

	h := option.MustHidden("stash", 1)
	if !h.IsHidden() {
		t.Error("the Hidden type must always report hidden")
	}
}

// TestHidden verifies hidden options are always hidden and persist anything.
func TestHidden(t *testing.T) {
	h := option.MustHidden("stash", map[string]any{"runs": 3})
	if !h.IsHidden() {
		t.Error("hidden options must report hidden")
	}
	if err := h.LoadValue("replaced"); err != nil {
		t.Fatalf("LoadValue error: %v", err)
	}
	if h.Get() != "replaced" {
		t.Errorf("value = %v, want %q", h.Get(), "replaced")
	}
}
