package mod_test

import (
	"errors"
	"testing"

	"github.com/dshills/modkit/command"
	"github.com/dshills/modkit/hook"
	"github.com/dshills/modkit/keybind"
	"github.com/dshills/modkit/mod"
	"github.com/dshills/modkit/option"
)

// TestCollectDiscoversFields verifies descriptors declared as definition
// fields are discovered in every category.
func TestCollectDiscoversFields(t *testing.T) {
	type def struct {
		Volume *option.Slider
		Save   *keybind.Keybind
		Tp     *command.Command
		OnLoad *hook.Descriptor
		Extra  []option.Option
	}

	d := &def{
		Volume: option.MustSlider("volume", 50, 0, 100),
		Save:   keybind.MustNew("quick_save", "F5", nil),
		Tp:     command.MustNew("tp", nil),
		OnLoad: hook.New("OnLevelLoad", hook.Pre, func(*hook.Event) error { return nil }),
		Extra:  []option.Option{option.MustBool("crosshair", true)},
	}

	got, err := mod.Collect(d, mod.Members{})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	if len(got.Options) != 2 {
		t.Errorf("options = %d, want 2", len(got.Options))
	}
	if len(got.Keybinds) != 1 || got.Keybinds[0] != d.Save {
		t.Errorf("keybinds = %v, want the declared bind", got.Keybinds)
	}
	if len(got.Commands) != 1 || got.Commands[0] != d.Tp {
		t.Errorf("commands = %v, want the declared command", got.Commands)
	}
	if len(got.Hooks) != 1 || got.Hooks[0] != d.OnLoad {
		t.Errorf("hooks = %v, want the declared descriptor", got.Hooks)
	}
}

// TestCollectExplicitWins verifies a member declared both on the
// definition and explicitly yields exactly one final member with the
// explicit instance retained.
func TestCollectExplicitWins(t *testing.T) {
	type def struct {
		Volume *option.Slider
	}
	declared := option.MustSlider("volume", 50, 0, 100)
	explicit := option.MustSlider("volume", 75, 0, 100)

	got, err := mod.Collect(&def{Volume: declared}, mod.Members{
		Options: []option.Option{explicit},
	})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	if len(got.Options) != 1 {
		t.Fatalf("options = %d, want exactly 1", len(got.Options))
	}
	if got.Options[0] != option.Option(explicit) {
		t.Error("expected the explicit instance to win the conflict")
	}
	if got.Options[0].(*option.Slider).Get() != 75 {
		t.Errorf("value = %d, want the explicit member's 75", got.Options[0].(*option.Slider).Get())
	}
}

// TestCollectExplicitDoesNotSuppressDiscovery is the regression test for
// the bug where passing any explicit member list skipped auto-collection:
// explicit keybinds must not zero out declared options, and explicit
// members must merge with declared members of the same category.
func TestCollectExplicitDoesNotSuppressDiscovery(t *testing.T) {
	type def struct {
		Volume *option.Slider
		Save   *keybind.Keybind
	}
	d := &def{
		Volume: option.MustSlider("volume", 50, 0, 100),
		Save:   keybind.MustNew("quick_save", "F5", nil),
	}

	extraBind := keybind.MustNew("quick_load", "F9", nil)
	got, err := mod.Collect(d, mod.Members{
		Keybinds: []*keybind.Keybind{extraBind},
	})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}

	// Declared options survive despite an explicit keybind list.
	if len(got.Options) != 1 {
		t.Fatalf("options = %d, want declared option to survive", len(got.Options))
	}
	// Declared and explicit keybinds both contribute.
	if len(got.Keybinds) != 2 {
		t.Fatalf("keybinds = %d, want declared + explicit = 2", len(got.Keybinds))
	}
	if got.Keybinds[0] != d.Save || got.Keybinds[1] != extraBind {
		t.Error("expected declared bind first, explicit bind appended")
	}
}

// TestCollectEmptyExplicitLists verifies empty (non-nil) explicit slices
// behave like absent ones.
func TestCollectEmptyExplicitLists(t *testing.T) {
	type def struct {
		Volume *option.Slider
	}
	got, err := mod.Collect(&def{Volume: option.MustSlider("volume", 50, 0, 100)}, mod.Members{
		Options:  []option.Option{},
		Keybinds: []*keybind.Keybind{},
	})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(got.Options) != 1 {
		t.Errorf("options = %d, want 1 (empty explicit list must not suppress discovery)", len(got.Options))
	}
}

// TestCollectDuplicateDeclaration verifies two declared members with one
// identity fail at collection time.
func TestCollectDuplicateDeclaration(t *testing.T) {
	type def struct {
		A *option.Bool
		B *option.Bool
	}
	d := &def{
		A: option.MustBool("crosshair", true),
		B: option.MustBool("crosshair", false),
	}

	_, err := mod.Collect(d, mod.Members{})
	if !errors.Is(err, mod.ErrDefinition) {
		t.Fatalf("Collect = %v, want ErrDefinition", err)
	}
	var defErr *mod.DefinitionError
	if !errors.As(err, &defErr) {
		t.Fatal("expected a *DefinitionError")
	}
	if defErr.Category != "option" || defErr.Identifier != "crosshair" {
		t.Errorf("error names %s %q, want option crosshair", defErr.Category, defErr.Identifier)
	}
}

// TestCollectDuplicateHookDeclaration verifies duplicate hook identities
// are a definition error.
func TestCollectDuplicateHookDeclaration(t *testing.T) {
	fn := func(*hook.Event) error { return nil }
	d := hook.New("OnLevelLoad", hook.Pre, fn)
	type def struct {
		A *hook.Descriptor
		B *hook.Descriptor
	}

	_, err := mod.Collect(&def{A: d, B: d}, mod.Members{})
	if !errors.Is(err, mod.ErrDefinition) {
		t.Errorf("Collect = %v, want ErrDefinition", err)
	}
}

// TestCollectSkipsEmbedded verifies embedded structs are not walked:
// only members declared directly on the definition count.
func TestCollectSkipsEmbedded(t *testing.T) {
	type base struct {
		Inherited *option.Bool
	}
	type def struct {
		base
		Own *option.Bool
	}
	d := &def{
		base: base{Inherited: option.MustBool("inherited", true)},
		Own:  option.MustBool("own", true),
	}

	got, err := mod.Collect(d, mod.Members{})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(got.Options) != 1 || got.Options[0].Identifier() != "own" {
		t.Errorf("options = %v, want only the directly declared member", got.Options)
	}
}

// TestCollectNilFields verifies nil descriptor fields are skipped.
func TestCollectNilFields(t *testing.T) {
	type def struct {
		Volume *option.Slider
		Save   *keybind.Keybind
	}
	got, err := mod.Collect(&def{Volume: option.MustSlider("volume", 50, 0, 100)}, mod.Members{})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(got.Keybinds) != 0 {
		t.Errorf("keybinds = %d, want nil field skipped", len(got.Keybinds))
	}
}

// TestCollectNonStructDefinition verifies non-struct definitions are
// rejected.
func TestCollectNonStructDefinition(t *testing.T) {
	if _, err := mod.Collect(42, mod.Members{}); !errors.Is(err, mod.ErrDefinition) {
		t.Errorf("Collect(42) = %v, want ErrDefinition", err)
	}
}

// TestCollectNilDefinition verifies a nil definition yields only explicit
// members.
func TestCollectNilDefinition(t *testing.T) {
	o := option.MustBool("crosshair", true)
	got, err := mod.Collect(nil, mod.Members{Options: []option.Option{o}})
	if err != nil {
		t.Fatalf("Collect error: %v", err)
	}
	if len(got.Options) != 1 || got.Options[0] != option.Option(o) {
		t.Errorf("options = %v, want the explicit member", got.Options)
	}
}
