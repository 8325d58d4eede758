package registry

import (
	"fmt"
	"log/slog"

	"github.com/dshills/modkit/keybind"
	"github.com/dshills/modkit/mod"
)

// Registry is the process-wide set of known mods, insertion-ordered for
// stable display. Mods are registered once and never removed; disabling
// is the only way out of the live game.
type Registry struct {
	dispatch Dispatch
	ui       UI
	log      *slog.Logger

	mods  map[string]*entry
	order []*entry
}

// entry tracks one registered mod and the undo stack for its current
// enablement.
type entry struct {
	mod *mod.Mod

	// undo reverses everything the last enable pushed to the
	// collaborators, in reverse order.
	undo []func()

	// busy guards against reentrant transitions; pending records the
	// last state requested while busy.
	busy    bool
	pending *bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger for lifecycle transitions.
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		r.log = log
	}
}

// New creates a registry wired to the host's collaborators. Either
// collaborator may be nil, in which case its members are skipped during
// enable; tests and headless hosts use this.
func New(dispatch Dispatch, ui UI, opts ...Option) *Registry {
	r := &Registry{
		dispatch: dispatch,
		ui:       ui,
		log:      slog.Default(),
		mods:     make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts a mod into the registry without enabling it. A name
// collision fails with a DuplicateIdentityError and leaves the existing
// mod untouched.
func (r *Registry) Register(m *mod.Mod) error {
	if m == nil {
		return ErrNilMod
	}
	if _, exists := r.mods[m.Name()]; exists {
		return &DuplicateIdentityError{Name: m.Name()}
	}

	e := &entry{mod: m}
	r.mods[m.Name()] = e
	r.order = append(r.order, e)

	r.log.Debug("mod registered", "mod", m.Name(), "version", m.DisplayVersion())
	return nil
}

// Find looks a mod up by name.
func (r *Registry) Find(name string) (*mod.Mod, bool) {
	e, ok := r.mods[name]
	if !ok {
		return nil, false
	}
	return e.mod, true
}

// Mods returns all registered mods in registration order.
func (r *Registry) Mods() []*mod.Mod {
	out := make([]*mod.Mod, len(r.order))
	for i, e := range r.order {
		out[i] = e.mod
	}
	return out
}

// Len returns the number of registered mods.
func (r *Registry) Len() int {
	return len(r.order)
}

// Enable attaches the mod's hooks to the dispatch collaborator and shows
// its keybinds, commands, and options through the UI collaborator.
// Enabling an enabled mod is a no-op. Enable is all-or-nothing: if any
// collaborator refuses a member, everything already pushed is rolled
// back, the mod stays disabled, and a DispatchRejectionError is
// returned.
func (r *Registry) Enable(m *mod.Mod) error {
	return r.transition(m, true)
}

// Disable detaches and hides everything Enable pushed, in reverse order.
// Disabling a disabled mod is a no-op. Disable is unconditionally
// effective, even after a partially failed enable.
func (r *Registry) Disable(m *mod.Mod) error {
	return r.transition(m, false)
}

// transition drives the enable/disable state machine. Reentrant calls
// from collaborator or member callbacks record the requested state; the
// outermost call applies requests until the state settles, so the last
// write wins instead of recursing.
func (r *Registry) transition(m *mod.Mod, target bool) error {
	if m == nil {
		return ErrNilMod
	}
	e, ok := r.mods[m.Name()]
	if !ok || e.mod != m {
		return fmt.Errorf("%w: %s", ErrNotRegistered, m.Name())
	}

	if e.busy {
		t := target
		e.pending = &t
		return nil
	}

	e.busy = true
	defer func() { e.busy = false }()

	err := r.apply(e, target)
	for e.pending != nil {
		t := *e.pending
		e.pending = nil
		if applyErr := r.apply(e, t); err == nil {
			err = applyErr
		}
	}
	return err
}

// apply performs one state change if the mod is not already there.
func (r *Registry) apply(e *entry, target bool) error {
	if target == e.mod.Enabled() {
		return nil
	}
	if target {
		return r.doEnable(e)
	}
	r.doDisable(e)
	return nil
}

// doEnable pushes every member to the collaborators in declaration
// order, building the undo stack as it goes.
func (r *Registry) doEnable(e *entry) error {
	m := e.mod

	fail := func(member string, err error) error {
		r.unwind(e)
		r.log.Warn("mod enable rolled back", "mod", m.Name(), "member", member, "error", err)
		return &DispatchRejectionError{Mod: m.Name(), Member: member, Err: err}
	}

	if r.dispatch != nil {
		for _, b := range m.Hooks() {
			h, err := r.dispatch.Attach(b.EventName(), b.Slot(), b.Call)
			if err != nil {
				return fail(fmt.Sprintf("hook %s/%s", b.EventName(), b.Slot()), err)
			}
			e.undo = append(e.undo, func() { _ = r.dispatch.Detach(h) })
		}
	}

	if r.ui != nil {
		for _, kb := range m.Keybinds() {
			if err := r.ui.ShowKeybind(m, kb); err != nil {
				return fail("keybind "+kb.Identifier(), err)
			}
			e.undo = append(e.undo, func() { r.ui.HideKeybind(m, kb) })
		}
		for _, c := range m.Commands() {
			if err := r.ui.ShowCommand(m, c); err != nil {
				return fail("command "+c.Name(), err)
			}
			e.undo = append(e.undo, func() { r.ui.HideCommand(m, c) })
		}
		for _, o := range m.Options() {
			if o.IsHidden() {
				continue
			}
			if err := r.ui.ShowOption(m, o); err != nil {
				return fail("option "+o.Identifier(), err)
			}
			e.undo = append(e.undo, func() { r.ui.HideOption(m, o) })
		}
	}

	for _, kb := range m.Keybinds() {
		kb.SetEnabled(true)
	}
	for _, c := range m.Commands() {
		c.SetEnabled(true)
	}
	m.SetEnabled(true)

	r.log.Info("mod enabled", "mod", m.Name())
	return nil
}

// doDisable reverses the undo stack and clears member enablement.
func (r *Registry) doDisable(e *entry) {
	m := e.mod

	r.unwind(e)

	for _, kb := range m.Keybinds() {
		kb.SetEnabled(false)
	}
	for _, c := range m.Commands() {
		c.SetEnabled(false)
	}
	m.SetEnabled(false)

	r.log.Info("mod disabled", "mod", m.Name())
}

// unwind pops the undo stack in reverse order of registration.
func (r *Registry) unwind(e *entry) {
	for i := len(e.undo) - 1; i >= 0; i-- {
		e.undo[i]()
	}
	e.undo = nil
}

// DispatchKey fans a key input event out to every enabled mod's matching
// keybinds, in registration order. It returns Block if any callback
// blocked the input.
func (r *Registry) DispatchKey(ev keybind.InputEvent) keybind.Signal {
	sig := keybind.Pass
	for _, e := range r.order {
		if !e.mod.Enabled() {
			continue
		}
		for _, kb := range e.mod.Keybinds() {
			if !kb.Matches(ev.Chord) {
				continue
			}
			if kb.Handle(ev) == keybind.Block {
				sig = keybind.Block
			}
		}
	}
	return sig
}

// InvokeCommand finds a registered command by name and runs it. Commands
// of disabled mods report ErrDisabled from their own Invoke.
func (r *Registry) InvokeCommand(name string, args []string) error {
	for _, e := range r.order {
		for _, c := range e.mod.Commands() {
			if c.Name() == name {
				return c.Invoke(args)
			}
		}
	}
	return fmt.Errorf("%w: command %q", ErrNotRegistered, name)
}
