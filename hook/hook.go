package hook

import "reflect"

// Slot determines whether a hook runs before or after the engine's own
// handling of its event.
type Slot uint8

const (
	// Pre runs before the engine's default handling.
	Pre Slot = iota

	// Post runs after the engine's default handling.
	Post
)

// String returns a human-readable name for the slot.
func (s Slot) String() string {
	switch s {
	case Pre:
		return "pre"
	case Post:
		return "post"
	default:
		return "unknown"
	}
}

// Event is the payload delivered to hook callbacks when an engine event
// fires.
type Event struct {
	// Name is the engine event name.
	Name string

	// Data carries host-specific event arguments. Its shape is owned by
	// the dispatch collaborator, not this library.
	Data any

	blocked bool
}

// Block asks the engine to skip its default handling. Only meaningful for
// pre-slot hooks; the dispatch collaborator decides whether to honor it.
func (e *Event) Block() { e.blocked = true }

// Blocked reports whether a callback asked to block default handling.
func (e *Event) Blocked() bool { return e.blocked }

// Func is a free-function hook callback.
type Func func(ev *Event) error

// OwnerFunc is a method-style hook callback: it receives the mod instance
// the hook was bound to as its first argument.
type OwnerFunc func(owner any, ev *Event) error

// Descriptor is an unbound hook: the event name, ordering slot, and
// callback declared on a mod definition. Descriptors are immutable after
// construction; binding produces a new value and never mutates the
// descriptor.
type Descriptor struct {
	event   string
	slot    Slot
	fn      Func
	ownerFn OwnerFunc
}

// New creates a descriptor for a free-function callback.
func New(event string, slot Slot, fn Func) *Descriptor {
	return &Descriptor{event: event, slot: slot, fn: fn}
}

// Method creates a descriptor for a method-style callback. Binding
// partially applies the owner argument.
func Method(event string, slot Slot, fn OwnerFunc) *Descriptor {
	return &Descriptor{event: event, slot: slot, ownerFn: fn}
}

// EventName returns the engine event the hook targets.
func (d *Descriptor) EventName() string { return d.event }

// Slot returns the hook's ordering slot.
func (d *Descriptor) Slot() Slot { return d.slot }

// Matches reports whether two descriptors have the same identity: the
// same event name, slot, and callback function. This is the
// de-duplication identity for hooks declared both on a definition and
// passed explicitly.
func (d *Descriptor) Matches(other *Descriptor) bool {
	if d == other {
		return d != nil
	}
	if d == nil || other == nil {
		return false
	}
	return d.event == other.event && d.slot == other.slot &&
		funcPtr(d.fn) == funcPtr(other.fn) &&
		ownerFuncPtr(d.ownerFn) == ownerFuncPtr(other.ownerFn)
}

func funcPtr(fn Func) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}

func ownerFuncPtr(fn OwnerFunc) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}
