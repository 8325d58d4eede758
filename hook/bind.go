package hook

import "fmt"

// Bound is a hook attached to one specific mod instance, ready for
// dispatch registration. It preserves the descriptor's event name and
// ordering slot.
type Bound struct {
	desc  *Descriptor
	owner any
	call  Func
}

// Bind attaches a descriptor to an owner. Free-function callbacks pass
// through unchanged; method-style callbacks are partially applied with
// the owner. Binding is deterministic and has no side effects: the
// resulting hook touches nothing until it is registered with the
// dispatch collaborator.
func Bind(d *Descriptor, owner any) (*Bound, error) {
	if d == nil {
		return nil, ErrNilDescriptor
	}
	if d.event == "" {
		return nil, fmt.Errorf("%w: descriptor has no event name", ErrBinding)
	}

	var call Func
	switch {
	case d.fn != nil:
		call = d.fn
	case d.ownerFn != nil:
		fn := d.ownerFn
		call = func(ev *Event) error {
			return fn(owner, ev)
		}
	default:
		return nil, fmt.Errorf("%w: descriptor for %q has no callback", ErrBinding, d.event)
	}

	return &Bound{desc: d, owner: owner, call: call}, nil
}

// EventName returns the engine event the hook targets.
func (b *Bound) EventName() string { return b.desc.event }

// Slot returns the hook's ordering slot.
func (b *Bound) Slot() Slot { return b.desc.slot }

// Descriptor returns the descriptor this hook was bound from.
func (b *Bound) Descriptor() *Descriptor { return b.desc }

// Owner returns the mod instance the hook is bound to.
func (b *Bound) Owner() any { return b.owner }

// Call invokes the hook callback.
func (b *Bound) Call(ev *Event) error { return b.call(ev) }

// Same reports whether two bound hooks came from the same (descriptor,
// owner) pair. Binding the same descriptor to the same owner twice yields
// hooks that are Same, which is the de-duplication identity.
func (b *Bound) Same(other *Bound) bool {
	return other != nil && b.desc == other.desc && b.owner == other.owner
}
