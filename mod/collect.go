package mod

import (
	"reflect"

	"github.com/dshills/modkit/command"
	"github.com/dshills/modkit/hook"
	"github.com/dshills/modkit/keybind"
	"github.com/dshills/modkit/option"
)

// Members holds one mod's descriptors per category.
type Members struct {
	Options  []option.Option
	Keybinds []*keybind.Keybind
	Commands []*command.Command
	Hooks    []*hook.Descriptor
}

// Collect discovers the descriptors declared as fields on a definition
// struct and merges them with explicitly supplied members.
//
// Every category is merged independently: the union of discovered and
// explicit members, de-duplicated by identity (identifier for options,
// keybinds, and commands; event name plus callback identity for hooks).
// On conflict the explicit member wins and the discovered duplicate is
// dropped. Passing explicit members for one category never suppresses
// discovery for any category.
//
// Two discovered members sharing one identity in the same category is a
// DefinitionError.
func Collect(def any, explicit Members) (Members, error) {
	discovered, err := discover(def)
	if err != nil {
		return Members{}, err
	}

	return Members{
		Options: mergeByID(discovered.Options, explicit.Options,
			func(o option.Option) string { return o.Identifier() }),
		Keybinds: mergeByID(discovered.Keybinds, explicit.Keybinds,
			func(k *keybind.Keybind) string { return k.Identifier() }),
		Commands: mergeByID(discovered.Commands, explicit.Commands,
			func(c *command.Command) string { return c.Name() }),
		Hooks: mergeHooks(discovered.Hooks, explicit.Hooks),
	}, nil
}

// discover walks the definition struct's own declared fields. Embedded
// structs are not flattened: only members declared directly on the
// definition count as declarative attributes.
func discover(def any) (Members, error) {
	var members Members
	if def == nil {
		return members, nil
	}

	v := reflect.ValueOf(def)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return members, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return Members{}, &DefinitionError{
			Message: "definition must be a struct or pointer to struct, got " + v.Kind().String(),
		}
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Slice:
			if fv.IsNil() {
				continue
			}
		}

		switch m := fv.Interface().(type) {
		case option.Option:
			members.Options = append(members.Options, m)
		case *keybind.Keybind:
			members.Keybinds = append(members.Keybinds, m)
		case *command.Command:
			members.Commands = append(members.Commands, m)
		case *hook.Descriptor:
			members.Hooks = append(members.Hooks, m)
		case []option.Option:
			members.Options = append(members.Options, m...)
		case []*keybind.Keybind:
			members.Keybinds = append(members.Keybinds, m...)
		case []*command.Command:
			members.Commands = append(members.Commands, m...)
		case []*hook.Descriptor:
			members.Hooks = append(members.Hooks, m...)
		}
	}

	if err := checkDiscovered(members); err != nil {
		return Members{}, err
	}
	return members, nil
}

// checkDiscovered rejects definitions that declare two members with the
// same identity in one category.
func checkDiscovered(m Members) error {
	if id, ok := firstDuplicate(m.Options, func(o option.Option) string { return o.Identifier() }); ok {
		return &DefinitionError{Category: "option", Identifier: id, Message: "declared twice"}
	}
	if id, ok := firstDuplicate(m.Keybinds, func(k *keybind.Keybind) string { return k.Identifier() }); ok {
		return &DefinitionError{Category: "keybind", Identifier: id, Message: "declared twice"}
	}
	if id, ok := firstDuplicate(m.Commands, func(c *command.Command) string { return c.Name() }); ok {
		return &DefinitionError{Category: "command", Identifier: id, Message: "declared twice"}
	}
	for i, d := range m.Hooks {
		for _, other := range m.Hooks[i+1:] {
			if d.Matches(other) {
				return &DefinitionError{Category: "hook", Identifier: d.EventName(), Message: "declared twice"}
			}
		}
	}
	return nil
}

func firstDuplicate[T any](members []T, id func(T) string) (string, bool) {
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		key := id(m)
		if seen[key] {
			return key, true
		}
		seen[key] = true
	}
	return "", false
}

// mergeByID unions discovered and explicit members. Discovered members
// keep declaration order; a discovered member whose identity also appears
// explicitly is dropped in favor of the explicit one. Explicit duplicates
// keep the first occurrence.
func mergeByID[T any](discovered, explicit []T, id func(T) string) []T {
	if len(discovered) == 0 && len(explicit) == 0 {
		return nil
	}

	explicitIDs := make(map[string]bool, len(explicit))
	for _, m := range explicit {
		explicitIDs[id(m)] = true
	}

	out := make([]T, 0, len(discovered)+len(explicit))
	for _, m := range discovered {
		if !explicitIDs[id(m)] {
			out = append(out, m)
		}
	}

	added := make(map[string]bool, len(explicit))
	for _, m := range explicit {
		key := id(m)
		if added[key] {
			continue
		}
		added[key] = true
		out = append(out, m)
	}
	return out
}

// mergeHooks is mergeByID for hook descriptors, whose identity is
// structural (event plus callback) rather than a string.
func mergeHooks(discovered, explicit []*hook.Descriptor) []*hook.Descriptor {
	if len(discovered) == 0 && len(explicit) == 0 {
		return nil
	}

	matchesAny := func(d *hook.Descriptor, in []*hook.Descriptor) bool {
		for _, other := range in {
			if d.Matches(other) {
				return true
			}
		}
		return false
	}

	out := make([]*hook.Descriptor, 0, len(discovered)+len(explicit))
	for _, d := range discovered {
		if !matchesAny(d, explicit) {
			out = append(out, d)
		}
	}
	// Conflicting discovered hooks were dropped above, so a match in out
	// can only be an earlier explicit duplicate; first occurrence wins.
	for _, d := range explicit {
		if !matchesAny(d, out) {
			out = append(out, d)
		}
	}
	return out
}
