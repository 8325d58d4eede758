package registry

import (
	"github.com/dshills/modkit/command"
	"github.com/dshills/modkit/hook"
	"github.com/dshills/modkit/keybind"
	"github.com/dshills/modkit/mod"
	"github.com/dshills/modkit/option"
)

// Handle identifies one hook attachment to the dispatch collaborator.
// Its concrete type is owned by the collaborator.
type Handle any

// Dispatch is the host engine's hook-dispatch collaborator. The registry
// calls it only from Enable and Disable.
type Dispatch interface {
	// Attach registers a callback for an engine event in the given
	// ordering slot. The returned handle detaches it again.
	Attach(event string, slot hook.Slot, fn func(*hook.Event) error) (Handle, error)

	// Detach removes a previously attached callback.
	Detach(h Handle) error
}

// UI is the host's options-menu and console collaborator. The registry
// calls it only from Enable and Disable.
type UI interface {
	ShowOption(m *mod.Mod, o option.Option) error
	HideOption(m *mod.Mod, o option.Option)

	ShowKeybind(m *mod.Mod, k *keybind.Keybind) error
	HideKeybind(m *mod.Mod, k *keybind.Keybind)

	ShowCommand(m *mod.Mod, c *command.Command) error
	HideCommand(m *mod.Mod, c *command.Command)
}
