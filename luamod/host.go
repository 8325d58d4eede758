package luamod

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/modkit/command"
	"github.com/dshills/modkit/hook"
	"github.com/dshills/modkit/keybind"
	"github.com/dshills/modkit/mod"
	"github.com/dshills/modkit/option"
)

// Host owns the Lua state behind one scripted mod. The state lives as
// long as the host: member callbacks run inside it.
type Host struct {
	path  string
	state *lua.LState
	mod   *mod.Mod
}

// HostOption configures script loading.
type HostOption func(*hostConfig)

type hostConfig struct {
	settingsDir string
	configSrc   mod.ConfigSource
}

// WithSettingsDir makes every loaded mod persist its settings to
// <dir>/<name>.json, with the name lowercased and spaces replaced.
func WithSettingsDir(dir string) HostOption {
	return func(c *hostConfig) {
		c.settingsDir = dir
	}
}

// WithConfigSource passes the host config source through to the mod
// factory.
func WithConfigSource(src mod.ConfigSource) HostOption {
	return func(c *hostConfig) {
		c.configSrc = src
	}
}

// Load runs a mod script and builds its mod. The script executes once
// to produce the mod table; nothing live is touched until the mod is
// registered and enabled.
func Load(path string, opts ...HostOption) (*Host, error) {
	var cfg hostConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	L := lua.NewState()
	ok := false
	defer func() {
		if !ok {
			L.Close()
		}
	}()

	if err := L.DoFile(path); err != nil {
		return nil, &ScriptError{Path: path, Err: err}
	}
	tbl, isTable := L.Get(-1).(*lua.LTable)
	if !isTable {
		return nil, &ScriptError{Path: path, Err: ErrNoModTable}
	}

	m, err := buildMod(L, tbl, cfg)
	if err != nil {
		return nil, &ScriptError{Path: path, Err: err}
	}

	ok = true
	return &Host{path: path, state: L, mod: m}, nil
}

// Mod returns the mod built from the script.
func (h *Host) Mod() *mod.Mod { return h.mod }

// Path returns the script path the host was loaded from.
func (h *Host) Path() string { return h.path }

// Close shuts down the Lua state. The mod's scripted callbacks must not
// run after Close; disable the mod first.
func (h *Host) Close() {
	h.state.Close()
}

func buildMod(L *lua.LState, t *lua.LTable, cfg hostConfig) (*mod.Mod, error) {
	name, ok := tblString(t, "name")
	if !ok || strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: mod table has no name", ErrBadMember)
	}

	info := mod.Info{Name: name}
	info.Version, _ = tblString(t, "version")
	info.Author, _ = tblString(t, "author")
	info.Description, _ = tblString(t, "description")

	var buildOpts []mod.BuildOption

	if opts, err := buildOptions(L, t); err != nil {
		return nil, err
	} else if len(opts) > 0 {
		buildOpts = append(buildOpts, mod.WithOptions(opts...))
	}
	if binds, err := buildKeybinds(L, t); err != nil {
		return nil, err
	} else if len(binds) > 0 {
		buildOpts = append(buildOpts, mod.WithKeybinds(binds...))
	}
	if cmds, err := buildCommands(L, t); err != nil {
		return nil, err
	} else if len(cmds) > 0 {
		buildOpts = append(buildOpts, mod.WithCommands(cmds...))
	}
	if hooks, err := buildHooks(L, t); err != nil {
		return nil, err
	} else if len(hooks) > 0 {
		buildOpts = append(buildOpts, mod.WithHooks(hooks...))
	}

	if cfg.settingsDir != "" {
		file := strings.ReplaceAll(strings.ToLower(name), " ", "_") + ".json"
		buildOpts = append(buildOpts, mod.WithSettingsFile(filepath.Join(cfg.settingsDir, file)))
	}
	if auto, _ := tblBool(t, "auto_enable"); auto {
		buildOpts = append(buildOpts, mod.AutoEnable())
	}
	if cfg.configSrc != nil {
		buildOpts = append(buildOpts, mod.WithConfigSource(cfg.configSrc))
	}

	return mod.New(info, buildOpts...)
}

// eachEntry walks the array entries of a named section, all of which
// must be tables.
func eachEntry(t *lua.LTable, section string, fn func(e *lua.LTable) error) error {
	list, ok := tblTable(t, section)
	if !ok {
		return nil
	}
	var err error
	list.ForEach(func(_, v lua.LValue) {
		if err != nil {
			return
		}
		e, isTable := v.(*lua.LTable)
		if !isTable {
			err = fmt.Errorf("%w: %s entry is not a table", ErrBadMember, section)
			return
		}
		err = fn(e)
	})
	return err
}

func buildOptions(L *lua.LState, t *lua.LTable) ([]option.Option, error) {
	var out []option.Option
	err := eachEntry(t, "options", func(e *lua.LTable) error {
		o, err := buildOption(L, e)
		if err != nil {
			return err
		}
		out = append(out, o)
		return nil
	})
	return out, err
}

func buildOption(L *lua.LState, e *lua.LTable) (option.Option, error) {
	id, ok := tblString(e, "id")
	if !ok {
		return nil, fmt.Errorf("%w: option has no id", ErrBadMember)
	}
	kind, _ := tblString(e, "type")
	meta := metaOptions(e)

	switch kind {
	case "bool":
		def, _ := tblBool(e, "default")
		return option.NewBool(id, def, meta...)

	case "slider":
		def, _ := tblInt(e, "default")
		min, _ := tblInt(e, "min")
		max, hasMax := tblInt(e, "max")
		if !hasMax {
			max = 100
		}
		s, err := option.NewSlider(id, def, min, max, meta...)
		if err != nil {
			return nil, err
		}
		if step, ok := tblInt(e, "step"); ok {
			s.Step(step)
		}
		return s, nil

	case "dropdown":
		def, _ := tblString(e, "default")
		choicesTbl, ok := tblTable(e, "choices")
		if !ok {
			return nil, fmt.Errorf("%w: dropdown %q has no choices", ErrBadMember, id)
		}
		var choices []string
		choicesTbl.ForEach(func(_, v lua.LValue) {
			choices = append(choices, v.String())
		})
		return option.NewDropdown(id, def, choices, meta...)

	case "button":
		fn, _ := tblFunc(e, "on_press")
		var onPress func() error
		if fn != nil {
			onPress = func() error {
				_, err := callLua(L, fn)
				return err
			}
		}
		return option.NewButton(id, onPress, meta...)

	case "hidden":
		return option.NewHidden(id, goValue(e.RawGetString("default")))

	default:
		return nil, fmt.Errorf("%w: option %q has unknown type %q", ErrBadMember, id, kind)
	}
}

func metaOptions(e *lua.LTable) []option.MetaOption {
	var meta []option.MetaOption
	if name, ok := tblString(e, "display_name"); ok {
		meta = append(meta, option.WithDisplayName(name))
	}
	if desc, ok := tblString(e, "description"); ok {
		meta = append(meta, option.WithDescription(desc))
	}
	if hidden, _ := tblBool(e, "hidden"); hidden {
		meta = append(meta, option.AsHidden())
	}
	return meta
}

func buildKeybinds(L *lua.LState, t *lua.LTable) ([]*keybind.Keybind, error) {
	var out []*keybind.Keybind
	err := eachEntry(t, "keybinds", func(e *lua.LTable) error {
		id, ok := tblString(e, "id")
		if !ok {
			return fmt.Errorf("%w: keybind has no id", ErrBadMember)
		}
		spec, _ := tblString(e, "key")

		var opts []keybind.Option
		if name, ok := tblString(e, "display_name"); ok {
			opts = append(opts, keybind.WithDisplayName(name))
		}
		if desc, ok := tblString(e, "description"); ok {
			opts = append(opts, keybind.WithDescription(desc))
		}
		if hidden, _ := tblBool(e, "hidden"); hidden {
			opts = append(opts, keybind.Hidden())
		}
		if rebindable, ok := tblBool(e, "rebindable"); ok && !rebindable {
			opts = append(opts, keybind.NotRebindable())
		}
		if ev, ok := tblString(e, "event"); ok {
			switch ev {
			case "press":
				opts = append(opts, keybind.OnEvent(keybind.Press))
			case "repeat":
				opts = append(opts, keybind.OnEvent(keybind.Repeat))
			case "release":
				opts = append(opts, keybind.OnEvent(keybind.Release))
			case "all":
				opts = append(opts, keybind.AllEvents())
			default:
				return fmt.Errorf("%w: keybind %q has unknown event %q", ErrBadMember, id, ev)
			}
		}

		var cb keybind.Callback
		if fn, ok := tblFunc(e, "callback"); ok {
			cb = func(ev keybind.InputEvent) keybind.Signal {
				arg := L.NewTable()
				arg.RawSetString("key", lua.LString(ev.Chord.String()))
				arg.RawSetString("kind", lua.LString(ev.Kind.String()))
				ret, err := callLua(L, fn, arg)
				if err != nil {
					slog.Warn("keybind callback failed", "keybind", id, "error", err)
					return keybind.Pass
				}
				if blockRequested(ret) {
					return keybind.Block
				}
				return keybind.Pass
			}
		}

		kb, err := keybind.New(id, spec, cb, opts...)
		if err != nil {
			return err
		}
		out = append(out, kb)
		return nil
	})
	return out, err
}

func buildCommands(L *lua.LState, t *lua.LTable) ([]*command.Command, error) {
	var out []*command.Command
	err := eachEntry(t, "commands", func(e *lua.LTable) error {
		name, ok := tblString(e, "name")
		if !ok {
			return fmt.Errorf("%w: command has no name", ErrBadMember)
		}

		var opts []command.Option
		if desc, ok := tblString(e, "description"); ok {
			opts = append(opts, command.WithDescription(desc))
		}

		var cb command.Callback
		if fn, ok := tblFunc(e, "callback"); ok {
			cb = func(args []string) error {
				if _, err := callLua(L, fn, luaValue(L, args)); err != nil {
					return fmt.Errorf("luamod: command %q: %w", name, err)
				}
				return nil
			}
		}

		c, err := command.New(name, cb, opts...)
		if err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

func buildHooks(L *lua.LState, t *lua.LTable) ([]*hook.Descriptor, error) {
	var out []*hook.Descriptor
	err := eachEntry(t, "hooks", func(e *lua.LTable) error {
		event, ok := tblString(e, "event")
		if !ok {
			return fmt.Errorf("%w: hook has no event", ErrBadMember)
		}

		slot := hook.Pre
		if s, ok := tblString(e, "slot"); ok {
			switch s {
			case "pre":
				slot = hook.Pre
			case "post":
				slot = hook.Post
			default:
				return fmt.Errorf("%w: hook %q has unknown slot %q", ErrBadMember, event, s)
			}
		}

		fn, ok := tblFunc(e, "callback")
		if !ok {
			return fmt.Errorf("%w: hook %q has no callback", ErrBadMember, event)
		}

		out = append(out, hook.New(event, slot, func(ev *hook.Event) error {
			arg := L.NewTable()
			arg.RawSetString("event", lua.LString(ev.Name))
			arg.RawSetString("data", luaValue(L, ev.Data))
			ret, err := callLua(L, fn, arg)
			if err != nil {
				return fmt.Errorf("luamod: hook %q: %w", event, err)
			}
			if blockRequested(ret) {
				ev.Block()
			}
			return nil
		}))
		return nil
	})
	return out, err
}
