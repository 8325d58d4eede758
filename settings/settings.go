package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/dshills/modkit/mod"
)

// Enabler enables a mod. *registry.Registry satisfies it.
type Enabler interface {
	Enable(m *mod.Mod) error
}

// Load applies the mod's saved settings: option values and keybind keys.
// A mod without a settings file, a missing file, or malformed JSON is a
// no-op. Individual values that fail to apply are logged and skipped.
//
// The return value reports whether the mod should be enabled: true only
// for auto-enable mods whose document says they were enabled.
func Load(m *mod.Mod) bool {
	path := m.SettingsFile()
	if path == "" {
		return false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	if !gjson.ValidBytes(data) {
		slog.Warn("settings file is not valid JSON, ignoring", "mod", m.Name(), "path", path)
		return false
	}
	doc := gjson.ParseBytes(data)

	if saved := doc.Get("options"); saved.IsObject() {
		loadOptions(m, saved)
	}

	if saved := doc.Get("keybinds"); saved.IsObject() {
		loadKeybinds(m, saved)
	}

	return m.AutoEnable() && doc.Get("enabled").Bool()
}

// LoadAndEnable loads the mod's settings and, when the document calls
// for it, enables the mod through e.
func LoadAndEnable(m *mod.Mod, e Enabler) error {
	if !Load(m) || e == nil {
		return nil
	}
	return e.Enable(m)
}

func loadOptions(m *mod.Mod, saved gjson.Result) {
	values := saved.Map()
	for _, o := range m.Options() {
		res, ok := values[o.Identifier()]
		if !ok {
			continue
		}
		if err := o.LoadValue(res.Value()); err != nil {
			slog.Warn("skipping saved option value",
				"mod", m.Name(), "option", o.Identifier(), "error", err)
		}
	}
}

func loadKeybinds(m *mod.Mod, saved gjson.Result) {
	keys := saved.Map()
	for _, kb := range m.Keybinds() {
		res, ok := keys[kb.Identifier()]
		if !ok {
			continue
		}
		if res.Type == gjson.Null {
			kb.Unbind()
			continue
		}
		if err := kb.Rebind(res.String()); err != nil {
			slog.Warn("skipping saved keybind key",
				"mod", m.Name(), "keybind", kb.Identifier(), "error", err)
		}
	}
}

// Save writes the mod's current state to its settings file. Only options
// with a persistable value and rebindable keybinds are written; the
// enabled flag is written only for auto-enable mods. When nothing needs
// saving the file is deleted instead. A mod without a settings file is a
// no-op.
func Save(m *mod.Mod) error {
	path := m.SettingsFile()
	if path == "" {
		return nil
	}

	doc := []byte("{}")
	empty := true

	if opts := optionValues(m); len(opts) > 0 {
		var err error
		// Whole-map writes keep identifiers with dots or wildcards from
		// being interpreted as paths.
		doc, err = sjson.SetBytes(doc, "options", opts)
		if err != nil {
			return fmt.Errorf("settings: encode options for %s: %w", m.Name(), err)
		}
		empty = false
	}

	if keys := keybindKeys(m); len(keys) > 0 {
		var err error
		doc, err = sjson.SetBytes(doc, "keybinds", keys)
		if err != nil {
			return fmt.Errorf("settings: encode keybinds for %s: %w", m.Name(), err)
		}
		empty = false
	}

	if m.AutoEnable() {
		var err error
		doc, err = sjson.SetBytes(doc, "enabled", m.Enabled())
		if err != nil {
			return fmt.Errorf("settings: encode enabled for %s: %w", m.Name(), err)
		}
		empty = false
	}

	if empty {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("settings: remove %s: %w", path, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("settings: create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, pretty.Pretty(doc), 0o644); err != nil {
		return fmt.Errorf("settings: write %s: %w", path, err)
	}
	return nil
}

func optionValues(m *mod.Mod) map[string]any {
	values := make(map[string]any)
	for _, o := range m.Options() {
		if v, ok := o.SaveValue(); ok {
			values[o.Identifier()] = v
		}
	}
	return values
}

func keybindKeys(m *mod.Mod) map[string]any {
	keys := make(map[string]any)
	for _, kb := range m.Keybinds() {
		if !kb.IsRebindable() {
			continue
		}
		if kb.IsBound() {
			keys[kb.Identifier()] = kb.Key()
		} else {
			keys[kb.Identifier()] = nil
		}
	}
	return keys
}
