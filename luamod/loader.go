package luamod

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/modkit/mod"
)

// Registrar accepts built mods. *registry.Registry satisfies it.
type Registrar interface {
	Register(m *mod.Mod) error
}

// Loader discovers mod scripts on the filesystem and loads them in
// bulk. A script is either <name>.lua directly in a search path or a
// <name>/ directory containing init.lua. The first search path to
// provide a name wins.
type Loader struct {
	paths    []string
	hostOpts []HostOption
	log      *slog.Logger
	hosts    []*Host
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPaths sets the script search paths.
func WithPaths(paths ...string) LoaderOption {
	return func(l *Loader) {
		l.paths = paths
	}
}

// WithHostOptions sets options applied to every script load.
func WithHostOptions(opts ...HostOption) LoaderOption {
	return func(l *Loader) {
		l.hostOpts = opts
	}
}

// WithLogger sets the loader's logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.log = log
	}
}

// NewLoader creates a script loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = slog.Default()
	}
	return l
}

// Discover returns the script paths found in the search paths, ordered
// by script name. Missing search paths are skipped.
func (l *Loader) Discover() []string {
	found := make(map[string]string)

	for _, base := range l.paths {
		entries, err := os.ReadDir(base)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name, script := "", ""
			if entry.IsDir() {
				init := filepath.Join(base, entry.Name(), "init.lua")
				if _, err := os.Stat(init); err != nil {
					continue
				}
				name, script = entry.Name(), init
			} else if strings.HasSuffix(entry.Name(), ".lua") {
				name = strings.TrimSuffix(entry.Name(), ".lua")
				script = filepath.Join(base, entry.Name())
			} else {
				continue
			}
			if _, taken := found[name]; !taken {
				found[name] = script
			}
		}
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)

	scripts := make([]string, len(names))
	for i, name := range names {
		scripts[i] = found[name]
	}
	return scripts
}

// LoadAll discovers scripts, loads each, and registers the resulting
// mods with r. A script that fails to load or register is reported in
// the returned errors and never stops the others. Registration of a mod
// may be refused (duplicate name); its host is closed and the script
// skipped.
func (l *Loader) LoadAll(r Registrar) ([]*mod.Mod, []error) {
	var mods []*mod.Mod
	var errs []error

	for _, script := range l.Discover() {
		h, err := Load(script, l.hostOpts...)
		if err != nil {
			l.log.Warn("skipping mod script", "script", script, "error", err)
			errs = append(errs, err)
			continue
		}

		if r != nil {
			if err := r.Register(h.Mod()); err != nil {
				h.Close()
				err = &ScriptError{Path: script, Err: fmt.Errorf("register: %w", err)}
				l.log.Warn("skipping mod script", "script", script, "error", err)
				errs = append(errs, err)
				continue
			}
		}

		l.hosts = append(l.hosts, h)
		mods = append(mods, h.Mod())
		l.log.Info("mod script loaded", "script", script, "mod", h.Mod().Name())
	}

	return mods, errs
}

// Hosts returns the hosts kept alive for the loaded mods.
func (l *Loader) Hosts() []*Host {
	return append([]*Host(nil), l.hosts...)
}

// Close shuts down every loaded host. Disable the mods first.
func (l *Loader) Close() {
	for _, h := range l.hosts {
		h.Close()
	}
	l.hosts = nil
}
