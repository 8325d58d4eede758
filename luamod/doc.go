// Package luamod hosts mods written as Lua scripts.
//
// A mod script returns a single table describing the mod and its
// members:
//
//	return {
//	    name = "Quick Save",
//	    version = "1.0",
//	    author = "somebody",
//	    auto_enable = true,
//
//	    options = {
//	        { type = "slider", id = "volume", default = 50, min = 0, max = 100 },
//	        { type = "bool", id = "verbose", default = false },
//	    },
//	    keybinds = {
//	        { id = "quick_save", key = "F5", callback = function(ev) return "block" end },
//	    },
//	    commands = {
//	        { name = "qs", callback = function(args) ... end },
//	    },
//	    hooks = {
//	        { event = "OnLevelLoad", slot = "pre", callback = function(ev) ... end },
//	    },
//	}
//
// Host loads one script and builds the mod; loading runs the script but
// touches nothing live. Loader scans directories for scripts and
// registers every mod it can build, reporting broken scripts without
// aborting the rest.
package luamod
