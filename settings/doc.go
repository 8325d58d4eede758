// Package settings persists per-mod state to JSON documents.
//
// Each mod with a settings file gets one document of the shape:
//
//	{
//	    "enabled": true,
//	    "options": {"identifier": value, ...},
//	    "keybinds": {"identifier": "key" | null, ...}
//	}
//
// Load is tolerant: a missing file, malformed JSON, or an unknown
// identifier is skipped rather than failing the mod. Save writes only
// what has something to persist and deletes the file outright when the
// document would be empty.
package settings
