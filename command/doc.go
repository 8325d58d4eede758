// Package command defines the console command descriptor: a named
// callback a mod exposes on the host's console.
package command
