// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It uses afero so that tests can swap the OS backend for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs installs a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// SetFs installs an arbitrary backend, e.g. an afero.BasePathFs rooted at a temporary directory.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}
