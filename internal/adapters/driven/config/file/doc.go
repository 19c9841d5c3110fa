// Package file provides a TOML-backed settings store. Settings are
// kept in a single file within the gridpad config directory.
package file
