// SPDX-License-Identifier: MPL-2.0

// Package discovery finds the configuration file for a run: it walks
// from the working directory toward the filesystem root and falls back
// to the user's home directory, checking for both litr.toml and
// .litr.toml at every level.
package discovery

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

const (
	// StatusNotFound means no configuration file exists anywhere on the
	// search path.
	StatusNotFound Status = iota
	// StatusFound means exactly one configuration file was resolved.
	StatusFound
	// StatusDuplicate means litr.toml and .litr.toml coexist in the
	// same directory; the run must abort.
	StatusDuplicate
)

const (
	fileName       = "litr.toml"
	hiddenFileName = ".litr.toml"
)

type (
	// Status is the outcome of a configuration file search.
	Status int

	// Resolver performs the search once, at construction, and exposes
	// the outcome.
	Resolver struct {
		status    Status
		path      string
		directory string
	}
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusDuplicate:
		return "duplicate"
	default:
		return "not found"
	}
}

// NewResolver searches for the configuration file starting at cwd.
func NewResolver(cwd string) *Resolver {
	r := &Resolver{}

	dir := filepath.Clean(cwd)
	for {
		r.directory = dir
		log.Debug("searching configuration file", "dir", dir)
		r.findFile(dir)

		if r.status != StatusNotFound {
			return r
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if home := homeDirectory(); home != "" {
		log.Debug("searching configuration file in user home", "dir", home)
		r.directory = home
		r.findFile(home)
	}

	return r
}

// Status returns the search outcome.
func (r *Resolver) Status() Status {
	return r.status
}

// Path returns the resolved configuration file path, empty unless the
// status is StatusFound.
func (r *Resolver) Path() string {
	return r.path
}

// Directory returns the last directory inspected; for StatusDuplicate
// it is the directory holding both files.
func (r *Resolver) Directory() string {
	return r.directory
}

func (r *Resolver) findFile(dir string) {
	filePath := filepath.Join(dir, fileName)
	hiddenFilePath := filepath.Join(dir, hiddenFileName)

	hasFile := fileExists(filePath)
	hasHiddenFile := fileExists(hiddenFilePath)

	switch {
	case hasFile && hasHiddenFile:
		log.Debug("configuration file duplicate detected", "dir", dir)
		r.status = StatusDuplicate
	case hasFile:
		r.path = filePath
		r.status = StatusFound
	case hasHiddenFile:
		r.path = hiddenFilePath
		r.status = StatusFound
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
