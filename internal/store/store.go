// Package store persists statusdeck state on local disk: the dashboard layout
// (as a JSON settings file or a SQLite database) and small UI preferences.
package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Store is a state directory. Its zero value has no directory; loads then
// report nothing stored and saves are skipped.
type Store struct {
	Dir string
}

// Open resolves dir, falling back to ConfigDir() when empty.
func Open(dir string) (Store, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		d, err := ConfigDir()
		if err != nil {
			return Store{}, err
		}
		dir = d
	}
	return Store{Dir: dir}, nil
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s Store) LogPath() string {
	return s.path("statusdeck.log")
}
