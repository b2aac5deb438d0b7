// Package assets locates data files such as the world map image.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Locator resolves relative asset names against a list of directories.
// Directories are searched in reverse order (last added = highest priority).
type Locator struct {
	dirs []string
	mu   sync.RWMutex

	// resolved names
	cache map[string]string
}

// NewLocator creates a locator that searches the given directories.
func NewLocator(dirs ...string) *Locator {
	return &Locator{
		dirs:  dirs,
		cache: make(map[string]string),
	}
}

// DefaultLocator searches the working directory first, then the
// executable's directory, then the config directory.
func DefaultLocator(configDir string) *Locator {
	l := NewLocator(configDir)
	if exe, err := os.Executable(); err == nil {
		l.AddDir(filepath.Dir(exe))
	}
	l.AddDir(".")
	return l
}

// AddDir adds a directory with the highest priority.
func (l *Locator) AddDir(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dirs = append(l.dirs, dir)
	l.cache = make(map[string]string)
}

// Find returns the path of the named asset. Absolute names are checked
// as-is.
func (l *Locator) Find(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("asset %s: %w", name, err)
		}
		return name, nil
	}

	l.mu.RLock()
	path, ok := l.cache[name]
	dirs := l.dirs
	l.mu.RUnlock()
	if ok {
		return path, nil
	}

	for i := len(dirs) - 1; i >= 0; i-- {
		candidate := filepath.Join(dirs[i], name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		l.mu.Lock()
		l.cache[name] = candidate
		l.mu.Unlock()
		return candidate, nil
	}

	return "", fmt.Errorf("asset %s not found in %v: %w", name, dirs, fs.ErrNotExist)
}

// IsNotFound reports whether err means the asset does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
