package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// Dir stores each key in its own file under a directory.
// Keys are path-escaped into file names, so "a/b" is the file "a%2Fb".
type Dir struct {
	root string
}

// NewDir returns a backend rooted at dir. The directory is created on first
// write.
func NewDir(dir string) *Dir { return &Dir{root: dir} }

// Root returns the directory holding the files.
func (d *Dir) Root() string { return d.root }

func (d *Dir) path(key string) string {
	return filepath.Join(d.root, url.PathEscape(key))
}

func (d *Dir) Probe() bool {
	if err := d.Write(ProbeKey, ProbeKey); err != nil {
		return false
	}
	return d.Remove(ProbeKey) == nil
}

func (d *Dir) Read(key string) (string, bool, error) {
	b, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %q: %w", key, err)
	}
	return string(b), true, nil
}

// Write replaces the value of key atomically: the value is written to a
// temporary file then renamed over the previous one.
func (d *Dir) Write(key, value string) error {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("creating storage directory: %w", err)
	}
	tmp, err := os.CreateTemp(d.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), d.path(key)); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}

func (d *Dir) Remove(key string) error {
	err := os.Remove(d.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %q: %w", key, err)
	}
	return nil
}
