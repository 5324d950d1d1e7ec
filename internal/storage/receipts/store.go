// Package receipts stores uploaded receipt images on the local filesystem.
package receipts

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store writes receipt files into a single directory.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir. The directory is created on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory receipts are written to.
func (s *Store) Dir() string { return s.dir }

// Save copies r into dir/name. The file appears under its final name only
// once fully written; a failed copy leaves nothing behind.
func (s *Store) Save(ctx context.Context, name string, r io.Reader) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("receipts.Store.Save: invalid name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("receipts.Store.Save: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("receipts.Store.Save: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("receipts.Store.Save: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("receipts.Store.Save: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("receipts.Store.Save: close: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("receipts.Store.Save: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("receipts.Store.Save: %w", err)
	}
	return nil
}
