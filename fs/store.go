// Package fs provides filesystem access to rendered pages and the build
// manifest.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pagemeta"
)

// Ensure Store implements pagemeta.PageStore at compile time.
var _ pagemeta.PageStore = (*Store)(nil)

// Store implements pagemeta.PageStore over the local filesystem. Pages are
// rewritten in place; each page is written at most once per batch, so no
// staging or locking is needed.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads a rendered page from disk.
func (s *Store) Load(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", pagemeta.Errorf(pagemeta.ENOTFOUND, "page %q not found", path)
		}
		return "", err
	}
	return string(data), nil
}

// Save writes a rendered page back to disk, creating parent directories as
// needed.
func (s *Store) Save(_ context.Context, path string, html string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0644)
}
