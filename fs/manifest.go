package fs

import (
	"encoding/json"
	"os"

	"github.com/fwojciec/pagemeta"
)

// LoadManifest reads and parses the documentation build's output manifest.
// An unreadable or malformed manifest is the one batch-fatal error class:
// it surfaces to the caller rather than being skipped.
func LoadManifest(path string) (*pagemeta.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pagemeta.Errorf(pagemeta.ENOTFOUND, "manifest %q not found", path)
		}
		return nil, err
	}

	var manifest pagemeta.Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse manifest %q: %v", path, err)
	}
	return &manifest, nil
}
