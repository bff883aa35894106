// Package yaml loads site metadata configuration from YAML files.
package yaml

import (
	"os"

	"github.com/fwojciec/pagemeta"
	"gopkg.in/yaml.v3"
)

// LoadSiteMeta reads site metadata from a YAML file. Zero values in the
// file mean "not configured"; defaults are applied by the caller.
func LoadSiteMeta(path string) (*pagemeta.SiteMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, pagemeta.Errorf(pagemeta.ENOTFOUND, "config %q not found", path)
		}
		return nil, err
	}

	var meta pagemeta.SiteMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse config %q: %v", path, err)
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	return &meta, nil
}
