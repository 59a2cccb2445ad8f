package pipeline

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/backmassage/boxgen/internal/planner"
)

// ManifestFile is the manifest path relative to the output directory.
const ManifestFile = "icons.yaml"

type manifest struct {
	Icons []*planner.IconConfig `yaml:"icons"`
}

// Manifest renders the configs of the generated icons as YAML, in the
// order given.
func Manifest(configs []*planner.IconConfig) ([]byte, error) {
	if configs == nil {
		configs = []*planner.IconConfig{}
	}
	b, err := yaml.Marshal(manifest{Icons: configs})
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return b, nil
}
