// Package project reads and scaffolds TACO dataset build projects. A build
// project is a directory holding the scripts that produce one dataset, marked
// by a taco.yaml descriptor with the collection metadata TacoToolbox expects.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DescriptorFilename marks a directory as a dataset build project.
const DescriptorFilename = "taco.yaml"

type Provider struct {
	Name  string   `yaml:"name" json:"name"`
	Roles []string `yaml:"roles,omitempty" json:"roles,omitempty"`
	URL   string   `yaml:"url,omitempty" json:"url,omitempty"`
}

// Descriptor is the collection metadata of a build project.
type Descriptor struct {
	ID          string     `yaml:"id" json:"id"`
	Version     string     `yaml:"version,omitempty" json:"version,omitempty"`
	Title       string     `yaml:"title,omitempty" json:"title,omitempty"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Licenses    []string   `yaml:"licenses,omitempty" json:"licenses,omitempty"`
	Providers   []Provider `yaml:"providers,omitempty" json:"providers,omitempty"`
	Tasks       []string   `yaml:"tasks,omitempty" json:"tasks,omitempty"`
	Keywords    []string   `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// Read loads the descriptor of the build project at dir. A missing descriptor
// is reported with os.ErrNotExist semantics so callers can tell an absent
// project apart from a malformed one.
func Read(dir string) (*Descriptor, error) {
	data, err := os.ReadFile(filepath.Join(dir, DescriptorFilename))
	if err != nil {
		return nil, err
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", DescriptorFilename, err)
	}
	if d.ID == "" {
		return nil, fmt.Errorf("%s is missing an id", DescriptorFilename)
	}
	return &d, nil
}
