package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scaffold creates the minimal layout of a new dataset build project at dir:
// the taco.yaml descriptor, an empty dataset/ package for the build scripts,
// and a README. It stands in for the cookiecutter-taco bootstrap step.
func Scaffold(dir string, desc Descriptor) error {
	if desc.ID == "" {
		return fmt.Errorf("descriptor is missing an id")
	}

	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("directory %q already exists - will not overwrite", dir)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "dataset"), 0o755); err != nil {
		return err
	}
	if err := Write(dir, desc); err != nil {
		return err
	}

	title := desc.Title
	if title == "" {
		title = desc.ID
	}
	readme := fmt.Sprintf("# %s\n\n%s\n", title, desc.Description)
	return os.WriteFile(filepath.Join(dir, "README.md"), []byte(readme), 0o644)
}

// Write marshals the descriptor into the project's taco.yaml.
func Write(dir string, desc Descriptor) error {
	data, err := yaml.Marshal(desc)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, DescriptorFilename), data, 0o644)
}
