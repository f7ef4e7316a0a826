package catalog

// Dataset is one entry of the catalog: a pointer to the build project that
// produces a TACO dataset. Entries are immutable once registered.
type Dataset struct {
	ID          string `yaml:"id" json:"id"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Path        string `yaml:"path" json:"path"`
}

// catalog.yaml

type listing struct {
	Name        string    `yaml:"name,omitempty"`
	DisplayName string    `yaml:"displayName,omitempty"`
	Datasets    []Dataset `yaml:"datasets"`
}

// Catalog is the registry of dataset build projects. It is append-only while
// it is being loaded and read-only afterwards, so any number of readers may
// use it concurrently without coordination.
type Catalog struct {
	Name        string
	DisplayName string

	root     string
	datasets []Dataset
	index    map[string]int
}
