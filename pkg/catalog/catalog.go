package catalog

import (
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultListingFilename is the name of the checked-in backing listing.
	DefaultListingFilename = "catalog.yaml"
)

// Load reads a catalog from a listing file. Relative dataset paths are
// resolved against the listing's directory.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, filepath.Dir(path))
}

// Parse builds a catalog from raw listing data. Malformed rows fail the whole
// load rather than propagating half-parsed entries downstream.
func Parse(data []byte, root string) (*Catalog, error) {
	var l listing
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog listing: %w", err)
	}

	c := &Catalog{
		Name:        l.Name,
		DisplayName: l.DisplayName,
		root:        root,
		index:       map[string]int{},
	}
	for i, d := range l.Datasets {
		if err := c.add(d); err != nil {
			return nil, fmt.Errorf("listing row %d: %w", i+1, err)
		}
	}
	return c, nil
}

// ReadFrom merges several listings, local files or URLs, in argument order.
// The first listing names the catalog; an id declared by more than one
// listing fails the merge with DuplicateIDError.
func ReadFrom(ctx context.Context, root string, fileOrURLs ...string) (*Catalog, error) {
	merged := &Catalog{root: root, index: map[string]int{}}

	for _, fileOrURL := range fileOrURLs {
		data, err := readFileOrURL(ctx, fileOrURL)
		if err != nil {
			return nil, err
		}
		c, err := Parse(data, root)
		if err != nil {
			return nil, fmt.Errorf("reading catalog %q: %w", fileOrURL, err)
		}
		if merged.Name == "" {
			merged.Name = c.Name
			merged.DisplayName = c.DisplayName
		}
		for _, d := range c.datasets {
			if err := merged.add(d); err != nil {
				return nil, fmt.Errorf("reading catalog %q: %w", fileOrURL, err)
			}
		}
	}

	return merged, nil
}

func (c *Catalog) add(d Dataset) error {
	if d.ID == "" {
		return fmt.Errorf("dataset entry is missing an id")
	}
	if d.Path == "" {
		return fmt.Errorf("dataset %q is missing a path", d.ID)
	}
	if _, exists := c.index[d.ID]; exists {
		return &DuplicateIDError{ID: d.ID}
	}
	c.index[d.ID] = len(c.datasets)
	c.datasets = append(c.datasets, d)
	return nil
}

// Get returns the entry registered under id, or NotFoundError.
func (c *Catalog) Get(id string) (Dataset, error) {
	i, ok := c.index[id]
	if !ok {
		return Dataset{}, &NotFoundError{ID: id}
	}
	return c.datasets[i], nil
}

// Datasets iterates over the entries in declaration order. The sequence is
// restartable: every range starts over from the first entry.
func (c *Catalog) Datasets() iter.Seq[Dataset] {
	return func(yield func(Dataset) bool) {
		for _, d := range c.datasets {
			if !yield(d) {
				return
			}
		}
	}
}

// List returns a copy of the entries in declaration order.
func (c *Catalog) List() []Dataset {
	out := make([]Dataset, len(c.datasets))
	copy(out, c.datasets)
	return out
}

func (c *Catalog) Len() int {
	return len(c.datasets)
}

// Root is the directory relative dataset paths resolve against.
func (c *Catalog) Root() string {
	return c.root
}

// Save writes the catalog back out as a listing file.
func (c *Catalog) Save(path string) error {
	data, err := yaml.Marshal(listing{
		Name:        c.Name,
		DisplayName: c.DisplayName,
		Datasets:    c.datasets,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readFileOrURL(ctx context.Context, fileOrURL string) ([]byte, error) {
	if !isURL(fileOrURL) {
		return os.ReadFile(fileOrURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileOrURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("downloading %q (status code: %d)", fileOrURL, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func isURL(fileOrURL string) bool {
	return strings.HasPrefix(fileOrURL, "http://") || strings.HasPrefix(fileOrURL, "https://")
}
