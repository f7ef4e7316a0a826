package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/tacofoundation/taco-datasets/pkg/project"
)

// Validate checks that the entry's path resolves to an existing build project
// directory carrying a descriptor whose id matches the catalog id. The check
// is lazy: paths are only touched here, never at registration time.
func (c *Catalog) Validate(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	d, err := c.Get(id)
	if err != nil {
		return err
	}

	dir := filepath.Join(c.root, filepath.FromSlash(d.Path))
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return &InvalidProjectError{ID: id, Path: dir, Reason: "project directory does not exist"}
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &InvalidProjectError{ID: id, Path: dir, Reason: "not a directory"}
	}

	desc, err := project.Read(dir)
	if errors.Is(err, os.ErrNotExist) {
		return &InvalidProjectError{ID: id, Path: dir, Reason: fmt.Sprintf("missing %s descriptor", project.DescriptorFilename)}
	}
	if err != nil {
		return &InvalidProjectError{ID: id, Path: dir, Reason: err.Error()}
	}
	if desc.ID != id {
		return &InvalidProjectError{ID: id, Path: dir, Reason: fmt.Sprintf("descriptor declares id %q", desc.ID)}
	}

	return nil
}

// ValidateAll validates every entry and reports all failures, not just the
// first one, in declaration order.
func (c *Catalog) ValidateAll(ctx context.Context) error {
	failures := make([]error, len(c.datasets))

	errs, ctx := errgroup.WithContext(ctx)
	errs.SetLimit(8)
	for i, d := range c.datasets {
		errs.Go(func() error {
			failures[i] = c.Validate(ctx, d.ID)
			return nil
		})
	}
	if err := errs.Wait(); err != nil {
		return err
	}

	return errors.Join(failures...)
}
