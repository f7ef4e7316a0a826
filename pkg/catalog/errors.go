package catalog

import "fmt"

// NotFoundError is returned when no dataset has the requested id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("dataset %q not found in catalog", e.ID)
}

// DuplicateIDError is returned when a listing declares the same dataset id
// twice. Loading fails fast instead of silently overwriting the first entry.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("dataset %q is declared more than once", e.ID)
}

// InvalidProjectError is returned when a registered dataset's path does not
// contain the expected build project layout. It carries the offending path;
// nothing is repaired automatically.
type InvalidProjectError struct {
	ID     string
	Path   string
	Reason string
}

func (e *InvalidProjectError) Error() string {
	return fmt.Sprintf("dataset %q has an invalid project at %s: %s", e.ID, e.Path, e.Reason)
}
