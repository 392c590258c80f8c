package internal

import "fmt"

// SchemaError reports a structural mismatch in the source table: one of the
// identifying columns (or every year column) could not be located at all.
// Unlike row-level problems, which are skipped and counted, a SchemaError
// is unrecoverable and aborts the load.
type SchemaError struct {
	// What could not be located, e.g. "region column".
	Missing string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("source table schema mismatch: %s not found", e.Missing)
}

// NotFoundError reports a lookup of a (year, region, class) combination
// that is absent from an aggregate row set. The caller decides whether
// absence means zero or is fatal; lookups never substitute zero on their
// own.
type NotFoundError struct {
	Region string
	Class  string
	Year   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no aggregate row for year %d, region %q, class %q", e.Year, e.Region, e.Class)
}
