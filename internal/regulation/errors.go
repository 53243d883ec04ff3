package regulation

import "fmt"

// NotFoundError indicates no clause table exists for a jurisdiction.
// Terminal for the current evaluation run.
type NotFoundError struct {
	Jurisdiction string
	Dir          string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("regulation table not found for %q in %s", e.Jurisdiction, e.Dir)
}

// MalformedError indicates a clause table exists but cannot be parsed or
// carries out-of-range clause values. Terminal for the current run.
type MalformedError struct {
	Jurisdiction string
	Path         string
	Err          error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("regulation table %s is malformed: %v", e.Path, e.Err)
}

func (e *MalformedError) Unwrap() error {
	return e.Err
}
