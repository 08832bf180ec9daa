package model

import "fmt"

// InputError signals caller-fixable bad input (malformed time strings,
// missing identifiers). Never worth retrying.
type InputError struct {
	Field string
	Msg   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
}

// NotFoundError signals a referenced record that vanished between read and
// use. Treated as a benign race: the affected item is skipped and a warning
// attached to the response instead of failing the batch.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// DependencyError signals that a collaborator (directory, assignment store,
// catalog) failed. Surfaced verbatim; retries belong to the caller.
type DependencyError struct {
	Op  string
	Err error
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency failure in %s: %v", e.Op, e.Err)
}

func (e *DependencyError) Unwrap() error {
	return e.Err
}
