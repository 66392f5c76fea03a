package model

import "fmt"

// The load/render error taxonomy. Commands and the TUI dispatch on these
// with errors.As; none of them is fatal to the process.

// SchemaError reports a required source column that could not be found
// under any known spelling.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q not found in source", e.Column)
}

// ConnectionError reports a database that could not be opened or queried.
type ConnectionError struct {
	Path string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database %s unreachable: %v", e.Path, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// EmptyResultError reports that zero rows survived filtering, which
// leaves min/max aggregations undefined.
type EmptyResultError struct {
	Stage string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no rows survived %s", e.Stage)
}

// RenderError wraps a failure from the presentation layer.
type RenderError struct {
	View string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.View, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
