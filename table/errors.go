package table

import "fmt"

// SchemaError reports a table whose shape cannot be accepted: a column
// type that cannot be inferred, a duplicate column, or a row whose arity
// does not match the column list. It is fatal; no partial table is built.
type SchemaError struct {
	Column string
	Row    int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("schema error: column %s: %s", e.Column, e.Reason)
	}
	return fmt.Sprintf("schema error: row %d: %s", e.Row, e.Reason)
}

// ConfigurationError reports a request that references a missing column or
// a column of the wrong type. It is detected before any row is processed.
type ConfigurationError struct {
	Op     string
	Column string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: column %s: %s", e.Op, e.Column, e.Reason)
}
