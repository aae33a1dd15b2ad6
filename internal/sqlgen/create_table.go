// Package sqlgen renders CREATE TABLE statements from column descriptions.
package sqlgen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSchema is returned when a schema is neither a column list nor a Frame.
var ErrInvalidSchema = errors.New("invalid schema input format")

// typeMapping maps loose type aliases to SQL types. Unknown names pass through as is.
var typeMapping = map[string]string{
	"int":    "INT",
	"int32":  "INT",
	"int64":  "INT",
	"string": "VARCHAR",
}

// Column is a single (name, type) pair of a table schema.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Frame is a tabular structure exposing its column names and their inferred types.
// Both slices are parallel and must have the same length.
type Frame interface {
	Columns() []string
	DTypes() []string
}

// SQLType returns the SQL type for a type alias, or the alias itself when unknown.
func SQLType(typeName string) string {
	if mapped, ok := typeMapping[typeName]; ok {
		return mapped
	}

	return typeName
}

// CreateTable renders a CREATE TABLE statement for the given table.
// schema must be either a []Column or a Frame; anything else yields ErrInvalidSchema.
// When ifNotExists is set, the statement uses CREATE TABLE IF NOT EXISTS.
func CreateTable(table string, schema any, ifNotExists bool) (string, error) {
	var columns []string

	switch sch := schema.(type) {
	case []Column:
		columns = make([]string, 0, len(sch))
		for _, col := range sch {
			columns = append(columns, col.Name+" "+SQLType(col.Type))
		}
	case Frame:
		names, dtypes := sch.Columns(), sch.DTypes()
		if len(names) != len(dtypes) {
			return "", fmt.Errorf("%w: %d columns but %d types", ErrInvalidSchema, len(names), len(dtypes))
		}
		columns = make([]string, 0, len(names))
		for i, name := range names {
			columns = append(columns, name+" "+SQLType(dtypes[i]))
		}
	default:
		return "", fmt.Errorf("%w: %T", ErrInvalidSchema, schema)
	}

	columnsStr := strings.Join(columns, ", ")
	if ifNotExists {
		return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s);", table, columnsStr), nil
	}

	return fmt.Sprintf("CREATE TABLE %s (%s);", table, columnsStr), nil
}
