package sqlquery

import (
	"fmt"
	"reflect"

	"github.com/georgysavva/scany/v2/dbscan"
)

type column struct {
	Field string
	Name  string
	Index []int
}

type columns struct {
	list    []column
	byField map[string]string
}

// columnsOf maps the exported fields of struct type t to columns: the db tag
// if present, "-" to skip, else the field name mapped the way scany maps it,
// so that both runners agree on the columns.
func columnsOf(t reflect.Type) (*columns, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}
	cols := &columns{byField: make(map[string]string, t.NumField())}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name, ok := field.Tag.Lookup("db")
		if name == "-" {
			continue
		}
		if !ok || name == "" {
			name = dbscan.SnakeCaseMapper(field.Name)
		}
		cols.list = append(cols.list, column{Field: field.Name, Name: name, Index: field.Index})
		cols.byField[field.Name] = name
	}
	return cols, nil
}

func (c *columns) names() []string {
	names := make([]string, 0, len(c.list))
	for _, col := range c.list {
		names = append(names, col.Name)
	}
	return names
}

// destinations returns pointers to the fields of v in column order.
func (c *columns) destinations(v reflect.Value) []any {
	dest := make([]any, 0, len(c.list))
	for _, col := range c.list {
		dest = append(dest, v.FieldByIndex(col.Index).Addr().Interface())
	}
	return dest
}
