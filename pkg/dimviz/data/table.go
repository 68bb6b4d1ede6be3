// Package data provides the columnar table container backing annotated
// elements, plus the selection predicates used to filter it.
package data

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound indicates a lookup for a column name the table lacks.
var ErrColumnNotFound = errors.New("column not found")

// ErrRaggedColumns indicates columns of differing lengths.
var ErrRaggedColumns = errors.New("columns must share one length")

// ErrDuplicateColumn indicates two columns with the same name.
var ErrDuplicateColumn = errors.New("duplicate column name")

// ErrNotNumeric indicates a numeric read from a non-numeric cell.
var ErrNotNumeric = errors.New("value is not numeric")

// Column is one named sequence of cell values.
type Column struct {
	// Name is the column identifier.
	Name string `json:"name"`
	// Values holds the cell values in row order.
	Values []any `json:"values"`
}

// Table is an ordered set of equal-length columns. Tables are treated
// as immutable once constructed; Filter returns a fresh table.
type Table struct {
	names  []string
	cols   map[string][]any
	length int
}

// NewTable assembles a table from columns. Column values are copied.
func NewTable(cols ...Column) (*Table, error) {
	t := &Table{cols: make(map[string][]any, len(cols))}
	for i, c := range cols {
		if c.Name == "" {
			return nil, fmt.Errorf("column %d: name must not be empty", i)
		}
		if _, ok := t.cols[c.Name]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
		}
		if i == 0 {
			t.length = len(c.Values)
		} else if len(c.Values) != t.length {
			return nil, fmt.Errorf("%w: column %q has %d values, want %d",
				ErrRaggedColumns, c.Name, len(c.Values), t.length)
		}
		t.names = append(t.names, c.Name)
		t.cols[c.Name] = append([]any(nil), c.Values...)
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return t.length
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// HasColumn reports whether the table carries the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns a copy of the named column's values.
func (t *Table) Column(name string) ([]any, error) {
	vs, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	return append([]any(nil), vs...), nil
}

// Floats returns the named column coerced to float64. Integer and float
// cells coerce; anything else fails with ErrNotNumeric.
func (t *Table) Floats(name string) ([]float64, error) {
	vs, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}
	out := make([]float64, len(vs))
	for i, v := range vs {
		f, ok := AsFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: column %q row %d holds %T", ErrNotNumeric, name, i, v)
		}
		out[i] = f
	}
	return out, nil
}

// Filter returns a new table keeping the rows for which keep returns
// true. The receiver is untouched.
func (t *Table) Filter(keep func(row int) bool) *Table {
	rows := make([]int, 0, t.length)
	for i := 0; i < t.length; i++ {
		if keep(i) {
			rows = append(rows, i)
		}
	}
	out := &Table{
		names:  append([]string(nil), t.names...),
		cols:   make(map[string][]any, len(t.names)),
		length: len(rows),
	}
	for _, name := range t.names {
		src := t.cols[name]
		col := make([]any, len(rows))
		for j, i := range rows {
			col[j] = src[i]
		}
		out.cols[name] = col
	}
	return out
}

// Equal reports whether both tables hold the same columns, order and
// cell values.
func (t *Table) Equal(o *Table) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil || t.length != o.length || len(t.names) != len(o.names) {
		return false
	}
	for i, name := range t.names {
		if o.names[i] != name {
			return false
		}
		a, b := t.cols[name], o.cols[name]
		for j := range a {
			if !EqualValue(a[j], b[j]) {
				return false
			}
		}
	}
	return true
}

// AsFloat coerces integer and float cell values to float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// EqualValue compares two cell values, treating numeric cells of
// differing Go types as equal when their values match.
func EqualValue(a, b any) bool {
	fa, oka := AsFloat(a)
	fb, okb := AsFloat(b)
	if oka && okb {
		return fa == fb
	}
	return a == b
}
