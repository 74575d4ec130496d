package table

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrEmptyKey reports a column without a key.
	ErrEmptyKey = errors.New("column key is empty")
	// ErrDuplicateKey reports two columns sharing a key.
	ErrDuplicateKey = errors.New("duplicate column key")
)

// Column describes one displayed column of rows of type T. C is the lookup
// context handed to accessors alongside each row (for example a directory of
// related records).
type Column[T, C any] struct {
	// Key identifies the column within its schema and names the raw field used
	// for sorting when SortValue is nil. Dotted paths reach nested structs.
	Key    string
	Header string

	// Accessor renders the cell. It may return several lines separated by "\n".
	Accessor func(row T, lookup C) string

	Sortable  bool
	SortValue func(row T) any

	// OnCellClick, when set, handles clicks on this column's cells instead of
	// the row-level handler.
	OnCellClick func(row T)

	// Width is a hint in terminal cells; zero lets the renderer decide.
	Width int
}

// Cell renders the column for row. A nil accessor falls back to the raw field.
func (c Column[T, C]) Cell(row T, lookup C) string {
	if c.Accessor != nil {
		return c.Accessor(row, lookup)
	}
	v, ok := fieldValue(row, c.Key)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Value returns the comparable value used when sorting by this column.
func (c Column[T, C]) Value(row T) any {
	if c.SortValue != nil {
		return c.SortValue(row)
	}
	v, _ := fieldValue(row, c.Key)
	return v
}

// ValidateColumns checks that every column has a unique, non-empty key.
func ValidateColumns[T, C any](columns []Column[T, C]) error {
	seen := make(map[string]int, len(columns))
	for i, col := range columns {
		key := strings.TrimSpace(col.Key)
		if key == "" {
			return fmt.Errorf("column %d (%q): %w", i, col.Header, ErrEmptyKey)
		}
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("columns %d and %d share key %q: %w", prev, i, key, ErrDuplicateKey)
		}
		seen[key] = i
	}
	return nil
}

// fieldValue resolves a dotted path against a struct (or pointer to struct).
// Each segment matches a json tag name first, then the field name ignoring case.
func fieldValue(row any, path string) (any, bool) {
	if strings.TrimSpace(path) == "" {
		return nil, false
	}
	v := reflect.ValueOf(row)
	for _, segment := range strings.Split(path, ".") {
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return nil, false
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return nil, false
		}
		field, ok := structField(v, segment)
		if !ok {
			return nil, false
		}
		v = field
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	return v.Interface(), true
}

func structField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	fallback := -1
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == name {
			return v.Field(i), true
		}
		if fallback < 0 && strings.EqualFold(f.Name, name) {
			fallback = i
		}
	}
	if fallback >= 0 {
		return v.Field(fallback), true
	}
	return reflect.Value{}, false
}
