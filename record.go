package csvgrid

import (
	"fmt"
	"reflect"
)

// Cell is a single named value produced by a [Celler].
type Cell struct {
	Column string
	Value  any
}

// Celler lets a record enumerate its own cells, bypassing reflection.
// [Table.AddRows] checks for it before falling back to struct-field
// inspection.
type Celler interface {
	Cells() []Cell
}

// AddRows appends one row per record. A record implementing [Celler]
// supplies its own cells; otherwise each exported struct field becomes a
// cell named after the field, in declaration order. Pointers to structs
// are followed. Any other record returns [ErrBadRecord]. An empty call is
// a no-op.
func (t *Table) AddRows(records ...any) error {
	for _, rec := range records {
		if c, ok := rec.(Celler); ok {
			t.StartRow()
			for _, cell := range c.Cells() {
				if err := t.SetCell(cell.Column, cell.Value); err != nil {
					return err
				}
			}
			continue
		}
		v := reflect.ValueOf(rec)
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return fmt.Errorf("%w: nil %T", ErrBadRecord, rec)
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return fmt.Errorf("%w: %T", ErrBadRecord, rec)
		}
		t.StartRow()
		rt := v.Type()
		for i := range rt.NumField() {
			f := rt.Field(i)
			if !f.IsExported() {
				continue
			}
			if err := t.SetCell(f.Name, v.Field(i).Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}

// isNil reports whether v is a typed nil hiding inside an interface.
func isNil(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
