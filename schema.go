// Package soavec implements a resizable Struct-of-Arrays vector backed by a
// single contiguous allocation.
package soavec

import (
	"fmt"
	"reflect"
)

// MaxColumns defines the maximum number of element columns a Schema can
// declare. This value is fixed at 256.
const MaxColumns = 256

// column caches the metadata of one declared element type.
type column struct {
	typ     reflect.Type
	size    uintptr
	align   uintptr
	ptrFree bool // true if values of this type contain no pointers
}

// Schema is an ordered, immutable list of element types. Every Vector is
// bound to one Schema at construction; the Schema decides the number of
// columns, their strides and the layout of the backing block.
type Schema struct {
	cols     []column
	maxAlign uintptr
	ptrFree  bool
}

// NewSchema creates a Schema from the given element types in declaration
// order. It panics if no types are given, if more than MaxColumns types are
// given, or if any type is nil or zero-sized. Duplicate types are allowed;
// columns are positional.
//
// Parameters:
//   - types: The element type of each column, obtained via reflect.TypeFor.
//
// Returns:
//   - The new Schema.
func NewSchema(types ...reflect.Type) *Schema {
	if len(types) == 0 {
		panic("soavec: schema needs at least one column")
	}
	if len(types) > MaxColumns {
		panic(fmt.Sprintf("soavec: too many columns (%d, max %d)", len(types), MaxColumns))
	}
	s := &Schema{
		cols:    make([]column, len(types)),
		ptrFree: true,
	}
	for i, t := range types {
		if t == nil {
			panic(fmt.Sprintf("soavec: column %d has nil type", i))
		}
		if t.Size() == 0 {
			panic(fmt.Sprintf("soavec: column %d has zero-sized type %s", i, t))
		}
		c := column{
			typ:     t,
			size:    t.Size(),
			align:   uintptr(t.Align()),
			ptrFree: !typeHasPointers(t),
		}
		s.cols[i] = c
		if c.align > s.maxAlign {
			s.maxAlign = c.align
		}
		s.ptrFree = s.ptrFree && c.ptrFree
	}
	return s
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.cols)
}

// Type returns the element type of column col.
func (s *Schema) Type(col int) reflect.Type {
	if col < 0 || col >= len(s.cols) {
		panic(fmt.Sprintf("soavec: column %d out of range (%d columns)", col, len(s.cols)))
	}
	return s.cols[col].typ
}

// equal reports whether both schemas declare the same types in the same order.
func (s *Schema) equal(other *Schema) bool {
	if s == other {
		return true
	}
	if len(s.cols) != len(other.cols) {
		return false
	}
	for i := range s.cols {
		if s.cols[i].typ != other.cols[i].typ {
			return false
		}
	}
	return true
}

// checkColumn panics unless col is in range and holds elements of type t.
func (s *Schema) checkColumn(col int, t reflect.Type) {
	if col < 0 || col >= len(s.cols) {
		panic(fmt.Sprintf("soavec: column %d out of range (%d columns)", col, len(s.cols)))
	}
	if s.cols[col].typ != t {
		panic(fmt.Sprintf("soavec: column %d holds %s, not %s", col, s.cols[col].typ, t))
	}
}

// typeHasPointers reports whether values of t contain pointers the collector
// must see. Pointer-free columns take the raw copy/clear fast path.
func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Ptr, String, Slice, Map, Chan, Func, Interface, UnsafePointer.
		return true
	}
}
