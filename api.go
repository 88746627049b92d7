package soavec

import (
	"reflect"
	"unsafe"
)

// Generic column accessors over the type-erased Vector. T must be exactly the
// element type the schema declares for the column; a mismatch is a fatal
// precondition violation, as is an out-of-range index. Pointers and spans
// returned here are live views into the vector's owned memory and are
// invalidated by any operation that reserves, grows, shrinks, resets or moves
// the vector.

// Data returns a pointer to the first slot of column col, or nil when the
// vector has no allocation. The pointee is only a live element when the
// vector is non-empty.
func Data[T any](v *Vector, col int) *T {
	v.schema.checkColumn(col, reflect.TypeFor[T]())
	if v.capacity == 0 {
		return nil
	}
	return (*T)(unsafe.Add(v.base, v.offsets[col]))
}

// Get returns a pointer to the element of column col at index i. It panics
// unless i < Len().
func Get[T any](v *Vector, col, i int) *T {
	v.schema.checkColumn(col, reflect.TypeFor[T]())
	v.checkIndex(i)
	return (*T)(v.slotPtr(col, i))
}

// Set overwrites the element of column col at index i. It panics unless
// i < Len().
func Set[T any](v *Vector, col, i int, val T) {
	v.schema.checkColumn(col, reflect.TypeFor[T]())
	v.checkIndex(i)
	*(*T)(v.slotPtr(col, i)) = val
}

// Front returns a pointer to the first element of column col. It panics when
// the vector is empty.
func Front[T any](v *Vector, col int) *T {
	return Get[T](v, col, 0)
}

// Back returns a pointer to the last element of column col. It panics when
// the vector is empty.
func Back[T any](v *Vector, col int) *T {
	return Get[T](v, col, v.size-1)
}

// Span returns a slice over the live elements of column col, of length Len().
// The slice aliases the vector's memory; writes through it are visible to the
// vector and vice versa.
func Span[T any](v *Vector, col int) []T {
	v.schema.checkColumn(col, reflect.TypeFor[T]())
	if v.size == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Add(v.base, v.offsets[col])), v.size)
}
