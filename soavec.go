// Package soavec implements a dynamic "Struct of Arrays" vector with a
// single memory allocation.
//
// Features:
// - N parallel typed columns kept in lockstep inside one heap block.
// - Offset-based addressing with unsafe pointers, no per-column allocations.
// - Generated VectorN wrappers for type-safe pushes without boxing.
// - Copy semantics with full element duplication, move semantics in O(1).
//
//go:generate go run ./cmd/generate
package soavec

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Vector is the type-erased Struct-of-Arrays vector. It owns at most one raw
// memory block holding capacity elements of every column declared by its
// Schema; the first size slots of every column are live, the rest are zeroed.
// Use the generated VectorN wrappers for typed access, or the generic free
// functions (Get, Set, Span, ...) against a Vector directly.
//
// A Vector is not internally synchronized: concurrent use from multiple
// goroutines, including reads concurrent with a mutation, must be serialized
// by the caller.
type Vector struct {
	schema   *Schema
	block    reflect.Value // *struct{ F0 [cap]T0; ... }; invalid when capacity is 0
	base     unsafe.Pointer
	offsets  []uintptr // byte offset of each column inside the block
	size     int
	capacity int
}

// NewVector creates an empty Vector bound to the given schema. No memory is
// allocated until the first push or reserve.
//
// Parameters:
//   - s: The Schema declaring the column types.
//
// Returns:
//   - A pointer to the new Vector.
func NewVector(s *Schema) *Vector {
	if s == nil {
		panic("soavec: nil schema")
	}
	return &Vector{schema: s}
}

// NewVectorWithLen creates a Vector holding n zero-valued elements in every
// column.
//
// Parameters:
//   - s: The Schema declaring the column types.
//   - n: The initial number of elements.
//
// Returns:
//   - A pointer to the new Vector.
func NewVectorWithLen(s *Schema, n int) *Vector {
	if n < 0 {
		panic("soavec: negative length")
	}
	v := NewVector(s)
	if n > 0 {
		// A fresh block arrives zeroed, which is the default value of
		// every column type.
		v.reallocate(n)
		v.size = n
	}
	return v
}

// Schema returns the schema the vector is bound to.
func (v *Vector) Schema() *Schema {
	return v.schema
}

// Len returns the number of live elements in every column.
func (v *Vector) Len() int {
	return v.size
}

// Cap returns the number of elements each column can hold before the next
// reallocation.
func (v *Vector) Cap() int {
	return v.capacity
}

// Empty reports whether the vector holds no elements.
func (v *Vector) Empty() bool {
	return v.size == 0
}

// Append appends one element to every column in lockstep, growing the backing
// allocation by 1.5x when full. It requires exactly one value per column, in
// declaration order, each of the column's exact type; anything else is a
// fatal precondition violation. The length is incremented only after all
// columns have been written.
//
// Append boxes its arguments; the generated VectorN wrappers push without
// boxing and should be preferred on hot paths.
//
// Parameters:
//   - vals: One value per column.
func (v *Vector) Append(vals ...any) {
	if len(vals) != len(v.schema.cols) {
		panic(fmt.Sprintf("soavec: Append needs %d values, got %d", len(v.schema.cols), len(vals)))
	}
	rvs := make([]reflect.Value, len(vals))
	for i, val := range vals {
		rv := reflect.ValueOf(val)
		if !rv.IsValid() || rv.Type() != v.schema.cols[i].typ {
			got := "untyped nil"
			if rv.IsValid() {
				got = rv.Type().String()
			}
			panic(fmt.Sprintf("soavec: column %d holds %s, not %s", i, v.schema.cols[i].typ, got))
		}
		rvs[i] = rv
	}
	if v.size+1 > v.capacity {
		v.grow()
	}
	for i, rv := range rvs {
		reflect.NewAt(v.schema.cols[i].typ, v.slotPtr(i, v.size)).Elem().Set(rv)
	}
	v.size++
}

// PopBack destroys the last element of every column and shrinks the length by
// one. Capacity is unchanged. It panics when the vector is empty.
func (v *Vector) PopBack() {
	if v.size == 0 {
		panic("soavec: PopBack on empty vector")
	}
	for col := range v.schema.cols {
		v.clearRange(col, v.size-1, v.size)
	}
	v.size--
}

// Clear destroys all live elements of all columns and sets the length to
// zero. The backing allocation and capacity are retained.
func (v *Vector) Clear() {
	if v.size > 0 {
		for col := range v.schema.cols {
			v.clearRange(col, 0, v.size)
		}
	}
	v.size = 0
}

// Reset releases the backing allocation entirely, leaving the vector empty
// with zero capacity, as freshly constructed.
func (v *Vector) Reset() {
	v.block = reflect.Value{}
	v.base = nil
	v.offsets = nil
	v.size = 0
	v.capacity = 0
}

// Clone returns a new Vector with the same schema, a capacity of exactly the
// source length, and every element copy-constructed from the source. The two
// vectors share no memory afterwards.
func (v *Vector) Clone() *Vector {
	nv := NewVector(v.schema)
	nv.Reserve(v.size)
	if v.size > 0 {
		for col := range v.schema.cols {
			nv.copyColumn(v, col, v.size)
		}
	}
	nv.size = v.size
	return nv
}

// CopyFrom replaces the vector's contents with element-wise copies of other.
// The prior contents are destroyed first. Both vectors must share an equal
// schema. Copying a vector onto itself is a no-op.
//
// Parameters:
//   - other: The vector to copy from.
func (v *Vector) CopyFrom(other *Vector) {
	if v == other {
		// Avoid self assignment.
		return
	}
	if !v.schema.equal(other.schema) {
		panic("soavec: CopyFrom between different schemas")
	}
	v.Clear()
	v.Reserve(other.size)
	if other.size > 0 {
		for col := range v.schema.cols {
			v.copyColumn(other, col, other.size)
		}
	}
	v.size = other.size
}

// MoveFrom adopts other's block, offsets, length and capacity in O(1),
// without touching any element. The prior contents of v are released; other
// is left empty with zero capacity but remains usable. Both vectors must
// share an equal schema. Moving a vector onto itself is a no-op.
//
// Parameters:
//   - other: The vector to move from.
func (v *Vector) MoveFrom(other *Vector) {
	if v == other {
		// Avoid self assignment.
		return
	}
	if !v.schema.equal(other.schema) {
		panic("soavec: MoveFrom between different schemas")
	}
	v.block = other.block
	v.base = other.base
	v.offsets = other.offsets
	v.size = other.size
	v.capacity = other.capacity
	other.block = reflect.Value{}
	other.base = nil
	other.offsets = nil
	other.size = 0
	other.capacity = 0
}

// grow reallocates for one more element, growing capacity by a factor of 1.5
// and by at least one element.
func (v *Vector) grow() {
	target := v.size + v.size/2
	if target < v.size+1 {
		target = v.size + 1
	}
	v.reallocate(target)
}

// checkIndex panics unless i addresses a live element.
func (v *Vector) checkIndex(i int) {
	if i < 0 || i >= v.size {
		panic(fmt.Sprintf("soavec: index %d out of range (len %d)", i, v.size))
	}
}
