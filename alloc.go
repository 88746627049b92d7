package soavec

import (
	"reflect"
	"strconv"
	"unsafe"
)

// allocate obtains one zeroed block that fits capacity elements of every
// column. The block is allocated as a runtime-composed struct of one array
// per column so the collector has exact pointer metadata for every slot;
// addressing still goes through the offsets computed by layout, which are
// verified against the runtime's field offsets here. capacity must be > 0.
func allocate(s *Schema, capacity int) (reflect.Value, unsafe.Pointer, []uintptr) {
	offsets, total := layout(s, capacity)
	fields := make([]reflect.StructField, len(s.cols))
	for i := range s.cols {
		fields[i] = reflect.StructField{
			Name: "F" + strconv.Itoa(i),
			Type: reflect.ArrayOf(capacity, s.cols[i].typ),
		}
	}
	bt := reflect.StructOf(fields)
	if bt.Size() != total {
		panic("soavec: computed layout disagrees with runtime block size")
	}
	for i := range fields {
		if bt.Field(i).Offset != offsets[i] {
			panic("soavec: computed layout disagrees with runtime field offsets")
		}
	}
	block := reflect.New(bt)
	return block, block.UnsafePointer(), offsets
}

// reallocate replaces the backing block with one sized for newCap elements,
// relocating all live elements. Protocol order matters: compute the new
// layout, allocate, move every column, then adopt the new state; the old
// block is released only by dropping the last reference to it, so a panic
// before any move leaves the vector untouched.
func (v *Vector) reallocate(newCap int) {
	if newCap < v.size {
		panic("soavec: reallocating below live size")
	}
	if newCap == 0 {
		v.block = reflect.Value{}
		v.base = nil
		v.offsets = nil
		v.capacity = 0
		return
	}
	block, base, offsets := allocate(v.schema, newCap)
	if v.size > 0 {
		for col := range v.schema.cols {
			v.moveColumn(col, block, base, offsets)
		}
	}
	// Dropping v.block frees the old allocation as a unit, which is what
	// destroys the moved-out source slots.
	v.block = block
	v.base = base
	v.offsets = offsets
	v.capacity = newCap
}

// Reserve grows the backing allocation so it can hold at least n elements per
// column. It is a no-op when n does not exceed the current capacity; live
// elements keep their values across the reallocation. Any previously obtained
// pointer or span is invalidated when a reallocation happens.
//
// Parameters:
//   - n: The requested element capacity.
func (v *Vector) Reserve(n int) {
	if n < 0 {
		panic("soavec: negative capacity")
	}
	if n > v.capacity {
		v.reallocate(n)
	}
}

// ShrinkToFit reduces the backing allocation to exactly the current length.
// It is a no-op when length and capacity are already equal; a shrink of an
// empty vector releases the block entirely.
func (v *Vector) ShrinkToFit() {
	if v.capacity > v.size {
		v.reallocate(v.size)
	}
}
