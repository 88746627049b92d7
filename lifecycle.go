package soavec

import (
	"reflect"
	"unsafe"
)

// Element lifecycle primitives. Each operates on one column over a slot
// range; the facade applies them to all columns with the same range, since
// length is shared across columns. Pointer-free columns use raw byte
// copies and clears (the hot path); pointer-bearing columns go through
// reflect so every pointer store is seen by the write barrier.

// slotPtr returns the address of slot i in column col. The caller must keep
// i within the current capacity.
func (v *Vector) slotPtr(col, i int) unsafe.Pointer {
	return unsafe.Add(v.base, v.offsets[col]+uintptr(i)*v.schema.cols[col].size)
}

// colSlice returns a typed []T view over slots [a, b) of column col.
func (v *Vector) colSlice(col, a, b int) reflect.Value {
	return v.block.Elem().Field(col).Slice(a, b)
}

// clearRange destroys the elements in slots [a, b) of column col by zeroing
// them, releasing any referenced memory to the collector. Dead slots are
// always kept zeroed, so a fresh or recycled slot is a valid default value.
func (v *Vector) clearRange(col, a, b int) {
	if a == b {
		return
	}
	c := &v.schema.cols[col]
	if c.ptrFree {
		memClear(v.slotPtr(col, a), uintptr(b-a)*c.size)
		return
	}
	s := v.colSlice(col, a, b)
	for i := 0; i < s.Len(); i++ {
		s.Index(i).SetZero()
	}
}

// copyColumn copy-constructs the first n elements of column col from src into
// v at the same slots. Elements are copied by Go assignment; the source is
// left untouched.
func (v *Vector) copyColumn(src *Vector, col, n int) {
	c := &v.schema.cols[col]
	if c.ptrFree {
		memCopy(v.slotPtr(col, 0), src.slotPtr(col, 0), uintptr(n)*c.size)
		return
	}
	reflect.Copy(v.colSlice(col, 0, n), src.colSlice(col, 0, n))
}

// moveColumn relocates the live elements of column col into a freshly
// allocated block, in slot order. The source slots are dead afterwards; they
// are destroyed wholesale when the old block is dropped, so no per-slot clear
// is needed here.
func (v *Vector) moveColumn(col int, dstBlock reflect.Value, dstBase unsafe.Pointer, dstOffsets []uintptr) {
	c := &v.schema.cols[col]
	if c.ptrFree {
		memCopy(unsafe.Add(dstBase, dstOffsets[col]), v.slotPtr(col, 0), uintptr(v.size)*c.size)
		return
	}
	reflect.Copy(dstBlock.Elem().Field(col).Slice(0, v.size), v.colSlice(col, 0, v.size))
}

// memCopy copies size bytes from src to dst using built-in copy for performance.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), size), unsafe.Slice((*byte)(src), size))
}

// memClear zeroes size bytes at p.
func memClear(p unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	clear(unsafe.Slice((*byte)(p), size))
}
