package soavec

// layout computes the byte offset of each column and the total block size for
// the given element capacity. Offsets depend only on the schema and the
// capacity: the cursor starts at zero, is rounded up to each column's
// alignment in declaration order, and advances by capacity times the column
// stride. The total is the final cursor rounded up to the strictest alignment
// across all columns, so the block can be allocated as one unit.
//
// Overflow on pathological sizes is a fatal precondition violation.
func layout(s *Schema, capacity int) ([]uintptr, uintptr) {
	offsets := make([]uintptr, len(s.cols))
	var cur uintptr
	for i := range s.cols {
		c := &s.cols[i]
		cur = alignUp(cur, c.align)
		offsets[i] = cur
		bytes := c.size * uintptr(capacity)
		if bytes/c.size != uintptr(capacity) || cur+bytes < cur {
			panic("soavec: layout size overflow")
		}
		cur += bytes
	}
	return offsets, alignUp(cur, s.maxAlign)
}

// alignUp rounds x up to the next multiple of align, which must be a power of
// two (reflect guarantees this for type alignments).
func alignUp(x, align uintptr) uintptr {
	if x > ^uintptr(0)-(align-1) {
		panic("soavec: layout size overflow")
	}
	return (x + align - 1) &^ (align - 1)
}
