// Command generate emits vector_generated.go, the typed arity-N wrappers
// around the type-erased Vector.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const maxArity = 6

type col struct {
	N   int // 1-based type parameter number
	Idx int // 0-based column index
}

type arity struct {
	K          int
	Name       string
	Params     string // "T1 any, T2 any"
	Args       string // "T1, T2"
	PushParams string // "v1 T1, v2 T2"
	GetReturns string // "(*T1, *T2)", or "*T1" for arity 1
	GetExprs   string // "(*T1)(w.slotPtr(0, i)), ..."
	Cols       []col
}

func makeArity(k int) arity {
	a := arity{K: k, Name: fmt.Sprintf("Vector%d", k)}
	var params, args, push, rets, exprs []string
	for n := 1; n <= k; n++ {
		a.Cols = append(a.Cols, col{N: n, Idx: n - 1})
		params = append(params, fmt.Sprintf("T%d any", n))
		args = append(args, fmt.Sprintf("T%d", n))
		push = append(push, fmt.Sprintf("v%d T%d", n, n))
		rets = append(rets, fmt.Sprintf("*T%d", n))
		exprs = append(exprs, fmt.Sprintf("(*T%d)(w.slotPtr(%d, i))", n, n-1))
	}
	a.Params = strings.Join(params, ", ")
	a.Args = strings.Join(args, ", ")
	a.PushParams = strings.Join(push, ", ")
	a.GetReturns = strings.Join(rets, ", ")
	if k > 1 {
		a.GetReturns = "(" + a.GetReturns + ")"
	}
	a.GetExprs = strings.Join(exprs, ", ")
	return a
}

const fileHeader = `// Code generated by cmd/generate; DO NOT EDIT.

package soavec

import (
	"reflect"
)
`

const arityTemplate = `
// {{.Name}} is a Struct-of-Arrays vector with {{.K}} typed column{{if gt .K 1}}s{{end}},
// {{.Args}}, stored in one contiguous allocation. All columns always have
// the same length. Duplicate column types are allowed; columns are positional.
type {{.Name}}[{{.Params}}] struct {
	vec Vector
}

// New{{.Name}} creates an empty {{.Name}}. No memory is allocated until the
// first push or reserve.
//
// Returns:
//   - A pointer to the new vector.
func New{{.Name}}[{{.Params}}]() *{{.Name}}[{{.Args}}] {
	s := NewSchema(
{{range .Cols}}		reflect.TypeFor[T{{.N}}](),
{{end}}	)
	return &{{.Name}}[{{.Args}}]{vec: Vector{schema: s}}
}

// New{{.Name}}WithLen creates a {{.Name}} holding n zero-valued elements in
// every column.
//
// Parameters:
//   - n: The initial number of elements.
//
// Returns:
//   - A pointer to the new vector.
func New{{.Name}}WithLen[{{.Params}}](n int) *{{.Name}}[{{.Args}}] {
	v := New{{.Name}}[{{.Args}}]()
	v.vec = *NewVectorWithLen(v.vec.schema, n)
	return v
}

// PushBack appends one element to every column in lockstep, growing the
// backing allocation by 1.5x when full. The length is incremented only after
// all columns have been written.
//
// Parameters:
{{range .Cols}}//   - v{{.N}}: The value appended to column {{.Idx}}.
{{end}}func (v *{{.Name}}[{{.Args}}]) PushBack({{.PushParams}}) {
	w := &v.vec
	if w.size+1 > w.capacity {
		w.grow()
	}
{{range .Cols}}	*(*T{{.N}})(w.slotPtr({{.Idx}}, w.size)) = v{{.N}}
{{end}}	w.size++
}

// Get returns pointers to the elements of every column at index i. It panics
// unless i < Len(). The pointers are invalidated by the next reallocation.
func (v *{{.Name}}[{{.Args}}]) Get(i int) {{.GetReturns}} {
	w := &v.vec
	w.checkIndex(i)
	return {{.GetExprs}}
}

// Len returns the number of live elements in every column.
func (v *{{.Name}}[{{.Args}}]) Len() int {
	return v.vec.Len()
}

// Cap returns the number of elements each column can hold before the next
// reallocation.
func (v *{{.Name}}[{{.Args}}]) Cap() int {
	return v.vec.Cap()
}

// Empty reports whether the vector holds no elements.
func (v *{{.Name}}[{{.Args}}]) Empty() bool {
	return v.vec.Empty()
}

// Reserve grows the backing allocation so it can hold at least n elements per
// column. It is a no-op when n does not exceed the current capacity.
func (v *{{.Name}}[{{.Args}}]) Reserve(n int) {
	v.vec.Reserve(n)
}

// ShrinkToFit reduces the backing allocation to exactly the current length.
func (v *{{.Name}}[{{.Args}}]) ShrinkToFit() {
	v.vec.ShrinkToFit()
}

// PopBack destroys the last element of every column. It panics when the
// vector is empty.
func (v *{{.Name}}[{{.Args}}]) PopBack() {
	v.vec.PopBack()
}

// Clear destroys all live elements, keeping the backing allocation.
func (v *{{.Name}}[{{.Args}}]) Clear() {
	v.vec.Clear()
}

// Reset releases the backing allocation, leaving the vector empty with zero
// capacity.
func (v *{{.Name}}[{{.Args}}]) Reset() {
	v.vec.Reset()
}

// Clone returns a deep copy of the vector; the copy shares no memory with
// the original.
func (v *{{.Name}}[{{.Args}}]) Clone() *{{.Name}}[{{.Args}}] {
	return &{{.Name}}[{{.Args}}]{vec: *v.vec.Clone()}
}

// CopyFrom replaces the vector's contents with element-wise copies of other.
// Copying a vector onto itself is a no-op.
func (v *{{.Name}}[{{.Args}}]) CopyFrom(other *{{.Name}}[{{.Args}}]) {
	v.vec.CopyFrom(&other.vec)
}

// MoveFrom adopts other's storage in O(1), leaving other empty with zero
// capacity. Moving a vector onto itself is a no-op.
func (v *{{.Name}}[{{.Args}}]) MoveFrom(other *{{.Name}}[{{.Args}}]) {
	v.vec.MoveFrom(&other.vec)
}

// Raw returns the type-erased vector backing v, for use with the generic
// column accessors (Get, Set, Span, ...).
func (v *{{.Name}}[{{.Args}}]) Raw() *Vector {
	return &v.vec
}
`

func main() {
	tmpl := template.Must(template.New("arity").Parse(arityTemplate))
	var buf bytes.Buffer
	buf.WriteString(fileHeader)
	for k := 1; k <= maxArity; k++ {
		if err := tmpl.Execute(&buf, makeArity(k)); err != nil {
			log.Fatal(err)
		}
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("vector_generated.go", src, 0o644); err != nil {
		log.Fatal(err)
	}
}
