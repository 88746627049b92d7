package soavec

import (
	"reflect"
	"testing"
	"unsafe"
)

// go test -run ^TestTypeHasPointers$ . -count 1
func TestTypeHasPointers(t *testing.T) {
	cases := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), false},
		{reflect.TypeFor[float64](), false},
		{reflect.TypeFor[complex128](), false},
		{reflect.TypeFor[[4]int16](), false},
		{reflect.TypeFor[struct{ A, B int }](), false},
		{reflect.TypeFor[string](), true},
		{reflect.TypeFor[*int](), true},
		{reflect.TypeFor[[]byte](), true},
		{reflect.TypeFor[map[string]int](), true},
		{reflect.TypeFor[any](), true},
		{reflect.TypeFor[unsafe.Pointer](), true},
		{reflect.TypeFor[[2]string](), true},
		{reflect.TypeFor[struct {
			A int
			B string
		}](), true},
		{reflect.TypeFor[struct{ A [3]*int }](), true},
	}
	for _, c := range cases {
		if got := typeHasPointers(c.typ); got != c.want {
			t.Errorf("typeHasPointers(%s) = %v, want %v", c.typ, got, c.want)
		}
	}
}

// go test -run ^TestSchemaMetadata$ . -count 1
func TestSchemaMetadata(t *testing.T) {
	s := recordSchema()
	if s.ptrFree {
		t.Error("Schema with a string column reported as pointer-free")
	}
	if !s.cols[0].ptrFree || s.cols[1].ptrFree || !s.cols[2].ptrFree {
		t.Error("Per-column pointer-freeness is wrong")
	}
	want := uintptr(reflect.TypeFor[string]().Align())
	if f64 := uintptr(reflect.TypeFor[float64]().Align()); f64 > want {
		want = f64
	}
	if s.maxAlign != want {
		t.Errorf("maxAlign is %d, want %d", s.maxAlign, want)
	}
}

// go test -run ^TestSchemaEqual$ . -count 1
func TestSchemaEqual(t *testing.T) {
	a := recordSchema()
	b := recordSchema()
	if !a.equal(b) {
		t.Error("Structurally identical schemas compare unequal")
	}
	if !a.equal(a) {
		t.Error("Schema does not equal itself")
	}
	c := NewSchema(reflect.TypeFor[int16](), reflect.TypeFor[string]())
	if a.equal(c) {
		t.Error("Schemas of different arity compare equal")
	}
	d := NewSchema(reflect.TypeFor[string](), reflect.TypeFor[int16](), reflect.TypeFor[float64]())
	if a.equal(d) {
		t.Error("Schemas with reordered columns compare equal")
	}
}

// go test -run ^TestSchemaValidation$ . -count 1
func TestSchemaValidation(t *testing.T) {
	check := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		fn()
	}
	check("no columns", func() { NewSchema() })
	check("nil column type", func() { NewSchema(nil) })
	check("zero-sized column type", func() { NewSchema(reflect.TypeFor[struct{}]()) })
	check("zero-sized array column type", func() { NewSchema(reflect.TypeFor[[0]int]()) })
}
