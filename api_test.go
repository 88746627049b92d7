package soavec_test

import (
	"reflect"
	"testing"

	"github.com/edwinsyarief/soavec"
)

func newRecordVector(t *testing.T) *soavec.Vector {
	t.Helper()
	s := soavec.NewSchema(
		reflect.TypeFor[int16](),
		reflect.TypeFor[string](),
		reflect.TypeFor[float64](),
	)
	return soavec.NewVector(s)
}

// go test -run ^TestErasedAppendAndGet$ . -count 1
func TestErasedAppendAndGet(t *testing.T) {
	v := newRecordVector(t)
	v.Append(int16(0), "zero", 1.23)
	v.Append(int16(1), "one", 2.34)

	if v.Len() != 2 {
		t.Fatalf("Expected length 2, got %d", v.Len())
	}
	if got := *soavec.Get[int16](v, 0, 0); got != 0 {
		t.Errorf("Column 0 element 0 is %d", got)
	}
	if got := *soavec.Get[string](v, 1, 1); got != "one" {
		t.Errorf("Column 1 element 1 is %q", got)
	}
	if got := *soavec.Front[float64](v, 2); got != 1.23 {
		t.Errorf("Front of column 2 is %v", got)
	}
	if got := *soavec.Back[float64](v, 2); got != 2.34 {
		t.Errorf("Back of column 2 is %v", got)
	}
}

// go test -run ^TestErasedSetAndSpan$ . -count 1
func TestErasedSetAndSpan(t *testing.T) {
	v := newRecordVector(t)
	v.Append(int16(1), "a", 1.0)
	v.Append(int16(2), "b", 2.0)
	v.Append(int16(3), "c", 3.0)

	soavec.Set[float64](v, 2, 1, 9.5)
	if got := *soavec.Get[float64](v, 2, 1); got != 9.5 {
		t.Fatalf("Set did not stick: got %v", got)
	}

	span := soavec.Span[int16](v, 0)
	if len(span) != 3 {
		t.Fatalf("Span length %d, want 3", len(span))
	}
	// The span aliases the vector's memory.
	span[0] = 42
	if got := *soavec.Get[int16](v, 0, 0); got != 42 {
		t.Errorf("Write through span not visible: got %d", got)
	}

	words := soavec.Span[string](v, 1)
	if words[0] != "a" || words[1] != "b" || words[2] != "c" {
		t.Errorf("String span is %q", words)
	}
}

// go test -run ^TestErasedData$ . -count 1
func TestErasedData(t *testing.T) {
	v := newRecordVector(t)
	if p := soavec.Data[int16](v, 0); p != nil {
		t.Errorf("Data on an unallocated vector returned %p, want nil", p)
	}
	if s := soavec.Span[string](v, 1); s != nil {
		t.Errorf("Span on an empty vector returned %v, want nil", s)
	}
	v.Append(int16(7), "seven", 7.7)
	p := soavec.Data[int16](v, 0)
	if p == nil || *p != 7 {
		t.Errorf("Data did not point at the first element")
	}
}

// go test -run ^TestErasedPreconditions$ . -count 1
func TestErasedPreconditions(t *testing.T) {
	v := newRecordVector(t)
	v.Append(int16(1), "one", 1.0)

	mustPanic(t, "Append with wrong arity", func() { v.Append(int16(1), "one") })
	mustPanic(t, "Append with wrong type", func() { v.Append(int32(1), "one", 1.0) })
	mustPanic(t, "Append with untyped nil", func() { v.Append(nil, "one", 1.0) })
	mustPanic(t, "Get with wrong column type", func() { soavec.Get[int32](v, 0, 0) })
	mustPanic(t, "Get with column out of range", func() { soavec.Get[int16](v, 3, 0) })
	mustPanic(t, "Back on empty vector", func() {
		empty := newRecordVector(t)
		soavec.Back[int16](empty, 0)
	})
}

// go test -run ^TestErasedCopyMoveSchemaMismatch$ . -count 1
func TestErasedCopyMoveSchemaMismatch(t *testing.T) {
	a := newRecordVector(t)
	b := soavec.NewVector(soavec.NewSchema(reflect.TypeFor[int16]()))
	mustPanic(t, "CopyFrom across schemas", func() { a.CopyFrom(b) })
	mustPanic(t, "MoveFrom across schemas", func() { a.MoveFrom(b) })

	// Structurally equal schemas from separate constructions are fine.
	c := newRecordVector(t)
	c.Append(int16(1), "one", 1.0)
	a.CopyFrom(c)
	if a.Len() != 1 {
		t.Errorf("CopyFrom between equal schemas failed: len %d", a.Len())
	}
}

// go test -run ^TestSchemaAccessors$ . -count 1
func TestSchemaAccessors(t *testing.T) {
	v := newRecordVector(t)
	s := v.Schema()
	if s.Len() != 3 {
		t.Fatalf("Schema has %d columns, want 3", s.Len())
	}
	if s.Type(1) != reflect.TypeFor[string]() {
		t.Errorf("Column 1 type is %s", s.Type(1))
	}
	mustPanic(t, "Schema.Type out of range", func() { s.Type(3) })
	mustPanic(t, "empty schema", func() { soavec.NewSchema() })
	mustPanic(t, "zero-sized column type", func() { soavec.NewSchema(reflect.TypeFor[struct{}]()) })
}
