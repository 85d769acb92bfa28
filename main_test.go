package mds

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func tcheck(t *testing.T, err error, msg string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: %v", msg, err)
	}
}

func tneed(t *testing.T, err error, expErr error, msg string) {
	t.Helper()
	if err == nil || !errors.Is(err, expErr) {
		t.Fatalf("%s: got %q, expected error %q", msg, fmt.Sprintf("%v", err), expErr.Error())
	}
}

func tcompare(t *testing.T, got, exp any, msg string) {
	t.Helper()
	if !reflect.DeepEqual(got, exp) {
		t.Fatalf("%s: got %#v, expected %#v", msg, got, exp)
	}
}

// declareCreated is a test helper: declare a type with no super, add the
// given INT fields, and ensure it's created.
func declareCreated(t *testing.T, name string, fieldNames ...string) (*RecordType, []*RecordField) {
	t.Helper()
	rt, err := Declare(name, nil)
	tcheck(t, err, "declare "+name)
	fields := make([]*RecordField, len(fieldNames))
	for i, fn := range fieldNames {
		f, err := FieldIn(rt, KindInt, fn, primitiveValueType(KindInt), true)
		tcheck(t, err, "field_in "+fn)
		fields[i] = f
	}
	_, err = rt.EnsureCreated()
	tcheck(t, err, "ensure_created "+name)
	return rt, fields
}
