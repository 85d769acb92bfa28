package main

import "testing"

func TestLoadAndDeclareSchema(t *testing.T) {
	schema, err := loadSchema("testdata/point.yaml")
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}
	if len(schema.Types) != 2 {
		t.Fatalf("got %d types, want 2", len(schema.Types))
	}

	declared, err := declareSchema(schema)
	if err != nil {
		t.Fatalf("declare schema: %v", err)
	}
	point, ok := declared["demo.Point"]
	if !ok {
		t.Fatalf("demo.Point not declared")
	}
	point3, ok := declared["demo.Point3"]
	if !ok {
		t.Fatalf("demo.Point3 not declared")
	}
	if point3.NFields() != 3 {
		t.Fatalf("demo.Point3 has %d fields, want 3 (inherited x,y plus own z)", point3.NFields())
	}
	if !point.IsSuperOf(point3) {
		t.Fatalf("demo.Point should be a supertype of demo.Point3")
	}
}

func TestParseKindUnknown(t *testing.T) {
	if _, err := parseKind("nonsense"); err == nil {
		t.Fatalf("expected an error for an unknown kind name")
	}
}
