package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/evank/mds"
)

// Schema is the declarative type/field list consumed by "declare" and
// "snapshot". Record types are declared in file order, so a type's
// super must be listed before it.
type Schema struct {
	Types []TypeSchema `yaml:"types"`
}

type TypeSchema struct {
	Name   string        `yaml:"name"`
	Super  string        `yaml:"super,omitempty"`
	Fields []FieldSchema `yaml:"fields"`
}

type FieldSchema struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
}

func loadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse schema file: %w", err)
	}
	return &s, nil
}

var kindNames = map[string]mds.Kind{
	"bool":   mds.KindBool,
	"byte":   mds.KindByte,
	"ubyte":  mds.KindUByte,
	"short":  mds.KindShort,
	"ushort": mds.KindUShort,
	"int":    mds.KindInt,
	"uint":   mds.KindUInt,
	"long":   mds.KindLong,
	"ulong":  mds.KindULong,
	"float":  mds.KindFloat,
	"double": mds.KindDouble,
	"string": mds.KindString,
}

func parseKind(s string) (mds.Kind, error) {
	k, ok := kindNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown field kind %q", s)
	}
	return k, nil
}

// declareSchema registers every type in s, in order, returning the
// canonical types keyed by name.
func declareSchema(s *Schema) (map[string]*mds.RecordType, error) {
	declared := map[string]*mds.RecordType{}
	for _, ts := range s.Types {
		var super *mds.RecordType
		if ts.Super != "" {
			super = declared[ts.Super]
			if super == nil {
				return nil, fmt.Errorf("type %q: super %q not declared earlier in the schema", ts.Name, ts.Super)
			}
		}
		rt, err := mds.Declare(ts.Name, super)
		if err != nil {
			return nil, fmt.Errorf("declare %q: %w", ts.Name, err)
		}
		for _, fs := range ts.Fields {
			kind, err := parseKind(fs.Kind)
			if err != nil {
				return nil, fmt.Errorf("type %q field %q: %w", ts.Name, fs.Name, err)
			}
			if _, err := mds.FieldIn(rt, kind, fs.Name, mds.PrimitiveValueType(kind), true); err != nil {
				return nil, fmt.Errorf("type %q field %q: %w", ts.Name, fs.Name, err)
			}
		}
		canonical, err := rt.EnsureCreated()
		if err != nil {
			return nil, fmt.Errorf("ensure_created %q: %w", ts.Name, err)
		}
		if canonical != nil {
			rt = canonical
		}
		declared[ts.Name] = rt
	}
	return declared, nil
}
