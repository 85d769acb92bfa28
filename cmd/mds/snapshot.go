package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/evank/mds"
)

// snapshotCmd declares schema, creates one record per declared type on
// TopLevelBranch, and materializes each field's read_frozen (last
// published) value into a table in a pure-Go sqlite file. This is an
// external, read-only export for inspection — not a persistence layer
// for the core itself, which stays purely in-memory.
func snapshotCmd(logger *slog.Logger, args []string) {
	if len(args) != 2 {
		logger.Error("usage: mds snapshot schema.yaml out.sqlite")
		os.Exit(2)
	}
	schemaPath, dbPath := args[0], args[1]

	schema, err := loadSchema(schemaPath)
	xcheckf(err, "load schema")
	declared, err := declareSchema(schema)
	xcheckf(err, "declare schema")

	os.Remove(dbPath)
	db, err := sql.Open("sqlite", dbPath)
	xcheckf(err, "open sqlite")
	defer db.Close()

	ctxt := mds.NewContext()
	for _, ts := range schema.Types {
		rt := declared[ts.Name]
		r, top, err := rt.CreateRecord(ctxt)
		xcheckf(err, "create_record %s", ts.Name)

		tableName := sanitizeTableName(ts.Name)
		if err := createTable(db, tableName, ts.Fields); err != nil {
			xcheckf(err, "create table %s", tableName)
		}

		values := make([]any, len(ts.Fields))
		for i, fs := range ts.Fields {
			field := rt.LookupField(fs.Name)
			v, err := field.ReadFrozen(r, top, ctxt)
			xcheckf(err, "read_frozen %s.%s", ts.Name, fs.Name)
			values[i] = v
		}
		if err := insertRow(db, tableName, ts.Fields, values); err != nil {
			xcheckf(err, "insert row for %s", ts.Name)
		}
		logger.Info("snapshotted type", "type", ts.Name, "table", tableName)
	}
}

func sanitizeTableName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

func createTable(db *sql.DB, table string, fields []FieldSchema) error {
	cols := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = fmt.Sprintf("%q %s", f.Name, sqlColumnType(f.Kind))
	}
	stmt := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %q (%s)", table, strings.Join(cols, ", "))
	_, err := db.Exec(stmt)
	return err
}

func sqlColumnType(kind string) string {
	switch kind {
	case "float", "double":
		return "REAL"
	case "string":
		return "TEXT"
	default:
		return "INTEGER"
	}
}

func insertRow(db *sql.DB, table string, fields []FieldSchema, values []any) error {
	cols := make([]string, len(fields))
	placeholders := make([]string, len(fields))
	for i, f := range fields {
		cols[i] = fmt.Sprintf("%q", f.Name)
		placeholders[i] = "?"
	}
	stmt := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)", table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	_, err := db.Exec(stmt, values...)
	return err
}
