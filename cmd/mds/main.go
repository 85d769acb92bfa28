package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
)

func xcheckf(err error, format string, args ...any) {
	if err != nil {
		msg := fmt.Sprintf(format, args...)
		log.Fatalf("%s: %s", msg, err)
	}
}

func usage() {
	log.Println("usage: mds declare schema.yaml")
	log.Println("       mds demo")
	log.Println("       mds snapshot schema.yaml out.sqlite")
	flag.PrintDefaults()
	os.Exit(2)
}

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
	}
	logger := newLogger()
	cmd, args := args[0], args[1:]
	switch cmd {
	default:
		usage()
	case "declare":
		declareCmd(logger, args)
	case "demo":
		demoCmd(logger, args)
	case "snapshot":
		snapshotCmd(logger, args)
	}
}

func declareCmd(logger *slog.Logger, args []string) {
	if len(args) != 1 {
		log.Println("usage: mds declare schema.yaml")
		os.Exit(2)
	}
	schema, err := loadSchema(args[0])
	xcheckf(err, "load schema")
	declared, err := declareSchema(schema)
	xcheckf(err, "declare schema")
	for name, rt := range declared {
		logger.Info("declared type", "name", name, "fields", rt.NFields())
	}
}
