package main

import (
	"log/slog"
	"os"

	"github.com/evank/mds"
)

// demoCmd walks through declare/write/roll_back/branch-isolation against
// a small "Point" type, logging the prior/current value at each step.
func demoCmd(logger *slog.Logger, args []string) {
	if len(args) != 0 {
		logger.Error("demo takes no arguments")
		os.Exit(2)
	}

	rt, err := mds.Declare("demo.Point", nil)
	xcheckf(err, "declare")
	xField, err := mds.FieldIn(rt, mds.KindInt, "x", mds.PrimitiveValueType(mds.KindInt), true)
	xcheckf(err, "field_in x")
	_, err = rt.EnsureCreated()
	xcheckf(err, "ensure_created")

	ctxt := mds.NewContext()
	r, top, err := rt.CreateRecord(ctxt)
	xcheckf(err, "create_record")

	v, err := xField.Read(r, top, ctxt)
	xcheckf(err, "read")
	logger.Info("initial read", "value", v)

	prior, err := xField.Write(r, top, ctxt, int32(5), mds.ResNonResolving)
	xcheckf(err, "write 5")
	logger.Info("write", "prior", prior, "new", 5)

	prior, err = xField.Write(r, top, ctxt, int32(9), mds.ResNonResolving)
	xcheckf(err, "write 9")
	logger.Info("write", "prior", prior, "new", 9)

	prior, err = xField.RollBack(r, top, ctxt, mds.ResNonResolving)
	xcheckf(err, "roll_back")
	v, err = xField.Read(r, top, ctxt)
	xcheckf(err, "read after roll_back")
	logger.Info("roll_back", "prior", prior, "restored", v)

	child := mds.NewChildBranch(top)
	prior, err = xField.Write(r, child, ctxt, int32(100), mds.ResNonResolving)
	xcheckf(err, "write on child")
	logger.Info("write on isolated branch", "prior", prior, "new", 100)

	v, err = xField.Read(r, top, ctxt)
	xcheckf(err, "read top after child write")
	logger.Info("parent branch unaffected by child write", "value", v)
}
