// Package task models "parallel threads, each with a current task"
// scheduling: a group of goroutines, each bound to its own mds.Context,
// fanned out and joined with errgroup.Group.
//
// The mds core itself never schedules anything — every operation takes
// an explicit *mds.Context and *mds.Branch. This package is the ambient
// layer a caller uses to run many such operations concurrently without
// hand-rolling WaitGroup/error-collection boilerplate each time.
package task

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/evank/mds"
)

// Func is one unit of work run against its own isolation context and a
// branch to operate against.
type Func func(ctxt context.Context, mctxt *mds.Context, branch *mds.Branch) error

// Group runs a fixed set of Funcs concurrently, each against a freshly
// created mds.Context isolated from a shared parent branch. It returns
// the first non-nil error from any Func, following errgroup's
// first-error-wins convention; the context passed to surviving Funcs is
// canceled as soon as one returns an error.
func Group(ctx context.Context, parent *mds.Branch, fns ...Func) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, fn := range fns {
		fn := fn
		g.Go(func() error {
			mctxt := mds.NewContext()
			branch := mctxt.Isolate(parent)
			return fn(gctx, mctxt, branch)
		})
	}
	return g.Wait()
}

// Isolated runs a single Func against a brand new context isolating
// mds.TopLevelBranch, the common case of "give me a private branch for
// this task and run it to completion."
func Isolated(ctx context.Context, fn Func) error {
	return Group(ctx, mds.TopLevelBranch, fn)
}
