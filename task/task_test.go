package task

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evank/mds"
)

func declareCreated(t *testing.T, name, fieldName string) (*mds.RecordType, *mds.RecordField) {
	t.Helper()
	rt, err := mds.Declare(name, nil)
	require.NoError(t, err)
	f, err := mds.FieldIn(rt, mds.KindInt, fieldName, mds.PrimitiveValueType(mds.KindInt), true)
	require.NoError(t, err)
	_, err = rt.EnsureCreated()
	require.NoError(t, err)
	return rt, f
}

func TestGroupIsolatesEachTask(t *testing.T) {
	rt, xField := declareCreated(t, "task.Isolated", "x")
	ctxt := mds.NewContext()
	r, _, err := rt.CreateRecord(ctxt)
	require.NoError(t, err)

	var mu sync.Mutex
	seen := map[int32]bool{}

	err = Group(context.Background(), mds.TopLevelBranch,
		func(ctx context.Context, mctxt *mds.Context, branch *mds.Branch) error {
			_, err := xField.Write(r, branch, mctxt, int32(1), mds.ResNonResolving)
			if err != nil {
				return err
			}
			v, err := xField.Read(r, branch, mctxt)
			if err != nil {
				return err
			}
			mu.Lock()
			seen[v.(int32)] = true
			mu.Unlock()
			return nil
		},
		func(ctx context.Context, mctxt *mds.Context, branch *mds.Branch) error {
			_, err := xField.Write(r, branch, mctxt, int32(2), mds.ResNonResolving)
			if err != nil {
				return err
			}
			v, err := xField.Read(r, branch, mctxt)
			if err != nil {
				return err
			}
			mu.Lock()
			seen[v.(int32)] = true
			mu.Unlock()
			return nil
		},
	)
	require.NoError(t, err)
	require.True(t, seen[1])
	require.True(t, seen[2])

	v, err := xField.Read(r, mds.TopLevelBranch, ctxt)
	require.NoError(t, err)
	require.Equal(t, int32(0), v, "top level branch must be untouched by either isolated task")
}

func TestGroupPropagatesFirstError(t *testing.T) {
	boom := errors.New("boom")
	err := Group(context.Background(), mds.TopLevelBranch,
		func(ctx context.Context, mctxt *mds.Context, branch *mds.Branch) error {
			return boom
		},
		func(ctx context.Context, mctxt *mds.Context, branch *mds.Branch) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)
	require.ErrorIs(t, err, boom)
}

func TestIsolatedRunsAgainstTopLevel(t *testing.T) {
	rt, xField := declareCreated(t, "task.SingleIsolated", "x")
	ctxt := mds.NewContext()
	r, _, err := rt.CreateRecord(ctxt)
	require.NoError(t, err)

	var observed *mds.Branch
	err = Isolated(context.Background(), func(ctx context.Context, mctxt *mds.Context, branch *mds.Branch) error {
		observed = branch
		_, err := xField.Write(r, branch, mctxt, int32(9), mds.ResNonResolving)
		return err
	})
	require.NoError(t, err)
	require.NotNil(t, observed)
	require.NotEqual(t, mds.TopLevelBranch, observed)
}
