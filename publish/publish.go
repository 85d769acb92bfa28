// Package publish exposes a read-only view of branch conflicts for an
// external merge engine to consume. It does not implement merging or
// three-way diffing itself; that engine lives outside this module.
package publish

import (
	"fmt"

	"github.com/evank/mds"
)

// FieldConflict describes one field slot on one record whose branch has
// diverged from its parent and has not yet been marked resolved.
type FieldConflict struct {
	Record *mds.Record
	Field  *mds.RecordField
	Branch *mds.Branch

	ParentValue any
	BranchValue any
}

// Report is the set of unresolved field conflicts discovered for a
// branch across a set of records, grouped in the order the records and
// fields were given.
type Report struct {
	Branch    *mds.Branch
	Conflicts []FieldConflict
}

// String renders a short human-readable summary.
func (r *Report) String() string {
	s := fmt.Sprintf("conflict report for %v: %d unresolved field(s)\n", r.Branch, len(r.Conflicts))
	for _, c := range r.Conflicts {
		s += fmt.Sprintf("  %s.%s: parent=%v branch=%v\n", c.Record.RType.Name(), c.Field.Name(), c.ParentValue, c.BranchValue)
	}
	return s
}

// Inspect builds a Report for branch: for every (record, field) pair
// given, it skips anything already marked resolved, then compares the
// field's value as seen on branch's parent against the value visible on
// branch itself. A pair is reported only if the two differ — an
// untouched, unresolved field simply inherits its parent's value and is
// not a conflict.
//
// Each of the two Read calls per pair applies ctxt's shadowing once, as
// every core entry point does. The resolved check uses branch as given,
// without shadowing.
func Inspect(ctxt *mds.Context, branch *mds.Branch, pairs []RecordField) (*Report, error) {
	parent := branch.Parent()
	report := &Report{Branch: branch}
	for _, p := range pairs {
		resolved, err := p.Field.IsResolved(p.Record, branch)
		if err != nil {
			return nil, err
		}
		if resolved {
			continue
		}
		branchValue, err := p.Field.Read(p.Record, branch, ctxt)
		if err != nil {
			return nil, err
		}
		var parentValue any
		if parent != nil {
			parentValue, err = p.Field.Read(p.Record, parent, ctxt)
			if err != nil {
				return nil, err
			}
		} else {
			parentValue = p.Field.Kind().Zero()
		}
		if branchValue != parentValue {
			report.Conflicts = append(report.Conflicts, FieldConflict{
				Record:      p.Record,
				Field:       p.Field,
				Branch:      branch,
				ParentValue: parentValue,
				BranchValue: branchValue,
			})
		}
	}
	return report, nil
}

// RecordField names one (record, field) pair to inspect.
type RecordField struct {
	Record *mds.Record
	Field  *mds.RecordField
}
