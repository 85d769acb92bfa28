package mds

import (
	"fmt"
	"sync/atomic"
)

// Record is a managed record instance: an immutable type pointer and a
// slot array of lazily-created multi-version slots, one per field. The
// slot array's length is fixed at construction from RType.NFields(); a
// record cannot acquire new fields after allocation even if its type is
// later grown (see ErrFieldOutOfRange and DESIGN.md open question (a)).
type Record struct {
	id    UniformID
	RType *RecordType

	fields []atomic.Pointer[msv]
}

func newRecord(rt *RecordType) *Record {
	return &Record{
		id:     nextUniformID(),
		RType:  rt,
		fields: make([]atomic.Pointer[msv], rt.NFields()),
	}
}

// slot returns the MSV for field index i, creating one under a
// single-winner compare-and-set if createIfNull is true and none exists
// yet. The losing MSV on a race is simply discarded; there is no
// explicit destroy step.
func (r *Record) slot(i int, field *RecordField, createIfNull bool) (*msv, error) {
	if i < 0 || i >= len(r.fields) {
		if !createIfNull {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: field index %d, record has %d slots", ErrFieldOutOfRange, i, len(r.fields))
	}
	slotPtr := &r.fields[i]
	if v := slotPtr.Load(); v != nil {
		return v, nil
	}
	if !createIfNull {
		return nil, nil
	}
	cg := &conflictGenerator{record: r, field: field}
	candidate := newMSV(field.Kind(), cg)
	if slotPtr.CompareAndSwap(nil, candidate) {
		return candidate, nil
	}
	return slotPtr.Load(), nil
}
