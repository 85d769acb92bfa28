package mds

import "fmt"

// RecordField binds (record type, name, kind) to a field slot index and
// a value-type handle, with a validity cache so repeated compatibility
// checks against the same field short-circuit.
type RecordField struct {
	id        UniformID
	kind      Kind
	name      *InternedString
	num       int
	rType     *RecordType
	fTypeBase *ValueType

	validityCache
}

func newRecordField(kind Kind, name string, num int, rt *RecordType, vt *ValueType) *RecordField {
	return &RecordField{
		id:        nextUniformID(),
		kind:      kind,
		name:      Intern(name),
		num:       num,
		rType:     rt,
		fTypeBase: vt,
	}
}

func (f *RecordField) Kind() Kind           { return f.kind }
func (f *RecordField) Name() string         { return f.name.String() }
func (f *RecordField) Num() int             { return f.num }
func (f *RecordField) RType() *RecordType   { return f.rType }
func (f *RecordField) ValueType() *ValueType { return f.fTypeBase }

// CompatibleWith reports whether f and other describe the same binding:
// same kind, same name, and equal value types.
func (f *RecordField) CompatibleWith(other *RecordField) bool {
	if other == nil {
		return false
	}
	return f.kind == other.kind && f.Name() == other.Name() && f.fTypeBase.Equal(other.fTypeBase)
}

// IsValid uses f's validity cache: on first call it ensures f.rType is
// created, caching invalid (permanently) if that fails with
// ErrIncompatibleRecordType, valid otherwise.
func (f *RecordField) IsValid() bool {
	return f.check(func() bool {
		_, err := f.rType.EnsureCreated()
		return err == nil
	})
}

func (f *RecordField) checkAccess(r *Record) error {
	if !f.IsValid() {
		return fmt.Errorf("%w: field %q of %q is invalid", ErrIncompatibleRecordType, f.Name(), f.rType.Name())
	}
	if !f.rType.IsSuperOf(r.RType) {
		return fmt.Errorf("%w: field %q of %q does not apply to record of type %q", ErrIncompatibleRecordType, f.Name(), f.rType.Name(), r.RType.Name())
	}
	return nil
}

// Read returns the value visible on branch (as shadowed by ctxt) for
// this field on record r, or the kind's absent sentinel if the slot was
// never written on any branch.
func (f *RecordField) Read(r *Record, branch *Branch, ctxt *Context) (any, error) {
	if err := f.checkAccess(r); err != nil {
		return nil, err
	}
	slot, err := r.slot(f.num, f, false)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return f.kind.Zero(), nil
	}
	return slot.Read(ctxt.Shadow(branch), ctxt), nil
}

// ReadFrozen returns the last published version for branch, ignoring
// any in-flight writes: the value a publish/merge operation would see.
func (f *RecordField) ReadFrozen(r *Record, branch *Branch, ctxt *Context) (any, error) {
	if err := f.checkAccess(r); err != nil {
		return nil, err
	}
	slot, err := r.slot(f.num, f, false)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return f.kind.Zero(), nil
	}
	return slot.ReadFrozen(ctxt.Shadow(branch), ctxt), nil
}

// IsResolved reports whether branch's conflict with its parent, for this
// field on r, has been marked resolved by a resolving modify (see
// ResMode). A branch that has never diverged from its parent for this
// field is vacuously unresolved but also has no conflict to report; the
// publish package's Inspect combines this with a value comparison to
// decide what is actually worth reporting.
func (f *RecordField) IsResolved(r *Record, branch *Branch) (bool, error) {
	if err := f.checkAccess(r); err != nil {
		return false, err
	}
	slot, err := r.slot(f.num, f, false)
	if err != nil {
		return false, err
	}
	if slot == nil {
		return false, nil
	}
	return slot.resolvedOn(branch), nil
}

// HasValue reports whether branch (or an ancestor) has ever had a
// version written for this field on r.
func (f *RecordField) HasValue(r *Record, branch *Branch, ctxt *Context) (bool, error) {
	if err := f.checkAccess(r); err != nil {
		return false, err
	}
	slot, err := r.slot(f.num, f, false)
	if err != nil {
		return false, err
	}
	if slot == nil {
		return false, nil
	}
	return slot.HasValue(ctxt.Shadow(branch), ctxt), nil
}

// Modify applies op to the current visible value of this field on r,
// branch (as shadowed by ctxt), creating the slot on first write, and
// returns the prior value.
func (f *RecordField) Modify(r *Record, branch *Branch, ctxt *Context, op ModifyOp, arg any, resMode ResMode) (any, error) {
	if err := f.checkAccess(r); err != nil {
		return nil, err
	}
	slot, err := r.slot(f.num, f, true)
	if err != nil {
		return nil, err
	}
	return slot.Modify(ctxt.Shadow(branch), ctxt, op, resMode, arg)
}

// Write is modify(set).
func (f *RecordField) Write(r *Record, branch *Branch, ctxt *Context, val any, resMode ResMode) (any, error) {
	return f.Modify(r, branch, ctxt, ModifySet, val, resMode)
}

func (f *RecordField) arithmetic(r *Record, branch *Branch, ctxt *Context, op ModifyOp, delta any, resMode ResMode) (any, error) {
	if !f.kind.IsNumeric() {
		return nil, fmt.Errorf("%w: field %q of kind %v does not support %v", ErrInvalidArgument, f.Name(), f.kind, op)
	}
	return f.Modify(r, branch, ctxt, op, delta, resMode)
}

func (f *RecordField) Add(r *Record, branch *Branch, ctxt *Context, delta any, resMode ResMode) (any, error) {
	return f.arithmetic(r, branch, ctxt, ModifyAdd, delta, resMode)
}

func (f *RecordField) Sub(r *Record, branch *Branch, ctxt *Context, delta any, resMode ResMode) (any, error) {
	return f.arithmetic(r, branch, ctxt, ModifySub, delta, resMode)
}

func (f *RecordField) Mul(r *Record, branch *Branch, ctxt *Context, delta any, resMode ResMode) (any, error) {
	return f.arithmetic(r, branch, ctxt, ModifyMul, delta, resMode)
}

func (f *RecordField) Div(r *Record, branch *Branch, ctxt *Context, delta any, resMode ResMode) (any, error) {
	return f.arithmetic(r, branch, ctxt, ModifyDiv, delta, resMode)
}

func (f *RecordField) SetToParent(r *Record, branch *Branch, ctxt *Context, resMode ResMode) (any, error) {
	return f.Modify(r, branch, ctxt, ModifyParentVal, nil, resMode)
}

func (f *RecordField) ResolveToParent(r *Record, branch *Branch, ctxt *Context) (any, error) {
	return f.SetToParent(r, branch, ctxt, ResResolving)
}

func (f *RecordField) ResolveToCurrent(r *Record, branch *Branch, ctxt *Context) (any, error) {
	return f.Modify(r, branch, ctxt, ModifyCurrentVal, nil, ResResolving)
}

func (f *RecordField) RollBack(r *Record, branch *Branch, ctxt *Context, resMode ResMode) (any, error) {
	return f.Modify(r, branch, ctxt, ModifyLastStableVal, nil, resMode)
}

func (f *RecordField) ResolveByRollback(r *Record, branch *Branch, ctxt *Context) (any, error) {
	return f.RollBack(r, branch, ctxt, ResResolving)
}

// FieldIn implements managed_type<K>.field_in: look up name on rt; if a
// field of the same name exists, require it to already be bound to vt
// (else ErrIncompatibleType); if absent and createIfAbsent, add it.
func FieldIn(rt *RecordType, kind Kind, name string, vt *ValueType, createIfAbsent bool) (*RecordField, error) {
	if f := rt.LookupField(name); f != nil {
		if f.fTypeBase.Equal(vt) {
			return f, nil
		}
		return nil, fmt.Errorf("%w: field %q of %q already exists with a different type", ErrIncompatibleType, name, rt.Name())
	}
	if !createIfAbsent {
		return nil, nil
	}
	return rt.AddField(func(index int) *RecordField {
		return newRecordField(kind, name, index, rt, vt)
	})
}
