package mds

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// ModifyOp is the operation a modify() call applies to the current
// visible value of a slot on a branch.
type ModifyOp int

const (
	ModifySet ModifyOp = iota
	ModifyAdd
	ModifySub
	ModifyMul
	ModifyDiv
	ModifyParentVal
	ModifyCurrentVal
	ModifyLastStableVal
)

func (op ModifyOp) String() string {
	switch op {
	case ModifySet:
		return "set"
	case ModifyAdd:
		return "add"
	case ModifySub:
		return "sub"
	case ModifyMul:
		return "mul"
	case ModifyDiv:
		return "div"
	case ModifyParentVal:
		return "parent_val"
	case ModifyCurrentVal:
		return "current_val"
	case ModifyLastStableVal:
		return "last_stable_val"
	default:
		return fmt.Sprintf("ModifyOp(%d)", int(op))
	}
}

func (op ModifyOp) isEdit() bool {
	switch op {
	case ModifySet, ModifyAdd, ModifySub, ModifyMul, ModifyDiv, ModifyParentVal:
		return true
	default:
		return false
	}
}

func (op ModifyOp) isArithmetic() bool {
	switch op {
	case ModifyAdd, ModifySub, ModifyMul, ModifyDiv:
		return true
	default:
		return false
	}
}

// ResMode controls whether a modify() additionally marks a branch's
// conflict with its parent, for this slot, as resolved.
type ResMode int

const (
	ResNonResolving ResMode = iota
	ResResolving
)

// versionNode is one immutable, CAS-appended entry in a branch's local
// version chain for a slot.
//
// stableValue/stablePresent carry the last_stable_val checkpoint
// forward: an edit-type op snapshots the pre-edit value into the new
// node; a non-edit op (current_val, last_stable_val) copies the
// previous node's checkpoint unchanged. See DESIGN.md "last_stable_val"
// for why this, rather than "the previous node in the chain", is what
// makes roll_back idempotent.
type versionNode struct {
	present bool
	value   any

	stablePresent bool
	stableValue   any
}

// branchSlot is the per-(MSV, branch) state: a CAS-able head pointer
// plus a conflict-resolved flag. Two writers targeting the same branch
// serialize through the CAS retry loop on head; writers on different
// branches touch different branchSlots and never contend.
type branchSlot struct {
	head     atomic.Pointer[versionNode]
	resolved atomic.Bool
}

// msv is a multi-version slot: per-field versioned storage that
// resolves reads, writes, and read-modify-write operations against a
// branch, in the presence of concurrent tasks operating on different
// branches.
type msv struct {
	kind     Kind
	conflict *conflictGenerator

	mu       sync.RWMutex
	branches map[*Branch]*branchSlot
}

func newMSV(kind Kind, conflict *conflictGenerator) *msv {
	return &msv{kind: kind, conflict: conflict, branches: map[*Branch]*branchSlot{}}
}

func (m *msv) slotFor(b *Branch) *branchSlot {
	m.mu.RLock()
	s, ok := m.branches[b]
	m.mu.RUnlock()
	if ok {
		return s
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.branches[b]; ok {
		return s
	}
	s = &branchSlot{}
	m.branches[b] = s
	return s
}

func (m *msv) peekSlot(b *Branch) (*branchSlot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.branches[b]
	return s, ok
}

// visible walks b and its ancestors looking for the nearest branch with
// a local version, returning its current (present, value). If no
// ancestor has ever written this slot, present is false and value is
// the kind's zero/absent sentinel.
func (m *msv) visible(b *Branch) (present bool, value any) {
	for cur := b; cur != nil; cur = cur.Parent() {
		if s, ok := m.peekSlot(cur); ok {
			if n := s.head.Load(); n != nil {
				return n.present, n.value
			}
		}
	}
	return false, m.kind.Zero()
}

// stableVisible walks b and its ancestors looking for the nearest
// branch with a local version, returning the last_stable_val checkpoint
// recorded on that branch's current node.
func (m *msv) stableVisible(b *Branch) (present bool, value any) {
	for cur := b; cur != nil; cur = cur.Parent() {
		if s, ok := m.peekSlot(cur); ok {
			if n := s.head.Load(); n != nil {
				return n.stablePresent, n.stableValue
			}
		}
	}
	return false, m.kind.Zero()
}

// Read returns the value visible on branch, inherited from the nearest
// ancestor that has one, or the kind's absent sentinel.
func (m *msv) Read(branch *Branch, ctxt *Context) any {
	_, v := m.visible(branch)
	return v
}

// ReadFrozen returns the last_stable_val for branch: the version that
// would be exposed to a merge/publish operation now, ignoring in-flight
// descendants.
func (m *msv) ReadFrozen(branch *Branch, ctxt *Context) any {
	_, v := m.stableVisible(branch)
	return v
}

// HasValue reports whether some ancestor of branch (inclusive) has a
// version.
func (m *msv) HasValue(branch *Branch, ctxt *Context) bool {
	present, _ := m.visible(branch)
	return present
}

// Modify applies op to the current visible value on branch and returns
// the prior value (the value observable immediately before the
// modification). See ModifyOp for the effect of each op.
func (m *msv) Modify(branch *Branch, ctxt *Context, op ModifyOp, resMode ResMode, arg any) (prior any, err error) {
	if op.isArithmetic() && !m.kind.IsNumeric() {
		return nil, fmt.Errorf("%w: %v is not numeric, cannot %v", ErrInvalidArgument, m.kind, op)
	}

	slot := m.slotFor(branch)
	for {
		old := slot.head.Load()
		curPresent, curValue := m.visible(branch)
		priorValue := curValue

		var oldStablePresent bool
		var oldStableValue any
		if old != nil {
			oldStablePresent, oldStableValue = old.stablePresent, old.stableValue
		} else {
			oldStablePresent, oldStableValue = m.stableVisible(branch.Parent())
		}

		next := &versionNode{}
		switch op {
		case ModifySet:
			next.present, next.value = true, arg
		case ModifyAdd, ModifySub, ModifyMul, ModifyDiv:
			base := curValue
			if !curPresent {
				base = m.kind.Zero()
			}
			next.present, next.value = true, m.kind.Arith(op, base, arg)
		case ModifyParentVal:
			_, pv := m.visible(branch.Parent())
			next.present, next.value = true, pv
		case ModifyCurrentVal:
			next.present, next.value = curPresent, curValue
		case ModifyLastStableVal:
			sp, sv := oldStablePresent, oldStableValue
			next.present, next.value = sp, sv
		default:
			return nil, fmt.Errorf("%w: unknown modify_op %v", ErrInvalidArgument, op)
		}

		if op.isEdit() {
			next.stablePresent, next.stableValue = curPresent, curValue
		} else {
			next.stablePresent, next.stableValue = oldStablePresent, oldStableValue
		}

		if slot.head.CompareAndSwap(old, next) {
			if resMode == ResResolving {
				slot.resolved.Store(true)
			}
			return priorValue, nil
		}
		// Lost the race to a concurrent writer on the same branch;
		// recompute against the new head and retry.
	}
}

// resolvedOn reports whether branch's conflict with its parent, for this
// slot, has been marked resolved. Used by the publish subpackage's
// read-only conflict report; it does not itself implement merge.
func (m *msv) resolvedOn(branch *Branch) bool {
	s, ok := m.peekSlot(branch)
	if !ok {
		return false
	}
	return s.resolved.Load()
}
