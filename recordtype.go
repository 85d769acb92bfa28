package mds

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// RecordType is a nominal record type with single inheritance, an
// append-only field table, and structural forwarding/uniquing on
// declaration.
//
// Once EnsureCreated has been called, a type is in exactly one of three
// states: canonical (forward == nil), forwarded (forward points at the
// canonical equivalent), or invalid (EnsureCreated failed, and every
// later EnsureCreated call raises ErrIncompatibleRecordType).
//
// Declaration and field addition are assumed to run under external
// serialization for a given type (single writer); reads of a created
// type's field table are concurrent-safe and lock-free. FindRecordType
// is concurrent-safe but interns the name it is given, which takes the
// interning pool's mutex. This mirrors
// register.go's "single Register caller at a time, but Find/lookups are
// safe from any goroutine" assumption.
type RecordType struct {
	id   UniformID
	name *InternedString
	super *RecordType

	mu     sync.Mutex // guards fields while !created; see doc comment above
	fields []*RecordField

	created atomic.Bool
	valid   atomic.Bool
	forward atomic.Pointer[RecordType]

	validityCache
}

// registry is the process-wide table of canonical record types, keyed by
// interned name. Registration happens in EnsureCreated, not Declare, so
// that AddField can keep extending a type between the two calls.
var registry sync.Map // map[*InternedString]*RecordType

// FindRecordType looks up a canonical record type by name. Returns nil
// if no canonical type with that name has been created yet.
func FindRecordType(name string) *RecordType {
	v, ok := registry.Load(Intern(name))
	if !ok {
		return nil
	}
	return v.(*RecordType)
}

// Declare idempotently registers a record type candidate: it returns a
// mutable handle which, if a canonical type with this name already
// exists, immediately forwards to it (after checking super-type
// compatibility). If no type with this name exists yet, the returned
// handle is the eventual canonical type, but registration itself is
// deferred until EnsureCreated.
func Declare(name string, super *RecordType) (*RecordType, error) {
	rt := &RecordType{
		id:    nextUniformID(),
		name:  Intern(name),
		super: super,
	}
	rt.valid.Store(true)
	if super != nil {
		rt.mu.Lock()
		rt.fields = append([]*RecordField(nil), super.Fields()...)
		rt.mu.Unlock()
	}

	old := FindRecordType(name)
	if old == nil {
		return rt, nil
	}

	rt.forward.Store(old)
	rt.created.Store(true)
	if super == nil {
		return rt, nil
	}

	canonicalSuper, err := super.EnsureCreated()
	if err != nil {
		return nil, err
	}
	if canonicalSuper == nil {
		canonicalSuper = super
	}
	oldSuper := old.SuperType()
	if oldSuper == nil || !oldSuper.IsSuperOf(canonicalSuper) {
		return nil, fmt.Errorf("%w: %q's registered supertype is not a supertype of the requested %q", ErrIncompatibleSuperclass, name, canonicalSuper.Name())
	}
	return rt, nil
}

// Name returns rt's interned name.
func (rt *RecordType) Name() string {
	return rt.name.String()
}

// SuperType returns rt's declared supertype, or nil for a root type.
func (rt *RecordType) SuperType() *RecordType {
	return rt.super
}

// IsCreated reports whether EnsureCreated has succeeded for rt.
func (rt *RecordType) IsCreated() bool {
	return rt.created.Load()
}

// Forward returns the canonical type rt forwards to, or nil if rt is
// itself canonical (or not yet created).
func (rt *RecordType) Forward() *RecordType {
	return rt.forward.Load()
}

// canonical chases the forward chain to the canonical type.
func (rt *RecordType) canonical() *RecordType {
	for {
		f := rt.forward.Load()
		if f == nil {
			return rt
		}
		rt = f
	}
}

// NFields returns the number of fields in rt's (possibly forwarded)
// field table.
func (rt *RecordType) NFields() int {
	return len(rt.Fields())
}

// Fields returns rt's (possibly forwarded) append-only field table.
// Callers must not mutate the returned slice.
func (rt *RecordType) Fields() []*RecordField {
	if f := rt.forward.Load(); f != nil {
		return f.Fields()
	}
	if rt.created.Load() {
		return rt.fields
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.fields
}

// LookupField returns the first field in rt's (possibly forwarded)
// field table with the given name, or nil if none matches.
func (rt *RecordType) LookupField(name string) *RecordField {
	for _, f := range rt.Fields() {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// AddField appends a new field to rt under the rule that rt must not
// yet be created. creator is handed the index the new field will
// occupy and must manufacture the descriptor.
func (rt *RecordType) AddField(creator func(index int) *RecordField) (*RecordField, error) {
	if rt.created.Load() {
		return nil, fmt.Errorf("%w: %q", ErrUnmodifiableRecordType, rt.Name())
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	// Re-check under the lock: EnsureCreated may have run concurrently
	// with us waiting for it (declaration is externally serialized per
	// type, but we still guard against misuse cheaply).
	if rt.created.Load() {
		return nil, fmt.Errorf("%w: %q", ErrUnmodifiableRecordType, rt.Name())
	}
	index := len(rt.fields)
	f := creator(index)
	rt.fields = append(rt.fields, f)
	return f, nil
}

// EnsureCreated transitions rt to the created state. It returns nil if
// rt is canonical, the canonical equivalent if rt forwards, or
// ErrIncompatibleRecordType if rt has been proven invalid.
func (rt *RecordType) EnsureCreated() (*RecordType, error) {
	if rt.created.Load() {
		return rt.forward.Load(), nil
	}
	if !rt.valid.Load() {
		return nil, fmt.Errorf("%w: %q", ErrIncompatibleRecordType, rt.Name())
	}
	return rt.tryCreate()
}

func (rt *RecordType) tryCreate() (*RecordType, error) {
	actual, loaded := registry.LoadOrStore(rt.name, rt)
	existing := actual.(*RecordType)
	if !loaded || existing == rt {
		rt.created.Store(true)
		return nil, nil
	}
	if !fieldsCompatible(existing, rt) {
		rt.valid.Store(false)
		return nil, fmt.Errorf("%w: %q's field table does not match the already-registered type of the same name", ErrIncompatibleRecordType, rt.Name())
	}
	rt.forward.Store(existing)
	rt.created.Store(true)
	return existing, nil
}

// fieldsCompatible reports whether candidate's field table is
// elementwise compatible with existing's: same length, each pair
// agreeing on name and value type. This is the compatibility check
// EnsureCreated performs for the race where two distinct RecordType
// candidates for the same never-before-seen name are built
// concurrently; see DESIGN.md.
func fieldsCompatible(existing, candidate *RecordType) bool {
	ef, cf := existing.Fields(), candidate.Fields()
	if len(ef) != len(cf) {
		return false
	}
	for i := range ef {
		if !ef[i].CompatibleWith(cf[i]) {
			return false
		}
	}
	return true
}

// compareTypes reports whether rt and other are equivalent: identical,
// or either forwards to the other, or both forward to the same
// canonical type.
func (rt *RecordType) compareTypes(other *RecordType) bool {
	if rt == other {
		return true
	}
	if other == nil {
		return false
	}
	if rt.forward.Load() == other || other.forward.Load() == rt {
		return true
	}
	rf, of := rt.forward.Load(), other.forward.Load()
	return rf != nil && of != nil && rf == of
}

// IsSuperOf reports whether rt is a supertype of other, chasing other's
// super chain and comparing with compareTypes at each step (so a
// forwarded intermediate type is still recognized).
func (rt *RecordType) IsSuperOf(other *RecordType) bool {
	for o := other; o != nil; o = o.super {
		if rt.compareTypes(o) {
			return true
		}
	}
	return false
}

// CreateRecord constructs a new record of rt's canonical type, paired
// with the branch ctxt's isolation shadows TopLevelBranch to (captured
// at creation time, not at first access).
func (rt *RecordType) CreateRecord(ctxt *Context) (*Record, *Branch, error) {
	canonical, err := rt.EnsureCreated()
	if err != nil {
		return nil, nil, err
	}
	if canonical != nil {
		return canonical.CreateRecord(ctxt)
	}
	r := newRecord(rt)
	b := ctxt.Shadow(TopLevelBranch)
	return r, b, nil
}
