package mds

import "errors"

// Error taxonomy. Each core operation that can fail wraps one of these
// sentinels with fmt.Errorf("%w: ...", ErrX, ...) so callers can use
// errors.Is while still getting a message with enough context to
// reproduce the failure. The foreign binding layer (out of scope here)
// is responsible for translating these into host-native errors.
var (
	// ErrIncompatibleRecordType is raised by EnsureCreated on a type
	// that has already been proven invalid, by field accessors whose
	// record's type is not a subtype of the field's declaring type, and
	// by IsValid when the underlying type is invalid.
	ErrIncompatibleRecordType = errors.New("mds: incompatible record type")

	// ErrIncompatibleSuperclass is raised by Declare when a
	// re-declaration names a supertype that is not a supertype of the
	// registered type's supertype.
	ErrIncompatibleSuperclass = errors.New("mds: incompatible superclass")

	// ErrIncompatibleType is raised by FieldIn when a field of the same
	// name exists with a different value type.
	ErrIncompatibleType = errors.New("mds: incompatible field type")

	// ErrUnmodifiableRecordType is raised by AddField after the type has
	// been created.
	ErrUnmodifiableRecordType = errors.New("mds: unmodifiable record type")

	// ErrFieldOutOfRange is raised by writing field accessors (Modify and
	// its wrappers) against a record whose slot array predates a field
	// added to the type afterward. Reads of such a field return the
	// kind's absent sentinel instead.
	ErrFieldOutOfRange = errors.New("mds: field out of range")

	// ErrInvalidArgument is raised on malformed caller input that isn't
	// any of the above: an arithmetic modify_op on a non-numeric kind, or
	// an unknown modify_op.
	ErrInvalidArgument = errors.New("mds: invalid argument")
)
