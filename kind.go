package mds

import "fmt"

// Kind is the statically known representation class of a value: a
// primitive numeric kind, string, or record.
type Kind int

const (
	KindBool Kind = iota
	KindByte
	KindUByte
	KindShort
	KindUShort
	KindInt
	KindUInt
	KindLong
	KindULong
	KindFloat
	KindDouble
	KindString
	KindRecord
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "BOOL"
	case KindByte:
		return "BYTE"
	case KindUByte:
		return "UBYTE"
	case KindShort:
		return "SHORT"
	case KindUShort:
		return "USHORT"
	case KindInt:
		return "INT"
	case KindUInt:
		return "UINT"
	case KindLong:
		return "LONG"
	case KindULong:
		return "ULONG"
	case KindFloat:
		return "FLOAT"
	case KindDouble:
		return "DOUBLE"
	case KindString:
		return "STRING"
	case KindRecord:
		return "RECORD"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsNumeric reports whether k supports add/sub/mul/div.
func (k Kind) IsNumeric() bool {
	switch k {
	case KindByte, KindUByte, KindShort, KindUShort, KindInt, KindUInt, KindLong, KindULong, KindFloat, KindDouble:
		return true
	default:
		return false
	}
}

// Zero returns the zero/absent sentinel value for k: the value a read
// returns when no version has ever been written.
func (k Kind) Zero() any {
	switch k {
	case KindBool:
		return false
	case KindByte:
		return int8(0)
	case KindUByte:
		return uint8(0)
	case KindShort:
		return int16(0)
	case KindUShort:
		return uint16(0)
	case KindInt:
		return int32(0)
	case KindUInt:
		return uint32(0)
	case KindLong:
		return int64(0)
	case KindULong:
		return uint64(0)
	case KindFloat:
		return float32(0)
	case KindDouble:
		return float64(0)
	case KindString:
		return ""
	case KindRecord:
		return (*Record)(nil)
	default:
		panic(fmt.Sprintf("mds: zero value requested for unknown kind %v", k))
	}
}

// Arith applies a numeric modify_op (add/sub/mul/div) to a and b, both of
// which must already be values of kind k. It panics on a kind mismatch,
// since that indicates a bug upstream of the kind dispatch table (callers
// are expected to have validated kinds before reaching here) rather than
// a condition a caller can recover from.
func (k Kind) Arith(op ModifyOp, a, b any) any {
	switch k {
	case KindByte:
		return arithInt(op, a.(int8), b.(int8))
	case KindUByte:
		return arithUint(op, a.(uint8), b.(uint8))
	case KindShort:
		return arithInt(op, a.(int16), b.(int16))
	case KindUShort:
		return arithUint(op, a.(uint16), b.(uint16))
	case KindInt:
		return arithInt(op, a.(int32), b.(int32))
	case KindUInt:
		return arithUint(op, a.(uint32), b.(uint32))
	case KindLong:
		return arithInt(op, a.(int64), b.(int64))
	case KindULong:
		return arithUint(op, a.(uint64), b.(uint64))
	case KindFloat:
		return arithFloat(op, a.(float32), b.(float32))
	case KindDouble:
		return arithFloat(op, a.(float64), b.(float64))
	default:
		panic(fmt.Sprintf("mds: kind %v does not support arithmetic", k))
	}
}

type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type floating interface {
	~float32 | ~float64
}

func arithInt[T signedInt](op ModifyOp, a, b T) T {
	switch op {
	case ModifyAdd:
		return a + b
	case ModifySub:
		return a - b
	case ModifyMul:
		return a * b
	case ModifyDiv:
		return a / b
	default:
		panic(fmt.Sprintf("mds: %v is not an arithmetic modify_op", op))
	}
}

func arithUint[T unsignedInt](op ModifyOp, a, b T) T {
	switch op {
	case ModifyAdd:
		return a + b
	case ModifySub:
		return a - b
	case ModifyMul:
		return a * b
	case ModifyDiv:
		return a / b
	default:
		panic(fmt.Sprintf("mds: %v is not an arithmetic modify_op", op))
	}
}

func arithFloat[T floating](op ModifyOp, a, b T) T {
	switch op {
	case ModifyAdd:
		return a + b
	case ModifySub:
		return a - b
	case ModifyMul:
		return a * b
	case ModifyDiv:
		return a / b
	default:
		panic(fmt.Sprintf("mds: %v is not an arithmetic modify_op", op))
	}
}

// ValueType identifies the value-type a field is bound to: a primitive
// kind, or (for KindRecord fields) the specific record type the field's
// values must be instances of.
type ValueType struct {
	Kind   Kind
	Record *RecordType // only set when Kind == KindRecord
}

func primitiveValueType(k Kind) *ValueType {
	return &ValueType{Kind: k}
}

// PrimitiveValueType returns the ValueType for a non-record kind. Callers
// outside this package use this (rather than constructing a ValueType
// literal) to get a value that compares correctly via Equal.
func PrimitiveValueType(k Kind) *ValueType {
	return primitiveValueType(k)
}

// RecordValueType returns the ValueType for fields whose values must be
// instances of rt.
func RecordValueType(rt *RecordType) *ValueType {
	return &ValueType{Kind: KindRecord, Record: rt}
}

// Equal reports whether two value types describe the same binding: same
// kind and, for records, compatible (possibly-forwarded) record types.
func (vt *ValueType) Equal(other *ValueType) bool {
	if vt == nil || other == nil {
		return vt == other
	}
	if vt.Kind != other.Kind {
		return false
	}
	if vt.Kind != KindRecord {
		return true
	}
	return vt.Record.compareTypes(other.Record)
}
