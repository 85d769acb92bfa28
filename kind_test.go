package mds

import "testing"

func TestKindZeroValues(t *testing.T) {
	cases := []struct {
		k    Kind
		want any
	}{
		{KindBool, false},
		{KindByte, int8(0)},
		{KindUByte, uint8(0)},
		{KindShort, int16(0)},
		{KindUShort, uint16(0)},
		{KindInt, int32(0)},
		{KindUInt, uint32(0)},
		{KindLong, int64(0)},
		{KindULong, uint64(0)},
		{KindFloat, float32(0)},
		{KindDouble, float64(0)},
		{KindString, ""},
	}
	for _, c := range cases {
		tcompare(t, c.k.Zero(), c.want, c.k.String())
	}
	if c := KindRecord.Zero(); c != (*Record)(nil) {
		t.Fatalf("KindRecord.Zero() = %v, want nil *Record", c)
	}
}

func TestKindIsNumeric(t *testing.T) {
	numeric := []Kind{KindByte, KindUByte, KindShort, KindUShort, KindInt, KindUInt, KindLong, KindULong, KindFloat, KindDouble}
	for _, k := range numeric {
		if !k.IsNumeric() {
			t.Fatalf("%v should be numeric", k)
		}
	}
	for _, k := range []Kind{KindBool, KindString, KindRecord} {
		if k.IsNumeric() {
			t.Fatalf("%v should not be numeric", k)
		}
	}
}

func TestKindArith(t *testing.T) {
	tcompare(t, KindInt.Arith(ModifyAdd, int32(2), int32(3)), int32(5), "int add")
	tcompare(t, KindDouble.Arith(ModifyMul, float64(2.5), float64(2)), float64(5), "double mul")
	tcompare(t, KindULong.Arith(ModifySub, uint64(10), uint64(4)), uint64(6), "ulong sub")
}

func TestValueTypeEqual(t *testing.T) {
	a := primitiveValueType(KindInt)
	b := primitiveValueType(KindInt)
	if !a.Equal(b) {
		t.Fatalf("two INT value types should be equal")
	}
	c := primitiveValueType(KindString)
	if a.Equal(c) {
		t.Fatalf("INT and STRING value types should not be equal")
	}
}
