package mds

// conflictGenerator is created once at MSV instantiation and retained
// for the slot's lifetime. It records enough structural identity —
// owning record and owning field — to describe a conflict during a
// three-way merge without reparsing the slot. The merge/publish engine
// itself is out of scope here (see the publish subpackage for the
// read-only hook this core exposes to such a consumer).
type conflictGenerator struct {
	record *Record
	field  *RecordField
}

// ConflictInfo is the structural identity a publish/merge engine would
// need to report a conflict on this slot.
type ConflictInfo struct {
	Record *Record
	Field  *RecordField
}

func (g *conflictGenerator) describe() ConflictInfo {
	return ConflictInfo{Record: g.record, Field: g.field}
}
