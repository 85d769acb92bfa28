package mds

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// processID tags every id this process hands out, so ids stay globally
// unique across process restarts without a shared external allocator.
// The uniform key service in the original runtime assigns a
// process-unique identifier to each "identifiable" object; google/uuid
// plus a process-local sequence is the idiomatic Go equivalent of that
// collaborator.
var processID = uuid.New()

var idSeq atomic.Uint64

// UniformID is a process-unique identifier assigned to record types,
// field descriptors, and record instances as they're created.
type UniformID struct {
	Process uuid.UUID
	Seq     uint64
}

func (id UniformID) String() string {
	return fmt.Sprintf("%s/%d", id.Process, id.Seq)
}

// nextUniformID hands out the next id for this process.
func nextUniformID() UniformID {
	return UniformID{Process: processID, Seq: idSeq.Add(1)}
}
