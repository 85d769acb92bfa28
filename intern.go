package mds

import "sync"

// InternedString is a canonical, pointer-comparable name. Two calls to
// Intern with equal strings return the identical *InternedString, so
// record-type and field lookups can compare names with a pointer
// comparison instead of a string comparison once interned.
type InternedString struct {
	s string
}

func (i *InternedString) String() string {
	if i == nil {
		return ""
	}
	return i.s
}

var internPool = struct {
	mu    sync.Mutex
	table map[string]*InternedString
}{table: map[string]*InternedString{}}

// Intern returns the canonical *InternedString for s, creating it on
// first use. Safe for concurrent use; the table is a simple
// mutex-guarded map since interning happens once per distinct name
// rather than on every hot-path operation.
func Intern(s string) *InternedString {
	internPool.mu.Lock()
	defer internPool.mu.Unlock()
	if is, ok := internPool.table[s]; ok {
		return is
	}
	is := &InternedString{s: s}
	internPool.table[s] = is
	return is
}
