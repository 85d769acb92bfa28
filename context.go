package mds

import "sync"

// Context is a per-task isolation context: a mapping from branches to
// the branches it actually observes. context.shadow(b) is total (every
// branch has a shadow, itself by default) and idempotent. This is the
// only point at which a context influences an operation's behavior;
// every core entry point calls Shadow exactly once, immediately before
// handing the branch to the MSV.
type Context struct {
	id UniformID

	mu     sync.RWMutex
	shadow map[*Branch]*Branch
}

// NewContext creates an isolation context that, until told otherwise via
// Isolate, shadows every branch to itself.
func NewContext() *Context {
	return &Context{id: nextUniformID(), shadow: map[*Branch]*Branch{}}
}

// Shadow returns the branch ctxt uses in place of b. For the common case
// this is b itself.
func (ctxt *Context) Shadow(b *Branch) *Branch {
	ctxt.mu.RLock()
	defer ctxt.mu.RUnlock()
	if sb, ok := ctxt.shadow[b]; ok {
		return sb
	}
	return b
}

// Isolate makes ctxt shadow b with a freshly created child branch of b,
// and returns that child. This is how a context isolates its writes:
// subsequent operations against b under this context land on the
// private child instead, invisible to other contexts. Nothing in this
// package copies the child's values back to b; SetToParent and
// ResolveToParent go the other way, replacing the child's value with
// b's.
func (ctxt *Context) Isolate(b *Branch) *Branch {
	child := NewChildBranch(b)
	ctxt.mu.Lock()
	ctxt.shadow[b] = child
	ctxt.mu.Unlock()
	return child
}

// IsolateNew is a convenience for the common case of isolating
// TopLevelBranch, returning the private branch it now shadows to.
func (ctxt *Context) IsolateNew() *Branch {
	return ctxt.Isolate(TopLevelBranch)
}

func (ctxt *Context) String() string {
	return "ctxt/" + ctxt.id.String()
}
