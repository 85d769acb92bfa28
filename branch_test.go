package mds

import "testing"

func TestBranchParentChain(t *testing.T) {
	if TopLevelBranch.Parent() != nil {
		t.Fatalf("TopLevelBranch must have no parent")
	}
	b1 := NewChildBranch(TopLevelBranch)
	b2 := NewChildBranch(b1)
	if b1.Parent() != TopLevelBranch {
		t.Fatalf("b1.Parent() = %v, want TopLevelBranch", b1.Parent())
	}
	if b2.Parent() != b1 {
		t.Fatalf("b2.Parent() = %v, want b1", b2.Parent())
	}
}

func TestBranchIsAncestorOf(t *testing.T) {
	b1 := NewChildBranch(TopLevelBranch)
	b2 := NewChildBranch(b1)
	b3 := NewChildBranch(TopLevelBranch)

	if !TopLevelBranch.IsAncestorOf(b2) {
		t.Fatalf("top should be an ancestor of b2")
	}
	if !b1.IsAncestorOf(b2) {
		t.Fatalf("b1 should be an ancestor of b2")
	}
	if !b1.IsAncestorOf(b1) {
		t.Fatalf("a branch is its own ancestor")
	}
	if b2.IsAncestorOf(b1) {
		t.Fatalf("b2 must not be an ancestor of its own parent")
	}
	if b1.IsAncestorOf(b3) {
		t.Fatalf("siblings must not be ancestors of each other")
	}
}

func TestNewChildBranchPanicsOnNilParent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected NewChildBranch(nil) to panic")
		}
	}()
	NewChildBranch(nil)
}
