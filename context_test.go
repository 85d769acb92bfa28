package mds

import "testing"

func TestContextShadowDefaultsToSelf(t *testing.T) {
	ctxt := NewContext()
	if ctxt.Shadow(TopLevelBranch) != TopLevelBranch {
		t.Fatalf("an untouched context should shadow every branch to itself")
	}
	b := NewChildBranch(TopLevelBranch)
	if ctxt.Shadow(b) != b {
		t.Fatalf("an untouched context should shadow a fresh branch to itself")
	}
}

func TestContextIsolate(t *testing.T) {
	ctxt := NewContext()
	priv := ctxt.Isolate(TopLevelBranch)
	if priv == TopLevelBranch {
		t.Fatalf("Isolate must create a distinct private branch")
	}
	if priv.Parent() != TopLevelBranch {
		t.Fatalf("the private branch must be a child of the isolated branch")
	}
	if ctxt.Shadow(TopLevelBranch) != priv {
		t.Fatalf("after Isolate, Shadow(top) must return the private branch")
	}
}

func TestContextIsolateNew(t *testing.T) {
	ctxt := NewContext()
	priv := ctxt.IsolateNew()
	if ctxt.Shadow(TopLevelBranch) != priv {
		t.Fatalf("IsolateNew must isolate TopLevelBranch")
	}
}

func TestContextsAreIndependent(t *testing.T) {
	c1 := NewContext()
	c2 := NewContext()
	p1 := c1.IsolateNew()
	p2 := c2.IsolateNew()
	if p1 == p2 {
		t.Fatalf("two contexts isolating the same branch must get distinct private branches")
	}
	if c1.Shadow(TopLevelBranch) == c2.Shadow(TopLevelBranch) {
		t.Fatalf("contexts must not leak each other's shadow mapping")
	}
}
