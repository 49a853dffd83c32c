package node

import "testing"

func TestValidRejectsNegativeHandle(t *testing.T) {
	n := New(nil, Handle(-1))
	if n.Valid() {
		t.Fatalf("expected a negative handle to be invalid")
	}
}

func TestValidAcceptsNonNegativeHandle(t *testing.T) {
	n := New(nil, Handle(0))
	if !n.Valid() {
		t.Fatalf("expected handle 0 to be valid")
	}
}

func TestNewManagerCarriesKind(t *testing.T) {
	m := NewManager(nil, Handle(3), ManagerSOP)
	if m.Kind != ManagerSOP {
		t.Fatalf("got Kind %v, want ManagerSOP", m.Kind)
	}
	if m.ID() != Handle(3) {
		t.Fatalf("got ID %v, want 3", m.ID())
	}
}
