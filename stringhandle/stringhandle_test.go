package stringhandle

import "testing"

func TestArrayLenDoesNotResolve(t *testing.T) {
	a := NewArray(nil, []Handle{1, 2, 3})
	if a.Len() != 3 {
		t.Fatalf("got %d, want 3", a.Len())
	}
}

func TestArrayLenEmpty(t *testing.T) {
	a := NewArray(nil, nil)
	if a.Len() != 0 {
		t.Fatalf("got %d, want 0", a.Len())
	}
}
