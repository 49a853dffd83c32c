package strcache

import "testing"

func TestPutGetRoundTrip(t *testing.T) {
	c := New(0)
	key := Key(1, 42)
	if _, ok := c.Get(key); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Put(key, "foo")
	s, ok := c.Get(key)
	if !ok || s != "foo" {
		t.Fatalf("got (%q, %v), want (\"foo\", true)", s, ok)
	}
}

func TestDifferentSessionsDontCollide(t *testing.T) {
	a := Key(1, 5)
	b := Key(2, 5)
	if a == b {
		t.Fatalf("expected different session ids to produce different keys for the same handle")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Put(Key(1, 1), "a")
	c.Put(Key(1, 2), "b")
	// touch key 1 so key 2 becomes the LRU entry.
	c.Get(Key(1, 1))
	c.Put(Key(1, 3), "c")

	if _, ok := c.Get(Key(1, 2)); ok {
		t.Fatalf("expected handle 2 to have been evicted")
	}
	if _, ok := c.Get(Key(1, 1)); !ok {
		t.Fatalf("expected handle 1 to survive (recently used)")
	}
	if c.Len() != 2 {
		t.Fatalf("got len %d, want 2", c.Len())
	}
}

func TestPurgeClears(t *testing.T) {
	c := New(0)
	c.Put(Key(1, 1), "a")
	c.Purge()
	if c.Len() != 0 {
		t.Fatalf("expected empty cache after Purge, got len %d", c.Len())
	}
}
