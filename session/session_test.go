package session

import "testing"

func TestDefaultOptionsSeedsPollInterval(t *testing.T) {
	o := DefaultOptions()
	if o.PollInterval <= 0 {
		t.Fatalf("expected a positive default poll interval")
	}
	if !o.Session.UseCookingThread {
		t.Fatalf("expected UseCookingThread to default to true")
	}
}

func TestCookStateCookingIsDistinctFromReady(t *testing.T) {
	if CookStateCooking == CookStateReady {
		t.Fatalf("CookStateCooking and CookStateReady must be distinct values")
	}
}
