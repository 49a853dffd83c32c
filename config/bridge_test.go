package config

import "testing"

func TestCookOptionsStartsFromEngineDefaults(t *testing.T) {
	c := Default().Session.Cook
	o := c.CookOptions()
	if o.MaxVerticesPerPrimitive != -1 {
		t.Fatalf("got MaxVerticesPerPrimitive %d, want -1 (untouched default)", o.MaxVerticesPerPrimitive)
	}
	if !o.CheckPartChanges || !o.ClearErrorsAndWarnings {
		t.Fatalf("expected CheckPartChanges/ClearErrorsAndWarnings to stay at engine defaults")
	}
}

func TestCookOptionsAppliesOverrides(t *testing.T) {
	c := Cook{
		SplitGeosByGroup:        true,
		MaxVerticesPerPrimitive: 3,
		CheckPartChanges:        false,
	}
	o := c.CookOptions()
	if !o.SplitGeosByGroup {
		t.Fatalf("expected SplitGeosByGroup override to carry through")
	}
	if o.MaxVerticesPerPrimitive != 3 {
		t.Fatalf("got MaxVerticesPerPrimitive %d, want 3", o.MaxVerticesPerPrimitive)
	}
	if o.CheckPartChanges {
		t.Fatalf("expected CheckPartChanges override to carry through as false")
	}
}

func TestSessionOptionsCarriesSearchPaths(t *testing.T) {
	s := Session{
		OTLSearchPath: "/otls",
		DSOSearchPath: "/dsos",
	}
	o := s.SessionOptions()
	if o.OTLSearchPath != "/otls" || o.DSOSearchPath != "/dsos" {
		t.Fatalf("got %+v, want search paths to pass through unchanged", o)
	}
}

func TestThriftServerOptionsConvertsTimeout(t *testing.T) {
	s := Server{Timeout: mustParseDuration("1500ms"), AutoClose: true}
	o := s.ThriftServerOptions()
	if o.TimeoutMS != 1500 {
		t.Fatalf("got TimeoutMS %v, want 1500", o.TimeoutMS)
	}
	if !o.AutoClose {
		t.Fatalf("expected AutoClose to carry through")
	}
}
