package info

import "testing"

func TestBuildImageRoundTrip(t *testing.T) {
	img := BuildImage(3, true, 1920, 1080, 2.2)
	if img.DataFormat() != 3 {
		t.Fatalf("got DataFormat %d, want 3", img.DataFormat())
	}
	if !img.Interleaved() {
		t.Fatalf("expected Interleaved to be true")
	}
	if img.XRes() != 1920 || img.YRes() != 1080 {
		t.Fatalf("got resolution (%d,%d), want (1920,1080)", img.XRes(), img.YRes())
	}
	if img.Gamma() != 2.2 {
		t.Fatalf("got Gamma %v, want 2.2", img.Gamma())
	}
}
