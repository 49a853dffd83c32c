package info

import "testing"

func TestKeyFramesToFFIFlattens(t *testing.T) {
	frames := []KeyFrame{
		{Time: 0, Value: 1},
		{Time: 1, Value: 2},
		{Time: 2.5, Value: -3},
	}
	times, values := KeyFramesToFFI(frames)
	wantTimes := []float32{0, 1, 2.5}
	wantValues := []float32{1, 2, -3}
	for i := range frames {
		if times[i] != wantTimes[i] || values[i] != wantValues[i] {
			t.Fatalf("frame %d: got (%v, %v), want (%v, %v)", i, times[i], values[i], wantTimes[i], wantValues[i])
		}
	}
}

func TestKeyFramesToFFIEmpty(t *testing.T) {
	times, values := KeyFramesToFFI(nil)
	if len(times) != 0 || len(values) != 0 {
		t.Fatalf("expected empty slices for no frames, got %d/%d", len(times), len(values))
	}
}
