package info

import (
	"testing"

	"github.com/sidefxlabs/hapi-go/internal/ffi"
)

func TestBuildTransformRoundTrip(t *testing.T) {
	pos := [3]float32{1, 2, 3}
	rot := [4]float32{0, 0, 0, 1}
	scale := [3]float32{1, 1, 1}
	tr := BuildTransform(pos, rot, scale, ffi.RSTOrder(2))

	if tr.Position() != pos {
		t.Fatalf("got Position %v, want %v", tr.Position(), pos)
	}
	if tr.RotationQuaternion() != rot {
		t.Fatalf("got RotationQuaternion %v, want %v", tr.RotationQuaternion(), rot)
	}
	if tr.Scale() != scale {
		t.Fatalf("got Scale %v, want %v", tr.Scale(), scale)
	}
	if tr.RSTOrder() != ffi.RSTOrder(2) {
		t.Fatalf("got RSTOrder %v, want 2", tr.RSTOrder())
	}
}

func TestBuildTransformEulerRoundTrip(t *testing.T) {
	pos := [3]float32{1, 0, 0}
	rot := [3]float32{90, 0, 0}
	scale := [3]float32{2, 2, 2}
	tr := BuildTransformEuler(pos, rot, scale, ffi.XYZOrder(1), ffi.RSTOrder(0))

	if tr.RotationEuler() != rot {
		t.Fatalf("got RotationEuler %v, want %v", tr.RotationEuler(), rot)
	}
	if tr.RotationOrder() != ffi.XYZOrder(1) {
		t.Fatalf("got RotationOrder %v, want 1", tr.RotationOrder())
	}
}
