package info

import (
	"testing"

	"github.com/sidefxlabs/hapi-go/internal/ffi"
)

func TestBuildVolumeRoundTrip(t *testing.T) {
	v := BuildVolume(32, 32, 16, 3, 1, 8)
	if v.XLength() != 32 || v.YLength() != 32 || v.ZLength() != 16 {
		t.Fatalf("got lengths (%d,%d,%d), want (32,32,16)", v.XLength(), v.YLength(), v.ZLength())
	}
	if v.TupleSize() != 3 {
		t.Fatalf("got TupleSize %d, want 3", v.TupleSize())
	}
	if v.StorageType() != 1 {
		t.Fatalf("got StorageType %d, want 1", v.StorageType())
	}
	if v.TileSize() != 8 {
		t.Fatalf("got TileSize %d, want 8", v.TileSize())
	}
}

func TestVolumeTileValidity(t *testing.T) {
	valid := NewVolumeTile(ffi.VolumeTileInfo{MinX: 1, MinY: 2, MinZ: 3, IsValid: true})
	if !valid.IsValid() {
		t.Fatalf("expected tile to report valid")
	}
	if valid.MinX() != 1 || valid.MinY() != 2 || valid.MinZ() != 3 {
		t.Fatalf("got mins (%d,%d,%d), want (1,2,3)", valid.MinX(), valid.MinY(), valid.MinZ())
	}

	invalid := NewVolumeTile(ffi.VolumeTileInfo{IsValid: false})
	if invalid.IsValid() {
		t.Fatalf("expected tile to report invalid")
	}
}
