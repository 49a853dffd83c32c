package volume

import "testing"

func TestTileVoxelCountScalesByTupleSize(t *testing.T) {
	if got := tileVoxelCount(1); got != 512 {
		t.Fatalf("got %d, want 512 (8*8*8)", got)
	}
	if got := tileVoxelCount(3); got != 1536 {
		t.Fatalf("got %d, want 1536 (8*8*8*3)", got)
	}
	if got := tileVoxelCount(0); got != 0 {
		t.Fatalf("got %d, want 0", got)
	}
}
