// Package volume implements the volume primitive layer (spec.md §
// supplemented: volume tile iteration and heightfield creation) — reading
// and writing voxel grids via the tile-iteration protocol, and the
// heightfield convenience constructors built on top of it.
package volume

import (
	"github.com/sidefxlabs/hapi-go/info"
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/node"
	"github.com/sidefxlabs/hapi-go/session"
)

// Volume is a part's voxel-grid view, bound to the node/part it lives on.
type Volume struct {
	sess   *session.Session
	node   node.Node
	partID int32
}

// Of fetches the VolumeInfo for a part and returns a Volume bound to it.
func Of(sess *session.Session, n node.Node, partID int32) (Volume, info.Volume, error) {
	raw, err := ffi.GetVolumeInfo(sess.Handle(), n.ID(), partID)
	if err != nil {
		return Volume{}, info.Volume{}, err
	}
	return Volume{sess: sess, node: n, partID: partID}, info.NewVolume(raw), nil
}

// SetInfo declares a volume part's shape before tile writes (mirrors
// geometry.Writer.SetPart's role for volumes).
func (v Volume) SetInfo(vi info.Volume) error {
	return ffi.SetVolumeInfo(v.sess.Handle(), v.node.ID(), v.partID, vi.Raw())
}

// Tile is one cursor position in the tile-iteration protocol, plus the
// voxel count its owning Volume computes for read/write sizing.
type Tile struct {
	info.VolumeTile
	VoxelCount int32
}

// FirstTile starts a tile-iteration pass over the volume (§ supplemented:
// tile iteration). tupleSize comes from the volume's VolumeInfo.
func (v Volume) FirstTile(tupleSize int32) (Tile, error) {
	raw, err := ffi.GetFirstVolumeTile(v.sess.Handle(), v.node.ID(), v.partID)
	if err != nil {
		return Tile{}, err
	}
	return Tile{VolumeTile: info.NewVolumeTile(raw), VoxelCount: tileVoxelCount(tupleSize)}, nil
}

// NextTile advances the cursor; callers loop while t.IsValid() is true.
func (v Volume) NextTile(t Tile, tupleSize int32) (Tile, error) {
	raw, err := ffi.GetNextVolumeTile(v.sess.Handle(), v.node.ID(), v.partID, t.Raw())
	if err != nil {
		return Tile{}, err
	}
	return Tile{VolumeTile: info.NewVolumeTile(raw), VoxelCount: tileVoxelCount(tupleSize)}, nil
}

// tileVoxelCount mirrors the engine's fixed 8x8x8 tile block, scaled by
// the volume's tuple size (vector volumes store 3 floats per voxel).
func tileVoxelCount(tupleSize int32) int32 {
	const tileEdge = 8
	return tileEdge * tileEdge * tileEdge * tupleSize
}

// ReadTile reads one tile's worth of voxels, filling any out-of-bounds
// cell (at the volume's edge) with fillValue.
func (v Volume) ReadTile(t Tile, fillValue float32) ([]float32, error) {
	return ffi.GetVolumeTileFloatData(v.sess.Handle(), v.node.ID(), v.partID, fillValue, t.Raw(), t.VoxelCount)
}

// WriteTile writes one tile's worth of voxels.
func (v Volume) WriteTile(t Tile, values []float32) error {
	return ffi.SetVolumeTileFloatData(v.sess.Handle(), v.node.ID(), v.partID, t.Raw(), values)
}

// ReadVoxel / WriteVoxel address a single voxel directly, bypassing tile
// iteration — used for sparse edits where tiling the whole grid would
// waste a round trip.
func (v Volume) ReadVoxel(x, y, z int32) ([]float32, error) {
	return ffi.GetVolumeVoxelFloatData(v.sess.Handle(), v.node.ID(), v.partID, x, y, z)
}

func (v Volume) WriteVoxel(x, y, z int32, values []float32) error {
	return ffi.SetVolumeVoxelFloatData(v.sess.Handle(), v.node.ID(), v.partID, x, y, z, values)
}

// ReadTileInt / WriteTileInt mirror ReadTile/WriteTile for int-storage
// volumes (§ supplemented: int32 volume storage — id/flag/mask grids
// rather than density/sdf floats).
func (v Volume) ReadTileInt(t Tile, fillValue int32) ([]int32, error) {
	return ffi.GetVolumeTileIntData(v.sess.Handle(), v.node.ID(), v.partID, fillValue, t.Raw(), t.VoxelCount)
}

func (v Volume) WriteTileInt(t Tile, values []int32) error {
	return ffi.SetVolumeTileIntData(v.sess.Handle(), v.node.ID(), v.partID, t.Raw(), values)
}

// ReadVoxelInt / WriteVoxelInt mirror ReadVoxel/WriteVoxel for
// int-storage volumes.
func (v Volume) ReadVoxelInt(x, y, z int32) ([]int32, error) {
	return ffi.GetVolumeVoxelIntData(v.sess.Handle(), v.node.ID(), v.partID, x, y, z)
}

func (v Volume) WriteVoxelInt(x, y, z int32, values []int32) error {
	return ffi.SetVolumeVoxelIntData(v.sess.Handle(), v.node.ID(), v.partID, x, y, z, values)
}

// HeightfieldSamplingType mirrors HAPI_HeightFieldSamplingType.
type HeightfieldSamplingType int32

const (
	HeightfieldSamplingCornerNode HeightfieldSamplingType = iota
	HeightfieldSamplingCenterNode
)

// Heightfield is the set of nodes CreateHeightfieldInput wires together:
// the heightfield container, its "height" volume, an auto-created mask
// volume, and the merge node that recombines them (§ supplemented).
type Heightfield struct {
	HeightfieldNode node.Node
	HeightNode      node.Node
	MaskNode        node.Node
	MergeNode       node.Node
}

// CreateHeightfieldInput builds a ready-to-edit heightfield under parent.
func CreateHeightfieldInput(sess *session.Session, parent node.Node, name string, xSize, ySize int32, voxelSize float32, sampling HeightfieldSamplingType) (Heightfield, error) {
	hf, h, m, merge, err := ffi.CreateHeightfieldInput(sess.Handle(), parent.ID(), name, xSize, ySize, voxelSize, int32(sampling))
	if err != nil {
		return Heightfield{}, err
	}
	return Heightfield{
		HeightfieldNode: node.New(sess, hf),
		HeightNode:      node.New(sess, h),
		MaskNode:        node.New(sess, m),
		MergeNode:       node.New(sess, merge),
	}, nil
}

// CreateHeightfieldInputVolume adds an extra scalar volume layer (e.g. a
// custom mask) to an existing heightfield.
func CreateHeightfieldInputVolume(sess *session.Session, parent node.Node, name, heightfieldName string, xSize, ySize int32, voxelSize float32) (node.Node, error) {
	id, err := ffi.CreateHeightfieldInputVolumeNode(sess.Handle(), parent.ID(), name, heightfieldName, xSize, ySize, voxelSize)
	if err != nil {
		return node.Node{}, err
	}
	return node.New(sess, id), nil
}
