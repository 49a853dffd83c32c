package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// Volume describes a volume primitive's voxel-grid shape (§4.4
// supplemented: volume/heightfield support).
type Volume struct {
	raw ffi.VolumeInfo
}

func NewVolume(raw ffi.VolumeInfo) Volume { return Volume{raw: raw} }

func BuildVolume(xLength, yLength, zLength, tupleSize, storageType, tileSize int32) Volume {
	return Volume{raw: ffi.VolumeInfo{
		XLength:     xLength,
		YLength:     yLength,
		ZLength:     zLength,
		TupleSize:   tupleSize,
		StorageType: storageType,
		TileSize:    tileSize,
	}}
}

func (v Volume) Type() int32        { return v.raw.Type }
func (v Volume) XLength() int32     { return v.raw.XLength }
func (v Volume) YLength() int32     { return v.raw.YLength }
func (v Volume) ZLength() int32     { return v.raw.ZLength }
func (v Volume) MinX() int32        { return v.raw.MinX }
func (v Volume) MinY() int32        { return v.raw.MinY }
func (v Volume) MinZ() int32        { return v.raw.MinZ }
func (v Volume) TupleSize() int32   { return v.raw.TupleSize }
func (v Volume) StorageType() int32 { return v.raw.StorageType }
func (v Volume) TileSize() int32    { return v.raw.TileSize }
func (v Volume) HasTaper() bool     { return v.raw.HasTaper }
func (v Volume) Raw() ffi.VolumeInfo { return v.raw }

// VolumeTile is one cursor position in the tile-iteration protocol: call
// ffi.GetFirstVolumeTile, read/write its voxel block, then advance with
// ffi.GetNextVolumeTile until IsValid is false.
type VolumeTile struct {
	raw ffi.VolumeTileInfo
}

func NewVolumeTile(raw ffi.VolumeTileInfo) VolumeTile { return VolumeTile{raw: raw} }

func (t VolumeTile) MinX() int32    { return t.raw.MinX }
func (t VolumeTile) MinY() int32    { return t.raw.MinY }
func (t VolumeTile) MinZ() int32    { return t.raw.MinZ }
func (t VolumeTile) IsValid() bool  { return t.raw.IsValid }
func (t VolumeTile) Raw() ffi.VolumeTileInfo { return t.raw }
