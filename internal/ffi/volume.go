package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

func volumeInfoFromC(c C.HAPI_VolumeInfo) VolumeInfo {
	return VolumeInfo{
		NameHandle:     StringHandle(c.nameSH),
		Type:           int32(c._type),
		XLength:        int32(c.xLength),
		YLength:        int32(c.yLength),
		ZLength:        int32(c.zLength),
		MinX:           int32(c.minX),
		MinY:           int32(c.minY),
		MinZ:           int32(c.minZ),
		TupleSize:      int32(c.tupleSize),
		StorageType:    int32(c.storage),
		TileSize:       int32(c.tileSize),
		HasTaper:       c.hasTaper != 0,
		TransformScale: float32(c.transform.scale[0]),
	}
}

func volumeInfoToC(v VolumeInfo) C.HAPI_VolumeInfo {
	var c C.HAPI_VolumeInfo
	c._type = C.HAPI_VolumeType(v.Type)
	c.xLength = C.int32_t(v.XLength)
	c.yLength = C.int32_t(v.YLength)
	c.zLength = C.int32_t(v.ZLength)
	c.minX = C.int32_t(v.MinX)
	c.minY = C.int32_t(v.MinY)
	c.minZ = C.int32_t(v.MinZ)
	c.tupleSize = C.int32_t(v.TupleSize)
	c.storage = C.HAPI_StorageType(v.StorageType)
	c.tileSize = C.int32_t(v.TileSize)
	c.hasTaper = boolToChar(v.HasTaper)
	return c
}

func volumeTileInfoFromC(c C.HAPI_VolumeTileInfo) VolumeTileInfo {
	return VolumeTileInfo{
		MinX:    int32(c.minX),
		MinY:    int32(c.minY),
		MinZ:    int32(c.minZ),
		IsValid: c.isValid != 0,
	}
}

func volumeTileInfoToC(v VolumeTileInfo) C.HAPI_VolumeTileInfo {
	var c C.HAPI_VolumeTileInfo
	c.minX = C.int32_t(v.MinX)
	c.minY = C.int32_t(v.MinY)
	c.minZ = C.int32_t(v.MinZ)
	c.isValid = boolToChar(v.IsValid)
	return c
}

// GetVolumeInfo wraps HAPI_GetVolumeInfo.
func GetVolumeInfo(session SessionHandle, node NodeHandle, partID int32) (VolumeInfo, error) {
	raw := session.raw()
	var info C.HAPI_VolumeInfo
	r := C.HAPI_GetVolumeInfo(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return VolumeInfo{}, ferr.Context("GetVolumeInfo")
	}
	return volumeInfoFromC(info), nil
}

func SetVolumeInfo(session SessionHandle, node NodeHandle, partID int32, info VolumeInfo) error {
	raw := session.raw()
	c := volumeInfoToC(info)
	r := C.HAPI_SetVolumeInfo(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &c)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetVolumeInfo")
	}
	return nil
}

// GetFirstVolumeTile / GetNextVolumeTile drive the tile-iteration protocol
// (§4.4 supplemented: volume tile iteration).
func GetFirstVolumeTile(session SessionHandle, node NodeHandle, partID int32) (VolumeTileInfo, error) {
	raw := session.raw()
	var tile C.HAPI_VolumeTileInfo
	r := C.HAPI_GetFirstVolumeTile(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &tile)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return VolumeTileInfo{}, ferr.Context("GetFirstVolumeTile")
	}
	return volumeTileInfoFromC(tile), nil
}

func GetNextVolumeTile(session SessionHandle, node NodeHandle, partID int32, tile VolumeTileInfo) (VolumeTileInfo, error) {
	raw := session.raw()
	c := volumeTileInfoToC(tile)
	r := C.HAPI_GetNextVolumeTile(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &c)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return VolumeTileInfo{}, ferr.Context("GetNextVolumeTile")
	}
	return volumeTileInfoFromC(c), nil
}

// GetVolumeTileFloatData / SetVolumeTileFloatData read/write one tile's
// worth of voxels (fixed 8x8x8, short-circuited by the engine at volume
// edges) as a flat float32 buffer.
func GetVolumeTileFloatData(session SessionHandle, node NodeHandle, partID int32, fillValue float32, tile VolumeTileInfo, voxelCount int32) ([]float32, error) {
	raw := session.raw()
	c := volumeTileInfoToC(tile)
	if voxelCount <= 0 {
		return nil, nil
	}
	buf := make([]C.float, voxelCount)
	r := C.HAPI_GetVolumeTileFloatData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.float(fillValue), &c, &buf[0], C.int32_t(voxelCount))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetVolumeTileFloatData")
	}
	out := make([]float32, voxelCount)
	for i, v := range buf {
		out[i] = float32(v)
	}
	return out, nil
}

func SetVolumeTileFloatData(session SessionHandle, node NodeHandle, partID int32, tile VolumeTileInfo, values []float32) error {
	raw := session.raw()
	c := volumeTileInfoToC(tile)
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.float, len(values))
	for i, v := range values {
		buf[i] = C.float(v)
	}
	r := C.HAPI_SetVolumeTileFloatData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &c, &buf[0], C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetVolumeTileFloatData")
	}
	return nil
}

// GetVolumeVoxelFloatData / SetVolumeVoxelFloatData address a single voxel
// directly by (x, y, z), used by callers that don't need tile batching.
func GetVolumeVoxelFloatData(session SessionHandle, node NodeHandle, partID, x, y, z int32) ([]float32, error) {
	raw := session.raw()
	info, err := GetVolumeInfo(session, node, partID)
	if err != nil {
		return nil, err
	}
	buf := make([]C.float, info.TupleSize)
	r := C.HAPI_GetVolumeVoxelFloatData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.int32_t(x), C.int32_t(y), C.int32_t(z), &buf[0], C.int32_t(info.TupleSize))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetVolumeVoxelFloatData")
	}
	out := make([]float32, len(buf))
	for i, v := range buf {
		out[i] = float32(v)
	}
	return out, nil
}

func SetVolumeVoxelFloatData(session SessionHandle, node NodeHandle, partID, x, y, z int32, values []float32) error {
	raw := session.raw()
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.float, len(values))
	for i, v := range values {
		buf[i] = C.float(v)
	}
	r := C.HAPI_SetVolumeVoxelFloatData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.int32_t(x), C.int32_t(y), C.int32_t(z), &buf[0], C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetVolumeVoxelFloatData")
	}
	return nil
}

// GetVolumeTileIntData / SetVolumeTileIntData mirror the float tile
// variants for int-storage volumes (§4.4 supplemented: int32 volume
// storage — e.g. id/flag fields rather than density/sdf floats).
func GetVolumeTileIntData(session SessionHandle, node NodeHandle, partID int32, fillValue int32, tile VolumeTileInfo, voxelCount int32) ([]int32, error) {
	raw := session.raw()
	c := volumeTileInfoToC(tile)
	if voxelCount <= 0 {
		return nil, nil
	}
	buf := make([]C.int32_t, voxelCount)
	r := C.HAPI_GetVolumeTileIntData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.int32_t(fillValue), &c, &buf[0], C.int32_t(voxelCount))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetVolumeTileIntData")
	}
	return int32Slice(buf), nil
}

func SetVolumeTileIntData(session SessionHandle, node NodeHandle, partID int32, tile VolumeTileInfo, values []int32) error {
	raw := session.raw()
	c := volumeTileInfoToC(tile)
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.int32_t, len(values))
	for i, v := range values {
		buf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetVolumeTileIntData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &c, &buf[0], C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetVolumeTileIntData")
	}
	return nil
}

// GetVolumeVoxelIntData / SetVolumeVoxelIntData address a single voxel's
// int-storage data directly by (x, y, z).
func GetVolumeVoxelIntData(session SessionHandle, node NodeHandle, partID, x, y, z int32) ([]int32, error) {
	raw := session.raw()
	info, err := GetVolumeInfo(session, node, partID)
	if err != nil {
		return nil, err
	}
	buf := make([]C.int32_t, info.TupleSize)
	r := C.HAPI_GetVolumeVoxelIntData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.int32_t(x), C.int32_t(y), C.int32_t(z), &buf[0], C.int32_t(info.TupleSize))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetVolumeVoxelIntData")
	}
	return int32Slice(buf), nil
}

func SetVolumeVoxelIntData(session SessionHandle, node NodeHandle, partID, x, y, z int32, values []int32) error {
	raw := session.raw()
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.int32_t, len(values))
	for i, v := range values {
		buf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetVolumeVoxelIntData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.int32_t(x), C.int32_t(y), C.int32_t(z), &buf[0], C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetVolumeVoxelIntData")
	}
	return nil
}

// CreateHeightfieldInput / CreateHeightfieldInputVolumeNode wrap the
// heightfield-creation convenience calls (§ supplemented: heightfield
// creation).
func CreateHeightfieldInput(session SessionHandle, parent NodeHandle, name string, xSize, ySize int32, voxelSize float32, samplingType int32) (NodeHandle, NodeHandle, NodeHandle, NodeHandle, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return -1, -1, -1, -1, err
	}
	defer freeCString(n)
	var heightfieldNode, heightNode, maskNode, mergeNode C.HAPI_NodeId
	r := C.HAPI_CreateHeightfieldInput(&raw, C.HAPI_NodeId(parent), n, C.int32_t(xSize), C.int32_t(ySize),
		C.float(voxelSize), C.HAPI_HeightFieldSamplingType(samplingType), &heightfieldNode, &heightNode, &maskNode, &mergeNode)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, -1, -1, -1, ferr.Context("CreateHeightfieldInput")
	}
	return NodeHandle(heightfieldNode), NodeHandle(heightNode), NodeHandle(maskNode), NodeHandle(mergeNode), nil
}

func CreateHeightfieldInputVolumeNode(session SessionHandle, parent NodeHandle, name, heightfieldName string, xSize, ySize int32, voxelSize float32) (NodeHandle, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return -1, err
	}
	defer freeCString(n)
	hn, err := cString(heightfieldName)
	if err != nil {
		return -1, err
	}
	defer freeCString(hn)
	var id C.HAPI_NodeId
	r := C.HAPI_CreateHeightfieldInputVolumeNode(&raw, C.HAPI_NodeId(parent), &id, n, C.int32_t(xSize), C.int32_t(ySize), C.float(voxelSize))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("CreateHeightfieldInputVolumeNode")
	}
	return NodeHandle(id), nil
}
