package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

// GeoInfo/PartInfo accessors. Raw C structs never leave this file: every
// exported function here takes or returns the plain Go mirrors declared in
// types.go (§9 — "no code outside this wrapper layer touches raw pointers
// or handles").

func geoInfoFromC(c C.HAPI_GeoInfo) GeoInfo {
	return GeoInfo{
		Type:                int32(c._type),
		NodeID:              NodeHandle(c.nodeId),
		IsEditable:          c.isEditable != 0,
		IsTemplated:         c.isTemplated != 0,
		IsDisplayGeo:        c.isDisplayGeo != 0,
		HasGeoChanged:       c.hasGeoChanged != 0,
		HasMaterialChanged:  c.hasMaterialChanged != 0,
		PartCount:           int32(c.partCount),
		PointGroupCount:     int32(c.pointGroupCount),
		PrimitiveGroupCount: int32(c.primitiveGroupCount),
	}
}

func GetDisplayGeoInfo(session SessionHandle, objectID NodeHandle) (GeoInfo, error) {
	raw := session.raw()
	var info C.HAPI_GeoInfo
	r := C.HAPI_GetDisplayGeoInfo(&raw, C.HAPI_NodeId(objectID), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return GeoInfo{}, ferr.Context("GetDisplayGeoInfo")
	}
	return geoInfoFromC(info), nil
}

func GetGeoInfo(session SessionHandle, node NodeHandle) (GeoInfo, error) {
	raw := session.raw()
	var info C.HAPI_GeoInfo
	r := C.HAPI_GetGeoInfo(&raw, C.HAPI_NodeId(node), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return GeoInfo{}, ferr.Context("GetGeoInfo")
	}
	return geoInfoFromC(info), nil
}

func partInfoFromC(c C.HAPI_PartInfo) PartInfo {
	return PartInfo{
		ID:                      int32(c.id),
		Name:                    StringHandle(c.nameSH),
		Type:                    int32(c._type),
		FaceCount:               int32(c.faceCount),
		VertexCount:             int32(c.vertexCount),
		PointCount:              int32(c.pointCount),
		PointAttributeCount:     int32(c.attributeCounts[0]),
		VertexAttributeCount:    int32(c.attributeCounts[1]),
		PrimitiveAttributeCount: int32(c.attributeCounts[2]),
		DetailAttributeCount:    int32(c.attributeCounts[3]),
		IsInstanced:             c.isInstanced != 0,
		InstancedPartCount:      int32(c.instancedPartCount),
		InstanceCount:           int32(c.instanceCount),
		HasChanged:              c.hasChanged != 0,
	}
}

func partInfoToC(g PartInfo) C.HAPI_PartInfo {
	var c C.HAPI_PartInfo
	c.id = C.int32_t(g.ID)
	c.nameSH = C.HAPI_StringHandle(g.Name)
	c._type = C.HAPI_PartType(g.Type)
	c.faceCount = C.int32_t(g.FaceCount)
	c.vertexCount = C.int32_t(g.VertexCount)
	c.pointCount = C.int32_t(g.PointCount)
	c.attributeCounts[0] = C.int32_t(g.PointAttributeCount)
	c.attributeCounts[1] = C.int32_t(g.VertexAttributeCount)
	c.attributeCounts[2] = C.int32_t(g.PrimitiveAttributeCount)
	c.attributeCounts[3] = C.int32_t(g.DetailAttributeCount)
	c.isInstanced = boolToChar(g.IsInstanced)
	c.instancedPartCount = C.int32_t(g.InstancedPartCount)
	c.instanceCount = C.int32_t(g.InstanceCount)
	return c
}

func GetPartInfo(session SessionHandle, node NodeHandle, partID int32) (PartInfo, error) {
	raw := session.raw()
	var info C.HAPI_PartInfo
	r := C.HAPI_GetPartInfo(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return PartInfo{}, ferr.Context("GetPartInfo")
	}
	return partInfoFromC(info), nil
}

// GetFaceCounts wraps HAPI_GetFaceCounts.
func GetFaceCounts(session SessionHandle, node NodeHandle, partID, faceCount int32) ([]int32, error) {
	raw := session.raw()
	if faceCount <= 0 {
		return nil, nil
	}
	buf := make([]C.int32_t, faceCount)
	r := C.HAPI_GetFaceCounts(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &buf[0], 0, C.int32_t(faceCount))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetFaceCounts")
	}
	return int32Slice(buf), nil
}

// GetVertexList wraps HAPI_GetVertexList.
func GetVertexList(session SessionHandle, node NodeHandle, partID, vertexCount int32) ([]int32, error) {
	raw := session.raw()
	if vertexCount <= 0 {
		return nil, nil
	}
	buf := make([]C.int32_t, vertexCount)
	r := C.HAPI_GetVertexList(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &buf[0], 0, C.int32_t(vertexCount))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetVertexList")
	}
	return int32Slice(buf), nil
}

// GetGroupNames wraps HAPI_GetGroupNames for the given group type.
func GetGroupNames(session SessionHandle, node NodeHandle, groupType int32, count int32) ([]string, error) {
	raw := session.raw()
	if count <= 0 {
		return nil, nil
	}
	handles := make([]C.HAPI_StringHandle, count)
	r := C.HAPI_GetGroupNames(&raw, C.HAPI_NodeId(node), C.HAPI_GroupType(groupType), &handles[0], count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetGroupNames")
	}
	out := make([]string, count)
	for i, h := range handles {
		s, err := getString(&raw, h)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// GetGroupMembership wraps HAPI_GetGroupMembership.
func GetGroupMembership(session SessionHandle, node NodeHandle, partID, groupType int32, groupName string, elementCount int32) ([]bool, error) {
	raw := session.raw()
	n, err := cString(groupName)
	if err != nil {
		return nil, err
	}
	defer freeCString(n)
	if elementCount <= 0 {
		return nil, nil
	}
	buf := make([]C.HAPI_Bool, elementCount)
	var membership C.HAPI_Bool
	r := C.HAPI_GetGroupMembership(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.HAPI_GroupType(groupType),
		n, &membership, &buf[0], 0, C.int32_t(elementCount))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetGroupMembership")
	}
	out := make([]bool, elementCount)
	for i, v := range buf {
		out[i] = v != 0
	}
	return out, nil
}

// AddGroup / DeleteGroup / SetGroupMembership manage a part's group
// definitions (§4.4 supplemented: groups).
func AddGroup(session SessionHandle, node NodeHandle, partID, groupType int32, groupName string) error {
	raw := session.raw()
	n, err := cString(groupName)
	if err != nil {
		return err
	}
	defer freeCString(n)
	r := C.HAPI_AddGroup(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.HAPI_GroupType(groupType), n)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("AddGroup")
	}
	return nil
}

func DeleteGroup(session SessionHandle, node NodeHandle, partID, groupType int32, groupName string) error {
	raw := session.raw()
	n, err := cString(groupName)
	if err != nil {
		return err
	}
	defer freeCString(n)
	r := C.HAPI_DeleteGroup(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.HAPI_GroupType(groupType), n)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("DeleteGroup")
	}
	return nil
}

func SetGroupMembership(session SessionHandle, node NodeHandle, partID, groupType int32, groupName string, membership []bool) error {
	raw := session.raw()
	n, err := cString(groupName)
	if err != nil {
		return err
	}
	defer freeCString(n)
	if len(membership) == 0 {
		return nil
	}
	buf := make([]C.HAPI_Bool, len(membership))
	for i, v := range membership {
		buf[i] = boolToChar(v)
	}
	r := C.HAPI_SetGroupMembership(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.HAPI_GroupType(groupType),
		n, &buf[0], 0, C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetGroupMembership")
	}
	return nil
}

// CommitGeo / RevertGeo implement the input-geometry write protocol (§4.4).
func CommitGeo(session SessionHandle, node NodeHandle) error {
	raw := session.raw()
	r := C.HAPI_CommitGeo(&raw, C.HAPI_NodeId(node))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("CommitGeo")
	}
	return nil
}

func RevertGeo(session SessionHandle, node NodeHandle) error {
	raw := session.raw()
	r := C.HAPI_RevertGeo(&raw, C.HAPI_NodeId(node))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("RevertGeo")
	}
	return nil
}

// SetPartInfo / SetCurveInfo / SetCurveCounts set up input geometry shape
// before attribute writes + CommitGeo (§4.4).
func SetPartInfo(session SessionHandle, node NodeHandle, info PartInfo) error {
	raw := session.raw()
	c := partInfoToC(info)
	r := C.HAPI_SetPartInfo(&raw, C.HAPI_NodeId(node), &c)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetPartInfo")
	}
	return nil
}

func SetCurveInfo(session SessionHandle, node NodeHandle, partID int32, info CurveInfo) error {
	raw := session.raw()
	var c C.HAPI_CurveInfo
	c.curveType = C.HAPI_CurveType(info.CurveType)
	c.curveCount = C.int32_t(info.CurveCount)
	c.vertexCount = C.int32_t(info.VertexCount)
	c.isKnotted = boolToChar(info.Knotted)
	c.isPeriodic = boolToChar(info.Periodic)
	c.order = C.int32_t(info.Order)
	c.hasKnots = boolToChar(info.HasKnots)
	c.isRational = boolToChar(info.IsRational)
	r := C.HAPI_SetCurveInfo(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &c)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetCurveInfo")
	}
	return nil
}

func SetCurveCounts(session SessionHandle, node NodeHandle, partID int32, counts []int32) error {
	raw := session.raw()
	if len(counts) == 0 {
		return nil
	}
	buf := make([]C.int32_t, len(counts))
	for i, v := range counts {
		buf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetCurveCounts(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &buf[0], 0, C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetCurveCounts")
	}
	return nil
}

func SetVertexList(session SessionHandle, node NodeHandle, partID int32, list []int32) error {
	raw := session.raw()
	if len(list) == 0 {
		return nil
	}
	buf := make([]C.int32_t, len(list))
	for i, v := range list {
		buf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetVertexList(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &buf[0], 0, C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetVertexList")
	}
	return nil
}

func SetFaceCounts(session SessionHandle, node NodeHandle, partID int32, counts []int32) error {
	raw := session.raw()
	if len(counts) == 0 {
		return nil
	}
	buf := make([]C.int32_t, len(counts))
	for i, v := range counts {
		buf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetFaceCounts(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &buf[0], 0, C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetFaceCounts")
	}
	return nil
}

// CreateInputCurveNode wraps HAPI_CreateInputCurveNode, creating a fresh
// SOP whose geometry is driven entirely by SetInputCurveInfo/
// SetInputCurvePositions rather than cooked from upstream inputs (§4.4
// supplemented: input curves).
func CreateInputCurveNode(session SessionHandle, name string) (NodeHandle, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return -1, err
	}
	defer freeCString(n)
	var id C.HAPI_NodeId
	r := C.HAPI_CreateInputCurveNode(&raw, &id, n)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("CreateInputCurveNode")
	}
	return NodeHandle(id), nil
}

// SetInputCurveInfo wraps HAPI_SetInputCurveInfo, configuring an input
// curve's type/order/closure/direction/breakpoint interpretation ahead of
// SetInputCurvePositions.
func SetInputCurveInfo(session SessionHandle, node NodeHandle, partID int32, info InputCurveInfo) error {
	raw := session.raw()
	var c C.HAPI_InputCurveInfo
	c.curveType = C.HAPI_CurveType(info.CurveType)
	c.order = C.int32_t(info.Order)
	c.closed = boolToChar(info.Closed)
	c.reverse = boolToChar(info.Reverse)
	c.inputMethod = C.HAPI_InputCurveMethod(info.InputMethod)
	c.breakpointParameterization = C.HAPI_InputCurveParameterization(info.BreakpointParameterization)
	r := C.HAPI_SetInputCurveInfo(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &c)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetInputCurveInfo")
	}
	return nil
}

// SetInputCurvePositions wraps HAPI_SetInputCurvePositions, writing the
// flat [x0,y0,z0,x1,...] position array for an input curve's breakpoints.
func SetInputCurvePositions(session SessionHandle, node NodeHandle, partID int32, positions []float32) error {
	raw := session.raw()
	if len(positions) == 0 {
		return nil
	}
	buf := make([]C.float, len(positions))
	for i, v := range positions {
		buf[i] = C.float(v)
	}
	r := C.HAPI_SetInputCurvePositions(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &buf[0], 0, C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetInputCurvePositions")
	}
	return nil
}

// SetInputCurvePositionsRotationsScales wraps
// HAPI_SetInputCurvePositionsRotationsScales, the richer variant that
// additionally carries a per-breakpoint quaternion rotation and
// non-uniform scale (used when the curve feeds a copy-to-points-style
// transform rather than plain position data). rotations is a flat
// [x,y,z,w, ...] array, scales a flat [x,y,z, ...] array; either may be
// nil to omit that channel.
func SetInputCurvePositionsRotationsScales(session SessionHandle, node NodeHandle, partID int32, positions, rotations, scales []float32) error {
	raw := session.raw()
	if len(positions) == 0 {
		return nil
	}
	posBuf := make([]C.float, len(positions))
	for i, v := range positions {
		posBuf[i] = C.float(v)
	}

	var rotPtr, scalePtr *C.float
	var rotLen, scaleLen C.int32_t
	if len(rotations) > 0 {
		rotBuf := make([]C.float, len(rotations))
		for i, v := range rotations {
			rotBuf[i] = C.float(v)
		}
		rotPtr = &rotBuf[0]
		rotLen = C.int32_t(len(rotBuf))
	}
	if len(scales) > 0 {
		scaleBuf := make([]C.float, len(scales))
		for i, v := range scales {
			scaleBuf[i] = C.float(v)
		}
		scalePtr = &scaleBuf[0]
		scaleLen = C.int32_t(len(scaleBuf))
	}

	r := C.HAPI_SetInputCurvePositionsRotationsScales(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID),
		&posBuf[0], 0, C.int32_t(len(posBuf)),
		rotPtr, 0, rotLen,
		scalePtr, 0, scaleLen)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetInputCurvePositionsRotationsScales")
	}
	return nil
}

func int32Slice(buf []C.int32_t) []int32 {
	out := make([]int32, len(buf))
	for i, v := range buf {
		out[i] = int32(v)
	}
	return out
}
