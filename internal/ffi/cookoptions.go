package ffi

/*
#include <HAPI/HAPI.h>
*/
import "C"

// CookOptions mirrors HAPI_CookOptions (§6.1).
type CookOptions struct {
	SplitGeosByGroup            bool
	SplitGeosByAttribute        string
	MaxVerticesPerPrimitive     int32
	RefineCurveToLinear         bool
	CurveRefineLOD              float32
	ClearErrorsAndWarnings      bool
	CookTemplatedGeos           bool
	SplitPointsByVertexAttribs  bool
	HandleBoxPartTypes          bool
	HandleSpherePartTypes       bool
	CheckPartChanges            bool
	CacheMeshTopology           bool
	PreferOutputNodes           bool
	PackedPrimInstancingMode    int32
	SplitAttrSH                 int32
}

func DefaultCookOptions() CookOptions {
	return CookOptions{
		MaxVerticesPerPrimitive: -1,
		CheckPartChanges:        true,
		ClearErrorsAndWarnings:  true,
	}
}

func (o CookOptions) raw() C.HAPI_CookOptions {
	var v C.HAPI_CookOptions
	v.splitGeosByGroup = boolToChar(o.SplitGeosByGroup)
	v.maxVerticesPerPrimitive = C.int32_t(o.MaxVerticesPerPrimitive)
	v.refineCurveToLinear = boolToChar(o.RefineCurveToLinear)
	v.curveRefineLOD = C.float(o.CurveRefineLOD)
	v.clearErrorsAndWarnings = boolToChar(o.ClearErrorsAndWarnings)
	v.cookTemplatedGeos = boolToChar(o.CookTemplatedGeos)
	v.splitPointsByVertexAttributes = boolToChar(o.SplitPointsByVertexAttribs)
	v.handleBoxPartTypes = boolToChar(o.HandleBoxPartTypes)
	v.handleSpherePartTypes = boolToChar(o.HandleSpherePartTypes)
	v.checkPartChanges = boolToChar(o.CheckPartChanges)
	v.cacheMeshTopology = boolToChar(o.CacheMeshTopology)
	v.preferOutputNodes = boolToChar(o.PreferOutputNodes)
	v.packedPrimInstancingMode = C.int32_t(o.PackedPrimInstancingMode)
	return v
}
