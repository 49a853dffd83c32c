package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

// LoadAssetLibraryFromFile wraps HAPI_LoadAssetLibraryFromFile, returning the
// library handle used to enumerate asset names (§4.2 supplemented: asset
// library/default-value views).
func LoadAssetLibraryFromFile(session SessionHandle, path string, allowOverwrite bool) (int32, error) {
	raw := session.raw()
	p, err := cString(path)
	if err != nil {
		return -1, err
	}
	defer freeCString(p)
	var libID C.int32_t
	r := C.HAPI_LoadAssetLibraryFromFile(&raw, p, boolToChar(allowOverwrite), &libID)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("LoadAssetLibraryFromFile")
	}
	return int32(libID), nil
}

// GetAvailableAssetCount / GetAvailableAssets enumerate the operator names
// defined by a loaded asset library.
func GetAvailableAssetCount(session SessionHandle, libraryID int32) (int32, error) {
	raw := session.raw()
	var count C.int32_t
	r := C.HAPI_GetAvailableAssetCount(&raw, C.HAPI_AssetLibraryId(libraryID), &count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("GetAvailableAssetCount")
	}
	return int32(count), nil
}

func GetAvailableAssets(session SessionHandle, libraryID int32, count int32) ([]string, error) {
	raw := session.raw()
	if count <= 0 {
		return nil, nil
	}
	handles := make([]C.HAPI_StringHandle, count)
	r := C.HAPI_GetAvailableAssets(&raw, C.HAPI_AssetLibraryId(libraryID), &handles[0], count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetAvailableAssets")
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

// AssetDefParmCounts mirrors the five counts HAPI_GetAssetDefinitionParmCounts
// returns — how many of each storage kind an asset's default parameter
// values span, needed to size the buffers GetAssetDefinitionParmValues
// fills in one round trip (§4.2 supplemented: asset default-value views).
type AssetDefParmCounts struct {
	ParmCount   int32
	IntCount    int32
	FloatCount  int32
	StringCount int32
	ChoiceCount int32
}

// GetAssetDefinitionParmCounts wraps HAPI_GetAssetDefinitionParmCounts.
func GetAssetDefinitionParmCounts(session SessionHandle, libraryID int32, assetName string) (AssetDefParmCounts, error) {
	raw := session.raw()
	name, err := cString(assetName)
	if err != nil {
		return AssetDefParmCounts{}, err
	}
	defer freeCString(name)
	var c AssetDefParmCounts
	r := C.HAPI_GetAssetDefinitionParmCounts(&raw, C.HAPI_AssetLibraryId(libraryID), name,
		(*C.int32_t)(&c.ParmCount), (*C.int32_t)(&c.IntCount), (*C.int32_t)(&c.FloatCount),
		(*C.int32_t)(&c.StringCount), (*C.int32_t)(&c.ChoiceCount))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return AssetDefParmCounts{}, ferr.Context("GetAssetDefinitionParmCounts")
	}
	return c, nil
}

// GetAssetDefinitionParmInfos wraps HAPI_GetAssetDefinitionParmInfos,
// fetching the ParmInfo shape of every default parameter on an
// as-yet-uninstantiated asset definition.
func GetAssetDefinitionParmInfos(session SessionHandle, libraryID int32, assetName string, count int32) ([]ParmInfo, error) {
	raw := session.raw()
	if count <= 0 {
		return nil, nil
	}
	name, err := cString(assetName)
	if err != nil {
		return nil, err
	}
	defer freeCString(name)
	infos := make([]C.HAPI_ParmInfo, count)
	r := C.HAPI_GetAssetDefinitionParmInfos(&raw, C.HAPI_AssetLibraryId(libraryID), name, &infos[0], 0, C.int32_t(count))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetAssetDefinitionParmInfos")
	}
	out := make([]ParmInfo, count)
	for i, p := range infos {
		out[i] = ParmInfo{
			ID:                 ParmHandle(p.id),
			ParentID:           ParmHandle(p.parentId),
			Type:               int32(p._type),
			ScriptType:         int32(p.scriptType),
			Permissions:        int32(p.permissions),
			Size:               int32(p.size),
			ChoiceCount:        int32(p.choiceCount),
			ChoiceListType:     int32(p.choiceListType),
			Name:               StringHandle(p.nameSH),
			Label:              StringHandle(p.labelSH),
			IntValuesIndex:     int32(p.intValuesIndex),
			FloatValuesIndex:   int32(p.floatValuesIndex),
			StringValuesIndex:  int32(p.stringValuesIndex),
			ChoiceIndex:        int32(p.choiceIndex),
			InvisibleFlag:      p.invisible != 0,
			DisabledFlag:       p.disabled != 0,
			SpareFlag:          p.spare != 0,
			JoinNext:           p.joinNext != 0,
			IsChildOfMultiparm: p.isChildOfMultiParm != 0,
			InstanceNum:        int32(p.instanceNum),
		}
	}
	return out, nil
}

// AssetDefParmValues is the flat default-value payload
// HAPI_GetAssetDefinitionParmValues returns for an asset definition —
// parallel to the live per-node int/float/string arrays a parameter's
// ParmInfo indexes into, but sourced from the un-instantiated definition.
type AssetDefParmValues struct {
	Ints    []int32
	Floats  []float32
	Strings []string
	Choices []ParmChoiceInfo
}

// GetAssetDefinitionParmValues wraps HAPI_GetAssetDefinitionParmValues.
func GetAssetDefinitionParmValues(session SessionHandle, libraryID int32, assetName string, counts AssetDefParmCounts) (AssetDefParmValues, error) {
	raw := session.raw()
	name, err := cString(assetName)
	if err != nil {
		return AssetDefParmValues{}, err
	}
	defer freeCString(name)

	ints := make([]C.int32_t, counts.IntCount)
	floats := make([]C.float, counts.FloatCount)
	strHandles := make([]C.HAPI_StringHandle, counts.StringCount)
	choices := make([]C.HAPI_ParmChoiceInfo, counts.ChoiceCount)

	var intPtr *C.int32_t
	if counts.IntCount > 0 {
		intPtr = &ints[0]
	}
	var floatPtr *C.float
	if counts.FloatCount > 0 {
		floatPtr = &floats[0]
	}
	var strPtr *C.HAPI_StringHandle
	if counts.StringCount > 0 {
		strPtr = &strHandles[0]
	}
	var choicePtr *C.HAPI_ParmChoiceInfo
	if counts.ChoiceCount > 0 {
		choicePtr = &choices[0]
	}

	r := C.HAPI_GetAssetDefinitionParmValues(&raw, C.HAPI_AssetLibraryId(libraryID), name,
		intPtr, 0, C.int32_t(counts.IntCount),
		floatPtr, 0, C.int32_t(counts.FloatCount),
		boolToChar(false), strPtr, 0, C.int32_t(counts.StringCount),
		choicePtr, 0, C.int32_t(counts.ChoiceCount))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return AssetDefParmValues{}, ferr.Context("GetAssetDefinitionParmValues")
	}

	out := AssetDefParmValues{
		Ints:   int32Slice(ints),
		Floats: make([]float32, len(floats)),
	}
	for i, v := range floats {
		out.Floats[i] = float32(v)
	}
	out.Strings = make([]string, len(strHandles))
	for i, h := range strHandles {
		s, err := getString(&raw, h)
		if err != nil {
			return AssetDefParmValues{}, err
		}
		out.Strings[i] = s
	}
	out.Choices = make([]ParmChoiceInfo, len(choices))
	for i, c := range choices {
		out.Choices[i] = ParmChoiceInfo{
			Label:        StringHandle(c.labelSH),
			Value:        StringHandle(c.valueSH),
			ParentParmID: ParmHandle(c.parentParmId),
		}
	}
	return out, nil
}

// GetAssetInfo wraps HAPI_GetAssetInfo.
func GetAssetInfo(session SessionHandle, node NodeHandle) (AssetInfo, error) {
	raw := session.raw()
	var info C.HAPI_AssetInfo
	r := C.HAPI_GetAssetInfo(&raw, C.HAPI_NodeId(node), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return AssetInfo{}, ferr.Context("GetAssetInfo")
	}
	return AssetInfo{
		NodeID:              NodeHandle(info.nodeId),
		ObjectNodeID:        NodeHandle(info.objectNodeId),
		HasEverCooked:       info.hasEverCooked != 0,
		Name:                StringHandle(info.nameSH),
		Label:               StringHandle(info.labelSH),
		FilePath:            StringHandle(info.filePathSH),
		Version:             StringHandle(info.versionSH),
		FullOpName:          StringHandle(info.fullOpNameSH),
		HelpTextPath:        StringHandle(info.helpTextPathSH),
		HelpURL:             StringHandle(info.helpURLSH),
		ObjectCount:         int32(info.objectCount),
		HandleCount:         int32(info.handleCount),
		TransformInputCount: int32(info.transformInputCount),
		GeoInputCount:       int32(info.geoInputCount),
		GeoOutputCount:      int32(info.geoOutputCount),
	}, nil
}

// GetNodeInfo wraps HAPI_GetNodeInfo.
func GetNodeInfo(session SessionHandle, node NodeHandle) (NodeInfo, error) {
	raw := session.raw()
	var info C.HAPI_NodeInfo
	r := C.HAPI_GetNodeInfo(&raw, C.HAPI_NodeId(node), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return NodeInfo{}, ferr.Context("GetNodeInfo")
	}
	return NodeInfo{
		ID:                  NodeHandle(info.id),
		ParentID:            NodeHandle(info.parentId),
		Type:                NodeType(info._type),
		IsValid:             info.isValid != 0,
		TotalCookCount:      int32(info.totalCookCount),
		UniqueHoudiniNodeID: int32(info.uniqueHoudiniNodeId),
		ParmCount:           int32(info.parmCount),
		ParmIntCount:        int32(info.parmIntValueCount),
		ParmFloatCount:      int32(info.parmFloatValueCount),
		ParmStringCount:     int32(info.parmStringValueCount),
		ParmChoiceCount:     int32(info.parmChoiceCount),
		ChildNodeCount:      int32(info.childNodeCount),
		InputCount:          int32(info.inputCount),
		OutputCount:         int32(info.outputCount),
		CreatorNodeID:       NodeHandle(info.createdPostAssetLoad),
		IsTimeDependent:     info.isTimeDependent != 0,
	}, nil
}

// GetParameters wraps HAPI_GetParameters, bulk-fetching every ParmInfo on a
// node in one round trip (§4.3).
func GetParameters(session SessionHandle, node NodeHandle, count int32) ([]ParmInfo, error) {
	raw := session.raw()
	if count <= 0 {
		return nil, nil
	}
	infos := make([]C.HAPI_ParmInfo, count)
	r := C.HAPI_GetParameters(&raw, C.HAPI_NodeId(node), &infos[0], 0, count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetParameters")
	}
	out := make([]ParmInfo, count)
	for i, p := range infos {
		out[i] = ParmInfo{
			ID:                 ParmHandle(p.id),
			ParentID:           ParmHandle(p.parentId),
			Type:               int32(p._type),
			ScriptType:         int32(p.scriptType),
			Permissions:        int32(p.permissions),
			Size:               int32(p.size),
			ChoiceCount:        int32(p.choiceCount),
			ChoiceListType:     int32(p.choiceListType),
			Name:               StringHandle(p.nameSH),
			Label:              StringHandle(p.labelSH),
			IntValuesIndex:     int32(p.intValuesIndex),
			FloatValuesIndex:   int32(p.floatValuesIndex),
			StringValuesIndex:  int32(p.stringValuesIndex),
			ChoiceIndex:        int32(p.choiceIndex),
			InvisibleFlag:      p.invisible != 0,
			DisabledFlag:       p.disabled != 0,
			SpareFlag:          p.spare != 0,
			JoinNext:           p.joinNext != 0,
			IsChildOfMultiparm: p.isChildOfMultiParm != 0,
			InstanceNum:        int32(p.instanceNum),
		}
	}
	return out, nil
}

// GetParmChoiceLists wraps HAPI_GetParmChoiceLists, used to build menu-style
// parameter choice views.
func GetParmChoiceLists(session SessionHandle, node NodeHandle, count int32) ([]ParmChoiceInfo, error) {
	raw := session.raw()
	if count <= 0 {
		return nil, nil
	}
	infos := make([]C.HAPI_ParmChoiceInfo, count)
	r := C.HAPI_GetParmChoiceLists(&raw, C.HAPI_NodeId(node), &infos[0], 0, count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetParmChoiceLists")
	}
	out := make([]ParmChoiceInfo, count)
	for i, c := range infos {
		out[i] = ParmChoiceInfo{
			Label:        StringHandle(c.labelSH),
			Value:        StringHandle(c.valueSH),
			ParentParmID: ParmHandle(c.parentParmId),
		}
	}
	return out, nil
}
