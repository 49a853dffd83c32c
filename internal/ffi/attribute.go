package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

// AttributeOwner / AttributeStorage mirror HAPI_AttributeOwner /
// HAPI_StorageType; the geometry package builds its typed Attribute matrix
// (owner x storage x tuple_size x count, §4.4) on top of these.
type AttributeOwner int32
type AttributeStorage int32

func attributeInfoFromC(c C.HAPI_AttributeInfo) AttributeInfo {
	return AttributeInfo{
		Exists:             c.exists != 0,
		Owner:              AttributeOwner(c.owner),
		Storage:            AttributeStorage(c.storage),
		Count:              int32(c.count),
		TupleSize:          int32(c.tupleSize),
		TotalArrayElements: int64(c.totalArrayElements),
		TypeInfo:           int32(c.typeInfo),
	}
}

func attributeInfoToC(a AttributeInfo) C.HAPI_AttributeInfo {
	var c C.HAPI_AttributeInfo
	c.exists = boolToChar(a.Exists)
	c.owner = C.HAPI_AttributeOwner(a.Owner)
	c.storage = C.HAPI_StorageType(a.Storage)
	c.count = C.int32_t(a.Count)
	c.tupleSize = C.int32_t(a.TupleSize)
	c.totalArrayElements = C.int64_t(a.TotalArrayElements)
	c.typeInfo = C.HAPI_AttributeTypeInfo(a.TypeInfo)
	return c
}

func GetAttributeNames(session SessionHandle, node NodeHandle, partID int32, owner AttributeOwner, count int32) ([]string, error) {
	raw := session.raw()
	if count <= 0 {
		return nil, nil
	}
	handles := make([]C.HAPI_StringHandle, count)
	r := C.HAPI_GetAttributeNames(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), C.HAPI_AttributeOwner(owner), &handles[0], count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetAttributeNames")
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

func GetAttributeInfo(session SessionHandle, node NodeHandle, partID int32, name string, owner AttributeOwner) (AttributeInfo, error) {
	raw := session.raw()
	var info C.HAPI_AttributeInfo
	n, err := cString(name)
	if err != nil {
		return AttributeInfo{}, err
	}
	defer freeCString(n)
	r := C.HAPI_GetAttributeInfo(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, C.HAPI_AttributeOwner(owner), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return AttributeInfo{}, ferr.Context("GetAttributeInfo")
	}
	return attributeInfoFromC(info), nil
}

// GetAttributeFloatData reads a tuple_size*count flat float32 buffer.
func GetAttributeFloatData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo) ([]float32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	total := info.Count * info.TupleSize
	if total <= 0 {
		return nil, nil
	}
	buf := make([]C.float, total)
	r := C.HAPI_GetAttributeFloatData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, -1, &buf[0], 0, cInfo.count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetAttributeFloatData")
	}
	out := make([]float32, total)
	for i, v := range buf {
		out[i] = float32(v)
	}
	return out, nil
}

func SetAttributeFloatData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, values []float32) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.float, len(values))
	for i, v := range values {
		buf[i] = C.float(v)
	}
	r := C.HAPI_SetAttributeFloatData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, &buf[0], 0, cInfo.count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetAttributeFloatData")
	}
	return nil
}

// GetAttributeIntData / SetAttributeIntData mirror the float variants.
func GetAttributeIntData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo) ([]int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	total := info.Count * info.TupleSize
	if total <= 0 {
		return nil, nil
	}
	buf := make([]C.int32_t, total)
	r := C.HAPI_GetAttributeIntData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, -1, &buf[0], 0, cInfo.count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetAttributeIntData")
	}
	return int32Slice(buf), nil
}

func SetAttributeIntData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, values []int32) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.int32_t, len(values))
	for i, v := range values {
		buf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetAttributeIntData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, &buf[0], 0, cInfo.count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetAttributeIntData")
	}
	return nil
}

// GetAttributeStringData / SetAttributeStringData handle the per-element
// string attribute storage, resolving StringHandles through the batch path.
func GetAttributeStringData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo) ([]string, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	total := info.Count * info.TupleSize
	if total <= 0 {
		return nil, nil
	}
	handles := make([]C.HAPI_StringHandle, total)
	r := C.HAPI_GetAttributeStringData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, &handles[0], 0, cInfo.count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetAttributeStringData")
	}
	out := make([]string, total)
	for i, h := range handles {
		s, err := getString(&raw, h)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func SetAttributeStringData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, values []string) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	cValues := make([]*C.char, len(values))
	for i, v := range values {
		cv, err := cString(v)
		if err != nil {
			return err
		}
		cValues[i] = cv
	}
	defer func() {
		for _, cv := range cValues {
			freeCString(cv)
		}
	}()
	if len(cValues) == 0 {
		return nil
	}
	r := C.HAPI_SetAttributeStringData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, &cValues[0], 0, cInfo.count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetAttributeStringData")
	}
	return nil
}

// JobStatus mirrors HAPI_JobStatus, the two-state poll result for an
// async attribute job started by one of the *DataAsync calls below.
type JobStatus int32

const (
	JobRunning JobStatus = iota
	JobIdle
)

// GetJobStatus wraps HAPI_GetJobStatus, polling an async job started by
// one of the *DataAsync functions (§4.4 supplemented: async attribute
// jobs). Callers poll until it reports JobIdle, then trust the buffer
// they pre-sized and handed to the *Async call.
func GetJobStatus(session SessionHandle, jobID int32) (JobStatus, error) {
	raw := session.raw()
	var status C.HAPI_JobStatus
	r := C.HAPI_GetJobStatus(&raw, C.HAPI_JobId(jobID), &status)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("GetJobStatus")
	}
	return JobStatus(status), nil
}

// GetAttributeFloatDataAsync / SetAttributeFloatDataAsync /
// GetAttributeIntDataAsync / SetAttributeIntDataAsync /
// GetAttributeStringDataAsync / SetAttributeStringDataAsync start the
// async variant of the corresponding synchronous call, handing back a
// job id for GetJobStatus to poll rather than blocking the calling
// thread — the engine's escape hatch for attribute buffers large enough
// that the synchronous round trip would stall the caller (§4.4
// supplemented).
//
// The float/int Get variants return the buffer up front: like the engine
// itself, the caller must not read it until GetJobStatus reports JobIdle.
func GetAttributeFloatDataAsync(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo) ([]float32, int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, 0, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	total := info.Count * info.TupleSize
	if total <= 0 {
		return nil, 0, nil
	}
	buf := make([]C.float, total)
	var jobID C.HAPI_JobId
	r := C.HAPI_GetAttributeFloatDataAsync(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, -1,
		&buf[0], 0, cInfo.count, &jobID)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, 0, ferr.Context("GetAttributeFloatDataAsync")
	}
	out := make([]float32, total)
	for i, v := range buf {
		out[i] = float32(v)
	}
	return out, int32(jobID), nil
}

func SetAttributeFloatDataAsync(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, values []float32) (int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return 0, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if len(values) == 0 {
		return 0, nil
	}
	buf := make([]C.float, len(values))
	for i, v := range values {
		buf[i] = C.float(v)
	}
	var jobID C.HAPI_JobId
	r := C.HAPI_SetAttributeFloatDataAsync(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, &buf[0], 0, cInfo.count, &jobID)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("SetAttributeFloatDataAsync")
	}
	return int32(jobID), nil
}

func GetAttributeIntDataAsync(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo) ([]int32, int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, 0, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	total := info.Count * info.TupleSize
	if total <= 0 {
		return nil, 0, nil
	}
	buf := make([]C.int32_t, total)
	var jobID C.HAPI_JobId
	r := C.HAPI_GetAttributeIntDataAsync(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, -1,
		&buf[0], 0, cInfo.count, &jobID)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, 0, ferr.Context("GetAttributeIntDataAsync")
	}
	return int32Slice(buf), int32(jobID), nil
}

func SetAttributeIntDataAsync(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, values []int32) (int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return 0, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if len(values) == 0 {
		return 0, nil
	}
	buf := make([]C.int32_t, len(values))
	for i, v := range values {
		buf[i] = C.int32_t(v)
	}
	var jobID C.HAPI_JobId
	r := C.HAPI_SetAttributeIntDataAsync(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, &buf[0], 0, cInfo.count, &jobID)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("SetAttributeIntDataAsync")
	}
	return int32(jobID), nil
}

// GetAttributeStringDataAsync returns raw StringHandles rather than
// resolved strings: resolving them through the batch string path before
// the job reports JobIdle would be reading engine memory that isn't
// ready yet, so the caller polls GetJobStatus first and resolves after.
func GetAttributeStringDataAsync(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo) ([]StringHandle, int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, 0, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	total := info.Count * info.TupleSize
	if total <= 0 {
		return nil, 0, nil
	}
	handles := make([]C.HAPI_StringHandle, total)
	var jobID C.HAPI_JobId
	r := C.HAPI_GetAttributeStringDataAsync(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo,
		&handles[0], 0, cInfo.count, &jobID)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, 0, ferr.Context("GetAttributeStringDataAsync")
	}
	out := make([]StringHandle, total)
	for i, h := range handles {
		out[i] = StringHandle(h)
	}
	return out, int32(jobID), nil
}

func SetAttributeStringDataAsync(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, values []string) (int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return 0, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	cValues := make([]*C.char, len(values))
	for i, v := range values {
		cv, err := cString(v)
		if err != nil {
			return 0, err
		}
		cValues[i] = cv
	}
	defer func() {
		for _, cv := range cValues {
			freeCString(cv)
		}
	}()
	if len(cValues) == 0 {
		return 0, nil
	}
	var jobID C.HAPI_JobId
	r := C.HAPI_SetAttributeStringDataAsync(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo, &cValues[0], 0, cInfo.count, &jobID)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("SetAttributeStringDataAsync")
	}
	return int32(jobID), nil
}

// GetAttributeIntArrayData / SetAttributeIntArrayData /
// GetAttributeFloatArrayData / SetAttributeFloatArrayData handle the
// array-valued numeric attribute storage (variable-length per-element
// tuples), the numeric counterpart of GetAttributeStringArrayData below
// (§4.4 supplemented: numeric-array attributes).
func GetAttributeIntArrayData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, dataFixedLength int32) ([]int32, []int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, nil, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if dataFixedLength <= 0 || info.Count <= 0 {
		return nil, nil, nil
	}
	data := make([]C.int32_t, dataFixedLength)
	sizes := make([]C.int32_t, info.Count)
	r := C.HAPI_GetAttributeIntArrayData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo,
		&data[0], C.int32_t(dataFixedLength), &sizes[0], 0, cInfo.count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, nil, ferr.Context("GetAttributeIntArrayData")
	}
	return int32Slice(data), int32Slice(sizes), nil
}

func SetAttributeIntArrayData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, data, sizes []int32) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if len(data) == 0 {
		return nil
	}
	dataBuf := make([]C.int32_t, len(data))
	for i, v := range data {
		dataBuf[i] = C.int32_t(v)
	}
	sizesBuf := make([]C.int32_t, len(sizes))
	for i, v := range sizes {
		sizesBuf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetAttributeIntArrayData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo,
		&dataBuf[0], C.int32_t(len(dataBuf)), &sizesBuf[0], 0, C.int32_t(len(sizesBuf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetAttributeIntArrayData")
	}
	return nil
}

func GetAttributeFloatArrayData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, dataFixedLength int32) ([]float32, []int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, nil, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if dataFixedLength <= 0 || info.Count <= 0 {
		return nil, nil, nil
	}
	data := make([]C.float, dataFixedLength)
	sizes := make([]C.int32_t, info.Count)
	r := C.HAPI_GetAttributeFloatArrayData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo,
		&data[0], C.int32_t(dataFixedLength), &sizes[0], 0, cInfo.count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, nil, ferr.Context("GetAttributeFloatArrayData")
	}
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v)
	}
	return out, int32Slice(sizes), nil
}

func SetAttributeFloatArrayData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, data []float32, sizes []int32) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if len(data) == 0 {
		return nil
	}
	dataBuf := make([]C.float, len(data))
	for i, v := range data {
		dataBuf[i] = C.float(v)
	}
	sizesBuf := make([]C.int32_t, len(sizes))
	for i, v := range sizes {
		sizesBuf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetAttributeFloatArrayData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo,
		&dataBuf[0], C.int32_t(len(dataBuf)), &sizesBuf[0], 0, C.int32_t(len(sizesBuf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetAttributeFloatArrayData")
	}
	return nil
}

// AddAttribute / DeleteAttribute manage the attribute matrix's schema.
func AddAttribute(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	r := C.HAPI_AddAttribute(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("AddAttribute")
	}
	return nil
}

func DeleteAttribute(session SessionHandle, node NodeHandle, partID int32, name string, owner AttributeOwner) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	r := C.HAPI_DeleteAttribute(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, C.HAPI_AttributeOwner(owner))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("DeleteAttribute")
	}
	return nil
}

// GetAttributeStringArrayData / SetAttributeStringArrayData handle the
// string-array storage variant (ragged per-element string lists), resolved
// through a parallel (data, sizesFixedArray) pair the way HAPI shapes them.
func GetAttributeStringArrayData(session SessionHandle, node NodeHandle, partID int32, name string, info AttributeInfo, dataFixedLength, sizesFixedLength int32) ([]string, []int32, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return nil, nil, err
	}
	defer freeCString(n)
	cInfo := attributeInfoToC(info)
	if dataFixedLength <= 0 {
		return nil, nil, nil
	}
	handles := make([]C.HAPI_StringHandle, dataFixedLength)
	sizes := make([]C.int32_t, sizesFixedLength)
	r := C.HAPI_GetAttributeStringArrayData(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), n, &cInfo,
		&handles[0], dataFixedLength, &sizes[0], 0, sizesFixedLength)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, nil, ferr.Context("GetAttributeStringArrayData")
	}
	out := make([]string, len(handles))
	for i, h := range handles {
		s, err := getString(&raw, h)
		if err != nil {
			return nil, nil, err
		}
		out[i] = s
	}
	return out, int32Slice(sizes), nil
}
