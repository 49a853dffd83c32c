package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

// PDGGraphContextID mirrors HAPI_PDG_GraphContextId.
type PDGGraphContextID int32

// PDGWorkItemID mirrors HAPI_PDG_WorkitemId.
type PDGWorkItemID int32

// GetPDGGraphContexts wraps HAPI_GetPDGGraphContexts, the TOP network
// discovery call (§4.6).
func GetPDGGraphContexts(session SessionHandle) ([]string, []PDGGraphContextID, error) {
	raw := session.raw()
	var count C.int32_t
	r := C.HAPI_GetPDGGraphContextsCount(&raw, &count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, nil, ferr.Context("GetPDGGraphContextsCount")
	}
	if count == 0 {
		return nil, nil, nil
	}
	handles := make([]C.HAPI_StringHandle, count)
	ids := make([]C.HAPI_PDG_GraphContextId, count)
	r = C.HAPI_GetPDGGraphContexts(&raw, &handles[0], &ids[0], 0, count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, nil, ferr.Context("GetPDGGraphContexts")
	}
	names := make([]string, count)
	for i, h := range handles {
		s, err := getString(&raw, h)
		if err != nil {
			return nil, nil, err
		}
		names[i] = s
	}
	outIDs := make([]PDGGraphContextID, count)
	for i, id := range ids {
		outIDs[i] = PDGGraphContextID(id)
	}
	return names, outIDs, nil
}

// CookPDG / CookPDGAllOutputs start the PDG cook. With blocking false the
// call returns at once and progress is observed through GetPDGEvents
// polling; with blocking true it returns once the cook is done (§4.6).
func CookPDG(session SessionHandle, node NodeHandle, generateOnly, blocking bool) error {
	raw := session.raw()
	r := C.HAPI_CookPDG(&raw, C.HAPI_NodeId(node), boolToChar(generateOnly), boolToChar(blocking))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("CookPDG")
	}
	return nil
}

func CookPDGAllOutputs(session SessionHandle, node NodeHandle, generateOnly, blocking bool) error {
	raw := session.raw()
	r := C.HAPI_CookPDGAllOutputs(&raw, C.HAPI_NodeId(node), boolToChar(generateOnly), boolToChar(blocking))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("CookPDGAllOutputs")
	}
	return nil
}

// PauseCookPDG / CancelCookPDG interrupt a running PDG cook loop.
func PauseCookPDG(session SessionHandle, graphContext PDGGraphContextID) error {
	raw := session.raw()
	r := C.HAPI_PausePDGCook(&raw, C.HAPI_PDG_GraphContextId(graphContext))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("PausePDGCook")
	}
	return nil
}

func CancelCookPDG(session SessionHandle, graphContext PDGGraphContextID) error {
	raw := session.raw()
	r := C.HAPI_CancelPDGCook(&raw, C.HAPI_PDG_GraphContextId(graphContext))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("CancelPDGCook")
	}
	return nil
}

// GetPDGEvents wraps HAPI_GetPDGEvents, draining the event queue the way
// callers poll for cook-state transitions and per-workitem results (§4.6).
// The returned slice length is the actual event count (<= maxEvents).
func GetPDGEvents(session SessionHandle, graphContext PDGGraphContextID, maxEvents int32) ([]PDGEventInfo, bool, error) {
	raw := session.raw()
	if maxEvents <= 0 {
		return nil, false, nil
	}
	events := make([]C.HAPI_PDG_EventInfo, maxEvents)
	var actual C.int32_t
	var remaining C.int32_t
	r := C.HAPI_GetPDGEvents(&raw, C.HAPI_PDG_GraphContextId(graphContext), &events[0], maxEvents, &actual, &remaining)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, false, ferr.Context("GetPDGEvents")
	}
	out := make([]PDGEventInfo, actual)
	for i, e := range events[:actual] {
		out[i] = PDGEventInfo{
			NodeID:       NodeHandle(e.nodeId),
			WorkItemID:   PDGWorkItemID(e.workitemId),
			DependencyID: int32(e.dependencyId),
			CurrentState: int32(e.currentState),
			LastState:    int32(e.lastState),
			EventType:    int32(e.eventType),
		}
	}
	return out, remaining > 0, nil
}

// GetPDGState wraps HAPI_GetPDGState, the coarse TOP-network cook state.
func GetPDGState(session SessionHandle, graphContext PDGGraphContextID) (int32, error) {
	raw := session.raw()
	var state C.int32_t
	r := C.HAPI_GetPDGState(&raw, C.HAPI_PDG_GraphContextId(graphContext), &state)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("GetPDGState")
	}
	return int32(state), nil
}

// GetWorkItemInfo / GetWorkItemResultInfo inspect a single cooked work item.
func GetWorkItemInfo(session SessionHandle, graphContext PDGGraphContextID, workItemID PDGWorkItemID) (PDGWorkItemInfo, error) {
	raw := session.raw()
	var info C.HAPI_PDG_WorkitemInfo
	r := C.HAPI_GetWorkitemInfo(&raw, C.HAPI_PDG_GraphContextId(graphContext), C.HAPI_PDG_WorkitemId(workItemID), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return PDGWorkItemInfo{}, ferr.Context("GetWorkitemInfo")
	}
	return PDGWorkItemInfo{
		Index:      int32(info.index),
		NumResults: int32(info.numResults),
	}, nil
}

func GetWorkItemResultInfo(session SessionHandle, graphContext PDGGraphContextID, workItemID PDGWorkItemID, resultCount int32) ([]PDGWorkItemResultInfo, error) {
	raw := session.raw()
	if resultCount <= 0 {
		return nil, nil
	}
	infos := make([]C.HAPI_PDG_WorkitemResultInfo, resultCount)
	r := C.HAPI_GetWorkitemResultInfo(&raw, C.HAPI_PDG_GraphContextId(graphContext), C.int32_t(workItemID), &infos[0], resultCount)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetWorkitemResultInfo")
	}
	out := make([]PDGWorkItemResultInfo, resultCount)
	for i, f := range infos {
		out[i] = PDGWorkItemResultInfo{
			ResultHandle:    StringHandle(f.resultSH),
			ResultTagHandle: StringHandle(f.resultTagSH),
			TempFile:        f.isTempFile != 0,
			Hash:            int64(f.hash),
		}
	}
	return out, nil
}

// CreateWorkItem / CommitWorkItems / SetWorkItemIntAttribute support the
// custom TOP scheduler / generator use case, where Go code injects work
// items directly instead of letting a generator node produce them.
func CreateWorkItem(session SessionHandle, node NodeHandle, name string, index int32) (PDGWorkItemID, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return -1, err
	}
	defer freeCString(n)
	var id C.HAPI_PDG_WorkitemId
	r := C.HAPI_CreateWorkitem(&raw, C.HAPI_NodeId(node), &id, n, C.int32_t(index))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("CreateWorkitem")
	}
	return PDGWorkItemID(id), nil
}

func CommitWorkItems(session SessionHandle, node NodeHandle) error {
	raw := session.raw()
	r := C.HAPI_CommitWorkitems(&raw, C.HAPI_NodeId(node))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("CommitWorkitems")
	}
	return nil
}

func SetWorkItemIntAttribute(session SessionHandle, node NodeHandle, workItemID PDGWorkItemID, name string, values []int32) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.int32_t, len(values))
	for i, v := range values {
		buf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetWorkitemIntAttribute(&raw, C.HAPI_NodeId(node), C.HAPI_PDG_WorkitemId(workItemID), n, &buf[0], C.int32_t(len(buf)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetWorkitemIntAttribute")
	}
	return nil
}

// DirtyPDGNode invalidates a TOP node's cooked work items, forcing a
// regeneration on the next cook.
func DirtyPDGNode(session SessionHandle, node NodeHandle, cleanResults bool) error {
	raw := session.raw()
	r := C.HAPI_DirtyPDGNode(&raw, C.HAPI_NodeId(node), boolToChar(cleanResults))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("DirtyPDGNode")
	}
	return nil
}
