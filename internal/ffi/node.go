package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/sidefxlabs/hapi-go/herr"
)

// NodeHandle mirrors HAPI_NodeId. A negative value means "no node" (§4.2).
type NodeHandle int32

// Valid reports whether the handle refers to a real node.
func (h NodeHandle) Valid() bool { return h >= 0 }

// NodeType/NodeFlags mirror the HAPI_NodeType / HAPI_NodeFlags bitmasks.
type NodeType int32
type NodeFlags int32

// CreateNode wraps HAPI_CreateNode. parentID < 0 means "no parent" (top level).
func CreateNode(session SessionHandle, parentID NodeHandle, operatorName, nodeName string, cookOnCreation bool) (NodeHandle, error) {
	raw := session.raw()
	op, err := cString(operatorName)
	if err != nil {
		return -1, err
	}
	defer freeCString(op)

	var namePtr *C.char
	if nodeName != "" {
		namePtr, err = cString(nodeName)
		if err != nil {
			return -1, err
		}
		defer freeCString(namePtr)
	}

	var id C.HAPI_NodeId
	r := C.HAPI_CreateNode(&raw, C.HAPI_NodeId(parentID), op, namePtr, boolToChar(cookOnCreation), &id)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("CreateNode")
	}
	return NodeHandle(id), nil
}

// DeleteNode wraps HAPI_DeleteNode.
func DeleteNode(session SessionHandle, node NodeHandle) error {
	raw := session.raw()
	r := C.HAPI_DeleteNode(&raw, C.HAPI_NodeId(node))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("DeleteNode")
	}
	return nil
}

// CookNode wraps HAPI_CookNode, kicking off the async cook state machine
// described in spec.md §4.1 (poll via GetStatus(StatusCookState)).
func CookNode(session SessionHandle, node NodeHandle, opts CookOptions) error {
	raw := session.raw()
	rawOpts := opts.raw()
	r := C.HAPI_CookNode(&raw, C.HAPI_NodeId(node), &rawOpts)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("CookNode")
	}
	return nil
}

// GetNodePath wraps HAPI_GetNodePath to get the path's string handle, then
// resolves it through getString.
func GetNodePath(session SessionHandle, node, relativeTo NodeHandle) (string, error) {
	raw := session.raw()
	var handle C.HAPI_StringHandle
	r := C.HAPI_GetNodePath(&raw, C.HAPI_NodeId(node), C.HAPI_NodeId(relativeTo), &handle)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return "", ferr.Context("GetNodePath")
	}
	return getString(&raw, handle)
}

// ComposeChildNodeList wraps HAPI_ComposeChildNodeList + HAPI_GetComposedChildNodeList.
func ComposeChildNodeList(session SessionHandle, node NodeHandle, nodeTypes, nodeFlags int32, recursive bool) ([]NodeHandle, error) {
	raw := session.raw()
	var count C.int32_t
	r := C.HAPI_ComposeChildNodeList(&raw, C.HAPI_NodeId(node), C.int32_t(nodeTypes), C.int32_t(nodeFlags),
		boolToChar(recursive), &count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("ComposeChildNodeList")
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]C.HAPI_NodeId, count)
	r = C.HAPI_GetComposedChildNodeList(&raw, C.HAPI_NodeId(node), &ids[0], count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetComposedChildNodeList")
	}
	out := make([]NodeHandle, count)
	for i, id := range ids {
		out[i] = NodeHandle(id)
	}
	return out, nil
}

// ComposeObjectList wraps HAPI_ComposeObjectList + HAPI_GetComposedObjectList.
func ComposeObjectList(session SessionHandle, node NodeHandle) ([]ObjectInfo, error) {
	raw := session.raw()
	var count C.int32_t
	r := C.HAPI_ComposeObjectList(&raw, C.HAPI_NodeId(node), nil, &count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("ComposeObjectList")
	}
	if count == 0 {
		return nil, nil
	}
	infos := make([]C.HAPI_ObjectInfo, count)
	r = C.HAPI_GetComposedObjectList(&raw, C.HAPI_NodeId(node), &infos[0], 0, count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetComposedObjectList")
	}
	out := make([]ObjectInfo, count)
	for i, o := range infos {
		out[i] = ObjectInfo{
			ID:                  NodeHandle(o.id),
			ObjectNodeID:        NodeHandle(o.objectNodeId),
			Name:                StringHandle(o.nameSH),
			HasTransformChanged: o.hasTransformChanged != 0,
			HaveGeosChanged:     o.haveGeosChanged != 0,
			IsVisible:           o.isVisible != 0,
			IsInstancer:         o.isInstancer != 0,
			IsInstanced:         o.isInstanced != 0,
			GeoCount:            int32(o.geoCount),
		}
	}
	return out, nil
}

// ManagerNodeType selects which top-level manager HAPI_GetManagerNodeId
// should resolve, mirroring the node package's ManagerKind ordering.
type ManagerNodeType int32

const (
	ManagerNodeObject ManagerNodeType = iota
	ManagerNodeSOP
	ManagerNodeCHOP
	ManagerNodeCOP
	ManagerNodeROP
)

var managerNodeTypeRaw = map[ManagerNodeType]C.HAPI_NodeType{
	ManagerNodeObject: C.HAPI_NODETYPE_OBJ,
	ManagerNodeSOP:    C.HAPI_NODETYPE_SOP,
	ManagerNodeCHOP:   C.HAPI_NODETYPE_CHOP,
	ManagerNodeCOP:    C.HAPI_NODETYPE_COP,
	ManagerNodeROP:    C.HAPI_NODETYPE_ROP,
}

// GetManagerNodeId wraps HAPI_GetManagerNodeId, resolving the single
// top-level manager node of the given type directly rather than walking
// ComposeChildNodeList from a synthetic root (§4.2).
func GetManagerNodeId(session SessionHandle, kind ManagerNodeType) (NodeHandle, error) {
	raw := session.raw()
	var id C.HAPI_NodeId
	r := C.HAPI_GetManagerNodeId(&raw, managerNodeTypeRaw[kind], &id)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("GetManagerNodeId")
	}
	return NodeHandle(id), nil
}

// FindNodeFromPath wraps HAPI_GetNodeFromPath, resolving an absolute (or,
// given a valid relativeTo, relative) op-path to a node id. A path that
// doesn't resolve reports back as an invalid handle with a nil error,
// matching the original client's treatment of InvalidArgument here as
// "not found" rather than a hard failure.
func FindNodeFromPath(session SessionHandle, relativeTo NodeHandle, path string) (NodeHandle, error) {
	raw := session.raw()
	p, err := cString(path)
	if err != nil {
		return -1, err
	}
	defer freeCString(p)
	var id C.HAPI_NodeId
	r := C.HAPI_GetNodeFromPath(&raw, C.HAPI_NodeId(relativeTo), p, &id)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		if herr.IsCode(ferr, herr.InvalidArgument) {
			return -1, nil
		}
		return -1, ferr.Context("GetNodeFromPath")
	}
	return NodeHandle(id), nil
}

// GetTotalCookCount wraps HAPI_GetTotalCookCount, counting cooks of node
// and (if recursive) its descendants matching nodeTypes/nodeFlags — a
// per-node tally, not a session-wide one (§4.1/§4.2).
func GetTotalCookCount(session SessionHandle, node NodeHandle, nodeTypes, nodeFlags int32, recursive bool) (int32, error) {
	raw := session.raw()
	var count C.int32_t
	r := C.HAPI_GetTotalCookCount(&raw, C.HAPI_NodeId(node), C.int32_t(nodeTypes), C.int32_t(nodeFlags),
		boolToChar(recursive), &count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("GetTotalCookCount")
	}
	return int32(count), nil
}

// QueryNodeInput wraps HAPI_QueryNodeInput, returning which node feeds
// inputIndex of node (§4.2).
func QueryNodeInput(session SessionHandle, node NodeHandle, inputIndex int32) (NodeHandle, error) {
	raw := session.raw()
	var id C.HAPI_NodeId
	r := C.HAPI_QueryNodeInput(&raw, C.HAPI_NodeId(node), C.int32_t(inputIndex), &id)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("QueryNodeInput")
	}
	return NodeHandle(id), nil
}

// QueryNodeOutputConnectedNodes wraps HAPI_QueryNodeOutputConnectedCount +
// HAPI_QueryNodeOutputConnectedNodes, listing every node currently wired
// to outputIndex of node (§4.2). intoSubnets/throughSubnets match the
// engine's flags for whether to look inside/through subnetwork boundaries.
func QueryNodeOutputConnectedNodes(session SessionHandle, node NodeHandle, outputIndex int32, intoSubnets, throughSubnets bool) ([]NodeHandle, error) {
	raw := session.raw()
	var count C.int32_t
	r := C.HAPI_QueryNodeOutputConnectedCount(&raw, C.HAPI_NodeId(node), C.int32_t(outputIndex),
		boolToChar(intoSubnets), boolToChar(throughSubnets), &count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("QueryNodeOutputConnectedCount")
	}
	if count == 0 {
		return nil, nil
	}
	ids := make([]C.HAPI_NodeId, count)
	r = C.HAPI_QueryNodeOutputConnectedNodes(&raw, C.HAPI_NodeId(node), C.int32_t(outputIndex),
		boolToChar(intoSubnets), boolToChar(throughSubnets), &ids[0], 0, count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("QueryNodeOutputConnectedNodes")
	}
	out := make([]NodeHandle, count)
	for i, id := range ids {
		out[i] = NodeHandle(id)
	}
	return out, nil
}

// DisconnectNodeOutputsAt wraps HAPI_DisconnectNodeOutputsAt, severing
// every connection fed from node's outputIndex in one call (§4.2) —
// the output-side counterpart of DisconnectNodeInput.
func DisconnectNodeOutputsAt(session SessionHandle, node NodeHandle, outputIndex int32) error {
	raw := session.raw()
	r := C.HAPI_DisconnectNodeOutputsAt(&raw, C.HAPI_NodeId(node), C.int32_t(outputIndex))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("DisconnectNodeOutputsAt")
	}
	return nil
}

// RenameNode wraps HAPI_RenameNode.
func RenameNode(session SessionHandle, node NodeHandle, newName string) error {
	raw := session.raw()
	name, err := cString(newName)
	if err != nil {
		return err
	}
	defer freeCString(name)
	r := C.HAPI_RenameNode(&raw, C.HAPI_NodeId(node), name)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("RenameNode")
	}
	return nil
}

// ConnectNodeInput / DisconnectNodeInput wrap the corresponding HAPI calls
// used to wire up the node graph (§4.2).
func ConnectNodeInput(session SessionHandle, node NodeHandle, inputIndex int32, inputNode NodeHandle, outputIndex int32) error {
	raw := session.raw()
	r := C.HAPI_ConnectNodeInput(&raw, C.HAPI_NodeId(node), C.int32_t(inputIndex), C.HAPI_NodeId(inputNode), C.int32_t(outputIndex))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("ConnectNodeInput")
	}
	return nil
}

func DisconnectNodeInput(session SessionHandle, node NodeHandle, inputIndex int32) error {
	raw := session.raw()
	r := C.HAPI_DisconnectNodeInput(&raw, C.HAPI_NodeId(node), C.int32_t(inputIndex))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("DisconnectNodeInput")
	}
	return nil
}

// SaveNodeToFile / LoadNodeFromFile persist a node subtree (§6.3).
func SaveNodeToFile(session SessionHandle, node NodeHandle, path string) error {
	raw := session.raw()
	p, err := cString(path)
	if err != nil {
		return err
	}
	defer freeCString(p)
	r := C.HAPI_SaveNodeToFile(&raw, C.HAPI_NodeId(node), p)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SaveNodeToFile")
	}
	return nil
}

func LoadNodeFromFile(session SessionHandle, path, parentName, label string, cookOnLoad bool) (NodeHandle, error) {
	raw := session.raw()
	p, err := cString(path)
	if err != nil {
		return -1, err
	}
	defer freeCString(p)
	parent, err := optionalCString(parentName)
	if err != nil {
		return -1, err
	}
	defer freeCString(parent)
	lab, err := optionalCString(label)
	if err != nil {
		return -1, err
	}
	defer freeCString(lab)

	var id C.HAPI_NodeId
	r := C.HAPI_LoadNodeFromFile(&raw, p, parent, lab, boolToChar(cookOnLoad), &id)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("LoadNodeFromFile")
	}
	return NodeHandle(id), nil
}

// GetNodePreset / SetNodePreset wrap binary preset blob get/set (§4.3).
func GetNodePreset(session SessionHandle, node NodeHandle) ([]byte, error) {
	raw := session.raw()
	var bufLen C.int32_t
	r := C.HAPI_GetPresetBufLength(&raw, C.HAPI_NodeId(node), C.HAPI_PRESETTYPE_BINARY, nil, &bufLen)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetPresetBufLength")
	}
	if bufLen == 0 {
		return nil, nil
	}
	buf := make([]byte, bufLen)
	r = C.HAPI_GetPreset(&raw, C.HAPI_NodeId(node), (*C.char)(unsafe.Pointer(&buf[0])), bufLen)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetPreset")
	}
	return buf, nil
}

func SetNodePreset(session SessionHandle, node NodeHandle, name string, preset []byte) error {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return err
	}
	defer freeCString(n)
	var ptr *C.char
	if len(preset) > 0 {
		ptr = (*C.char)(unsafe.Pointer(&preset[0]))
	}
	r := C.HAPI_SetPreset(&raw, C.HAPI_NodeId(node), C.HAPI_PRESETTYPE_BINARY, n, ptr, C.int32_t(len(preset)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetPreset")
	}
	return nil
}
