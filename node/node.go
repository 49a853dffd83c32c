// Package node implements the node graph and cook engine (spec.md §4.2):
// creating, cooking, navigating, connecting, and persisting nodes, built
// on internal/ffi's node operations and wrapped in the info package's
// read-only facades.
package node

import (
	"context"
	"strings"

	"github.com/sidefxlabs/hapi-go/info"
	"github.com/sidefxlabs/hapi-go/internal/elog"
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/session"
	"github.com/sidefxlabs/hapi-go/stringhandle"
)

// Handle is the exported alias for ffi.NodeHandle.
type Handle = ffi.NodeHandle

// Node is a live handle into the graph bound to a session. Most methods
// round-trip into the engine; Node itself caches nothing, so callers that
// want a snapshot should call Info() and hold onto the result.
type Node struct {
	sess *session.Session
	id   Handle
}

// New wraps an existing node id. Use Create to make a new one.
func New(sess *session.Session, id Handle) Node { return Node{sess: sess, id: id} }

// ID returns the underlying node handle.
func (n Node) ID() Handle { return n.id }

// Valid reports whether the handle refers to a real node.
func (n Node) Valid() bool { return n.id.Valid() }

// Create wraps HAPI_CreateNode. parent.Valid() == false creates a
// top-level node, in which case operatorName must be fully qualified
// (e.g. "Object/geo" rather than "geo") — with no parent to anchor it,
// the engine has nothing else to resolve the network from, and silently
// auto-creates the right manager network (obj/, out/, ch/, cop2/, top/)
// for whichever network type the qualified name names. An unqualified
// name with no parent is accepted by the engine but resolves
// ambiguously, so it's logged rather than rejected outright.
func Create(sess *session.Session, parent Node, operatorName, nodeName string, cookOnCreation bool) (Node, error) {
	parentID := Handle(-1)
	if parent.Valid() {
		parentID = parent.id
	} else if !strings.Contains(operatorName, "/") {
		sess.Log(elog.KindNode, "operator name %q has no parent and is not fully qualified; network placement is ambiguous", operatorName)
	}
	id, err := ffi.CreateNode(sess.Handle(), parentID, operatorName, nodeName, cookOnCreation)
	if err != nil {
		return Node{}, err
	}
	return New(sess, id), nil
}

// Delete removes the node from the graph (§4.2).
func (n Node) Delete() error {
	return ffi.DeleteNode(n.sess.Handle(), n.id)
}

// Cook kicks off an asynchronous cook with opts and blocks until
// WaitForCook reports a terminal state or ctx is cancelled (§4.1).
func (n Node) Cook(ctx context.Context, opts ffi.CookOptions) (session.CookState, error) {
	if err := ffi.CookNode(n.sess.Handle(), n.id, opts); err != nil {
		return 0, err
	}
	return n.sess.WaitForCook(ctx)
}

// Info fetches the node's current NodeInfo snapshot.
func (n Node) Info() (info.Node, error) {
	raw, err := ffi.GetNodeInfo(n.sess.Handle(), n.id)
	if err != nil {
		return info.Node{}, err
	}
	return info.NewNode(raw), nil
}

// Path resolves the node's path, relative to relativeTo if it is valid,
// otherwise absolute (§4.2).
func (n Node) Path(resolver *stringhandle.Resolver, relativeTo Node) (string, error) {
	rel := Handle(-1)
	if relativeTo.Valid() {
		rel = relativeTo.id
	}
	return ffi.GetNodePath(n.sess.Handle(), n.id, rel)
}

// Children composes and returns the node's child list (§4.2). nodeTypes
// and nodeFlags are the HAPI_NodeType/HAPI_NodeFlags bitmasks used to
// filter the composition; pass 0 for "no filter" (everything matches).
func (n Node) Children(nodeTypes, nodeFlags int32, recursive bool) ([]Node, error) {
	ids, err := ffi.ComposeChildNodeList(n.sess.Handle(), n.id, nodeTypes, nodeFlags, recursive)
	if err != nil {
		return nil, err
	}
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = New(n.sess, id)
	}
	return out, nil
}

// Objects composes this node's OBJ-level object list — used at the root
// of an asset to enumerate its geometry containers (§4.2).
func (n Node) Objects() ([]info.Object, error) {
	raw, err := ffi.ComposeObjectList(n.sess.Handle(), n.id)
	if err != nil {
		return nil, err
	}
	out := make([]info.Object, len(raw))
	for i, o := range raw {
		out[i] = info.NewObject(o)
	}
	return out, nil
}

// Rename wraps HAPI_RenameNode.
func (n Node) Rename(newName string) error {
	return ffi.RenameNode(n.sess.Handle(), n.id, newName)
}

// ConnectInput wires inputNode's outputIndex output into this node's
// inputIndex input (§4.2).
func (n Node) ConnectInput(inputIndex int32, inputNode Node, outputIndex int32) error {
	return ffi.ConnectNodeInput(n.sess.Handle(), n.id, inputIndex, inputNode.id, outputIndex)
}

// DisconnectInput severs whatever is wired into inputIndex.
func (n Node) DisconnectInput(inputIndex int32) error {
	return ffi.DisconnectNodeInput(n.sess.Handle(), n.id, inputIndex)
}

// SaveToFile / LoadFromFile persist and restore a node subtree (§6.3).
func (n Node) SaveToFile(path string) error {
	return ffi.SaveNodeToFile(n.sess.Handle(), n.id, path)
}

// LoadFromFile loads a previously saved subtree under parentName (empty
// means top level), labelling it label.
func LoadFromFile(sess *session.Session, path, parentName, label string, cookOnLoad bool) (Node, error) {
	id, err := ffi.LoadNodeFromFile(sess.Handle(), path, parentName, label, cookOnLoad)
	if err != nil {
		return Node{}, err
	}
	return New(sess, id), nil
}

// Preset fetches the node's current parameter preset as an opaque binary
// blob (§4.3).
func (n Node) Preset() ([]byte, error) {
	return ffi.GetNodePreset(n.sess.Handle(), n.id)
}

// ApplyPreset applies a binary preset blob previously obtained from
// Preset (or shipped alongside an HDA).
func (n Node) ApplyPreset(name string, preset []byte) error {
	return ffi.SetNodePreset(n.sess.Handle(), n.id, name, preset)
}

// LoadAssetLibrary loads an .otl/.hda file and enumerates the operator
// names it defines, resolving them up front so callers can pick one
// without a round trip per name (§4.2 supplemented: asset library views).
func LoadAssetLibrary(sess *session.Session, path string, allowOverwrite bool) (info.AssetLibrary, error) {
	id, err := ffi.LoadAssetLibraryFromFile(sess.Handle(), path, allowOverwrite)
	if err != nil {
		return info.AssetLibrary{}, err
	}
	count, err := ffi.GetAvailableAssetCount(sess.Handle(), id)
	if err != nil {
		return info.AssetLibrary{}, err
	}
	names, err := ffi.GetAvailableAssets(sess.Handle(), id, count)
	if err != nil {
		return info.AssetLibrary{}, err
	}
	return info.AssetLibrary{ID: id, OperatorNames: names}, nil
}

// AssetDefaultParms fetches every default parameter value an asset
// definition carries before it's ever instantiated into a node — the
// view a host uses to build a "create with these defaults" dialog
// without paying for a throwaway CreateNode.
func AssetDefaultParms(sess *session.Session, lib info.AssetLibrary, assetName string) ([]info.AssetParm, error) {
	counts, err := ffi.GetAssetDefinitionParmCounts(sess.Handle(), lib.ID, assetName)
	if err != nil {
		return nil, err
	}
	if counts.ParmCount == 0 {
		return nil, nil
	}
	shapes, err := ffi.GetAssetDefinitionParmInfos(sess.Handle(), lib.ID, assetName, counts.ParmCount)
	if err != nil {
		return nil, err
	}
	values, err := ffi.GetAssetDefinitionParmValues(sess.Handle(), lib.ID, assetName, counts)
	if err != nil {
		return nil, err
	}
	return info.BuildAssetParms(shapes, values.Ints, values.Floats, values.Strings, values.Choices), nil
}

// Manager wraps one of the engine's fixed top-level manager nodes (OBJ,
// SOP, CHOP, COP, ROP) — the roots every user-created node hangs off of
// (§4.2 supplemented).
type Manager struct {
	Node
	Kind ManagerKind
}

// ManagerKind enumerates the manager node categories HAPI exposes at the
// scene root.
type ManagerKind int32

const (
	ManagerObject ManagerKind = iota
	ManagerSOP
	ManagerCHOP
	ManagerCOP
	ManagerROP
)

// NewManager wraps id as a manager node of the given kind, for a caller
// that already resolved id some other way (e.g. a child of the true
// scene root). Prefer GetManagerNode, which resolves id itself.
func NewManager(sess *session.Session, id Handle, kind ManagerKind) Manager {
	return Manager{Node: New(sess, id), Kind: kind}
}

var managerNodeTypeFor = map[ManagerKind]ffi.ManagerNodeType{
	ManagerObject: ffi.ManagerNodeObject,
	ManagerSOP:    ffi.ManagerNodeSOP,
	ManagerCHOP:   ffi.ManagerNodeCHOP,
	ManagerCOP:    ffi.ManagerNodeCOP,
	ManagerROP:    ffi.ManagerNodeROP,
}

// GetManagerNode resolves one of the engine's fixed top-level manager
// nodes directly via HAPI_GetManagerNodeId (§4.2 supplemented).
func GetManagerNode(sess *session.Session, kind ManagerKind) (Manager, error) {
	id, err := ffi.GetManagerNodeId(sess.Handle(), managerNodeTypeFor[kind])
	if err != nil {
		return Manager{}, err
	}
	return NewManager(sess, id, kind), nil
}

// FindNodeFromPath resolves an absolute (or, given a valid relativeTo,
// relative) op-path to a node, wrapping HAPI_GetNodeFromPath (§4.2). A
// path that doesn't resolve returns a !Valid() Node and a nil error.
func FindNodeFromPath(sess *session.Session, relativeTo Node, path string) (Node, error) {
	rel := Handle(-1)
	if relativeTo.Valid() {
		rel = relativeTo.id
	}
	id, err := ffi.FindNodeFromPath(sess.Handle(), rel, path)
	if err != nil {
		return Node{}, err
	}
	return New(sess, id), nil
}

// FindParameterFromPath resolves a "path/to/node/parmName" reference to
// its owning node and parameter handle. There's no direct engine call for
// this: it splits path on its last '/', resolves the node half with
// FindNodeFromPath, then looks the parameter up by name on that node
// (§4.2/§4.3).
func FindParameterFromPath(sess *session.Session, relativeTo Node, path string) (Node, ffi.ParmHandle, error) {
	nodePath := ""
	parmName := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		nodePath = path[:idx]
		parmName = path[idx+1:]
	}
	n, err := FindNodeFromPath(sess, relativeTo, nodePath)
	if err != nil {
		return Node{}, -1, err
	}
	if !n.Valid() {
		return Node{}, -1, nil
	}
	parm, err := ffi.GetParmIDFromName(sess.Handle(), n.id, parmName)
	if err != nil {
		return Node{}, -1, err
	}
	return n, parm, nil
}

// CookCount wraps HAPI_GetTotalCookCount, tallying cooks of this node
// (and, if recursive, its descendants) matching nodeTypes/nodeFlags
// (§4.1/§4.2) — unlike the session-wide status counters, this is scoped
// to a single node subtree.
func (n Node) CookCount(nodeTypes, nodeFlags int32, recursive bool) (int32, error) {
	return ffi.GetTotalCookCount(n.sess.Handle(), n.id, nodeTypes, nodeFlags, recursive)
}

// QueryInput reports which node currently feeds inputIndex of n (§4.2).
func (n Node) QueryInput(inputIndex int32) (Node, error) {
	id, err := ffi.QueryNodeInput(n.sess.Handle(), n.id, inputIndex)
	if err != nil {
		return Node{}, err
	}
	return New(n.sess, id), nil
}

// QueryOutputConnections lists every node currently wired to n's
// outputIndex output (§4.2).
func (n Node) QueryOutputConnections(outputIndex int32, intoSubnets, throughSubnets bool) ([]Node, error) {
	ids, err := ffi.QueryNodeOutputConnectedNodes(n.sess.Handle(), n.id, outputIndex, intoSubnets, throughSubnets)
	if err != nil {
		return nil, err
	}
	out := make([]Node, len(ids))
	for i, id := range ids {
		out[i] = New(n.sess, id)
	}
	return out, nil
}

// DisconnectOutputs severs every connection fed from n's outputIndex,
// the output-side counterpart of DisconnectInput (§4.2).
func (n Node) DisconnectOutputs(outputIndex int32) error {
	return ffi.DisconnectNodeOutputsAt(n.sess.Handle(), n.id, outputIndex)
}
