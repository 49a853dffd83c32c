// Package info wraps the plain Go structs ffi hands back (§3.2) in
// getter/builder facades. A wrapper's fields never round-trip to the
// engine on their own — callers explicitly push edits back through the
// owning package (node.Rename, parameter.Set, ...).
package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// Node describes a single node in the graph (§4.2).
type Node struct {
	raw ffi.NodeInfo
}

func NewNode(raw ffi.NodeInfo) Node { return Node{raw: raw} }

func (n Node) ID() ffi.NodeHandle       { return n.raw.ID }
func (n Node) ParentID() ffi.NodeHandle { return n.raw.ParentID }
func (n Node) Type() ffi.NodeType       { return n.raw.Type }
func (n Node) IsValid() bool            { return n.raw.IsValid }
func (n Node) TotalCookCount() int32    { return n.raw.TotalCookCount }
func (n Node) ParmCount() int32         { return n.raw.ParmCount }
func (n Node) ChildNodeCount() int32    { return n.raw.ChildNodeCount }
func (n Node) InputCount() int32        { return n.raw.InputCount }
func (n Node) OutputCount() int32       { return n.raw.OutputCount }
func (n Node) IsTimeDependent() bool    { return n.raw.IsTimeDependent }

// Object describes one entry of an OBJ-level network (§4.2).
type Object struct {
	raw ffi.ObjectInfo
}

func NewObject(raw ffi.ObjectInfo) Object { return Object{raw: raw} }

func (o Object) ID() ffi.NodeHandle           { return o.raw.ID }
func (o Object) ObjectNodeID() ffi.NodeHandle { return o.raw.ObjectNodeID }
func (o Object) HasTransformChanged() bool    { return o.raw.HasTransformChanged }
func (o Object) HaveGeosChanged() bool        { return o.raw.HaveGeosChanged }
func (o Object) IsVisible() bool              { return o.raw.IsVisible }
func (o Object) IsInstancer() bool            { return o.raw.IsInstancer }
func (o Object) IsInstanced() bool            { return o.raw.IsInstanced }
func (o Object) GeoCount() int32              { return o.raw.GeoCount }
