// Package geometry implements the geometry and attribute layer (spec.md
// §4.4): part enumeration, the attribute matrix (owner x storage x
// tuple_size x count), groups, curves, and the explicit commit/revert
// write protocol for authoring input geometry.
package geometry

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/sidefxlabs/hapi-go/herr"
	"github.com/sidefxlabs/hapi-go/info"
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/node"
	"github.com/sidefxlabs/hapi-go/session"
	"github.com/sidefxlabs/hapi-go/stringhandle"
)

// Geo is a SOP's display/output geometry container — the entry point for
// reading or authoring its parts (§4.4).
type Geo struct {
	sess *session.Session
	node node.Node
}

// Display fetches the display geometry for the object at objectNode
// (§4.4).
func Display(sess *session.Session, objectNode node.Node) (Geo, info.Geo, error) {
	raw, err := ffi.GetDisplayGeoInfo(sess.Handle(), objectNode.ID())
	if err != nil {
		return Geo{}, info.Geo{}, err
	}
	return Geo{sess: sess, node: node.New(sess, raw.NodeID)}, info.NewGeo(raw), nil
}

// Of fetches the GeoInfo belonging to a specific SOP node.
func Of(sess *session.Session, geoNode node.Node) (Geo, info.Geo, error) {
	raw, err := ffi.GetGeoInfo(sess.Handle(), geoNode.ID())
	if err != nil {
		return Geo{}, info.Geo{}, err
	}
	return Geo{sess: sess, node: geoNode}, info.NewGeo(raw), nil
}

// Node returns the SOP node this Geo reads from/writes to.
func (g Geo) Node() node.Node { return g.node }

// Part fetches one part's shape.
func (g Geo) Part(partID int32) (info.Part, error) {
	raw, err := ffi.GetPartInfo(g.sess.Handle(), g.node.ID(), partID)
	if err != nil {
		return info.Part{}, err
	}
	return info.NewPart(raw), nil
}

// Parts fetches every part of geo, named n.PartCount(), concurrently —
// each GetPartInfo round trip is independent so there's no reason to
// serialize them (§4.4 supplemented: bulk part enumeration).
func (g Geo) Parts(ctx context.Context, n info.Geo) ([]info.Part, error) {
	count := n.PartCount()
	out := make([]info.Part, count)
	group, gctx := errgroup.WithContext(ctx)
	for i := int32(0); i < count; i++ {
		i := i
		group.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			p, err := g.Part(i)
			if err != nil {
				return err
			}
			out[i] = p
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FaceCounts / VertexList read a part's topology (§4.4).
func (g Geo) FaceCounts(partID int32, faceCount int32) ([]int32, error) {
	return ffi.GetFaceCounts(g.sess.Handle(), g.node.ID(), partID, faceCount)
}

func (g Geo) VertexList(partID int32, vertexCount int32) ([]int32, error) {
	return ffi.GetVertexList(g.sess.Handle(), g.node.ID(), partID, vertexCount)
}

// GroupType mirrors HAPI_GroupType.
type GroupType int32

const (
	GroupInvalid GroupType = iota
	GroupPoint
	GroupPrimitive
	GroupEdge
)

// GroupNames / GroupMembership expose the named point/primitive/edge
// groups a part carries (§4.4).
func (g Geo) GroupNames(groupType GroupType, count int32) ([]string, error) {
	return ffi.GetGroupNames(g.sess.Handle(), g.node.ID(), int32(groupType), count)
}

func (g Geo) GroupMembership(partID int32, groupType GroupType, groupName string, elementCount int32) ([]bool, error) {
	return ffi.GetGroupMembership(g.sess.Handle(), g.node.ID(), partID, int32(groupType), groupName, elementCount)
}

// Attribute reads an attribute's shape, given its owner class.
func (g Geo) Attribute(partID int32, name string, owner ffi.AttributeOwner) (info.Attribute, error) {
	raw, err := ffi.GetAttributeInfo(g.sess.Handle(), g.node.ID(), partID, name, owner)
	if err != nil {
		return info.Attribute{}, err
	}
	return info.NewAttribute(raw), nil
}

// AttributeNames lists every attribute name under owner.
func (g Geo) AttributeNames(partID int32, owner ffi.AttributeOwner, count int32) ([]string, error) {
	return ffi.GetAttributeNames(g.sess.Handle(), g.node.ID(), partID, owner, count)
}

// FloatAttribute / IntAttribute / StringAttribute read a numeric or
// string attribute's flat tuple_size*count buffer (§4.4).
func (g Geo) FloatAttribute(partID int32, name string, attr info.Attribute) ([]float32, error) {
	return ffi.GetAttributeFloatData(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw())
}

func (g Geo) IntAttribute(partID int32, name string, attr info.Attribute) ([]int32, error) {
	return ffi.GetAttributeIntData(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw())
}

func (g Geo) StringAttribute(partID int32, name string, attr info.Attribute) ([]string, error) {
	return ffi.GetAttributeStringData(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw())
}

// StringArrayAttribute reads a ragged string-array attribute's flattened
// data plus the per-element size list needed to re-slice it.
func (g Geo) StringArrayAttribute(partID int32, name string, attr info.Attribute, dataLen, sizesLen int32) ([]string, []int32, error) {
	return ffi.GetAttributeStringArrayData(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw(), dataLen, sizesLen)
}

// IntArrayAttribute / FloatArrayAttribute read a ragged numeric-array
// attribute's flattened data plus the per-element size list needed to
// re-slice it — the numeric counterpart of StringArrayAttribute (§4.4
// supplemented: numeric-array attributes).
func (g Geo) IntArrayAttribute(partID int32, name string, attr info.Attribute, dataLen int32) ([]int32, []int32, error) {
	return ffi.GetAttributeIntArrayData(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw(), dataLen)
}

func (g Geo) FloatArrayAttribute(partID int32, name string, attr info.Attribute, dataLen int32) ([]float32, []int32, error) {
	return ffi.GetAttributeFloatArrayData(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw(), dataLen)
}

// FloatAttributeAsync / IntAttributeAsync / StringAttributeAsync start
// the async read of a potentially large attribute buffer, returning a job
// id the caller polls via WaitForJob before trusting the returned slice
// (§4.4 supplemented: async attribute jobs). The String variant hands
// back raw handles, resolved only once the job is idle.
func (g Geo) FloatAttributeAsync(partID int32, name string, attr info.Attribute) ([]float32, int32, error) {
	return ffi.GetAttributeFloatDataAsync(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw())
}

func (g Geo) IntAttributeAsync(partID int32, name string, attr info.Attribute) ([]int32, int32, error) {
	return ffi.GetAttributeIntDataAsync(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw())
}

func (g Geo) StringAttributeAsync(partID int32, name string, attr info.Attribute) ([]ffi.StringHandle, int32, error) {
	return ffi.GetAttributeStringDataAsync(g.sess.Handle(), g.node.ID(), partID, name, attr.Raw())
}

// WaitForJob polls GetJobStatus for a single async attribute job until
// it reports idle or ctx is cancelled.
func WaitForJob(ctx context.Context, sess *session.Session, jobID int32, pollInterval time.Duration) error {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Millisecond
	}
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		status, err := ffi.GetJobStatus(sess.Handle(), jobID)
		if err != nil {
			return err
		}
		if status == ffi.JobIdle {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// WaitForJobs polls a batch of async attribute jobs concurrently — the
// multi-job counterpart of WaitForJob, fanned out the same way Parts
// parallelizes independent GetPartInfo round trips.
func WaitForJobs(ctx context.Context, sess *session.Session, jobIDs []int32, pollInterval time.Duration) error {
	group, gctx := errgroup.WithContext(ctx)
	for _, id := range jobIDs {
		id := id
		group.Go(func() error {
			return WaitForJob(gctx, sess, id, pollInterval)
		})
	}
	return group.Wait()
}

// Dictionary is the Go shape of a decoded detail/point "dictionary"
// attribute value (§ supplemented: dictionary / dictionary-array
// attributes). The engine carries dictionary attributes as JSON strings;
// this package has no dictionary-specific read or write call and does no
// JSON encoding or decoding, so such attributes move through the string
// attribute calls as opaque strings.
type Dictionary = map[string]any

// ---- Write protocol (§4.4): SetPartInfo, then add/set attributes and
// topology, then CommitGeo. RevertGeo discards uncommitted edits. ----

// Writer authors input geometry on an editable SOP node (a "Input" or
// "Edit" node created with cooking disabled, per §4.4's write protocol).
type Writer struct {
	sess *session.Session
	node node.Node
}

// NewWriter opens geoNode for input-geometry authoring.
func NewWriter(sess *session.Session, geoNode node.Node) Writer {
	return Writer{sess: sess, node: geoNode}
}

// SetPart declares the shape of the part about to be authored — the
// first call of every write sequence.
func (w Writer) SetPart(part info.Part) error {
	return ffi.SetPartInfo(w.sess.Handle(), w.node.ID(), part.Raw())
}

func (w Writer) SetFaceCounts(partID int32, counts []int32) error {
	return ffi.SetFaceCounts(w.sess.Handle(), w.node.ID(), partID, counts)
}

func (w Writer) SetVertexList(partID int32, list []int32) error {
	return ffi.SetVertexList(w.sess.Handle(), w.node.ID(), partID, list)
}

func (w Writer) SetCurve(partID int32, curve info.Curve) error {
	return ffi.SetCurveInfo(w.sess.Handle(), w.node.ID(), partID, curve.Raw())
}

func (w Writer) SetCurveCounts(partID int32, counts []int32) error {
	return ffi.SetCurveCounts(w.sess.Handle(), w.node.ID(), partID, counts)
}

// AddGroup / DeleteGroup / SetGroupMembership manage a part's named
// point/primitive/edge groups (§4.4).
func (w Writer) AddGroup(partID int32, groupType GroupType, groupName string) error {
	return ffi.AddGroup(w.sess.Handle(), w.node.ID(), partID, int32(groupType), groupName)
}

func (w Writer) DeleteGroup(partID int32, groupType GroupType, groupName string) error {
	return ffi.DeleteGroup(w.sess.Handle(), w.node.ID(), partID, int32(groupType), groupName)
}

func (w Writer) SetGroupMembership(partID int32, groupType GroupType, groupName string, membership []bool) error {
	return ffi.SetGroupMembership(w.sess.Handle(), w.node.ID(), partID, int32(groupType), groupName, membership)
}

// CreateInputCurveNode creates a fresh top-level input-curve SOP named
// name (there is no parent argument), ready for SetInputCurve/
// SetInputCurvePositions (§4.4 supplemented: input curves, distinct from
// the curve-SOP write protocol above).
func CreateInputCurveNode(sess *session.Session, name string) (node.Node, error) {
	id, err := ffi.CreateInputCurveNode(sess.Handle(), name)
	if err != nil {
		return node.Node{}, err
	}
	return node.New(sess, id), nil
}

// SetInputCurve configures an input curve's type/order/closure/direction
// ahead of SetInputCurvePositions.
func (w Writer) SetInputCurve(partID int32, curve info.InputCurve) error {
	return ffi.SetInputCurveInfo(w.sess.Handle(), w.node.ID(), partID, curve.Raw())
}

// SetInputCurvePositions writes the flat [x,y,z, ...] breakpoint position
// array for an input curve.
func (w Writer) SetInputCurvePositions(partID int32, positions []float32) error {
	return ffi.SetInputCurvePositions(w.sess.Handle(), w.node.ID(), partID, positions)
}

// SetInputCurveTransform writes per-breakpoint positions plus rotations
// and/or scales, for input curves that drive a copy-to-points-style
// transform rather than plain position data. rotations/scales may be nil.
func (w Writer) SetInputCurveTransform(partID int32, positions, rotations, scales []float32) error {
	return ffi.SetInputCurvePositionsRotationsScales(w.sess.Handle(), w.node.ID(), partID, positions, rotations, scales)
}

// AddAttribute declares a new attribute's schema before its data is set.
func (w Writer) AddAttribute(partID int32, name string, attr info.Attribute) error {
	return ffi.AddAttribute(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw())
}

func (w Writer) DeleteAttribute(partID int32, name string, owner ffi.AttributeOwner) error {
	return ffi.DeleteAttribute(w.sess.Handle(), w.node.ID(), partID, name, owner)
}

func (w Writer) SetFloatAttribute(partID int32, name string, attr info.Attribute, values []float32) error {
	err := ffi.SetAttributeFloatData(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw(), values)
	return annotateBufferOverflow(err, int64(len(values))*4)
}

func (w Writer) SetIntAttribute(partID int32, name string, attr info.Attribute, values []int32) error {
	err := ffi.SetAttributeIntData(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw(), values)
	return annotateBufferOverflow(err, int64(len(values))*4)
}

func (w Writer) SetStringAttribute(partID int32, name string, attr info.Attribute, values []string) error {
	var size int64
	for _, s := range values {
		size += int64(len(s))
	}
	err := ffi.SetAttributeStringData(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw(), values)
	return annotateBufferOverflow(err, size)
}

// SetIntArrayAttribute / SetFloatArrayAttribute write a ragged
// numeric-array attribute's flattened data plus its per-element size
// list (§4.4 supplemented: numeric-array attributes).
func (w Writer) SetIntArrayAttribute(partID int32, name string, attr info.Attribute, data, sizes []int32) error {
	return ffi.SetAttributeIntArrayData(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw(), data, sizes)
}

func (w Writer) SetFloatArrayAttribute(partID int32, name string, attr info.Attribute, data []float32, sizes []int32) error {
	return ffi.SetAttributeFloatArrayData(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw(), data, sizes)
}

// SetFloatAttributeAsync / SetIntAttributeAsync / SetStringAttributeAsync
// start the async write of a potentially large attribute buffer,
// returning a job id the caller polls via WaitForJob (§4.4 supplemented:
// async attribute jobs).
func (w Writer) SetFloatAttributeAsync(partID int32, name string, attr info.Attribute, values []float32) (int32, error) {
	jobID, err := ffi.SetAttributeFloatDataAsync(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw(), values)
	return jobID, annotateBufferOverflow(err, int64(len(values))*4)
}

func (w Writer) SetIntAttributeAsync(partID int32, name string, attr info.Attribute, values []int32) (int32, error) {
	jobID, err := ffi.SetAttributeIntDataAsync(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw(), values)
	return jobID, annotateBufferOverflow(err, int64(len(values))*4)
}

func (w Writer) SetStringAttributeAsync(partID int32, name string, attr info.Attribute, values []string) (int32, error) {
	var size int64
	for _, s := range values {
		size += int64(len(s))
	}
	jobID, err := ffi.SetAttributeStringDataAsync(w.sess.Handle(), w.node.ID(), partID, name, attr.Raw(), values)
	return jobID, annotateBufferOverflow(err, size)
}

// annotateBufferOverflow adds a human-readable payload-size breadcrumb to a
// SharedMemoryBufferOverflow error, the one engine result code that is
// actually about a byte count — most callers otherwise only see the bare
// result code and have no idea how close they were to the limit.
func annotateBufferOverflow(err error, payloadBytes int64) error {
	if err == nil || !herr.IsCode(err, herr.SharedMemoryBufferOverflow) {
		return err
	}
	return herr.WithContext(err, func() string {
		return "payload was " + humanize.Bytes(uint64(payloadBytes))
	})
}

// Commit pushes every pending SetPart/SetAttribute/SetVertexList edit
// into the node's cook input, triggering a re-cook of anything downstream
// (§4.4's write protocol terminal step).
func (w Writer) Commit() error {
	return ffi.CommitGeo(w.sess.Handle(), w.node.ID())
}

// Revert discards uncommitted edits, restoring the part to its
// last-committed state.
func (w Writer) Revert() error {
	return ffi.RevertGeo(w.sess.Handle(), w.node.ID())
}

// ResolveNames is a convenience that resolves a slice of StringHandles
// (e.g. GroupNames-adjacent attribute name handles) through resolver.
func ResolveNames(resolver *stringhandle.Resolver, handles []stringhandle.Handle) ([]string, error) {
	return resolver.ResolveAll(handles)
}
