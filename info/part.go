package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// Geo wraps a SOP's display/output geometry container (§4.4).
type Geo struct {
	raw ffi.GeoInfo
}

func NewGeo(raw ffi.GeoInfo) Geo { return Geo{raw: raw} }

func (g Geo) NodeID() ffi.NodeHandle          { return g.raw.NodeID }
func (g Geo) IsEditable() bool                { return g.raw.IsEditable }
func (g Geo) IsTemplated() bool               { return g.raw.IsTemplated }
func (g Geo) IsDisplayGeo() bool              { return g.raw.IsDisplayGeo }
func (g Geo) HasGeoChanged() bool             { return g.raw.HasGeoChanged }
func (g Geo) HasMaterialChanged() bool        { return g.raw.HasMaterialChanged }
func (g Geo) PartCount() int32                { return g.raw.PartCount }
func (g Geo) PointGroupCount() int32          { return g.raw.PointGroupCount }
func (g Geo) PrimitiveGroupCount() int32      { return g.raw.PrimitiveGroupCount }

// Part describes one geometry part within a Geo (§4.4 — the unit the
// attribute matrix is keyed against).
type Part struct {
	raw ffi.PartInfo
}

func NewPart(raw ffi.PartInfo) Part { return Part{raw: raw} }

// BuildPart constructs a Part for input-geometry authoring (§4.4's write
// protocol: SetPartInfo before any attribute add/set).
func BuildPart(id, faceCount, vertexCount, pointCount int32, isInstanced bool) Part {
	return Part{raw: ffi.PartInfo{
		ID:          id,
		FaceCount:   faceCount,
		VertexCount: vertexCount,
		PointCount:  pointCount,
		IsInstanced: isInstanced,
	}}
}

func (p Part) ID() int32                        { return p.raw.ID }
func (p Part) Type() int32                      { return p.raw.Type }
func (p Part) FaceCount() int32                 { return p.raw.FaceCount }
func (p Part) VertexCount() int32               { return p.raw.VertexCount }
func (p Part) PointCount() int32                { return p.raw.PointCount }
func (p Part) PointAttributeCount() int32       { return p.raw.PointAttributeCount }
func (p Part) VertexAttributeCount() int32      { return p.raw.VertexAttributeCount }
func (p Part) PrimitiveAttributeCount() int32   { return p.raw.PrimitiveAttributeCount }
func (p Part) DetailAttributeCount() int32      { return p.raw.DetailAttributeCount }
func (p Part) IsInstanced() bool                { return p.raw.IsInstanced }
func (p Part) InstancedPartCount() int32        { return p.raw.InstancedPartCount }
func (p Part) InstanceCount() int32             { return p.raw.InstanceCount }
func (p Part) HasChanged() bool                 { return p.raw.HasChanged }
func (p Part) Raw() ffi.PartInfo                { return p.raw }

// Attribute describes a single attribute's shape: owner, storage kind,
// per-element tuple size and element count (§4.4's attribute matrix).
type Attribute struct {
	raw ffi.AttributeInfo
}

func NewAttribute(raw ffi.AttributeInfo) Attribute { return Attribute{raw: raw} }

// BuildAttribute constructs the info needed to AddAttribute for a new
// point/vertex/primitive/detail attribute.
func BuildAttribute(owner ffi.AttributeOwner, storage ffi.AttributeStorage, count, tupleSize int32) Attribute {
	return Attribute{raw: ffi.AttributeInfo{
		Exists:    true,
		Owner:     owner,
		Storage:   storage,
		Count:     count,
		TupleSize: tupleSize,
	}}
}

func (a Attribute) Exists() bool                     { return a.raw.Exists }
func (a Attribute) Owner() ffi.AttributeOwner         { return a.raw.Owner }
func (a Attribute) Storage() ffi.AttributeStorage     { return a.raw.Storage }
func (a Attribute) Count() int32                      { return a.raw.Count }
func (a Attribute) TupleSize() int32                  { return a.raw.TupleSize }
func (a Attribute) TotalArrayElements() int64         { return a.raw.TotalArrayElements }
func (a Attribute) Raw() ffi.AttributeInfo            { return a.raw }

// Curve describes a SOP curve part's vertex/order/periodicity shape.
type Curve struct {
	raw ffi.CurveInfo
}

func NewCurve(raw ffi.CurveInfo) Curve { return Curve{raw: raw} }

func BuildCurve(curveType ffi.AttributeStorage, curveCount, vertexCount, order int32, periodic bool) Curve {
	return Curve{raw: ffi.CurveInfo{
		CurveType:   int32(curveType),
		CurveCount:  curveCount,
		VertexCount: vertexCount,
		Order:       order,
		Periodic:    periodic,
	}}
}

func (c Curve) CurveType() int32    { return c.raw.CurveType }
func (c Curve) CurveCount() int32   { return c.raw.CurveCount }
func (c Curve) VertexCount() int32  { return c.raw.VertexCount }
func (c Curve) Order() int32        { return c.raw.Order }
func (c Curve) IsPeriodic() bool    { return c.raw.Periodic }
func (c Curve) IsRational() bool    { return c.raw.IsRational }
func (c Curve) Raw() ffi.CurveInfo  { return c.raw }

// InputCurve configures an input-curve SOP's editable curve — a distinct,
// smaller shape from Curve, since it describes what to create rather than
// what got cooked (§4.4 supplemented: input curves).
type InputCurve struct {
	raw ffi.InputCurveInfo
}

func NewInputCurve(raw ffi.InputCurveInfo) InputCurve { return InputCurve{raw: raw} }

// BuildInputCurve constructs an InputCurveInfo for CreateInputCurveNode's
// SetInfo call. method and parameterization are the
// HAPI_InputCurveMethod/HAPI_InputCurveParameterization raw values.
func BuildInputCurve(curveType ffi.AttributeStorage, order int32, closed, reverse bool, method, parameterization int32) InputCurve {
	return InputCurve{raw: ffi.InputCurveInfo{
		CurveType:                  int32(curveType),
		Order:                      order,
		Closed:                     closed,
		Reverse:                    reverse,
		InputMethod:                method,
		BreakpointParameterization: parameterization,
	}}
}

func (c InputCurve) CurveType() int32                  { return c.raw.CurveType }
func (c InputCurve) Order() int32                       { return c.raw.Order }
func (c InputCurve) IsClosed() bool                     { return c.raw.Closed }
func (c InputCurve) IsReversed() bool                   { return c.raw.Reverse }
func (c InputCurve) InputMethod() int32                 { return c.raw.InputMethod }
func (c InputCurve) BreakpointParameterization() int32  { return c.raw.BreakpointParameterization }
func (c InputCurve) Raw() ffi.InputCurveInfo            { return c.raw }

// Box/Sphere describe the two HAPI "intrinsic primitive" part shortcuts.
type Box struct {
	Center [3]float32
	Size   [3]float32
	Rotation [3]float32
}

type Sphere struct {
	Center [3]float32
	Radius float32
	XRotation, YRotation, ZRotation float32
	ScaleX, ScaleY, ScaleZ float32
}
