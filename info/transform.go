package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// Transform is a quaternion-rotation SRT transform (§ supplemented:
// matrix/quaternion/Euler conversions).
type Transform struct {
	raw ffi.Transform
}

func NewTransform(raw ffi.Transform) Transform { return Transform{raw: raw} }

func BuildTransform(position [3]float32, rotationQuat [4]float32, scale [3]float32, rstOrder ffi.RSTOrder) Transform {
	return Transform{raw: ffi.Transform{
		Position:           position,
		RotationQuaternion: rotationQuat,
		Scale:              scale,
		RSTOrder:           rstOrder,
	}}
}

func (t Transform) Position() [3]float32           { return t.raw.Position }
func (t Transform) RotationQuaternion() [4]float32  { return t.raw.RotationQuaternion }
func (t Transform) Scale() [3]float32               { return t.raw.Scale }
func (t Transform) Shear() (xy, xz, yz float32)     { return t.raw.ShearXY, t.raw.ShearXZ, t.raw.ShearYZ }
func (t Transform) RSTOrder() ffi.RSTOrder          { return t.raw.RSTOrder }
func (t Transform) Raw() ffi.Transform              { return t.raw }

// TransformEuler is the Euler-angle equivalent, used when callers want
// rotation in degrees/radians rather than a quaternion.
type TransformEuler struct {
	raw ffi.TransformEuler
}

func NewTransformEuler(raw ffi.TransformEuler) TransformEuler { return TransformEuler{raw: raw} }

func BuildTransformEuler(position, rotationEuler, scale [3]float32, rotOrder ffi.XYZOrder, rstOrder ffi.RSTOrder) TransformEuler {
	return TransformEuler{raw: ffi.TransformEuler{
		Position:      position,
		RotationEuler: rotationEuler,
		Scale:         scale,
		RotationOrder: rotOrder,
		RSTOrder:      rstOrder,
	}}
}

func (t TransformEuler) Position() [3]float32      { return t.raw.Position }
func (t TransformEuler) RotationEuler() [3]float32 { return t.raw.RotationEuler }
func (t TransformEuler) Scale() [3]float32         { return t.raw.Scale }
func (t TransformEuler) RotationOrder() ffi.XYZOrder { return t.raw.RotationOrder }
func (t TransformEuler) RSTOrder() ffi.RSTOrder      { return t.raw.RSTOrder }
func (t TransformEuler) Raw() ffi.TransformEuler     { return t.raw }

// Viewport is the host's camera position/rotation/offset, used by PDG
// schedulers and the compositor to match the editor's view (§6.4).
type Viewport struct {
	Position [3]float32
	Rotation [4]float32
	Offset   float32
}

// TimelineOptions carries the host's frame range and FPS, read once per
// session and consulted by any time-dependent cook.
type TimelineOptions struct {
	FPS        float32
	StartTime  float32
	EndTime    float32
}

// CompositorOptions configures the image compositor used by
// RenderTextureToImage's COP-based path.
type CompositorOptions struct {
	MinimumImageTileSize int32
	MaximumResolutionX   int32
	MaximumResolutionY   int32
}
