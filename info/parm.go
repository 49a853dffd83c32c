package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// Parm describes one parameter's static shape (type, size, menu, flags).
// The tagged Parameter value sum in package parameter layers typed access
// on top of this (§4.3).
type Parm struct {
	raw ffi.ParmInfo
}

func NewParm(raw ffi.ParmInfo) Parm { return Parm{raw: raw} }

func (p Parm) ID() ffi.ParmHandle         { return p.raw.ID }
func (p Parm) ParentID() ffi.ParmHandle   { return p.raw.ParentID }
func (p Parm) Type() int32                { return p.raw.Type }
func (p Parm) Size() int32                { return p.raw.Size }
func (p Parm) ChoiceCount() int32         { return p.raw.ChoiceCount }
func (p Parm) IntValuesIndex() int32      { return p.raw.IntValuesIndex }
func (p Parm) FloatValuesIndex() int32    { return p.raw.FloatValuesIndex }
func (p Parm) StringValuesIndex() int32   { return p.raw.StringValuesIndex }
func (p Parm) ChoiceIndex() int32         { return p.raw.ChoiceIndex }
func (p Parm) IsInvisible() bool          { return p.raw.InvisibleFlag }
func (p Parm) IsDisabled() bool           { return p.raw.DisabledFlag }
func (p Parm) IsSpare() bool              { return p.raw.SpareFlag }
func (p Parm) JoinsNext() bool            { return p.raw.JoinNext }
func (p Parm) IsChildOfMultiparm() bool   { return p.raw.IsChildOfMultiparm }
func (p Parm) InstanceNum() int32         { return p.raw.InstanceNum }

// IsMenu reports whether this parameter carries a choice menu — choice
// list type HAPI_CHOICELISTTYPE_NONE (0) means it doesn't (§4.3).
func (p Parm) IsMenu() bool { return p.raw.ChoiceListType != 0 }

// ParmChoice is one entry of a menu-style parameter's choice list.
type ParmChoice struct {
	raw ffi.ParmChoiceInfo
}

func NewParmChoice(raw ffi.ParmChoiceInfo) ParmChoice { return ParmChoice{raw: raw} }

func (c ParmChoice) ParentParmID() ffi.ParmHandle { return c.raw.ParentParmID }
func (c ParmChoice) Label() ffi.StringHandle      { return c.raw.Label }
func (c ParmChoice) Value() ffi.StringHandle      { return c.raw.Value }

// KeyFrame is one sample of an animated parameter channel (§4.3's anim
// curve support).
type KeyFrame struct {
	Time  float32
	Value float32
}

// KeyFramesToFFI flattens a caller-built curve into parallel time/value
// slices the way ffi.SetAnimCurve expects them.
func KeyFramesToFFI(frames []KeyFrame) (times, values []float32) {
	times = make([]float32, len(frames))
	values = make([]float32, len(frames))
	for i, f := range frames {
		times[i] = f.Time
		values[i] = f.Value
	}
	return times, values
}
