// Package parameter implements the typed parameter system (spec.md §4.3):
// a tagged Parameter value sum over the flat int/float/string arrays HAPI
// exposes, plus menus, expressions, multiparm, and keyframe animation.
package parameter

import (
	"github.com/sidefxlabs/hapi-go/info"
	"github.com/sidefxlabs/hapi-go/internal/elog"
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/node"
	"github.com/sidefxlabs/hapi-go/session"
	"github.com/sidefxlabs/hapi-go/stringhandle"
)

// Kind is the ParmInfo "type" field's value space, used to pick which
// branch of the Parameter sum a given ParmInfo should decode into.
type Kind int32

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindButton
	KindToggle
	KindColor
	KindNode
	KindOther
)

// kindFromRaw maps a raw HAPI_ParmType value onto our coarser Kind sum.
// The engine's type enum has far more cases (file, folder, separator,
// label, ...); anything not explicitly numeric/string/button collapses
// to KindOther, matching hapi-rs's ParmType::Other catch-all.
func kindFromRaw(t int32) Kind {
	switch t {
	case 0, 1, 2: // HAPI_PARMTYPE_INT, _MULTIPARMLIST via int, _TOGGLE
		return KindInt
	case 3, 4, 5, 6: // FLOAT family
		return KindFloat
	case 7, 8, 9: // STRING family (string, node, file-path groups)
		return KindString
	case 25: // HAPI_PARMTYPE_BUTTON
		return KindButton
	default:
		return KindOther
	}
}

// Parameter is a single evaluated parameter: the static shape from
// info.Parm plus its current typed value. Exactly one of the Values
// fields is meaningful, selected by Kind.
type Parameter struct {
	Shape  info.Parm
	Name   string
	Kind   Kind
	Ints   []int32
	Floats []float32
	Strs   []string
}

// List reads every parameter on node n, resolving names and values in
// bulk (§4.3: flat arrays, one round trip per storage kind rather than
// per parameter).
func List(sess *session.Session, n node.Node, resolver *stringhandle.Resolver) ([]Parameter, error) {
	ni, err := n.Info()
	if err != nil {
		return nil, err
	}
	raw, err := ffi.GetParameters(sess.Handle(), n.ID(), ni.ParmCount())
	if err != nil {
		return nil, err
	}

	out := make([]Parameter, len(raw))
	for i, p := range raw {
		shape := info.NewParm(p)
		name, err := resolver.Resolve(p.Name)
		if err != nil {
			return nil, err
		}
		param := Parameter{Shape: shape, Name: name, Kind: kindFromRaw(p.Type)}

		switch param.Kind {
		case KindInt, KindButton:
			if p.Size > 0 {
				param.Ints, err = ffi.GetParmIntValues(sess.Handle(), n.ID(), p.IntValuesIndex, p.Size)
			}
		case KindFloat:
			if p.Size > 0 {
				param.Floats, err = ffi.GetParmFloatValues(sess.Handle(), n.ID(), p.FloatValuesIndex, p.Size)
			}
		case KindString:
			param.Strs = make([]string, p.Size)
			for j := int32(0); j < p.Size; j++ {
				param.Strs[j], err = ffi.GetParmStringValue(sess.Handle(), n.ID(), name, j, true)
				if err != nil {
					break
				}
			}
		}
		if err != nil {
			return nil, err
		}
		out[i] = param
	}
	return out, nil
}

// SetInt writes a single int/toggle value at index (§4.3).
func SetInt(sess *session.Session, n node.Node, p info.Parm, index int32, value int32) error {
	return ffi.SetParmIntValues(sess.Handle(), n.ID(), p.IntValuesIndex()+index, []int32{value})
}

// SetFloat writes a single float value at index.
func SetFloat(sess *session.Session, n node.Node, p info.Parm, index int32, value float32) error {
	return ffi.SetParmFloatValues(sess.Handle(), n.ID(), p.FloatValuesIndex()+index, []float32{value})
}

// SetString writes a string value at index.
func SetString(sess *session.Session, n node.Node, p info.Parm, index int32, value string) error {
	return ffi.SetParmStringValue(sess.Handle(), n.ID(), p.ID(), value, index)
}

// GetIntArray / GetFloatArray / GetStringArray read every tuple value of
// p in one round trip (§4.3's get_array()).
func GetIntArray(sess *session.Session, n node.Node, p info.Parm) ([]int32, error) {
	return ffi.GetParmIntValues(sess.Handle(), n.ID(), p.IntValuesIndex(), p.Size())
}

func GetFloatArray(sess *session.Session, n node.Node, p info.Parm) ([]float32, error) {
	return ffi.GetParmFloatValues(sess.Handle(), n.ID(), p.FloatValuesIndex(), p.Size())
}

func GetStringArray(sess *session.Session, n node.Node, p info.Parm) ([]string, error) {
	return ffi.GetParmStringValues(sess.Handle(), n.ID(), p.StringValuesIndex(), p.Size())
}

// SetIntArray / SetFloatArray / SetStringArray write every tuple value of
// p (§4.3's set_array()). A values slice longer than p.Size() is
// truncated to fit, with a warning logged through sess — matching
// hapi-rs's set_array behavior of clamping rather than failing.
func SetIntArray(sess *session.Session, n node.Node, p info.Parm, values []int32) error {
	values = truncateToSize(sess, p, values)
	return ffi.SetParmIntValues(sess.Handle(), n.ID(), p.IntValuesIndex(), values)
}

func SetFloatArray(sess *session.Session, n node.Node, p info.Parm, values []float32) error {
	values = truncateToSize(sess, p, values)
	return ffi.SetParmFloatValues(sess.Handle(), n.ID(), p.FloatValuesIndex(), values)
}

func SetStringArray(sess *session.Session, n node.Node, p info.Parm, values []string) error {
	values = truncateToSize(sess, p, values)
	return ffi.SetParmStringValues(sess.Handle(), n.ID(), p.ID(), values)
}

// truncateToSize clamps values to p.Size(), logging through sess when a
// caller oversupplies (§4.3's set_array() truncate-and-warn semantics).
func truncateToSize[T any](sess *session.Session, p info.Parm, values []T) []T {
	if int32(len(values)) > p.Size() {
		sess.Log(elog.KindParameter, "array length %d exceeds parm size %d, truncating", len(values), p.Size())
		return values[:p.Size()]
	}
	return values
}

// MenuItems slices a node's bulk Choices() dump down to the entries that
// belong to p, using p's ChoiceIndex/ChoiceCount window (§4.3's
// is_menu()/menu_items()). Returns nil if p isn't menu-backed.
func MenuItems(sess *session.Session, n node.Node, p info.Parm, resolver *stringhandle.Resolver) ([]info.ParmChoice, error) {
	if !p.IsMenu() || p.ChoiceCount() == 0 {
		return nil, nil
	}
	all, err := Choices(sess, n, resolver)
	if err != nil {
		return nil, err
	}
	start := p.ChoiceIndex()
	end := start + p.ChoiceCount()
	if start < 0 || end > int32(len(all)) {
		return nil, nil
	}
	return all[start:end], nil
}

// PressButton triggers a HAPI_PARMTYPE_BUTTON-style parameter the same way
// clicking it in the UI would: write 1 to its sole int value. hapi-rs's
// press_button does this rather than exposing a dedicated C call, and
// nothing stops it from being called on a non-button int parm.
func PressButton(sess *session.Session, n node.Node, p info.Parm) error {
	return SetInt(sess, n, p, 0, 1)
}

// ValueAsNode / SetValueAsNode read and write a ParmType::Node-valued
// parameter — one whose value is an op-path to another node rather than a
// plain string (§4.3).
func ValueAsNode(sess *session.Session, n node.Node, parmName string) (node.Node, error) {
	h, err := ffi.GetParmNodeValue(sess.Handle(), n.ID(), parmName)
	if err != nil {
		return node.Node{}, err
	}
	return node.New(sess, h), nil
}

func SetValueAsNode(sess *session.Session, n node.Node, p info.Parm, target node.Node) error {
	return ffi.SetParmNodeValue(sess.Handle(), n.ID(), p.ID(), target.ID())
}

// SaveParmFile downloads a file-valued parameter's referenced content to
// destDir/destFile (§4.3's save_parm_file).
func SaveParmFile(sess *session.Session, n node.Node, parmName, destDir, destFile string) error {
	return ffi.GetParmFile(sess.Handle(), n.ID(), parmName, destDir, destFile)
}

// ByName resolves a ParmHandle from its script name (§4.3).
func ByName(sess *session.Session, n node.Node, name string) (ffi.ParmHandle, error) {
	return ffi.GetParmIDFromName(sess.Handle(), n.ID(), name)
}

// Expression / SetExpression / ClearExpression manage a channel's
// expression string, independent of its evaluated value.
func Expression(sess *session.Session, n node.Node, parmName string, index int32) (string, error) {
	return ffi.GetParmExpression(sess.Handle(), n.ID(), parmName, index)
}

func SetExpression(sess *session.Session, n node.Node, p info.Parm, value string, index int32) error {
	return ffi.SetParmExpression(sess.Handle(), n.ID(), p.ID(), value, index)
}

func ClearExpression(sess *session.Session, n node.Node, p info.Parm, index int32) error {
	return ffi.RemoveParmExpression(sess.Handle(), n.ID(), p.ID(), index)
}

// RevertToDefault reverts a single index of parmName back to its
// asset-defined default.
func RevertToDefault(sess *session.Session, n node.Node, parmName string, index int32) error {
	return ffi.RevertParmToDefault(sess.Handle(), n.ID(), parmName, index)
}

// InsertMultiparmInstance / RemoveMultiparmInstance manage a multi-parm
// block's instances (§4.3).
func InsertMultiparmInstance(sess *session.Session, n node.Node, p info.Parm, position int32) error {
	return ffi.InsertMultiparmInstance(sess.Handle(), n.ID(), p.ID(), position)
}

func RemoveMultiparmInstance(sess *session.Session, n node.Node, p info.Parm, position int32) error {
	return ffi.RemoveMultiparmInstance(sess.Handle(), n.ID(), p.ID(), position)
}

// Tag / HasTag expose the tag metadata attached to a parameter
// definition (e.g. "sidefx::range", used by UI-generating hosts).
func Tag(sess *session.Session, n node.Node, p info.Parm, index int32) (string, error) {
	return ffi.GetParmTagName(sess.Handle(), n.ID(), p.ID(), index)
}

func HasTag(sess *session.Session, n node.Node, parmName, tagName string) (bool, error) {
	return ffi.GetParmHasTag(sess.Handle(), n.ID(), parmName, tagName)
}

// SetAnimCurve drives a parameter channel from keyframes (§4.3).
func SetAnimCurve(sess *session.Session, n node.Node, p info.Parm, subIndex int32, frames []info.KeyFrame) error {
	times, values := info.KeyFramesToFFI(frames)
	return ffi.SetAnimCurve(sess.Handle(), n.ID(), p.ID(), subIndex, times, values)
}

// Choices reads node n's menu-style parameter choice lists in bulk.
func Choices(sess *session.Session, n node.Node, resolver *stringhandle.Resolver) ([]info.ParmChoice, error) {
	ni, err := n.Info()
	if err != nil {
		return nil, err
	}
	if ni.ParmCount() == 0 {
		return nil, nil
	}
	raw, err := ffi.GetParmChoiceLists(sess.Handle(), n.ID(), ni.ParmCount())
	if err != nil {
		return nil, err
	}
	out := make([]info.ParmChoice, len(raw))
	for i, c := range raw {
		out[i] = info.NewParmChoice(c)
	}
	return out, nil
}
