package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// Asset describes an HDA instance's top-level identity — separate from
// Node because an asset always has an underlying node but not every node
// is an asset instance (§4.2 supplemented: asset library views).
type Asset struct {
	raw ffi.AssetInfo
}

func NewAsset(raw ffi.AssetInfo) Asset { return Asset{raw: raw} }

func (a Asset) NodeID() ffi.NodeHandle       { return a.raw.NodeID }
func (a Asset) ObjectNodeID() ffi.NodeHandle { return a.raw.ObjectNodeID }
func (a Asset) HasEverCooked() bool          { return a.raw.HasEverCooked }
func (a Asset) ObjectCount() int32           { return a.raw.ObjectCount }
func (a Asset) HandleCount() int32           { return a.raw.HandleCount }
func (a Asset) TransformInputCount() int32   { return a.raw.TransformInputCount }
func (a Asset) GeoInputCount() int32         { return a.raw.GeoInputCount }
func (a Asset) GeoOutputCount() int32        { return a.raw.GeoOutputCount }
func (a Asset) Raw() ffi.AssetInfo           { return a.raw }

// AssetLibrary is the handle returned by loading an .otl/.hda file plus
// the operator names it defines, resolved up front so callers can pick
// an operator without a round trip per name.
type AssetLibrary struct {
	ID            int32
	OperatorNames []string
}

// AssetParm is one default parameter value on an asset definition that
// has not yet been instantiated into a node — the shape plus whichever
// of Int/Float/Str/Choices applies, selected the same way Parm's live
// Type() picks a branch (§4.2 supplemented: asset default-value views).
type AssetParm struct {
	Shape   Parm
	Int     []int32
	Float   []float32
	Str     []string
	Choices []ParmChoice
}

// BuildAssetParms zips a flat ParmInfo list with the parallel
// int/float/string/choice arrays HAPI_GetAssetDefinitionParmValues
// returns, slicing each parm's window out of the shared buffers the same
// way a live node's IntValuesIndex/FloatValuesIndex/StringValuesIndex do.
func BuildAssetParms(shapes []ffi.ParmInfo, ints []int32, floats []float32, strs []string, choices []ffi.ParmChoiceInfo) []AssetParm {
	out := make([]AssetParm, len(shapes))
	for i, raw := range shapes {
		shape := NewParm(raw)
		ap := AssetParm{Shape: shape}
		// Type family follows the same numeric ranges as the live decode
		// path (parameter.kindFromRaw): 0-2 int/toggle, 3-6 float, 7-9 string.
		if raw.Size > 0 {
			switch {
			case raw.Type <= 2:
				if end := int(raw.IntValuesIndex) + int(raw.Size); end <= len(ints) {
					ap.Int = ints[raw.IntValuesIndex:end]
				}
			case raw.Type <= 6:
				if end := int(raw.FloatValuesIndex) + int(raw.Size); end <= len(floats) {
					ap.Float = floats[raw.FloatValuesIndex:end]
				}
			case raw.Type <= 9:
				if end := int(raw.StringValuesIndex) + int(raw.Size); end <= len(strs) {
					ap.Str = strs[raw.StringValuesIndex:end]
				}
			}
		}
		if raw.ChoiceCount > 0 && int(raw.ChoiceIndex)+int(raw.ChoiceCount) <= len(choices) {
			cs := choices[raw.ChoiceIndex : raw.ChoiceIndex+raw.ChoiceCount]
			ap.Choices = make([]ParmChoice, len(cs))
			for j, c := range cs {
				ap.Choices[j] = NewParmChoice(c)
			}
		}
		out[i] = ap
	}
	return out
}
