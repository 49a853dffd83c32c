package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// Material identifies the shader node bound to one or more faces of a
// part, resolved via ffi.GetMaterialNodeIDsOnFaces (§ supplemented:
// material-on-faces / texture baking).
type Material struct {
	raw ffi.MaterialInfo
}

func NewMaterial(raw ffi.MaterialInfo) Material { return Material{raw: raw} }

func (m Material) NodeID() ffi.NodeHandle { return m.raw.NodeID }
func (m Material) Exists() bool           { return m.raw.Exists }
func (m Material) HasChanged() bool       { return m.raw.HasChanged }

// Image describes the render target used by RenderTextureToImage /
// ExtractImageToFile — resolution, pixel layout and encoding.
type Image struct {
	raw ffi.ImageInfo
}

func NewImage(raw ffi.ImageInfo) Image { return Image{raw: raw} }

func BuildImage(dataFormat int32, interleaved bool, xRes, yRes int32, gamma float64) Image {
	return Image{raw: ffi.ImageInfo{
		DataFormat:  dataFormat,
		Interleaved: interleaved,
		XRes:        xRes,
		YRes:        yRes,
		Gamma:       gamma,
	}}
}

func (i Image) DataFormat() int32  { return i.raw.DataFormat }
func (i Image) Interleaved() bool  { return i.raw.Interleaved }
func (i Image) XRes() int32        { return i.raw.XRes }
func (i Image) YRes() int32        { return i.raw.YRes }
func (i Image) Gamma() float64     { return i.raw.Gamma }
func (i Image) Raw() ffi.ImageInfo { return i.raw }

// ImageFormat is one entry of the engine's supported image file format
// list (PNG, JPEG, EXR, ...), each an opaque plugin name plus extension.
type ImageFormat struct {
	raw ffi.ImageFileFormat
}

func NewImageFormat(raw ffi.ImageFileFormat) ImageFormat { return ImageFormat{raw: raw} }

func (f ImageFormat) Raw() ffi.ImageFileFormat { return f.raw }
