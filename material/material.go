// Package material implements material lookup and texture baking (spec.md
// § supplemented: material-on-faces lookup, image render/extract,
// supported image formats/planes).
package material

import (
	"github.com/sidefxlabs/hapi-go/info"
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/node"
	"github.com/sidefxlabs/hapi-go/session"
)

// FacesLookup is the result of resolving which material node is bound to
// each face of a part.
type FacesLookup struct {
	AllSame bool
	PerFace []node.Node
}

// OnFaces resolves the material bound to every face of partID.
func OnFaces(sess *session.Session, geoNode node.Node, partID, faceCount int32) (FacesLookup, error) {
	allSame, ids, err := ffi.GetMaterialNodeIDsOnFaces(sess.Handle(), geoNode.ID(), partID, faceCount)
	if err != nil {
		return FacesLookup{}, err
	}
	out := make([]node.Node, len(ids))
	for i, id := range ids {
		out[i] = node.New(sess, id)
	}
	return FacesLookup{AllSame: allSame, PerFace: out}, nil
}

// Info fetches a material node's MaterialInfo (whether it exists, and
// whether its shader parameters changed since the last cook).
func Info(sess *session.Session, materialNode node.Node) (info.Material, error) {
	raw, err := ffi.GetMaterialInfo(sess.Handle(), materialNode.ID())
	if err != nil {
		return info.Material{}, err
	}
	return info.NewMaterial(raw), nil
}

// RenderTexture bakes the texture bound to a material's parameter (a
// procedural shader input, typically) to a server-side image buffer
// ready for ExtractImage* calls.
func RenderTexture(sess *session.Session, materialNode node.Node, parm ffi.ParmHandle) error {
	return ffi.RenderTextureToImage(sess.Handle(), materialNode.ID(), parm)
}

// RenderCOP bakes a COP network's output image.
func RenderCOP(sess *session.Session, copNode node.Node) error {
	return ffi.RenderCOPToImage(sess.Handle(), copNode.ID())
}

// Image describes the pixel format of a node's most recently rendered
// image (populated by RenderTexture/RenderCOP).
func Image(sess *session.Session, imageNode node.Node) (info.Image, error) {
	raw, err := ffi.GetImageInfo(sess.Handle(), imageNode.ID())
	if err != nil {
		return info.Image{}, err
	}
	return info.NewImage(raw), nil
}

// SetImage requests the engine re-encode the rendered image to the given
// format before extraction (resolution change, interleave toggle, ...).
func SetImage(sess *session.Session, imageNode node.Node, img info.Image) error {
	return ffi.SetImageInfo(sess.Handle(), imageNode.ID(), img.Raw())
}

// SupportedFormats enumerates the bake targets the server supports
// (PNG, JPEG, EXR, ...).
func SupportedFormats(sess *session.Session) ([]info.ImageFormat, error) {
	count, err := ffi.GetSupportedImageFileFormatCount(sess.Handle())
	if err != nil {
		return nil, err
	}
	raw, err := ffi.GetSupportedImageFileFormats(sess.Handle(), count)
	if err != nil {
		return nil, err
	}
	out := make([]info.ImageFormat, len(raw))
	for i, f := range raw {
		out[i] = info.NewImageFormat(f)
	}
	return out, nil
}

// ExtractToFile bakes the rendered image to destDir (destFile empty means
// "let the engine choose a name") and returns the written path.
func ExtractToFile(sess *session.Session, imageNode node.Node, format, imagePlanes, destDir, destFile string) (string, error) {
	return ffi.ExtractImageToFile(sess.Handle(), imageNode.ID(), format, imagePlanes, destDir, destFile)
}

// ExtractToMemory bakes the rendered image into an in-memory byte buffer.
func ExtractToMemory(sess *session.Session, imageNode node.Node, format, imagePlanes string) ([]byte, error) {
	return ffi.ExtractImageToMemory(sess.Handle(), imageNode.ID(), format, imagePlanes)
}

// Planes enumerates the render planes available on a node's last
// rendered image (C, Depth, Normal, Alpha, ...).
func Planes(sess *session.Session, imageNode node.Node) ([]string, error) {
	count, err := ffi.GetImagePlaneCount(sess.Handle(), imageNode.ID())
	if err != nil {
		return nil, err
	}
	return ffi.GetImagePlanes(sess.Handle(), imageNode.ID(), count)
}
