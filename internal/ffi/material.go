package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

// GetMaterialNodeIDsOnFaces wraps HAPI_GetMaterialNodeIdsOnFaces.
func GetMaterialNodeIDsOnFaces(session SessionHandle, node NodeHandle, partID int32, faceCount int32) (bool, []NodeHandle, error) {
	raw := session.raw()
	if faceCount <= 0 {
		return false, nil, nil
	}
	var allSame C.HAPI_Bool
	ids := make([]C.HAPI_NodeId, faceCount)
	r := C.HAPI_GetMaterialNodeIdsOnFaces(&raw, C.HAPI_NodeId(node), C.HAPI_PartId(partID), &allSame, &ids[0], 0, C.int32_t(faceCount))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return false, nil, ferr.Context("GetMaterialNodeIdsOnFaces")
	}
	out := make([]NodeHandle, faceCount)
	for i, id := range ids {
		out[i] = NodeHandle(id)
	}
	return allSame != 0, out, nil
}

// GetMaterialInfo wraps HAPI_GetMaterialInfo.
func GetMaterialInfo(session SessionHandle, materialNode NodeHandle) (MaterialInfo, error) {
	raw := session.raw()
	var info C.HAPI_MaterialInfo
	r := C.HAPI_GetMaterialInfo(&raw, C.HAPI_NodeId(materialNode), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return MaterialInfo{}, ferr.Context("GetMaterialInfo")
	}
	return MaterialInfo{
		NodeID:     NodeHandle(info.nodeId),
		Exists:     info.exists != 0,
		HasChanged: info.hasChanged != 0,
	}, nil
}

// RenderTextureToImage / RenderCOPToImage trigger the server-side texture
// bake described by the material/image supplemented feature.
func RenderTextureToImage(session SessionHandle, materialNode NodeHandle, parmID ParmHandle) error {
	raw := session.raw()
	r := C.HAPI_RenderTextureToImage(&raw, C.HAPI_NodeId(materialNode), C.HAPI_ParmId(parmID))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("RenderTextureToImage")
	}
	return nil
}

func RenderCOPToImage(session SessionHandle, copNode NodeHandle) error {
	raw := session.raw()
	r := C.HAPI_RenderCOPToImage(&raw, C.HAPI_NodeId(copNode))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("RenderCOPToImage")
	}
	return nil
}

// GetImageInfo / SetImageInfo describe the rendered image's pixel format.
func GetImageInfo(session SessionHandle, node NodeHandle) (ImageInfo, error) {
	raw := session.raw()
	var info C.HAPI_ImageInfo
	r := C.HAPI_GetImageInfo(&raw, C.HAPI_NodeId(node), &info)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ImageInfo{}, ferr.Context("GetImageInfo")
	}
	return ImageInfo{
		ImageFileFormatNameHandle: StringHandle(info.imageFileFormatNameSH),
		DataFormat:                int32(info.dataFormat),
		Interleaved:               info.interleaved != 0,
		XRes:                      int32(info.xRes),
		YRes:                      int32(info.yRes),
		Gamma:                     float64(info.gamma),
	}, nil
}

func SetImageInfo(session SessionHandle, node NodeHandle, info ImageInfo) error {
	raw := session.raw()
	var c C.HAPI_ImageInfo
	c.dataFormat = C.HAPI_ImageDataFormat(info.DataFormat)
	c.interleaved = boolToChar(info.Interleaved)
	c.xRes = C.int32_t(info.XRes)
	c.yRes = C.int32_t(info.YRes)
	c.gamma = C.double(info.Gamma)
	r := C.HAPI_SetImageInfo(&raw, C.HAPI_NodeId(node), &c)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetImageInfo")
	}
	return nil
}

// GetSupportedImageFileFormatCount / GetSupportedImageFileFormats list the
// server's available bake targets (PNG, JPEG, EXR, ...).
func GetSupportedImageFileFormatCount(session SessionHandle) (int32, error) {
	raw := session.raw()
	var count C.int32_t
	r := C.HAPI_GetSupportedImageFileFormatCount(&raw, &count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("GetSupportedImageFileFormatCount")
	}
	return int32(count), nil
}

func GetSupportedImageFileFormats(session SessionHandle, count int32) ([]ImageFileFormat, error) {
	raw := session.raw()
	if count <= 0 {
		return nil, nil
	}
	formats := make([]C.HAPI_ImageFileFormat, count)
	r := C.HAPI_GetSupportedImageFileFormats(&raw, &formats[0], count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetSupportedImageFileFormats")
	}
	out := make([]ImageFileFormat, count)
	for i, f := range formats {
		out[i] = ImageFileFormat{
			NameHandle:             StringHandle(f.nameSH),
			DescriptionHandle:      StringHandle(f.descriptionSH),
			DefaultExtensionHandle: StringHandle(f.defaultExtensionSH),
		}
	}
	return out, nil
}

// ExtractImageToFile / ExtractImageToMemory bake the rendered image out.
func ExtractImageToFile(session SessionHandle, node NodeHandle, format, imagePlanes, destDir, destFile string) (string, error) {
	raw := session.raw()
	f, err := cString(format)
	if err != nil {
		return "", err
	}
	defer freeCString(f)
	planes, err := cString(imagePlanes)
	if err != nil {
		return "", err
	}
	defer freeCString(planes)
	dir, err := cString(destDir)
	if err != nil {
		return "", err
	}
	defer freeCString(dir)
	file, err := optionalCString(destFile)
	if err != nil {
		return "", err
	}
	defer freeCString(file)

	var handle C.HAPI_StringHandle
	r := C.HAPI_ExtractImageToFile(&raw, C.HAPI_NodeId(node), f, planes, dir, file, &handle)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return "", ferr.Context("ExtractImageToFile")
	}
	return getString(&raw, handle)
}

func ExtractImageToMemory(session SessionHandle, node NodeHandle, format, imagePlanes string) ([]byte, error) {
	raw := session.raw()
	f, err := cString(format)
	if err != nil {
		return nil, err
	}
	defer freeCString(f)
	planes, err := cString(imagePlanes)
	if err != nil {
		return nil, err
	}
	defer freeCString(planes)

	var bufLen C.int32_t
	r := C.HAPI_ExtractImageToMemory(&raw, C.HAPI_NodeId(node), f, planes, &bufLen)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("ExtractImageToMemory")
	}
	if bufLen == 0 {
		return nil, nil
	}
	buf := make([]C.char, bufLen)
	r = C.HAPI_GetImageMemoryBuffer(&raw, C.HAPI_NodeId(node), &buf[0], bufLen)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetImageMemoryBuffer")
	}
	out := make([]byte, bufLen)
	for i, c := range buf {
		out[i] = byte(c)
	}
	return out, nil
}

// GetImagePlaneCount / GetImagePlanes enumerate available render planes
// (C, Depth, Normal, Alpha, ...).
func GetImagePlaneCount(session SessionHandle, node NodeHandle) (int32, error) {
	raw := session.raw()
	var count C.int32_t
	r := C.HAPI_GetImagePlaneCount(&raw, C.HAPI_NodeId(node), &count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("GetImagePlaneCount")
	}
	return int32(count), nil
}

func GetImagePlanes(session SessionHandle, node NodeHandle, count int32) ([]string, error) {
	raw := session.raw()
	if count <= 0 {
		return nil, nil
	}
	handles := make([]C.HAPI_StringHandle, count)
	r := C.HAPI_GetImagePlanes(&raw, C.HAPI_NodeId(node), &handles[0], count)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetImagePlanes")
	}
	out := make([]string, count)
	for i, h := range handles {
		s, err := getString(&raw, h)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
