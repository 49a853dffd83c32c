package ffi

/*
#include <HAPI/HAPI.h>
*/
import "C"

// RSTOrder / XYZOrder mirror HAPI_RSTOrder / HAPI_XYZOrder, the rotation
// composition orders used when converting between matrix, quaternion and
// Euler transform representations.
type RSTOrder int32
type XYZOrder int32

func transformToC(t Transform) C.HAPI_Transform {
	var c C.HAPI_Transform
	for i := 0; i < 3; i++ {
		c.position[i] = C.float(t.Position[i])
		c.scale[i] = C.float(t.Scale[i])
	}
	for i := 0; i < 4; i++ {
		c.rotationQuaternion[i] = C.float(t.RotationQuaternion[i])
	}
	c.shearXY = C.float(t.ShearXY)
	c.shearXZ = C.float(t.ShearXZ)
	c.shearYZ = C.float(t.ShearYZ)
	c.rstOrder = C.HAPI_RSTOrder(t.RSTOrder)
	return c
}

func transformFromC(c C.HAPI_Transform) Transform {
	var t Transform
	for i := 0; i < 3; i++ {
		t.Position[i] = float32(c.position[i])
		t.Scale[i] = float32(c.scale[i])
	}
	for i := 0; i < 4; i++ {
		t.RotationQuaternion[i] = float32(c.rotationQuaternion[i])
	}
	t.ShearXY = float32(c.shearXY)
	t.ShearXZ = float32(c.shearXZ)
	t.ShearYZ = float32(c.shearYZ)
	t.RSTOrder = RSTOrder(c.rstOrder)
	return t
}

func transformEulerFromC(c C.HAPI_TransformEuler) TransformEuler {
	var t TransformEuler
	for i := 0; i < 3; i++ {
		t.Position[i] = float32(c.position[i])
		t.RotationEuler[i] = float32(c.rotationEuler[i])
		t.Scale[i] = float32(c.scale[i])
	}
	t.ShearXY = float32(c.shearXY)
	t.ShearXZ = float32(c.shearXZ)
	t.ShearYZ = float32(c.shearYZ)
	t.RotationOrder = XYZOrder(c.rotationOrder)
	t.RSTOrder = RSTOrder(c.rstOrder)
	return t
}

// ConvertTransform wraps HAPI_ConvertTransform, re-ordering an existing
// transform's rotation/scale composition.
func ConvertTransform(session SessionHandle, transform Transform, rstOrder RSTOrder) (Transform, error) {
	raw := session.raw()
	c := transformToC(transform)
	var out C.HAPI_Transform
	r := C.HAPI_ConvertTransform(&raw, &c, C.HAPI_RSTOrder(rstOrder), &out)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return Transform{}, ferr.Context("ConvertTransform")
	}
	return transformFromC(out), nil
}

// ConvertMatrixToQuat decomposes a raw 4x4 matrix into translate/rotate
// (quaternion)/scale components.
func ConvertMatrixToQuat(session SessionHandle, matrix [16]float32, rstOrder RSTOrder) (Transform, error) {
	raw := session.raw()
	var cMatrix [16]C.float
	for i, v := range matrix {
		cMatrix[i] = C.float(v)
	}
	var out C.HAPI_Transform
	r := C.HAPI_ConvertMatrixToQuat(&raw, &cMatrix[0], C.HAPI_RSTOrder(rstOrder), &out)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return Transform{}, ferr.Context("ConvertMatrixToQuat")
	}
	return transformFromC(out), nil
}

// ConvertMatrixToEuler decomposes a raw 4x4 matrix into translate/rotate
// (Euler angles, in the given order)/scale components.
func ConvertMatrixToEuler(session SessionHandle, matrix [16]float32, rstOrder RSTOrder, xyzOrder XYZOrder) (TransformEuler, error) {
	raw := session.raw()
	var cMatrix [16]C.float
	for i, v := range matrix {
		cMatrix[i] = C.float(v)
	}
	var out C.HAPI_TransformEuler
	r := C.HAPI_ConvertMatrixToEuler(&raw, &cMatrix[0], C.HAPI_RSTOrder(rstOrder), C.HAPI_XYZOrder(xyzOrder), &out)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return TransformEuler{}, ferr.Context("ConvertMatrixToEuler")
	}
	return transformEulerFromC(out), nil
}

// ConvertTransformQuatToMatrix / ConvertTransformEulerToMatrix build a raw
// 4x4 matrix back out of a quaternion or Euler transform.
func ConvertTransformQuatToMatrix(transform Transform) [16]float32 {
	c := transformToC(transform)
	var cMatrix [16]C.float
	C.HAPI_ConvertTransformQuatToMatrix(&c, &cMatrix[0])
	var out [16]float32
	for i, v := range cMatrix {
		out[i] = float32(v)
	}
	return out
}

func ConvertTransformEulerToMatrix(transform TransformEuler) [16]float32 {
	var c C.HAPI_TransformEuler
	for i := 0; i < 3; i++ {
		c.position[i] = C.float(transform.Position[i])
		c.rotationEuler[i] = C.float(transform.RotationEuler[i])
		c.scale[i] = C.float(transform.Scale[i])
	}
	c.shearXY = C.float(transform.ShearXY)
	c.shearXZ = C.float(transform.ShearXZ)
	c.shearYZ = C.float(transform.ShearYZ)
	c.rotationOrder = C.HAPI_XYZOrder(transform.RotationOrder)
	c.rstOrder = C.HAPI_RSTOrder(transform.RSTOrder)

	var cMatrix [16]C.float
	C.HAPI_ConvertTransformEulerToMatrix(&c, &cMatrix[0])
	var out [16]float32
	for i, v := range cMatrix {
		out[i] = float32(v)
	}
	return out
}
