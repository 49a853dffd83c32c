package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

import (
	"github.com/sidefxlabs/hapi-go/herr"
)

// ParmHandle mirrors HAPI_ParmId.
type ParmHandle int32

func (h ParmHandle) Valid() bool { return h >= 0 }

// GetParmIDFromName wraps HAPI_GetParmIdFromName.
func GetParmIDFromName(session SessionHandle, node NodeHandle, name string) (ParmHandle, error) {
	raw := session.raw()
	n, err := cString(name)
	if err != nil {
		return -1, err
	}
	defer freeCString(n)
	var id C.HAPI_ParmId
	r := C.HAPI_GetParmIdFromName(&raw, C.HAPI_NodeId(node), n, &id)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("GetParmIdFromName")
	}
	return ParmHandle(id), nil
}

// GetParmIntValues reads a flat int32 slice spanning [start, start+length).
func GetParmIntValues(session SessionHandle, node NodeHandle, start, length int32) ([]int32, error) {
	raw := session.raw()
	if length <= 0 {
		return nil, nil
	}
	buf := make([]C.int32_t, length)
	r := C.HAPI_GetParmIntValues(&raw, C.HAPI_NodeId(node), &buf[0], C.int32_t(start), C.int32_t(length))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetParmIntValues")
	}
	out := make([]int32, length)
	for i, v := range buf {
		out[i] = int32(v)
	}
	return out, nil
}

// SetParmIntValues writes a flat int32 slice starting at `start`.
func SetParmIntValues(session SessionHandle, node NodeHandle, start int32, values []int32) error {
	raw := session.raw()
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.int32_t, len(values))
	for i, v := range values {
		buf[i] = C.int32_t(v)
	}
	r := C.HAPI_SetParmIntValues(&raw, C.HAPI_NodeId(node), &buf[0], C.int32_t(start), C.int32_t(len(values)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetParmIntValues")
	}
	return nil
}

// GetParmFloatValues / SetParmFloatValues mirror the int variants above.
func GetParmFloatValues(session SessionHandle, node NodeHandle, start, length int32) ([]float32, error) {
	raw := session.raw()
	if length <= 0 {
		return nil, nil
	}
	buf := make([]C.float, length)
	r := C.HAPI_GetParmFloatValues(&raw, C.HAPI_NodeId(node), &buf[0], C.int32_t(start), C.int32_t(length))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetParmFloatValues")
	}
	out := make([]float32, length)
	for i, v := range buf {
		out[i] = float32(v)
	}
	return out, nil
}

func SetParmFloatValues(session SessionHandle, node NodeHandle, start int32, values []float32) error {
	raw := session.raw()
	if len(values) == 0 {
		return nil
	}
	buf := make([]C.float, len(values))
	for i, v := range values {
		buf[i] = C.float(v)
	}
	r := C.HAPI_SetParmFloatValues(&raw, C.HAPI_NodeId(node), &buf[0], C.int32_t(start), C.int32_t(len(values)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetParmFloatValues")
	}
	return nil
}

// GetParmStringValue resolves a single string parm's value at `index`.
func GetParmStringValue(session SessionHandle, node NodeHandle, parmName string, index int32, evaluate bool) (string, error) {
	raw := session.raw()
	n, err := cString(parmName)
	if err != nil {
		return "", err
	}
	defer freeCString(n)
	var handle C.HAPI_StringHandle
	r := C.HAPI_GetParmStringValue(&raw, C.HAPI_NodeId(node), n, C.int32_t(index), boolToChar(evaluate), &handle)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return "", ferr.Context("GetParmStringValue")
	}
	return getString(&raw, handle)
}

// GetParmStringValues bulk-reads a flat string slice spanning
// [start, start+length) in one round trip — the string counterpart of
// GetParmIntValues/GetParmFloatValues (§4.3's get_array()).
func GetParmStringValues(session SessionHandle, node NodeHandle, start, length int32) ([]string, error) {
	raw := session.raw()
	if length <= 0 {
		return nil, nil
	}
	handles := make([]C.HAPI_StringHandle, length)
	r := C.HAPI_GetParmStringValues(&raw, C.HAPI_NodeId(node), boolToChar(true), &handles[0], C.int32_t(start), C.int32_t(length))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetParmStringValues")
	}
	out := make([]string, length)
	var err error
	for i, h := range handles {
		out[i], err = getString(&raw, h)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// SetParmStringValues writes values one index at a time via
// HAPI_SetParmStringValue — there is no bulk string-set call in the C
// ABI, unlike the int/float variants (§4.3's set_array()).
func SetParmStringValues(session SessionHandle, node NodeHandle, parm ParmHandle, values []string) error {
	for i, v := range values {
		if err := SetParmStringValue(session, node, parm, v, int32(i)); err != nil {
			return err
		}
	}
	return nil
}

// GetParmNodeValue wraps HAPI_GetParmNodeValue, resolving a
// ParmType::Node parameter's referenced node (§4.3). A handle of -1
// means the parameter is unset.
func GetParmNodeValue(session SessionHandle, node NodeHandle, parmName string) (NodeHandle, error) {
	raw := session.raw()
	n, err := cString(parmName)
	if err != nil {
		return -1, err
	}
	defer freeCString(n)
	var id C.HAPI_NodeId
	r := C.HAPI_GetParmNodeValue(&raw, C.HAPI_NodeId(node), n, &id)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return -1, ferr.Context("GetParmNodeValue")
	}
	return NodeHandle(id), nil
}

// SetParmNodeValue sets a ParmType::Node parameter to reference target.
// The C ABI has no HAPI_SetParmNodeValue — a node-valued parameter is an
// op-path string under the hood, so this resolves target's absolute
// path and writes it the same way SetParmStringValue would.
func SetParmNodeValue(session SessionHandle, node NodeHandle, parm ParmHandle, target NodeHandle) error {
	path, err := GetNodePath(session, target, -1)
	if err != nil {
		return err
	}
	return SetParmStringValue(session, node, parm, path, 0)
}

// GetParmFile wraps HAPI_GetParmFile, downloading a file-valued
// parameter's referenced content to destDir/destFile (§4.3's
// save_parm_file).
func GetParmFile(session SessionHandle, node NodeHandle, parmName, destDir, destFile string) error {
	raw := session.raw()
	n, err := cString(parmName)
	if err != nil {
		return err
	}
	defer freeCString(n)
	dir, err := cString(destDir)
	if err != nil {
		return err
	}
	defer freeCString(dir)
	file, err := cString(destFile)
	if err != nil {
		return err
	}
	defer freeCString(file)
	r := C.HAPI_GetParmFile(&raw, C.HAPI_NodeId(node), n, dir, file)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("GetParmFile")
	}
	return nil
}

// SetParmStringValue wraps HAPI_SetParmStringValue.
func SetParmStringValue(session SessionHandle, node NodeHandle, parm ParmHandle, value string, index int32) error {
	raw := session.raw()
	v, err := cString(value)
	if err != nil {
		return err
	}
	defer freeCString(v)
	r := C.HAPI_SetParmStringValue(&raw, C.HAPI_NodeId(node), v, C.HAPI_ParmId(parm), C.int32_t(index))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetParmStringValue")
	}
	return nil
}

// InsertMultiparmInstance / RemoveMultiparmInstance manage multi-parm blocks.
func InsertMultiparmInstance(session SessionHandle, node NodeHandle, parm ParmHandle, instancePosition int32) error {
	raw := session.raw()
	r := C.HAPI_InsertMultiparmInstance(&raw, C.HAPI_NodeId(node), C.HAPI_ParmId(parm), C.int32_t(instancePosition))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("InsertMultiparmInstance")
	}
	return nil
}

func RemoveMultiparmInstance(session SessionHandle, node NodeHandle, parm ParmHandle, instancePosition int32) error {
	raw := session.raw()
	r := C.HAPI_RemoveMultiparmInstance(&raw, C.HAPI_NodeId(node), C.HAPI_ParmId(parm), C.int32_t(instancePosition))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("RemoveMultiparmInstance")
	}
	return nil
}

// GetParmExpression / SetParmExpression / RemoveParmExpression.
func GetParmExpression(session SessionHandle, node NodeHandle, parmName string, index int32) (string, error) {
	raw := session.raw()
	n, err := cString(parmName)
	if err != nil {
		return "", err
	}
	defer freeCString(n)
	var handle C.HAPI_StringHandle
	r := C.HAPI_GetParmExpression(&raw, C.HAPI_NodeId(node), n, C.int32_t(index), &handle)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return "", ferr.Context("GetParmExpression")
	}
	return getString(&raw, handle)
}

func SetParmExpression(session SessionHandle, node NodeHandle, parm ParmHandle, value string, index int32) error {
	raw := session.raw()
	v, err := cString(value)
	if err != nil {
		return err
	}
	defer freeCString(v)
	r := C.HAPI_SetParmExpression(&raw, C.HAPI_NodeId(node), v, C.HAPI_ParmId(parm), C.int32_t(index))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetParmExpression")
	}
	return nil
}

func RemoveParmExpression(session SessionHandle, node NodeHandle, parm ParmHandle, index int32) error {
	raw := session.raw()
	r := C.HAPI_RemoveParmExpression(&raw, C.HAPI_NodeId(node), C.HAPI_ParmId(parm), C.int32_t(index))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("RemoveParmExpression")
	}
	return nil
}

// RevertParmToDefault / RevertParmToDefaults.
func RevertParmToDefault(session SessionHandle, node NodeHandle, parmName string, index int32) error {
	raw := session.raw()
	n, err := cString(parmName)
	if err != nil {
		return err
	}
	defer freeCString(n)
	r := C.HAPI_RevertParmToDefault(&raw, C.HAPI_NodeId(node), n, C.int32_t(index))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("RevertParmToDefault")
	}
	return nil
}

// GetParmTagName / GetParmHasTag expose the tag metadata
// used e.g. by asset default-value views (spec.md supplemented features).
func GetParmTagName(session SessionHandle, node NodeHandle, parm ParmHandle, index int32) (string, error) {
	raw := session.raw()
	var handle C.HAPI_StringHandle
	r := C.HAPI_GetParmTagName(&raw, C.HAPI_NodeId(node), C.HAPI_ParmId(parm), C.int32_t(index), &handle)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return "", ferr.Context("GetParmTagName")
	}
	return getString(&raw, handle)
}

func GetParmHasTag(session SessionHandle, node NodeHandle, parmName, tagName string) (bool, error) {
	raw := session.raw()
	n, err := cString(parmName)
	if err != nil {
		return false, err
	}
	defer freeCString(n)
	t, err := cString(tagName)
	if err != nil {
		return false, err
	}
	defer freeCString(t)
	var has C.HAPI_Bool
	r := C.HAPI_GetParmHasTag(&raw, C.HAPI_NodeId(node), n, t, &has)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return false, ferr.Context("GetParmHasTag")
	}
	return has != 0, nil
}

// SetAnimCurve pushes a keyframe-driven animation onto a parm channel.
func SetAnimCurve(session SessionHandle, node NodeHandle, parm ParmHandle, subIndex int32, times, values []float32) error {
	raw := session.raw()
	if len(times) != len(values) || len(times) == 0 {
		return herr.Internal("SetAnimCurve: times/values length mismatch")
	}
	keys := make([]C.HAPI_Keyframe, len(times))
	for i := range times {
		keys[i].time = C.float(times[i])
		keys[i].value = C.float(values[i])
	}
	r := C.HAPI_SetAnimCurve(&raw, C.HAPI_NodeId(node), C.HAPI_ParmId(parm), C.int32_t(subIndex), &keys[0], C.int32_t(len(keys)))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("SetAnimCurve")
	}
	return nil
}
