package ffi

/*
#include <HAPI/HAPI.h>
#include <stdlib.h>
*/
import "C"

import "unsafe"

// StringHandle mirrors HAPI_StringHandle. A value <= 0 means "no string"
// (spec.md §4.5).
type StringHandle int32

// Valid reports whether h refers to an actual interned string.
func (h StringHandle) Valid() bool { return h > 0 }

// getString is the length-then-fetch pattern used by every HAPI_GetString
// call: ask for the buffer length, allocate, then copy the bytes out.
func getString(session *C.HAPI_Session, handle C.HAPI_StringHandle) (string, error) {
	if handle <= 0 {
		return "", nil
	}
	var length C.int32_t
	r := C.HAPI_GetStringBufLength(session, handle, &length)
	if ferr := withErrorMessage(session, r); ferr != nil {
		return "", ferr.Context("GetStringBufLength")
	}
	if length <= 1 {
		return "", nil
	}
	buf := make([]C.char, length)
	r = C.HAPI_GetString(session, handle, &buf[0], length)
	if ferr := withErrorMessage(session, r); ferr != nil {
		return "", ferr.Context("GetString")
	}
	return C.GoStringN(&buf[0], length-1), nil
}

// GetString resolves a single StringHandle (§4.5).
func GetString(session SessionHandle, handle StringHandle) (string, error) {
	raw := session.raw()
	return getString(&raw, C.HAPI_StringHandle(handle))
}

// GetStringBatchSize / GetStringBatch wrap the bulk NUL-delimited string
// fetch HAPI exposes to amortize the per-string round trip (§4.5).
func GetStringBatchSize(session SessionHandle, handles []StringHandle) (int32, error) {
	raw := session.raw()
	if len(handles) == 0 {
		return 0, nil
	}
	cHandles := make([]C.HAPI_StringHandle, len(handles))
	for i, h := range handles {
		cHandles[i] = C.HAPI_StringHandle(h)
	}
	var size C.int32_t
	r := C.HAPI_GetStringBatchSize(&raw, &cHandles[0], C.int32_t(len(cHandles)), &size)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("GetStringBatchSize")
	}
	return int32(size), nil
}

// GetStringBatch fetches `size` bytes (as sized by GetStringBatchSize) and
// splits them on the NUL delimiters the engine embeds, preserving handle
// order so the caller can zip results back against their input handles.
func GetStringBatch(session SessionHandle, size int32) ([]string, error) {
	raw := session.raw()
	if size <= 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	r := C.HAPI_GetStringBatch(&raw, (*C.char)(unsafe.Pointer(&buf[0])), C.int32_t(size))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("GetStringBatch")
	}
	var out []string
	start := 0
	for i, b := range buf {
		if b == 0 {
			out = append(out, string(buf[start:i]))
			start = i + 1
		}
	}
	return out, nil
}
