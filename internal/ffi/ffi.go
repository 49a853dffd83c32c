// Package ffi is the opaque C ABI boundary described in spec.md §9: "no
// code outside this wrapper layer touches raw pointers or handles." Every
// other package in this module only ever sees the Go types returned here
// (int32 handles, plain structs, []byte, []string) — never a C pointer,
// never `unsafe`.
//
// The engine (Houdini Engine / HAPI) ships a C shared library; we bind it
// with cgo. The handful of functions below stand in for the much larger
// HAPI.h surface listed in spec.md §6.2 — session, node, parameter, asset
// library, geometry, attribute, volume, material/image, PDG, string and
// environment operation families all follow this same shape: marshal Go
// inputs into C types, call into libHAPIL, translate the HAPI_Result and
// any out-parameters back into Go values or a *herr.Error.
package ffi

/*
#cgo LDFLAGS: -lHAPIL
#include <HAPI/HAPI.h>
#include <HAPI/HAPI_Common.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/sidefxlabs/hapi-go/herr"
)

// Result mirrors HAPI_Result; ffi translates it into a *herr.Error at the
// boundary so callers upstream never see the raw C enum.
type Result int32

func resultToError(r C.HAPI_Result) *herr.Error {
	if r == C.HAPI_RESULT_SUCCESS {
		return nil
	}
	return herr.Engine(herr.ResultCode(r))
}

// withErrorMessage fetches the server-side status string (§4.7,
// best-effort, never fails the original error) and attaches it.
func withErrorMessage(session *C.HAPI_Session, r C.HAPI_Result) *herr.Error {
	base := resultToError(r)
	if base == nil {
		return nil
	}
	msg, err := getStatusString(session, C.HAPI_STATUS_CALL_RESULT, C.HAPI_STATUSVERBOSITY_ALL)
	if err != nil || msg == "" {
		return base
	}
	return herr.EngineWithMessage(base.Code, msg)
}

// cString allocates a NUL-terminated C string; caller must free it.
func cString(s string) (*C.char, error) {
	if len(s) != len(stripNUL(s)) {
		return nil, herr.Wrap(herr.KindNullByte, errNulByte)
	}
	return C.CString(s), nil
}

func stripNUL(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return s[:i]
		}
	}
	return s
}

var errNulByte = nulByteErr{}

type nulByteErr struct{}

func (nulByteErr) Error() string { return "string contains an embedded NUL byte" }

func freeCString(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}
