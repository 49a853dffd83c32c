// Package herr implements the error taxonomy described in spec.md §4.7:
// engine result codes, best-effort server-message retrieval, and a
// context-stacking wrapper shared by every other package in this module.
package herr

import (
	"errors"
	"fmt"
	"strings"
)

// ResultCode mirrors HAPI_Result, the engine's call-result enumeration.
type ResultCode int32

const (
	Success ResultCode = iota
	Failure
	AlreadyInitialized
	NotInitialized
	CantLoadFile
	ParmSetFailed
	InvalidArgument
	CantLoadGeo
	CantGeneratePreset
	CantLoadPreset
	AssetDefAlreadyLoaded
	NoLicenseFound
	DisallowedNCLicenseFound
	DisallowedNCAssetWithCLicense
	DisallowedNCAssetWithLCLicense
	DisallowedLCAssetWithCLicense
	DisallowedHEngineIndieW3rdPartyPlugin
	AssetInvalid
	NodeInvalid
	UserInterrupted
	InvalidSession
	SharedMemoryBufferOverflow
)

func (c ResultCode) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case AlreadyInitialized:
		return "ALREADY_INITIALIZED"
	case NotInitialized:
		return "NOT_INITIALIZED"
	case CantLoadFile:
		return "CANT_LOADFILE"
	case ParmSetFailed:
		return "PARM_SET_FAILED"
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case CantLoadGeo:
		return "CANT_LOAD_GEO"
	case CantGeneratePreset:
		return "CANT_GENERATE_PRESET"
	case CantLoadPreset:
		return "CANT_LOAD_PRESET"
	case AssetDefAlreadyLoaded:
		return "ASSET_DEF_ALREADY_LOADED"
	case NoLicenseFound:
		return "NO_LICENSE_FOUND"
	case DisallowedNCLicenseFound:
		return "DISALLOWED_NC_LICENSE_FOUND"
	case DisallowedNCAssetWithCLicense:
		return "DISALLOWED_NC_ASSET_WITH_C_LICENSE"
	case DisallowedNCAssetWithLCLicense:
		return "DISALLOWED_NC_ASSET_WITH_LC_LICENSE"
	case DisallowedLCAssetWithCLicense:
		return "DISALLOWED_LC_ASSET_WITH_C_LICENSE"
	case DisallowedHEngineIndieW3rdPartyPlugin:
		return "DISALLOWED_HENGINEINDIE_W_3PARTY_PLUGIN"
	case AssetInvalid:
		return "ASSET_INVALID"
	case NodeInvalid:
		return "NODE_INVALID"
	case UserInterrupted:
		return "USER_INTERRUPTED"
	case InvalidSession:
		return "INVALID_SESSION"
	case SharedMemoryBufferOverflow:
		return "SHARED_MEMORY_BUFFER_OVERFLOW"
	default:
		return fmt.Sprintf("UNKNOWN_RESULT(%d)", int32(c))
	}
}

// Kind distinguishes non-engine failure modes from an engine ResultCode.
type Kind int

const (
	// KindEngine means Code/ServerMessage are populated from a failed
	// remote call.
	KindEngine Kind = iota
	KindNullByte
	KindUTF8
	KindIO
	KindInternal
)

// Error is the single error type returned by every fallible public
// function in this module. It stacks human-readable context breadcrumbs
// the way hapi-rs's HapiError does, rendering innermost-first.
type Error struct {
	Kind          Kind
	Code          ResultCode
	ServerMessage string
	hasServerMsg  bool
	contexts      []string
	cause         error
}

// Engine builds a KindEngine error from a non-success result code.
func Engine(code ResultCode) *Error {
	return &Error{Kind: KindEngine, Code: code}
}

// EngineWithMessage builds a KindEngine error carrying a server-side
// status message (see §4.7: best-effort, fetched at verbosity "All").
func EngineWithMessage(code ResultCode, serverMessage string) *Error {
	return &Error{Kind: KindEngine, Code: code, ServerMessage: serverMessage, hasServerMsg: true}
}

// Internal builds a KindInternal error for violated library invariants.
func Internal(msg string) *Error {
	return &Error{Kind: KindInternal, cause: errors.New(msg)}
}

// Wrap tags a foreign error (io, utf8 conversion, NUL byte) with its kind.
func Wrap(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

// Context pushes a breadcrumb onto the error, outermost call pushes last.
func (e *Error) Context(msg string) *Error {
	if e == nil {
		return nil
	}
	clone := *e
	clone.contexts = append(append([]string{}, e.contexts...), msg)
	return &clone
}

// WithContext is the lazy form of Context, only formatting msg on error.
func WithContext(err error, fn func() string) error {
	if err == nil {
		return nil
	}
	var he *Error
	if errors.As(err, &he) {
		return he.Context(fn())
	}
	return &Error{Kind: KindInternal, cause: err, contexts: []string{fn()}}
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindEngine:
		fmt.Fprintf(&b, "[%s]", e.Code)
		if e.hasServerMsg {
			fmt.Fprintf(&b, ": [Engine Message]: %s", e.ServerMessage)
		}
	case KindNullByte:
		fmt.Fprintf(&b, "string contains null byte: %v", e.cause)
	case KindUTF8:
		fmt.Fprintf(&b, "invalid UTF-8: %v", e.cause)
	case KindIO:
		fmt.Fprintf(&b, "IO error: %v", e.cause)
	case KindInternal:
		fmt.Fprintf(&b, "internal error: %v", e.cause)
	}
	if len(e.contexts) > 0 {
		b.WriteString("\n")
		for i, c := range e.contexts {
			fmt.Fprintf(&b, "\t%d. %s\n", i, c)
		}
	}
	return b.String()
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is a ResultCode-equal engine error, letting
// callers write `errors.Is(err, herr.Engine(herr.NodeInvalid))`.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil {
		return false
	}
	return e.Kind == KindEngine && t.Kind == KindEngine && e.Code == t.Code
}

// IsCode reports whether err is a KindEngine error with the given code.
func IsCode(err error, code ResultCode) bool {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind == KindEngine && he.Code == code
	}
	return false
}
