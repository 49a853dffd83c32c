package info

import "github.com/sidefxlabs/hapi-go/internal/ffi"

// SessionSyncInfo mirrors the host's cook-wait behavior toggle: when
// CookUsingHoudiniTime is set the engine advances its own clock instead
// of trusting the caller's per-call time (§3.1).
type SessionSyncInfo struct {
	CookUsingHoudiniTime bool
	SyncViewport         bool
}

// ThriftServerOptions re-exports the ffi-level server spawn options so
// callers configuring a session never need to import internal/ffi
// themselves.
type ThriftServerOptions = ffi.ThriftServerOptions

// SessionOptions re-exports the ffi-level HAPI_Initialize parameters.
type SessionOptions = ffi.SessionOptions
