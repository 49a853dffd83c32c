package config

import (
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/session"
)

// CookOptions translates the YAML-facing Cook document into the ffi-level
// HAPI_CookOptions mirror, starting from the engine's own defaults so a
// config file only needs to name the fields it overrides.
func (c Cook) CookOptions() ffi.CookOptions {
	o := ffi.DefaultCookOptions()
	o.SplitGeosByGroup = c.SplitGeosByGroup
	if c.MaxVerticesPerPrimitive != 0 {
		o.MaxVerticesPerPrimitive = int32(c.MaxVerticesPerPrimitive)
	}
	o.RefineCurveToLinear = c.RefineCurveToLinear
	o.ClearErrorsAndWarnings = c.ClearErrorsAndWarnings
	o.CookTemplatedGeos = c.CookTemplatedGeos
	o.CheckPartChanges = c.CheckPartChanges
	o.PackedPrimInstancingMode = int32(c.PackedPrimInstancing)
	return o
}

// SessionOptions translates the YAML-facing Session document into the
// ffi-level HAPI_Initialize parameter struct.
func (s Session) SessionOptions() ffi.SessionOptions {
	return ffi.SessionOptions{
		CookOptions:      s.Cook.CookOptions(),
		UseCookingThread: s.UseCookingThread,
		EnvFiles:         s.EnvFiles,
		OTLSearchPath:    s.OTLSearchPath,
		DSOSearchPath:    s.DSOSearchPath,
		ImageDSOPath:     s.ImageDSOPath,
		AudioDSOPath:     s.AudioDSOPath,
	}
}

// Options translates the YAML-facing Session document into session.Options,
// ready to hand to session.NewInProcess/NewFromHandle.
func (s Session) Options() session.Options {
	return session.Options{
		Session:      s.SessionOptions(),
		PollInterval: s.PollInterval.D(),
		Cleanup:      s.Cleanup,
	}
}

// ThriftServerOptions translates the YAML-facing Server document into the
// ffi-level server-spawn parameter struct.
func (s Server) ThriftServerOptions() ffi.ThriftServerOptions {
	return ffi.ThriftServerOptions{
		AutoClose: s.AutoClose,
		TimeoutMS: float32(s.Timeout.D().Milliseconds()),
	}
}
