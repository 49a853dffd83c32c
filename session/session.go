// Package session owns the HAPI session lifecycle (spec.md §4.1): opening
// a connection to the engine over one of its transports, initializing it,
// polling the cook-state machine, and tearing it down in the order the
// engine requires (interrupt in-flight cooks, optional cleanup, shutdown,
// then close).
package session

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/sidefxlabs/hapi-go/internal/elog"
	"github.com/sidefxlabs/hapi-go/internal/ffi"
	"github.com/sidefxlabs/hapi-go/transport"
)

// CookState mirrors the coarse states spec.md §4.1 describes for the
// asynchronous cook state machine.
type CookState int32

const (
	CookStateReady CookState = iota
	CookStateCooking
	CookStateReadyWithFatalErrors
	CookStateReadyWithCookErrors
)

// Options configures a new Session: which transport to dial and the
// HAPI_Initialize parameters to apply once connected.
type Options struct {
	Session   ffi.SessionOptions
	LogTarget elog.Target
	// PollInterval governs how often Session.Cook polls GetStatus while a
	// cook is in flight.
	PollInterval time.Duration
	// Cleanup, when true, makes Close call HAPI_Cleanup (unloading every
	// asset/node the session created) before shutting the engine down.
	// Default false, matching hapi-rs's SessionOptions::cleanup — most
	// callers let CloseSession/process exit reclaim everything instead.
	Cleanup bool
	// PipePath is the named-pipe file backing this session, set by
	// package transport when it dials over the named-pipe transport.
	// Close uses it for a best-effort unlink if the session is already
	// invalid by the time Close runs (the server may be long gone, so
	// there's no one left to ask to clean up its own pipe file).
	PipePath string
}

// DefaultOptions returns Options with the engine's documented defaults
// plus a conservative 10ms cook-state poll.
func DefaultOptions() Options {
	return Options{
		Session: ffi.SessionOptions{
			CookOptions:      defaultCookOptionsOrZero(),
			UseCookingThread: true,
		},
		PollInterval: 10 * time.Millisecond,
	}
}

func defaultCookOptionsOrZero() ffi.CookOptions {
	return ffi.DefaultCookOptions()
}

// Session wraps one connected, initialized HAPI session (§3.1). All
// methods are safe for concurrent use: the engine itself serializes calls
// per session, so most methods call through without a host-side lock.
// The mutex guards only the closed flag, in IsValid and Close; no lock is
// held across multi-call sequences.
type Session struct {
	mu      sync.Mutex
	handle  ffi.SessionHandle
	opts    Options
	closed  bool
	logNode string
}

// Handle exposes the underlying ffi.SessionHandle for packages (node,
// parameter, geometry, ...) that issue ffi calls directly.
func (s *Session) Handle() ffi.SessionHandle { return s.handle }

// NewInProcess opens an in-process session — the engine runs in this
// process's address space, no transport involved.
func NewInProcess(opts Options) (*Session, error) {
	h, err := ffi.CreateInProcessSession()
	if err != nil {
		return nil, err
	}
	return newSession(h, opts)
}

// NewFromHandle wraps an already-connected ffi.SessionHandle — used by
// package transport once it has dialed a pipe, socket, or shared-memory
// server and received the resulting handle back from HAPI_Create*Session.
func NewFromHandle(h ffi.SessionHandle, opts Options) (*Session, error) {
	return newSession(h, opts)
}

// NewFromTransport wraps a transport.Dial result, carrying its PipePath
// (if any) into Options so Close can clean it up best-effort if the
// session turns out to already be invalid.
func NewFromTransport(h *transport.Handle, opts Options) (*Session, error) {
	opts.PipePath = h.PipePath
	return newSession(h.Session, opts)
}

func newSession(h ffi.SessionHandle, opts Options) (*Session, error) {
	s := &Session{handle: h, opts: opts}
	if err := ffi.Initialize(h, opts.Session); err != nil {
		return nil, err
	}
	s.log("initialized session id=%d", h.ID)
	return s, nil
}

func (s *Session) log(format string, args ...any) {
	elog.Emit(s.opts.LogTarget, s.logNode, elog.KindSession, nil, format, args...)
}

// Log emits a structured event under kind, tagged with this session's log
// node — exported so other packages (parameter, geometry, ...) that warn
// about non-fatal engine-call trade-offs (e.g. a truncated array write)
// can report through the same sink as the session itself.
func (s *Session) Log(kind elog.Kind, format string, args ...any) {
	elog.Emit(s.opts.LogTarget, s.logNode, kind, nil, format, args...)
}

// IsValid reports whether the session handle is still usable (§3.1).
func (s *Session) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	return ffi.IsSessionValid(s.handle)
}

// WaitForCook polls GetStatus(StatusCookState) until the cook finishes or
// ctx is cancelled, implementing the §4.1 cook-state poll loop. It returns
// the terminal CookState; callers distinguish success from cook errors by
// checking CookStateReadyWithCookErrors/CookStateReadyWithFatalErrors and
// then consulting GetStatusString(StatusCookResult, ...) for detail.
func (s *Session) WaitForCook(ctx context.Context) (CookState, error) {
	interval := s.opts.PollInterval
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		state, err := ffi.GetStatus(s.handle, ffi.StatusCookState)
		if err != nil {
			return 0, err
		}
		cs := CookState(state)
		if cs != CookStateCooking {
			return cs, nil
		}
		select {
		case <-ctx.Done():
			_ = ffi.Interrupt(s.handle)
			return cs, ctx.Err()
		case <-ticker.C:
		}
	}
}

// LastCookResult returns the best-effort human-readable cook result
// message at full verbosity (§4.7).
func (s *Session) LastCookResult() (string, error) {
	return ffi.GetStatusString(s.handle, ffi.StatusCookResult, ffi.VerbosityStatusAll)
}

// SaveHIP / LoadHIP / MergeHIP wrap the corresponding scene-file
// operations (§6.3).
func (s *Session) SaveHIP(path string, lockNodes bool) error {
	return ffi.SaveHIPFile(s.handle, path, lockNodes)
}

func (s *Session) LoadHIP(path string, cookOnLoad bool) error {
	return ffi.LoadHIPFile(s.handle, path, cookOnLoad)
}

func (s *Session) MergeHIP(path string, cookOnLoad bool) (int32, error) {
	return ffi.MergeHIPFile(s.handle, path, cookOnLoad)
}

// Close tears the session down in the order the engine requires:
// interrupt anything still cooking, Cleanup if opts.Cleanup asked for it
// (unloads assets/nodes), Shutdown (tears down the engine instance or
// tells a remote server to exit), then CloseSession (drops the
// transport). If the session is already invalid — the remote server
// died, or someone else tore it down — none of those calls has anyone
// to reach, so Close instead makes a best-effort attempt to remove the
// named-pipe file it was dialed over. Close is idempotent and safe to
// call more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	if !ffi.IsSessionValid(s.handle) {
		if s.opts.PipePath != "" {
			_ = os.Remove(s.opts.PipePath)
		}
		s.log("session id=%d already invalid at close", s.handle.ID)
		return nil
	}

	_ = ffi.Interrupt(s.handle)

	var firstErr error
	if s.opts.Cleanup {
		if err := ffi.Cleanup(s.handle); err != nil {
			firstErr = fmt.Errorf("cleanup: %w", err)
		}
	}
	if err := ffi.Shutdown(s.handle); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("shutdown: %w", err)
	}
	if err := ffi.CloseSession(s.handle); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close: %w", err)
	}
	s.log("session id=%d closed", s.handle.ID)
	return firstErr
}
