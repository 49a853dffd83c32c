// Package transport spawns and connects to an out-of-process Houdini
// Engine server over the three remote transports HAPI supports — named
// pipe, TCP socket, and shared memory (the one for high-throughput bulk
// geometry transfer) — plus retry/liveness logic
// around the spawned process (spec.md §3.1).
package transport

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/sidefxlabs/hapi-go/internal/ffi"
)

// Kind selects which transport to dial.
type Kind int

const (
	KindInProcess Kind = iota
	KindNamedPipe
	KindSocket
	KindSharedMemory
)

// DialOptions configures a Dial call.
type DialOptions struct {
	Kind Kind

	// NamedPipe transport.
	PipeName string // auto-generated from a uuid if empty

	// Socket transport.
	Host string
	Port int32

	// SharedMemory transport.
	MemoryName string // auto-generated (random 16-char) if empty

	ServerOptions ffi.ThriftServerOptions
	LogFile       string

	// ConnectRetry / ConnectBackoff govern the connect-with-retry loop
	// below: the server process takes a moment to start listening after
	// HAPI_StartThrift*Server returns.
	ConnectRetry   int
	ConnectBackoff time.Duration
}

// DefaultDialOptions returns sane retry/backoff defaults.
func DefaultDialOptions() DialOptions {
	return DialOptions{
		ConnectRetry:   20,
		ConnectBackoff: 50 * time.Millisecond,
	}
}

// Handle is a spawned server process plus the session connected to it.
type Handle struct {
	Session ffi.SessionHandle
	PID     int32
	// PipePath is set for KindNamedPipe dials — the path session.Options
	// needs for its best-effort cleanup unlink if the server dies before
	// a graceful Close.
	PipePath string
}

// Dial spawns (for the pipe/socket kinds) a HAPI server process and
// connects a session to it, retrying the connect step since the spawned
// process needs a moment to start listening.
func Dial(ctx context.Context, opts DialOptions) (*Handle, error) {
	switch opts.Kind {
	case KindInProcess:
		h, err := ffi.CreateInProcessSession()
		if err != nil {
			return nil, err
		}
		return &Handle{Session: h}, nil
	case KindNamedPipe:
		return dialNamedPipe(ctx, opts)
	case KindSocket:
		return dialSocket(ctx, opts)
	case KindSharedMemory:
		return dialSharedMemory(ctx, opts)
	default:
		return nil, fmt.Errorf("transport: unknown kind %d", opts.Kind)
	}
}

func dialNamedPipe(ctx context.Context, opts DialOptions) (*Handle, error) {
	pipeName := opts.PipeName
	if pipeName == "" {
		pipeName = "hapi_" + uuid.NewString()
	}
	pid, err := ffi.StartThriftNamedPipeServer(pipeName, opts.ServerOptions, opts.LogFile)
	if err != nil {
		return nil, fmt.Errorf("start named pipe server: %w", err)
	}
	var session ffi.SessionHandle
	err = retry(ctx, opts, func() error {
		var connErr error
		session, connErr = ffi.CreateThriftNamedPipeSession(pipeName)
		return connErr
	}, pid)
	if err != nil {
		return nil, fmt.Errorf("connect to named pipe %q (pid %d): %w", pipeName, pid, err)
	}
	return &Handle{Session: session, PID: pid, PipePath: pipeName}, nil
}

func dialSocket(ctx context.Context, opts DialOptions) (*Handle, error) {
	pid, err := ffi.StartThriftSocketServer(opts.Port, opts.ServerOptions, opts.LogFile)
	if err != nil {
		return nil, fmt.Errorf("start socket server: %w", err)
	}
	host := opts.Host
	if host == "" {
		host = "localhost"
	}
	var session ffi.SessionHandle
	err = retry(ctx, opts, func() error {
		var connErr error
		session, connErr = ffi.CreateThriftSocketSession(host, opts.Port)
		return connErr
	}, pid)
	if err != nil {
		return nil, fmt.Errorf("connect to %s:%d (pid %d): %w", host, opts.Port, pid, err)
	}
	return &Handle{Session: session, PID: pid}, nil
}

func dialSharedMemory(ctx context.Context, opts DialOptions) (*Handle, error) {
	memoryName := opts.MemoryName
	if memoryName == "" {
		memoryName = "shared-memory-" + randomMemoryName(16)
	}
	pid, err := ffi.StartThriftSharedMemoryServer(memoryName, opts.ServerOptions, opts.LogFile)
	if err != nil {
		return nil, fmt.Errorf("start shared memory server: %w", err)
	}
	var session ffi.SessionHandle
	err = retry(ctx, opts, func() error {
		var connErr error
		session, connErr = ffi.CreateThriftSharedMemorySession(memoryName)
		return connErr
	}, pid)
	if err != nil {
		return nil, fmt.Errorf("connect to shared memory segment %q (pid %d): %w", memoryName, pid, err)
	}
	return &Handle{Session: session, PID: pid}, nil
}

const memoryNameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randomMemoryName generates an n-character alphanumeric suffix for a
// shared-memory segment name, the Go equivalent of hapi-rs's
// SharedMemoryTransport::new_random.
func randomMemoryName(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the OS entropy source is broken; fall
		// back to a fixed, padded suffix rather than panicking a session dial.
		for i := range buf {
			buf[i] = memoryNameAlphabet[0]
		}
		return string(buf)
	}
	for i, b := range buf {
		buf[i] = memoryNameAlphabet[int(b)%len(memoryNameAlphabet)]
	}
	return string(buf)
}

// retry calls connect repeatedly until it succeeds, ctx is cancelled, or
// the server process dies (checked via gopsutil so a crashed server
// fails fast instead of exhausting the full retry budget).
func retry(ctx context.Context, opts DialOptions, connect func() error, pid int32) error {
	retries := opts.ConnectRetry
	if retries <= 0 {
		retries = 1
	}
	backoff := opts.ConnectBackoff
	if backoff <= 0 {
		backoff = 50 * time.Millisecond
	}
	var lastErr error
	for i := 0; i < retries; i++ {
		if err := connect(); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if !ProcessAlive(pid) {
			return fmt.Errorf("server process exited before accepting a connection: %w", lastErr)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return lastErr
}

// ProcessAlive reports whether pid still refers to a running process,
// used to fail a connect-retry loop fast when the spawned server died
// instead of silently listening.
func ProcessAlive(pid int32) bool {
	if pid <= 0 {
		return false
	}
	exists, err := process.PidExists(pid)
	if err != nil {
		return true // can't tell — assume alive and let the retry loop time out
	}
	return exists
}
