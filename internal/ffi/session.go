package ffi

/*
#include <HAPI/HAPI.h>
*/
import "C"

import (
	"unsafe"
)

// SessionType mirrors HAPI_SessionType.
type SessionType int32

const (
	SessionInProcess SessionType = iota
	SessionThriftNamedPipe
	SessionThriftSocket
	SessionCustom
)

// SessionHandle mirrors the opaque HAPI_Session identity pair (§3.1).
type SessionHandle struct {
	Type SessionType
	ID   int64
}

// raw converts the Go-level identity back into the C struct HAPI expects
// on every call. This is the only place a SessionHandle becomes a pointer.
func (h SessionHandle) raw() C.HAPI_Session {
	return C.HAPI_Session{
		type_: C.HAPI_SessionType(h.Type),
		id:    C.int64_t(h.ID),
	}
}

// CreateInProcessSession wraps HAPI_CreateInProcessSession.
func CreateInProcessSession() (SessionHandle, error) {
	var raw C.HAPI_Session
	r := C.HAPI_CreateInProcessSession(&raw)
	if err := resultToError(r); err != nil {
		return SessionHandle{}, err.Context("HAPI_CreateInProcessSession")
	}
	return SessionHandle{Type: SessionType(raw.type_), ID: int64(raw.id)}, nil
}

// ThriftServerOptions mirrors HAPI_ThriftServerOptions. SharedMemType and
// SharedMemSize only matter for the shared-memory transport (§4.1's fourth
// transport) — StartThriftNamedPipeServer/StartThriftSocketServer ignore
// them since the underlying C struct does too for those transports.
type ThriftServerOptions struct {
	AutoClose     bool
	TimeoutMS     float32
	Verbosity     int32
	SharedMemType int32
	SharedMemSize int32
}

func (o ThriftServerOptions) raw() C.HAPI_ThriftServerOptions {
	var v C.HAPI_ThriftServerOptions
	v.autoClose = boolToChar(o.AutoClose)
	v.timeoutMs = C.float(o.TimeoutMS)
	v.verbosity = C.HAPI_StatusVerbosity(o.Verbosity)
	v.sharedMemoryBufferType = C.HAPI_ThriftSharedMemoryBufferType(o.SharedMemType)
	v.sharedMemoryBufferSize = C.int32_t(o.SharedMemSize)
	return v
}

// StartThriftNamedPipeServer wraps HAPI_StartThriftNamedPipeServer,
// returning the spawned engine server's process id.
func StartThriftNamedPipeServer(pipeName string, opts ThriftServerOptions, logFile string) (int32, error) {
	cPipe, err := cString(pipeName)
	if err != nil {
		return 0, err
	}
	defer freeCString(cPipe)
	var cLog *C.char
	if logFile != "" {
		cLog, err = cString(logFile)
		if err != nil {
			return 0, err
		}
		defer freeCString(cLog)
	}
	rawOpts := opts.raw()
	var pid C.int32_t
	r := C.HAPI_StartThriftNamedPipeServer(&rawOpts, cPipe, &pid, cLog)
	if ferr := resultToError(r); ferr != nil {
		return 0, ferr.Context("HAPI_StartThriftNamedPipeServer")
	}
	return int32(pid), nil
}

// StartThriftSocketServer wraps HAPI_StartThriftSocketServer.
func StartThriftSocketServer(port int32, opts ThriftServerOptions, logFile string) (int32, error) {
	var cLog *C.char
	var err error
	if logFile != "" {
		cLog, err = cString(logFile)
		if err != nil {
			return 0, err
		}
		defer freeCString(cLog)
	}
	rawOpts := opts.raw()
	var pid C.int32_t
	r := C.HAPI_StartThriftSocketServer(&rawOpts, C.int32_t(port), &pid, cLog)
	if ferr := resultToError(r); ferr != nil {
		return 0, ferr.Context("HAPI_StartThriftSocketServer")
	}
	return int32(pid), nil
}

// StartThriftSharedMemoryServer wraps HAPI_StartThriftSharedMemoryServer,
// spawning an engine process that serves sessions over a named shared
// memory segment rather than a pipe or socket.
func StartThriftSharedMemoryServer(memoryName string, opts ThriftServerOptions, logFile string) (int32, error) {
	cName, err := cString(memoryName)
	if err != nil {
		return 0, err
	}
	defer freeCString(cName)
	var cLog *C.char
	if logFile != "" {
		cLog, err = cString(logFile)
		if err != nil {
			return 0, err
		}
		defer freeCString(cLog)
	}
	rawOpts := opts.raw()
	var pid C.int32_t
	r := C.HAPI_StartThriftSharedMemoryServer(&rawOpts, cName, &pid, cLog)
	if ferr := resultToError(r); ferr != nil {
		return 0, ferr.Context("HAPI_StartThriftSharedMemoryServer")
	}
	return int32(pid), nil
}

// CreateThriftNamedPipeSession wraps HAPI_CreateThriftNamedPipeSession.
func CreateThriftNamedPipeSession(pipeName string) (SessionHandle, error) {
	cPipe, err := cString(pipeName)
	if err != nil {
		return SessionHandle{}, err
	}
	defer freeCString(cPipe)
	var raw C.HAPI_Session
	r := C.HAPI_CreateThriftNamedPipeSession(&raw, cPipe)
	if ferr := resultToError(r); ferr != nil {
		return SessionHandle{}, ferr.Context("HAPI_CreateThriftNamedPipeSession")
	}
	return SessionHandle{Type: SessionType(raw.type_), ID: int64(raw.id)}, nil
}

// CreateThriftSharedMemorySession wraps HAPI_CreateThriftSharedMemorySession
// — the fourth transport (§4.1): a named shared-memory segment instead of a
// pipe or socket, used for high-throughput bulk geometry transfer.
func CreateThriftSharedMemorySession(memoryName string) (SessionHandle, error) {
	cName, err := cString(memoryName)
	if err != nil {
		return SessionHandle{}, err
	}
	defer freeCString(cName)
	var raw C.HAPI_Session
	r := C.HAPI_CreateThriftSharedMemorySession(&raw, cName)
	if ferr := resultToError(r); ferr != nil {
		return SessionHandle{}, ferr.Context("HAPI_CreateThriftSharedMemorySession")
	}
	return SessionHandle{Type: SessionType(raw.type_), ID: int64(raw.id)}, nil
}

// CreateThriftSocketSession wraps HAPI_CreateThriftSocketSession.
func CreateThriftSocketSession(host string, port int32) (SessionHandle, error) {
	cHost, err := cString(host)
	if err != nil {
		return SessionHandle{}, err
	}
	defer freeCString(cHost)
	var raw C.HAPI_Session
	r := C.HAPI_CreateThriftSocketSession(&raw, cHost, C.int32_t(port))
	if ferr := resultToError(r); ferr != nil {
		return SessionHandle{}, ferr.Context("HAPI_CreateThriftSocketSession")
	}
	return SessionHandle{Type: SessionType(raw.type_), ID: int64(raw.id)}, nil
}

// SessionOptions mirrors the parameters to HAPI_Initialize.
type SessionOptions struct {
	CookOptions      CookOptions
	UseCookingThread bool
	EnvFiles         string
	OTLSearchPath    string
	DSOSearchPath    string
	ImageDSOPath     string
	AudioDSOPath     string
}

// Initialize wraps HAPI_Initialize.
func Initialize(session SessionHandle, opts SessionOptions) error {
	raw := session.raw()
	rawCook := opts.CookOptions.raw()

	var cEnv, cOTL, cDSO, cImg, cAud *C.char
	var err error
	if cEnv, err = optionalCString(opts.EnvFiles); err != nil {
		return err
	}
	defer freeCString(cEnv)
	if cOTL, err = optionalCString(opts.OTLSearchPath); err != nil {
		return err
	}
	defer freeCString(cOTL)
	if cDSO, err = optionalCString(opts.DSOSearchPath); err != nil {
		return err
	}
	defer freeCString(cDSO)
	if cImg, err = optionalCString(opts.ImageDSOPath); err != nil {
		return err
	}
	defer freeCString(cImg)
	if cAud, err = optionalCString(opts.AudioDSOPath); err != nil {
		return err
	}
	defer freeCString(cAud)

	r := C.HAPI_Initialize(&raw, &rawCook, boolToChar(opts.UseCookingThread), -1,
		cEnv, cOTL, cDSO, cImg, cAud)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("HAPI_Initialize")
	}
	return nil
}

func optionalCString(s string) (*C.char, error) {
	if s == "" {
		return nil, nil
	}
	return cString(s)
}

// Shutdown wraps HAPI_Shutdown — tears down the engine instance backing
// session (in-process) or tells the remote server to exit (out-of-process),
// the second step of the §4.1 teardown order, between Cleanup and
// CloseSession.
func Shutdown(session SessionHandle) error {
	raw := session.raw()
	r := C.HAPI_Shutdown(&raw)
	if ferr := resultToError(r); ferr != nil {
		return ferr.Context("HAPI_Shutdown")
	}
	return nil
}

// Cleanup wraps HAPI_Cleanup.
func Cleanup(session SessionHandle) error {
	raw := session.raw()
	r := C.HAPI_Cleanup(&raw)
	if ferr := resultToError(r); ferr != nil {
		return ferr.Context("HAPI_Cleanup")
	}
	return nil
}

// CloseSession wraps HAPI_CloseSession.
func CloseSession(session SessionHandle) error {
	raw := session.raw()
	r := C.HAPI_CloseSession(&raw)
	if ferr := resultToError(r); ferr != nil {
		return ferr.Context("HAPI_CloseSession")
	}
	return nil
}

// IsSessionValid wraps HAPI_IsSessionValid.
func IsSessionValid(session SessionHandle) bool {
	raw := session.raw()
	return C.HAPI_IsSessionValid(&raw) == C.HAPI_RESULT_SUCCESS
}

// StatusType mirrors HAPI_StatusType.
type StatusType int32

const (
	StatusCallResult StatusType = iota
	StatusCookState
	StatusCookResult
)

var statusTypeRaw = map[StatusType]C.HAPI_StatusType{
	StatusCallResult: C.HAPI_STATUS_CALL_RESULT,
	StatusCookState:  C.HAPI_STATUS_COOK_STATE,
	StatusCookResult: C.HAPI_STATUS_COOK_RESULT,
}

// StatusVerbosity mirrors HAPI_StatusVerbosity.
type StatusVerbosity int32

const (
	VerbosityStatusErrors StatusVerbosity = iota
	VerbosityStatusWarnings
	VerbosityStatusMessages
	VerbosityStatusAll
)

var verbosityRaw = map[StatusVerbosity]C.HAPI_StatusVerbosity{
	VerbosityStatusErrors:   C.HAPI_STATUSVERBOSITY_ERRORS,
	VerbosityStatusWarnings: C.HAPI_STATUSVERBOSITY_WARNINGS,
	VerbosityStatusMessages: C.HAPI_STATUSVERBOSITY_MESSAGES,
	VerbosityStatusAll:      C.HAPI_STATUSVERBOSITY_ALL,
}

// GetStatus wraps HAPI_GetStatus, used for polling the cook-state machine
// (§4.1) in threaded mode.
func GetStatus(session SessionHandle, status StatusType) (int32, error) {
	raw := session.raw()
	var v C.int32_t
	r := C.HAPI_GetStatus(&raw, statusTypeRaw[status], &v)
	if ferr := resultToError(r); ferr != nil {
		return 0, ferr.Context("HAPI_GetStatus")
	}
	return int32(v), nil
}

// GetStatusString wraps the length+fetch pair HAPI_GetStatusStringBufLength
// / HAPI_GetStatusString.
func GetStatusString(session SessionHandle, status StatusType, verbosity StatusVerbosity) (string, error) {
	raw := session.raw()
	return getStatusString(&raw, statusTypeRaw[status], verbosityRaw[verbosity])
}

func getStatusString(raw *C.HAPI_Session, status C.HAPI_StatusType, verbosity C.HAPI_StatusVerbosity) (string, error) {
	var length C.int32_t
	r := C.HAPI_GetStatusStringBufLength(raw, status, verbosity, &length)
	if ferr := resultToError(r); ferr != nil {
		return "", ferr
	}
	if length <= 0 {
		return "", nil
	}
	buf := make([]byte, int(length))
	r = C.HAPI_GetStatusString(raw, status, (*C.char)(unsafe.Pointer(&buf[0])), length)
	if ferr := resultToError(r); ferr != nil {
		return "", ferr
	}
	return string(buf[:length-1]), nil
}

// Interrupt wraps HAPI_Interrupt — graph-wide cook cancellation (§5).
func Interrupt(session SessionHandle) error {
	raw := session.raw()
	r := C.HAPI_Interrupt(&raw)
	if ferr := resultToError(r); ferr != nil {
		return ferr.Context("HAPI_Interrupt")
	}
	return nil
}

// SaveHIPFile, LoadHIPFile, MergeHIPFile wrap the matching HAPI calls (§6.3).
func SaveHIPFile(session SessionHandle, path string, lockNodes bool) error {
	raw := session.raw()
	cPath, err := cString(path)
	if err != nil {
		return err
	}
	defer freeCString(cPath)
	r := C.HAPI_SaveHIPFile(&raw, cPath, boolToChar(lockNodes))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("HAPI_SaveHIPFile")
	}
	return nil
}

func LoadHIPFile(session SessionHandle, path string, cookOnLoad bool) error {
	raw := session.raw()
	cPath, err := cString(path)
	if err != nil {
		return err
	}
	defer freeCString(cPath)
	r := C.HAPI_LoadHIPFile(&raw, cPath, boolToChar(cookOnLoad))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("HAPI_LoadHIPFile")
	}
	return nil
}

func MergeHIPFile(session SessionHandle, path string, cookOnLoad bool) (int32, error) {
	raw := session.raw()
	cPath, err := cString(path)
	if err != nil {
		return 0, err
	}
	defer freeCString(cPath)
	var fileID C.HAPI_HIPFileId
	r := C.HAPI_MergeHIPFile(&raw, cPath, boolToChar(cookOnLoad), &fileID)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("HAPI_MergeHIPFile")
	}
	return int32(fileID), nil
}

// GetServerEnvString / SetServerEnvString wrap the matching HAPI calls.
func GetServerEnvString(session SessionHandle, key string) (StringHandle, error) {
	raw := session.raw()
	cKey, err := cString(key)
	if err != nil {
		return 0, err
	}
	defer freeCString(cKey)
	var sh C.HAPI_StringHandle
	r := C.HAPI_GetServerEnvString(&raw, cKey, &sh)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("HAPI_GetServerEnvString")
	}
	return StringHandle(sh), nil
}

func SetServerEnvString(session SessionHandle, key, value string) error {
	raw := session.raw()
	cKey, err := cString(key)
	if err != nil {
		return err
	}
	defer freeCString(cKey)
	cVal, err := cString(value)
	if err != nil {
		return err
	}
	defer freeCString(cVal)
	r := C.HAPI_SetServerEnvString(&raw, cKey, cVal)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("HAPI_SetServerEnvString")
	}
	return nil
}

func GetServerEnvInt(session SessionHandle, key string) (int32, error) {
	raw := session.raw()
	cKey, err := cString(key)
	if err != nil {
		return 0, err
	}
	defer freeCString(cKey)
	var v C.int32_t
	r := C.HAPI_GetServerEnvInt(&raw, cKey, &v)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("HAPI_GetServerEnvInt")
	}
	return int32(v), nil
}

func SetServerEnvInt(session SessionHandle, key string, value int32) error {
	raw := session.raw()
	cKey, err := cString(key)
	if err != nil {
		return err
	}
	defer freeCString(cKey)
	r := C.HAPI_SetServerEnvInt(&raw, cKey, C.int32_t(value))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return ferr.Context("HAPI_SetServerEnvInt")
	}
	return nil
}

func GetServerEnvVarCount(session SessionHandle) (int32, error) {
	raw := session.raw()
	var n C.int32_t
	r := C.HAPI_GetServerEnvVarCount(&raw, &n)
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return 0, ferr.Context("HAPI_GetServerEnvVarCount")
	}
	return int32(n), nil
}

func GetServerEnvVarList(session SessionHandle, count int32) ([]StringHandle, error) {
	raw := session.raw()
	handles := make([]C.HAPI_StringHandle, count)
	var ptr *C.HAPI_StringHandle
	if count > 0 {
		ptr = &handles[0]
	}
	r := C.HAPI_GetServerEnvVarList(&raw, ptr, 0, C.int32_t(count))
	if ferr := withErrorMessage(&raw, r); ferr != nil {
		return nil, ferr.Context("HAPI_GetServerEnvVarList")
	}
	out := make([]StringHandle, count)
	for i, h := range handles {
		out[i] = StringHandle(h)
	}
	return out, nil
}

func boolToChar(b bool) C.int8_t {
	if b {
		return 1
	}
	return 0
}

