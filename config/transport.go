package config

import (
	"github.com/sidefxlabs/hapi-go/transport"
)

// DialOptions translates the YAML-facing Server document into
// transport.DialOptions, ready to hand to transport.Dial.
func (s Server) DialOptions() transport.DialOptions {
	kind := transport.KindInProcess
	switch s.Transport {
	case "named-pipe":
		kind = transport.KindNamedPipe
	case "socket":
		kind = transport.KindSocket
	case "shared-memory":
		kind = transport.KindSharedMemory
	}
	return transport.DialOptions{
		Kind:           kind,
		PipeName:       s.PipeName,
		Host:           s.Host,
		Port:           s.Port,
		MemoryName:     s.MemoryName,
		ServerOptions:  s.ThriftServerOptions(),
		LogFile:        s.LogFile,
		ConnectRetry:   s.ConnectRetry,
		ConnectBackoff: s.ConnectBackoff.D(),
	}
}
