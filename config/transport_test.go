package config

import (
	"testing"

	"github.com/sidefxlabs/hapi-go/transport"
)

func TestDialOptionsMapsTransportKind(t *testing.T) {
	cases := []struct {
		transport string
		want      transport.Kind
	}{
		{"named-pipe", transport.KindNamedPipe},
		{"socket", transport.KindSocket},
		{"in-process", transport.KindInProcess},
		{"", transport.KindInProcess},
		{"garbage", transport.KindInProcess},
	}
	for _, c := range cases {
		s := Server{Transport: c.transport}
		got := s.DialOptions().Kind
		if got != c.want {
			t.Errorf("transport %q: got kind %v, want %v", c.transport, got, c.want)
		}
	}
}

func TestDialOptionsCarriesFields(t *testing.T) {
	s := Server{
		Transport:      "socket",
		Host:           "localhost",
		Port:           1234,
		ConnectRetry:   7,
		ConnectBackoff: mustParseDuration("100ms"),
	}
	d := s.DialOptions()
	if d.Host != "localhost" || d.Port != 1234 {
		t.Fatalf("got host/port %s/%d, want localhost/1234", d.Host, d.Port)
	}
	if d.ConnectRetry != 7 {
		t.Fatalf("got ConnectRetry %d, want 7", d.ConnectRetry)
	}
	if d.ConnectBackoff.Milliseconds() != 100 {
		t.Fatalf("got ConnectBackoff %s, want 100ms", d.ConnectBackoff)
	}
}
