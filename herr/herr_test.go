package herr

import (
	"errors"
	"strings"
	"testing"
)

func TestContextOrderInnermostFirst(t *testing.T) {
	err := error(EngineWithMessage(Failure, "could not cook"))
	err = WithContext(err, func() string { return "low-level" })
	err = WithContext(err, func() string { return "high-level" })

	s := err.Error()
	want := "[FAILURE]: [Engine Message]: could not cook\n\t0. low-level\n\t1. high-level\n"
	if s != want {
		t.Fatalf("got %q, want %q", s, want)
	}
}

func TestInternalErrorContextChain(t *testing.T) {
	var err error = Internal("root")
	err = WithContext(err, func() string { return "first context" })
	err = WithContext(err, func() string { return "second context" })

	s := err.Error()
	if !strings.HasPrefix(s, "internal error: root") {
		t.Fatalf("unexpected prefix: %q", s)
	}
	if !strings.Contains(s, "\n\t0. first context\n\t1. second context\n") {
		t.Fatalf("missing context chain: %q", s)
	}
}

func TestIsCodeMatchesAcrossContext(t *testing.T) {
	var err error = Engine(NodeInvalid)
	err = WithContext(err, func() string { return "outer" })

	if !IsCode(err, NodeInvalid) {
		t.Fatalf("expected IsCode to match NodeInvalid")
	}
	if IsCode(err, AssetInvalid) {
		t.Fatalf("expected IsCode to not match AssetInvalid")
	}
}

func TestErrorsIsAgainstSentinel(t *testing.T) {
	sentinel := Engine(InvalidSession)
	var err error = EngineWithMessage(InvalidSession, "session closed")
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected errors.Is to match same result code")
	}
}
