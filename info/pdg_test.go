package info

import (
	"testing"

	"github.com/sidefxlabs/hapi-go/internal/ffi"
)

func TestPDGEventIsCookComplete(t *testing.T) {
	done := NewPDGEvent(ffi.PDGEventInfo{EventType: PDGEventCookComplete})
	if !done.IsCookComplete() {
		t.Fatalf("expected event type %d to report cook-complete", PDGEventCookComplete)
	}

	other := NewPDGEvent(ffi.PDGEventInfo{EventType: 1})
	if other.IsCookComplete() {
		t.Fatalf("expected event type 1 to not report cook-complete")
	}
}
