package transport

import (
	"os"
	"testing"
)

func TestProcessAliveForSelf(t *testing.T) {
	if !ProcessAlive(int32(os.Getpid())) {
		t.Fatalf("expected the current process to report alive")
	}
}

func TestProcessAliveRejectsNonPositive(t *testing.T) {
	if ProcessAlive(0) {
		t.Fatalf("expected pid 0 to report not-alive")
	}
	if ProcessAlive(-1) {
		t.Fatalf("expected a negative pid to report not-alive")
	}
}

func TestDefaultDialOptions(t *testing.T) {
	o := DefaultDialOptions()
	if o.ConnectRetry != 20 {
		t.Fatalf("got ConnectRetry %d, want 20", o.ConnectRetry)
	}
	if o.ConnectBackoff <= 0 {
		t.Fatalf("expected a positive default backoff")
	}
}
