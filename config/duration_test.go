package config

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseDurationExtendsStdlib(t *testing.T) {
	d, err := ParseDuration("2d")
	if err != nil {
		t.Fatalf("ParseDuration(2d): %v", err)
	}
	if d != 2*Day {
		t.Fatalf("got %s, want %s", d, 2*Day)
	}

	d, err = ParseDuration("1.5w")
	if err != nil {
		t.Fatalf("ParseDuration(1.5w): %v", err)
	}
	if d != time.Duration(1.5*float64(Week)) {
		t.Fatalf("got %s, want %s", d, time.Duration(1.5*float64(Week)))
	}
}

func TestParseDurationFallsBackToStdlib(t *testing.T) {
	d, err := ParseDuration("250ms")
	if err != nil {
		t.Fatalf("ParseDuration(250ms): %v", err)
	}
	if d != 250*time.Millisecond {
		t.Fatalf("got %s, want 250ms", d)
	}
}

func TestParseDurationRejectsGarbage(t *testing.T) {
	if _, err := ParseDuration("not-a-duration"); err == nil {
		t.Fatalf("expected an error for an unparseable duration")
	}
}

func TestDurationYAMLRoundTrip(t *testing.T) {
	node := &yaml.Node{Kind: yaml.ScalarNode, Value: "3d"}
	var d Duration
	if err := d.UnmarshalYAML(node); err != nil {
		t.Fatalf("UnmarshalYAML: %v", err)
	}
	if d.D() != 3*Day {
		t.Fatalf("got %s, want %s", d.D(), 3*Day)
	}
}
