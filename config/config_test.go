package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSeedsEngineDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Server.Transport != "in-process" {
		t.Fatalf("got transport %q, want in-process", cfg.Server.Transport)
	}
	if !cfg.Server.AutoClose {
		t.Fatalf("expected AutoClose default to be true")
	}
	if cfg.Server.ConnectRetry != 20 {
		t.Fatalf("got ConnectRetry %d, want 20", cfg.Server.ConnectRetry)
	}
	if !cfg.Session.UseCookingThread {
		t.Fatalf("expected UseCookingThread default to be true")
	}
	if cfg.Session.Cook.MaxVerticesPerPrimitive != -1 {
		t.Fatalf("got MaxVerticesPerPrimitive %d, want -1", cfg.Session.Cook.MaxVerticesPerPrimitive)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hapi.yaml")
	const doc = `
server:
  transport: named-pipe
  pipe_name: my-pipe
session:
  use_cooking_thread: false
  cook:
    max_vertices_per_primitive: 4
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Transport != "named-pipe" || cfg.Server.PipeName != "my-pipe" {
		t.Fatalf("got server %+v, want named-pipe/my-pipe", cfg.Server)
	}
	if cfg.Session.UseCookingThread {
		t.Fatalf("expected UseCookingThread to be overridden to false")
	}
	if cfg.Session.Cook.MaxVerticesPerPrimitive != 4 {
		t.Fatalf("got MaxVerticesPerPrimitive %d, want 4", cfg.Session.Cook.MaxVerticesPerPrimitive)
	}
	// fields the document didn't mention keep their Default() seed.
	if cfg.Server.ConnectRetry != 20 {
		t.Fatalf("got ConnectRetry %d, want unmodified default 20", cfg.Server.ConnectRetry)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

func TestSearchPathsIncludesEnvDir(t *testing.T) {
	t.Setenv("HAPI_GO_CONFIG_DIR", "/etc/hapi-go")
	paths := SearchPaths("hapi.yaml")
	found := false
	for _, p := range paths {
		if p == filepath.Join("/etc/hapi-go", "hapi.yaml") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected SearchPaths to include $HAPI_GO_CONFIG_DIR, got %v", paths)
	}
}
