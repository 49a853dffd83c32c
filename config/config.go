// Package config loads the YAML documents that configure a session's
// server spawn, cook, and connection-retry behavior (spec.md's ambient
// config layer), mirroring the teacher's search-path + yaml.v3 loader
// shape.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Server configures how a remote HAPI server process is spawned and
// dialed (transport.DialOptions' YAML-facing twin).
type Server struct {
	Transport      string   `yaml:"transport"` // "in-process" | "named-pipe" | "socket" | "shared-memory"
	PipeName       string   `yaml:"pipe_name,omitempty"`
	Host           string   `yaml:"host,omitempty"`
	Port           int32    `yaml:"port,omitempty"`
	MemoryName     string   `yaml:"memory_name,omitempty"`
	AutoClose      bool     `yaml:"auto_close"`
	Timeout        Duration `yaml:"timeout"`
	ConnectRetry   int      `yaml:"connect_retry"`
	ConnectBackoff Duration `yaml:"connect_backoff"`
	LogFile        string   `yaml:"log_file,omitempty"`
}

// Cook configures the default HAPI_CookOptions applied to every Session
// unless a caller overrides them per-node.
type Cook struct {
	SplitGeosByGroup        bool `yaml:"split_geos_by_group"`
	MaxVerticesPerPrimitive int  `yaml:"max_vertices_per_primitive"`
	RefineCurveToLinear     bool `yaml:"refine_curve_to_linear"`
	ClearErrorsAndWarnings  bool `yaml:"clear_errors_and_warnings"`
	CookTemplatedGeos       bool `yaml:"cook_templated_geos"`
	CheckPartChanges        bool `yaml:"check_part_changes"`
	PackedPrimInstancing    int  `yaml:"packed_prim_instancing_mode"`
}

// Session configures HAPI_Initialize's parameters plus the cook-state
// poll interval (session.Options' YAML-facing twin).
type Session struct {
	UseCookingThread bool     `yaml:"use_cooking_thread"`
	EnvFiles         string   `yaml:"env_files,omitempty"`
	OTLSearchPath    string   `yaml:"otl_search_path,omitempty"`
	DSOSearchPath    string   `yaml:"dso_search_path,omitempty"`
	ImageDSOPath     string   `yaml:"image_dso_path,omitempty"`
	AudioDSOPath     string   `yaml:"audio_dso_path,omitempty"`
	PollInterval     Duration `yaml:"poll_interval"`
	Cleanup          bool     `yaml:"cleanup"`
	Cook             Cook     `yaml:"cook"`
}

// Config is the top-level document: one Server plus one Session.
type Config struct {
	Server  Server  `yaml:"server"`
	Session Session `yaml:"session"`
}

// Default returns a Config with engine-documented defaults applied.
func Default() Config {
	return Config{
		Server: Server{
			Transport:      "in-process",
			AutoClose:      true,
			ConnectRetry:   20,
			ConnectBackoff: mustParseDuration("50ms"),
		},
		Session: Session{
			UseCookingThread: true,
			PollInterval:     mustParseDuration("10ms"),
			Cook: Cook{
				MaxVerticesPerPrimitive: -1,
				CheckPartChanges:        true,
				ClearErrorsAndWarnings:  true,
			},
		},
	}
}

// mustParseDuration is only ever called with the literal defaults above,
// so a parse failure is a programming error, not a runtime condition.
func mustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return Duration(d)
}

// SearchPaths returns the ordered list of paths Load consults when given
// a bare filename rather than an explicit path: the current directory,
// then $HAPI_GO_CONFIG_DIR, then the user config directory.
func SearchPaths(name string) []string {
	var paths []string
	paths = append(paths, name)
	if dir := os.Getenv("HAPI_GO_CONFIG_DIR"); dir != "" {
		paths = append(paths, filepath.Join(dir, name))
	}
	if ucd, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(ucd, "hapi-go", name))
	}
	return paths
}

// Load reads and parses a Config from path. If path is a bare filename
// (no directory separator), Load instead searches SearchPaths(path) and
// uses the first file found.
func Load(path string) (Config, error) {
	candidates := []string{path}
	if filepath.Base(path) == path {
		candidates = SearchPaths(path)
	}

	var lastErr error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate)
		if err != nil {
			lastErr = err
			continue
		}
		cfg := Default()
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", candidate, err)
		}
		return cfg, nil
	}
	return Config{}, fmt.Errorf("config file %q not found: %w", path, lastErr)
}
