package confloader

import (
	"os"
	"path/filepath"
	"testing"
)

type testConfig struct {
	Endpoint    string `koanf:"endpoint"`
	SessionFile string `koanf:"session_file"`
	Insecure    bool   `koanf:"insecure"`
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfigFile(t, "endpoint: \"http://beagle.local:5001\"\ninsecure: true\n")

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if got := l.GetString("endpoint"); got != "http://beagle.local:5001" {
		t.Errorf("endpoint = %q, want %q", got, "http://beagle.local:5001")
	}
	if !l.GetBool("insecure") {
		t.Error("insecure should be true")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv_FlatKeys(t *testing.T) {
	t.Setenv("BEAGLE_ENDPOINT", "http://env.local:5001")
	t.Setenv("BEAGLE_SESSION_FILE", "/tmp/session.json")

	l := NewLoader(WithEnvTransformer(FlatKeys))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.GetString("endpoint"); got != "http://env.local:5001" {
		t.Errorf("endpoint = %q, want %q", got, "http://env.local:5001")
	}
	// Flat transformer keeps underscores instead of nesting on them.
	if got := l.GetString("session_file"); got != "/tmp/session.json" {
		t.Errorf("session_file = %q, want %q", got, "/tmp/session.json")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_ENDPOINT", "http://other:9090")

	l := NewLoader(WithEnvPrefix("MYAPP_"), WithEnvTransformer(FlatKeys))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if got := l.GetString("endpoint"); got != "http://other:9090" {
		t.Errorf("endpoint = %q, want %q", got, "http://other:9090")
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()

	if err := l.LoadMap(map[string]any{"endpoint": "http://map:3000", "insecure": true}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if got := l.GetString("endpoint"); got != "http://map:3000" {
		t.Errorf("endpoint = %q, want %q", got, "http://map:3000")
	}
	if !l.GetBool("insecure") {
		t.Error("insecure should be true")
	}
}

func TestLoader_Load_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "endpoint: \"http://from-file:5001\"\n")
	t.Setenv("BEAGLE_ENDPOINT", "http://from-env:5001")

	l := NewLoader(WithConfigFile(path), WithEnvTransformer(FlatKeys))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Endpoint != "http://from-env:5001" {
		t.Errorf("Endpoint = %q, want %q (env should override file)",
			cfg.Endpoint, "http://from-env:5001")
	}
}

func TestLoader_Unmarshal(t *testing.T) {
	path := writeConfigFile(t, "endpoint: \"http://beagle:5001\"\nsession_file: \"/home/u/.beagle/session.json\"\n")

	l := NewLoader(WithConfigFile(path))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Endpoint != "http://beagle:5001" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.SessionFile != "/home/u/.beagle/session.json" {
		t.Errorf("SessionFile = %q", cfg.SessionFile)
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() should be true after Load()")
	}
}
