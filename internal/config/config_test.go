package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn default", cfg.Logging.Level)
	}
	if cfg.Service.CommandTimeout.Duration != 0 {
		t.Errorf("CommandTimeout = %v, want unlimited", cfg.Service.CommandTimeout.Duration)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trakts.yaml")
	data := "logging:\n  level: info\n  file: /tmp/trakts.log\nservice:\n  command_timeout: 30s\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.File != "/tmp/trakts.log" {
		t.Errorf("File = %q", cfg.Logging.File)
	}
	if cfg.Service.CommandTimeout.Duration != 30*time.Second {
		t.Errorf("CommandTimeout = %v, want 30s", cfg.Service.CommandTimeout.Duration)
	}
}

func TestLoadFromBytes_EnvOverridesFile(t *testing.T) {
	t.Setenv("TRAKTS_LOG_LEVEL", "error")
	t.Setenv("TRAKTS_COMMAND_TIMEOUT", "5s")

	cfg, err := LoadFromBytes([]byte("logging:\n  level: info\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Level = %q, want env override", cfg.Logging.Level)
	}
	if cfg.Service.CommandTimeout.Duration != 5*time.Second {
		t.Errorf("CommandTimeout = %v, want 5s", cfg.Service.CommandTimeout.Duration)
	}
}

func TestLoadFromBytes_InvalidEnvTimeout(t *testing.T) {
	t.Setenv("TRAKTS_COMMAND_TIMEOUT", "soon")

	if _, err := LoadFromBytes(nil); err == nil {
		t.Error("expected error for unparsable timeout")
	}
}

func TestLoadFromBytes_InvalidDuration(t *testing.T) {
	if _, err := LoadFromBytes([]byte("service:\n  command_timeout: forever\n")); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestCLIOverrides(t *testing.T) {
	cfg := DefaultConfig()
	CLIOverrides{}.Apply(cfg)
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want unchanged", cfg.Logging.Level)
	}
	CLIOverrides{Verbose: true}.Apply(cfg)
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, true},
		{"negative timeout", func(c *Config) { c.Service.CommandTimeout = Duration{-time.Second} }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("APPDATA", dir)

	if got := Locate(); got != "" {
		t.Fatalf("Locate() = %q, want empty", got)
	}

	path := filepath.Join(dir, "trakt-scrobbler", "trakts.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("logging:\n  level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Locate(); got != path {
		t.Errorf("Locate() = %q, want %q", got, path)
	}
}
