package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParse_EmptyConfig(t *testing.T) {
	cfg, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// check defaults applied
	if cfg.Addr != "127.0.0.1:3000" {
		t.Errorf("Addr = %q, want 127.0.0.1:3000", cfg.Addr)
	}
	if cfg.ShutdownTimeout.Duration() != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 5s", cfg.ShutdownTimeout.Duration())
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
}

func TestParse_CommentsOnly(t *testing.T) {
	cfg, err := Parse([]byte("# nothing to see\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Addr != "127.0.0.1:3000" {
		t.Errorf("Addr = %q, want default", cfg.Addr)
	}
}

func TestDefault_MatchesEmptyParse(t *testing.T) {
	parsed, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if *Default() != *parsed {
		t.Errorf("Default() = %+v, want %+v", *Default(), *parsed)
	}
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestParse_FullConfig(t *testing.T) {
	yaml := `
addr: 0.0.0.0:8080
shutdown_timeout: 30s
log:
  level: DEBUG
  format: text
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Addr != "0.0.0.0:8080" {
		t.Errorf("Addr = %q, want 0.0.0.0:8080", cfg.Addr)
	}
	if cfg.ShutdownTimeout.Duration() != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeout.Duration())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug (lower-cased)", cfg.Log.Level)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want text", cfg.Log.Format)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel() = %v, want %v", cfg.SlogLevel(), slog.LevelDebug)
	}
}

func TestParse_EnvVarSubstitution(t *testing.T) {
	// t.Setenv auto-restores after test (Go 1.17+)
	t.Setenv("TEST_TODOS_PORT", "4000")
	t.Setenv("TEST_TODOS_LEVEL", "warn")

	yaml := `
addr: 127.0.0.1:${TEST_TODOS_PORT}
log:
  level: ${TEST_TODOS_LEVEL}
`
	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Addr != "127.0.0.1:4000" {
		t.Errorf("Addr = %q, want 127.0.0.1:4000", cfg.Addr)
	}
	if cfg.SlogLevel() != slog.LevelWarn {
		t.Errorf("SlogLevel() = %v, want %v", cfg.SlogLevel(), slog.LevelWarn)
	}
}

func TestParse_EnvVarDefault(t *testing.T) {
	// UNSET_TODOS_ADDR is expected to not exist in the environment
	yaml := `addr: ${UNSET_TODOS_ADDR:-localhost:9999}`

	cfg, err := Parse([]byte(yaml))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Addr != "localhost:9999" {
		t.Errorf("Addr = %q, want localhost:9999", cfg.Addr)
	}
}

func TestParse_EnvVarMissing(t *testing.T) {
	// MISSING_TODOS_VAR is expected to not exist in the environment
	yaml := `addr: 127.0.0.1:${MISSING_TODOS_VAR}`

	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatal("Parse() expected error for missing env var, got nil")
	}
	if !strings.Contains(err.Error(), "MISSING_TODOS_VAR") {
		t.Errorf("error should mention MISSING_TODOS_VAR: %v", err)
	}
	if !strings.Contains(err.Error(), "addr") {
		t.Errorf("error should name the field: %v", err)
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"addr without port", "addr: localhost", "addr"},
		{"addr with named port", "addr: localhost:http", "port must be numeric"},
		{"addr port out of range", "addr: localhost:70000", "between 0 and 65535"},
		{"shutdown too short", "shutdown_timeout: 500ms", "shutdown_timeout must be between"},
		{"shutdown too long", "shutdown_timeout: 2m", "shutdown_timeout must be between"},
		{"shutdown negative", "shutdown_timeout: -1s", "shutdown_timeout must be between"},
		{"unknown level", "log:\n  level: verbose", "log.level"},
		{"unknown format", "log:\n  format: xml", "log.format must be json or text"},
		{"unknown key", "port: 8080", "failed to parse YAML"},
		{"unknown nested key", "log:\n  colour: true", "failed to parse YAML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Parse() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	yaml := `
this is not: valid: yaml: at all
  - broken
`
	_, err := Parse([]byte(yaml))
	if err == nil {
		t.Fatal("Parse() expected error for invalid YAML, got nil")
	}
}

func TestParse_InvalidDuration(t *testing.T) {
	_, err := Parse([]byte(`shutdown_timeout: not-a-duration`))
	if err == nil {
		t.Fatal("Parse() expected error for invalid duration, got nil")
	}
	if !strings.Contains(err.Error(), "invalid duration") {
		t.Errorf("error = %q, want to contain 'invalid duration'", err.Error())
	}
}

func TestDuration_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"seconds", "10s", 10 * time.Second, false},
		{"milliseconds", "1500ms", 1500 * time.Millisecond, false},
		{"minutes", "1m", 1 * time.Minute, false},
		{"combined", "0m30s", 30 * time.Second, false},
		{"invalid", "not-a-duration", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte("shutdown_timeout: " + tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if cfg.ShutdownTimeout.Duration() != tt.want {
				t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout.Duration(), tt.want)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{Log: LogConfig{Level: tt.level}}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todos.yaml")
	if err := os.WriteFile(path, []byte("addr: 127.0.0.1:3100\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Addr != "127.0.0.1:3100" {
		t.Errorf("Addr = %q, want 127.0.0.1:3100", cfg.Addr)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/todos.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error should mention 'failed to read', got: %v", err)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("TEST_VAR", "value")
	t.Setenv("EMPTY_VAR", "") // set but empty

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"no vars", "plain text", "plain text", false},
		{"simple var", "${TEST_VAR}", "value", false},
		{"var in text", "prefix ${TEST_VAR} suffix", "prefix value suffix", false},
		{"multiple vars", "${TEST_VAR}-${TEST_VAR}", "value-value", false},
		{"with default (var set)", "${TEST_VAR:-default}", "value", false},
		{"with default (var unset)", "${UNSET:-default}", "default", false},
		{"missing required", "${MISSING}", "", true},
		{"empty default (var unset)", "${UNSET:-}", "", false},
		{"set but empty var", "${EMPTY_VAR}", "", false},
		{"set but empty with default", "${EMPTY_VAR:-fallback}", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// UNSET and MISSING are expected to not exist in environment
			got, err := expandEnvVars(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expandEnvVars() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expandEnvVars() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("expandEnvVars() = %q, want %q", got, tt.want)
			}
		})
	}
}
