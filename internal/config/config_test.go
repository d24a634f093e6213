package config

import (
	"os"
	"testing"
	"time"
)

var configKeys = []string{
	"APP_ENV",
	"PORT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"READ_TIMEOUT",
	"WRITE_TIMEOUT",
	"SHUTDOWN_TIMEOUT",
	"CORS_ALLOWED_ORIGINS",
	"MAX_REQUEST_BODY_SIZE",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AppEnv != "" {
		t.Errorf("expected empty AppEnv, got %s", cfg.AppEnv)
	}

	if cfg.Port != 3000 {
		t.Errorf("expected default Port 3000, got %d", cfg.Port)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %s", cfg.LogLevel)
	}

	if cfg.LogFormat != "text" {
		t.Errorf("expected default LogFormat 'text', got %s", cfg.LogFormat)
	}

	if cfg.ShutdownTimeout != 30*time.Second {
		t.Errorf("expected default ShutdownTimeout 30s, got %s", cfg.ShutdownTimeout)
	}

	if cfg.MaxRequestBodySize != 102400 {
		t.Errorf("expected default MaxRequestBodySize 102400, got %d", cfg.MaxRequestBodySize)
	}

	origins := cfg.GetCORSAllowedOrigins()
	if len(origins) != 1 || origins[0] != "*" {
		t.Errorf("expected default origins [*], got %v", origins)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "development")
	t.Setenv("WRITE_TIMEOUT", "3s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Port != 8081 {
		t.Errorf("expected Port 8081, got %d", cfg.Port)
	}

	if !cfg.IsDevelopment() {
		t.Error("expected IsDevelopment to return true")
	}

	if cfg.WriteTimeout != 3*time.Second {
		t.Errorf("expected WriteTimeout 3s, got %s", cfg.WriteTimeout)
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid PORT, got nil")
	}
}

func TestConfig_IsDevelopment(t *testing.T) {
	tests := []struct {
		appEnv string
		want   bool
	}{
		{"development", true},
		{"production", false},
		{"test", false},
		{"", false},
		{"Development", false},
	}

	for _, tt := range tests {
		cfg := &Config{AppEnv: tt.appEnv}
		if got := cfg.IsDevelopment(); got != tt.want {
			t.Errorf("IsDevelopment(%q) = %v, want %v", tt.appEnv, got, tt.want)
		}
	}
}

func TestConfig_EnvironmentName(t *testing.T) {
	cfg := &Config{}
	if got := cfg.EnvironmentName(); got != "development" {
		t.Errorf("EnvironmentName() = %q, want development", got)
	}

	cfg.AppEnv = "staging"
	if got := cfg.EnvironmentName(); got != "staging" {
		t.Errorf("EnvironmentName() = %q, want staging", got)
	}
}

func TestConfig_GetCORSAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " https://a.example , ,https://b.example"}

	got := cfg.GetCORSAllowedOrigins()
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", got)
	}

	cfg.CORSAllowedOrigins = ""
	if got := cfg.GetCORSAllowedOrigins(); got != nil {
		t.Errorf("expected nil origins, got %v", got)
	}
}
