package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JaimeStill/page-router/internal/config"
	"github.com/JaimeStill/page-router/pkg/logging"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad_BaseConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("SERVICE_ENV", "")

	writeFile(t, dir, config.BaseConfigFile, `shutdown_timeout = "45s"

[server]
port = 3000

[router]
base = "/app/"
max_redirects = 4
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 45*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 45s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want 3000", cfg.Server.Port)
	}
	if cfg.Router.Base != "/app/" || cfg.Router.MaxRedirects != 4 {
		t.Errorf("Router = %+v, want base /app/ with 4 redirects", cfg.Router)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVICE_ENV", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "30s")
	}
	if cfg.Server.Addr() != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want %q", cfg.Server.Addr(), "0.0.0.0:8080")
	}
	if cfg.Logging.Level != logging.LevelInfo {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, logging.LevelInfo)
	}
	if cfg.Router.Base != "/" || cfg.Router.MaxRedirects != 10 {
		t.Errorf("Router = %+v, want defaults", cfg.Router)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want %q", cfg.API.BasePath, "/api")
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, dir, config.BaseConfigFile, `[server]
port = 8080
host = "localhost"
`)
	writeFile(t, dir, "config.test.toml", `shutdown_timeout = "60s"

[server]
port = 9090

[logging]
level = "debug"
`)
	t.Setenv("SERVICE_ENV", "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("Server.Host = %q, want %q (should not change)", cfg.Server.Host, "localhost")
	}
	if cfg.Logging.Level != logging.LevelDebug {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, logging.LevelDebug)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("SERVICE_ENV", "")

	writeFile(t, dir, config.BaseConfigFile, "[server\nport = ")

	if _, err := config.Load(); err == nil {
		t.Error("Load() with malformed TOML should return error")
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("SERVICE_SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("LOGGING_FORMAT", "json")
	t.Setenv("ROUTER_BASE", "/spa/")
	t.Setenv("ROUTER_MAX_REDIRECTS", "3")
	t.Setenv("API_BASE_PATH", "/diag")

	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 5*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 5s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Logging.Format != logging.FormatJSON {
		t.Errorf("Logging.Format = %q, want %q", cfg.Logging.Format, logging.FormatJSON)
	}
	if cfg.Router.Base != "/spa/" || cfg.Router.MaxRedirects != 3 {
		t.Errorf("Router = %+v, want base /spa/ with 3 redirects", cfg.Router)
	}
	if cfg.API.BasePath != "/diag" {
		t.Errorf("API.BasePath = %q, want %q", cfg.API.BasePath, "/diag")
	}
}

func TestConfig_Finalize_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{"shutdown timeout", config.Config{ShutdownTimeout: "soon"}},
		{"server port", config.Config{Server: config.ServerConfig{Port: 70000}}},
		{"logging level", config.Config{Logging: logging.Config{Level: "verbose"}}},
		{"api base path", config.Config{API: config.APIConfig{BasePath: "/api/v1"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(); err == nil {
				t.Error("Finalize() should return error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := &config.Config{
		ShutdownTimeout: "30s",
		Version:         "0.1.0",
	}
	base.Router.Base = "/"

	overlay := &config.Config{Version: "0.2.0"}
	overlay.Router.Base = "/app/"

	base.Merge(overlay)

	if base.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q, want %q (should not change)", base.ShutdownTimeout, "30s")
	}
	if base.Version != "0.2.0" {
		t.Errorf("Version = %q, want %q", base.Version, "0.2.0")
	}
	if base.Router.Base != "/app/" {
		t.Errorf("Router.Base = %q, want %q", base.Router.Base, "/app/")
	}
}
