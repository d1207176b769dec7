package config_test

import (
	"testing"
	"time"

	"github.com/JaimeStill/page-router/internal/config"
)

func TestServerConfig_Finalize_Defaults(t *testing.T) {
	cfg := &config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.ReadTimeoutDuration() != 15*time.Second {
		t.Errorf("ReadTimeoutDuration() = %v, want 15s", cfg.ReadTimeoutDuration())
	}
	if cfg.WriteTimeoutDuration() != 15*time.Second {
		t.Errorf("WriteTimeoutDuration() = %v, want 15s", cfg.WriteTimeoutDuration())
	}
	if cfg.MaxHeaderBytes() != 1<<20 {
		t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.MaxHeaderBytes(), 1<<20)
	}
}

func TestServerConfig_MaxHeaderSize(t *testing.T) {
	tests := []struct {
		size    string
		want    int
		wantErr bool
	}{
		{"64KB", 64 << 10, false},
		{"512k", 512 << 10, false},
		{"2MiB", 2 << 20, false},
		{"lots", 0, true},
		{"0", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			cfg := &config.ServerConfig{MaxHeaderSize: tt.size}
			err := cfg.Finalize()

			if tt.wantErr {
				if err == nil {
					t.Error("Finalize() should return error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Finalize() error = %v", err)
			}
			if cfg.MaxHeaderBytes() != tt.want {
				t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.MaxHeaderBytes(), tt.want)
			}
		})
	}
}

func TestServerConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("SERVER_MAX_HEADER_SIZE", "8KB")

	cfg := &config.ServerConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Addr() != "127.0.0.1:9000" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "127.0.0.1:9000")
	}
	if cfg.MaxHeaderBytes() != 8<<10 {
		t.Errorf("MaxHeaderBytes() = %d, want %d", cfg.MaxHeaderBytes(), 8<<10)
	}
}

func TestServerConfig_Merge(t *testing.T) {
	base := &config.ServerConfig{
		Host:         "localhost",
		Port:         8080,
		ReadTimeout:  "30s",
		WriteTimeout: "30s",
	}

	base.Merge(&config.ServerConfig{Port: 9090, MaxHeaderSize: "2MB"})

	if base.Host != "localhost" {
		t.Errorf("Host = %q, want %q (should not change)", base.Host, "localhost")
	}
	if base.Port != 9090 {
		t.Errorf("Port = %d, want 9090", base.Port)
	}
	if base.MaxHeaderSize != "2MB" {
		t.Errorf("MaxHeaderSize = %q, want %q", base.MaxHeaderSize, "2MB")
	}
}

func TestAPIConfig_Finalize(t *testing.T) {
	t.Setenv("API_CORS_ENABLED", "true")
	t.Setenv("API_CORS_ORIGINS", "http://a.test, http://b.test")

	cfg := &config.APIConfig{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.BasePath != "/api" {
		t.Errorf("BasePath = %q, want %q", cfg.BasePath, "/api")
	}
	if !cfg.CORS.Enabled {
		t.Error("CORS.Enabled = false, want true")
	}
	if len(cfg.CORS.Origins) != 2 || cfg.CORS.Origins[1] != "http://b.test" {
		t.Errorf("CORS.Origins = %v, want two trimmed origins", cfg.CORS.Origins)
	}
}
