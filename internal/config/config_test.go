package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv(TokenEnv, "")
	os.Unsetenv(TokenEnv)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Store.Backend != "file" || cfg.Icons.Size != 128 {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
	if cfg.Server.ReadTimeout.Duration != 15*time.Second {
		t.Errorf("ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(TokenEnv, "")
	os.Unsetenv(TokenEnv)
	path := writeConfig(t, `
[server]
addr = "127.0.0.1:9000"
token = "secret"
read_timeout = "2s"

[store]
backend = "memory"

[render]
scale = 2.0
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" || cfg.Server.Token != "secret" {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Server.ReadTimeout.Duration != 2*time.Second {
		t.Errorf("ReadTimeout = %v, want 2s", cfg.Server.ReadTimeout)
	}
	if cfg.Store.Backend != "memory" || cfg.Render.Scale != 2 || cfg.Render.Padding != 40 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadTokenEnv(t *testing.T) {
	t.Setenv(TokenEnv, "from-env")
	cfg, err := Load(writeConfig(t, "[server]\ntoken = \"file\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Token != "from-env" {
		t.Errorf("Token = %q, want from-env", cfg.Server.Token)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"syntax", "[server\n", "load config"},
		{"unknown key", "[server]\nport = 1\n", "unknown key"},
		{"backend", "[store]\nbackend = \"sqlite\"\n", "store.backend"},
		{"cache backend", "[cache]\nbackend = \"disk\"\n", "cache.backend"},
		{"scale", "[render]\nscale = 0.0\n", "render.scale"},
		{"icon size", "[icons]\nsize = 0\n", "icons.size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := DefaultPath(); got != "/tmp/xdg/whiteboard/config.toml" {
		t.Errorf("DefaultPath() = %s", got)
	}
}

func TestStoreOptions(t *testing.T) {
	cfg := Default()
	cfg.Store.Backend = "redis"
	opts := cfg.StoreOptions()
	if opts.Backend != "redis" || opts.RedisAddr != "localhost:6379" || opts.RedisPrefix != "whiteboard:" {
		t.Errorf("StoreOptions() = %+v", opts)
	}
}
