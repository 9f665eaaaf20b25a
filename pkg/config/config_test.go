package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/wordchain/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Mode != "circuit" {
		t.Errorf("Mode = %q, want circuit", cfg.Mode)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.History.Database != "wordchain" || cfg.History.Collection != "runs" {
		t.Errorf("History = %+v", cfg.History)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
mode = "path"

[cache]
dir = "/tmp/wc"
ttl = "72h"
redis_addr = "localhost:6379"

[server]
addr = ":9090"

[history]
mongo_uri = "mongodb://localhost:27017"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "path" {
		t.Errorf("Mode = %q", cfg.Mode)
	}
	if cfg.Cache.Dir != "/tmp/wc" || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if ttl, _ := cfg.CacheTTL(); ttl != 72*time.Hour {
		t.Errorf("CacheTTL = %v", ttl)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.History.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("History.MongoURI = %q", cfg.History.MongoURI)
	}
	// Keys absent from the file keep defaults.
	if cfg.History.Collection != "runs" {
		t.Errorf("History.Collection = %q, want default", cfg.History.Collection)
	}
	if dir, _ := cfg.ResolvedCacheDir(); dir != "/tmp/wc" {
		t.Errorf("ResolvedCacheDir = %q", dir)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"bad toml", "mode = ", errors.ErrCodeInvalidInput},
		{"bad mode", `mode = "zigzag"`, errors.ErrCodeInvalidMode},
		{"bad ttl", "[cache]\nttl = \"soon\"", errors.ErrCodeInvalidInput},
		{"negative ttl", "[cache]\nttl = \"-1h\"", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(explicit missing) = %v, want FILE_NOT_FOUND", err)
	}

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(default missing) = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(default missing) = %+v, want defaults", cfg)
	}
}

func TestPaths(t *testing.T) {
	cfgHome := t.TempDir()
	cacheHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	t.Setenv("XDG_CACHE_HOME", cacheHome)

	if p, _ := Path(); p != filepath.Join(cfgHome, "wordchain", "config.toml") {
		t.Errorf("Path() = %q", p)
	}
	if d, _ := CacheDir(); d != filepath.Join(cacheHome, "wordchain") {
		t.Errorf("CacheDir() = %q", d)
	}
	if d, _ := Default().ResolvedCacheDir(); d != filepath.Join(cacheHome, "wordchain") {
		t.Errorf("ResolvedCacheDir() = %q", d)
	}
}
