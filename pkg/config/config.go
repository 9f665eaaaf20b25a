// Package config loads wordchain settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/wordchain/config.toml, falling back to
// ~/.config/wordchain/config.toml. A missing file is not an error: [Load]
// returns [Default]. Every key is optional.
//
//	mode = "path"
//
//	[cache]
//	dir = "/var/cache/wordchain"
//	ttl = "72h"
//	disabled = false
//	redis_addr = "localhost:6379"
//
//	[server]
//	addr = ":8080"
//
//	[history]
//	mongo_uri = "mongodb://localhost:27017"
//	database = "wordchain"
//	collection = "runs"
//
// Command-line flags override values from the file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordchain/pkg/chain"
	"github.com/matzehuels/wordchain/pkg/errors"
)

// AppName names the config and cache directories.
const AppName = "wordchain"

// Config holds all file-based settings.
type Config struct {
	Mode    string        `toml:"mode"`
	Cache   CacheConfig   `toml:"cache"`
	Server  ServerConfig  `toml:"server"`
	History HistoryConfig `toml:"history"`
}

// CacheConfig selects and tunes the result cache.
type CacheConfig struct {
	Dir      string `toml:"dir"`
	TTL      string `toml:"ttl"`
	Disabled bool   `toml:"disabled"`
	// RedisAddr switches the server from the file cache to Redis.
	RedisAddr string `toml:"redis_addr"`
}

// ServerConfig configures `wordchain serve`.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// HistoryConfig configures where the server records runs. An empty MongoURI
// keeps history in memory.
type HistoryConfig struct {
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Mode:   string(chain.DefaultMode),
		Server: ServerConfig{Addr: ":8080"},
		History: HistoryConfig{
			Database:   AppName,
			Collection: "runs",
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// CacheDir returns the default cache directory (~/.cache/wordchain/ or
// $XDG_CACHE_HOME/wordchain/).
func CacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", AppName), nil
}

// Load reads the config at path, or at [Path] when path is empty. Values
// missing from the file keep their defaults. A missing default file yields
// [Default]; a missing explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks values that cannot be checked by the TOML decoder.
func (c Config) Validate() error {
	if c.Mode != "" {
		if _, err := chain.ParseMode(c.Mode); err != nil {
			return err
		}
	}
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	return nil
}

// CacheTTL parses the cache lifetime. Zero means the pipeline default.
func (c Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid cache ttl %q", c.Cache.TTL)
	}
	return d, nil
}

// ResolvedCacheDir returns the configured cache directory or the default.
func (c Config) ResolvedCacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	return CacheDir()
}
