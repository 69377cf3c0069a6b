// Package config loads server settings from an optional TOML file with
// environment variable overrides. Defaults, file, and environment compose
// in that order of precedence from lowest to highest; command-line flags
// may override the loaded result on top.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
)

// Cache backend names accepted by Config.CacheBackend.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendFile   = "file"
	BackendNone   = "none"
)

// DefaultCacheSeconds is the browser cache lifetime handed out when a
// request does not override it.
const DefaultCacheSeconds = 14400

// Config holds everything the serving process needs.
type Config struct {
	// Addr is the listen address, host:port.
	Addr string `toml:"addr"`

	// GitHubToken authenticates API requests. Unauthenticated requests
	// work but hit a much lower rate limit.
	GitHubToken string `toml:"github_token"`

	// GitHubAPIURL overrides the API base URL, for GitHub Enterprise.
	GitHubAPIURL string `toml:"github_api_url"`

	// CacheBackend picks the summary cache: memory, redis, file or none.
	CacheBackend string `toml:"cache_backend"`

	// CacheEntries bounds the memory backend. Zero uses the backend default.
	CacheEntries int `toml:"cache_entries"`

	// CacheDir is the file backend root. Empty uses the platform default.
	CacheDir string `toml:"cache_dir"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	// SVGErrors renders lookup failures as SVG cards instead of JSON, so
	// a broken embed still shows something in the README.
	SVGErrors bool `toml:"svg_errors"`

	// CacheSeconds is the default max-age for successful card responses.
	CacheSeconds int `toml:"cache_seconds"`

	// ShutdownSeconds bounds the drain period on SIGINT/SIGTERM.
	ShutdownSeconds int `toml:"shutdown_seconds"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Addr:            ":8080",
		CacheBackend:    BackendMemory,
		RedisAddr:       "localhost:6379",
		CacheSeconds:    DefaultCacheSeconds,
		ShutdownSeconds: 10,
	}
}

// Load builds a Config from defaults, an optional TOML file, and the
// environment, then validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidOption, err, "read config %s", path)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidOption, err, "parse config %s", path)
		}
	}

	if err := cfg.fromEnv(); err != nil {
		return cfg, err
	}
	cfg.CacheBackend = strings.ToLower(cfg.CacheBackend)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// fromEnv overlays environment variables onto the config.
func (c *Config) fromEnv() error {
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		c.GitHubToken = v
	}
	if v := os.Getenv("ACTIVITYCARD_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("ACTIVITYCARD_GITHUB_API_URL"); v != "" {
		c.GitHubAPIURL = v
	}
	if v := os.Getenv("ACTIVITYCARD_CACHE_BACKEND"); v != "" {
		c.CacheBackend = v
	}
	if v := os.Getenv("ACTIVITYCARD_CACHE_DIR"); v != "" {
		c.CacheDir = v
	}
	if v := os.Getenv("ACTIVITYCARD_REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := os.Getenv("ACTIVITYCARD_REDIS_PASSWORD"); v != "" {
		c.RedisPassword = v
	}
	if v := os.Getenv("ACTIVITYCARD_SVG_ERRORS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOption, err, "ACTIVITYCARD_SVG_ERRORS=%q", v)
		}
		c.SVGErrors = b
	}
	if v := os.Getenv("ACTIVITYCARD_CACHE_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidOption, err, "ACTIVITYCARD_CACHE_SECONDS=%q", v)
		}
		c.CacheSeconds = n
	}
	return nil
}

// Validate checks the config for values that cannot work.
func (c Config) Validate() error {
	switch strings.ToLower(c.CacheBackend) {
	case BackendMemory, BackendRedis, BackendFile, BackendNone:
	default:
		return errors.New(errors.ErrCodeInvalidOption,
			"unknown cache backend %q (want memory, redis, file or none)", c.CacheBackend)
	}
	if c.CacheBackend == BackendRedis && c.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidOption, "redis backend needs redis_addr")
	}
	if c.Addr == "" {
		return errors.New(errors.ErrCodeInvalidOption, "listen address is empty")
	}
	if c.CacheSeconds < 0 {
		return errors.New(errors.ErrCodeInvalidOption, "cache_seconds cannot be negative")
	}
	if c.ShutdownSeconds <= 0 {
		return errors.New(errors.ErrCodeInvalidOption, "shutdown_seconds must be positive")
	}
	return nil
}
