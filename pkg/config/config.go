package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/go-pkgz/lgr"
	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:readlist.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Refresh RefreshConfig `yaml:"refresh" json:"refresh" jsonschema:"description=Feed refresh configuration"`

	Cache struct {
		FeedsTTL time.Duration `yaml:"feeds_ttl" json:"feeds_ttl" jsonschema:"default=1m,description=How long feed selections by category are cached"`
	} `yaml:"cache" json:"cache" jsonschema:"description=In-process cache configuration"`

	Feeds []FeedConfig `yaml:"feeds" json:"feeds" jsonschema:"description=Feeds added on startup if not known yet"`
}

// RefreshConfig holds feed refresh settings
type RefreshConfig struct {
	Enabled    bool          `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Enable periodic feed refresh"`
	Interval   time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5m,description=How often feeds due for an update are checked"`
	MaxWorkers int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,minimum=1,description=Maximum feeds fetched concurrently"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Feed fetch timeout"`
	UserAgent  string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Readlist/1.0,description=User agent for feed requests"`
}

// FeedConfig is a feed to bootstrap
type FeedConfig struct {
	URL           string `yaml:"url" json:"url" jsonschema:"required,description=Feed URL"`
	Title         string `yaml:"title" json:"title" jsonschema:"description=Feed title"`
	Category      string `yaml:"category" json:"category" jsonschema:"description=Category id the feed belongs to"`
	FetchInterval int    `yaml:"fetch_interval" json:"fetch_interval" jsonschema:"default=30,description=Fetch interval in minutes"`
}

// Load reads configuration from a YAML file. Refresh is enabled unless the file sets it off.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Config{Refresh: RefreshConfig{Enabled: true}}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema check is supplementary, report only
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		lgr.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

// Default returns configuration used when no file is given
func Default() *Config {
	cfg := Config{Refresh: RefreshConfig{Enabled: true}}
	cfg.setDefaults()
	return &cfg
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:readlist.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Refresh.Interval == 0 {
		c.Refresh.Interval = 5 * time.Minute
	}
	if c.Refresh.MaxWorkers == 0 {
		c.Refresh.MaxWorkers = 5
	}
	if c.Refresh.Timeout == 0 {
		c.Refresh.Timeout = 30 * time.Second
	}
	if c.Refresh.UserAgent == "" {
		c.Refresh.UserAgent = "Readlist/1.0"
	}

	if c.Cache.FeedsTTL == 0 {
		c.Cache.FeedsTTL = time.Minute
	}

	for i := range c.Feeds {
		if c.Feeds[i].FetchInterval == 0 {
			c.Feeds[i].FetchInterval = 30
		}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Refresh.Enabled {
		if cfg.Refresh.Interval < time.Second {
			return fmt.Errorf("refresh interval must be at least 1 second")
		}
		if cfg.Refresh.MaxWorkers < 1 {
			return fmt.Errorf("refresh max_workers must be at least 1")
		}
	}
	if cfg.Cache.FeedsTTL < 0 {
		return fmt.Errorf("cache feeds_ttl must be non-negative")
	}

	seen := map[string]bool{}
	for i, f := range cfg.Feeds {
		u, err := url.Parse(f.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("feeds[%d]: invalid url %q", i, f.URL)
		}
		if seen[f.URL] {
			return fmt.Errorf("feeds[%d]: duplicate url %q", i, f.URL)
		}
		seen[f.URL] = true
		if f.FetchInterval < 1 {
			return fmt.Errorf("feeds[%d]: fetch_interval must be at least 1 minute", i)
		}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
