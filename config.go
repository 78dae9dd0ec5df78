package patentsview

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"

	"github.com/go-patentsview/lib/cache"
)

// Duration wraps time.Duration so it can be given as a string like "30s" in
// YAML config files.
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements the yaml.Unmarshaler interface
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return errors.WithStack(err)
	}
	dur, err := time.ParseDuration(s)
	if err != nil {
		return errors.Wrap(err, "invalid duration")
	}
	d.Duration = dur
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// RedisConfig configures an optional redis-backed response cache shared
// between processes.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Config holds the client configuration. The zero value is usable: it
// targets the public API, applies no request timeout, and caches no
// responses.
type Config struct {
	BaseURL string `yaml:"base_url"`
	// Timeout bounds a single request round trip. Zero means no bound;
	// requests block for as long as the round trip takes.
	Timeout        Duration `yaml:"timeout"`
	DefaultPerPage int      `yaml:"default_per_page"`
	// CacheTTL enables response caching when set to a positive duration.
	CacheTTL Duration     `yaml:"cache_ttl"`
	Redis    *RedisConfig `yaml:"redis"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.WithStack(err)
	}
	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "error while parsing config file")
	}
	cfg.ApplyDefaults()
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.DefaultPerPage == 0 {
		c.DefaultPerPage = 25
	}
}

// Validate checks the config for inconsistent values.
func (c Config) Validate() error {
	if c.DefaultPerPage < 0 {
		return errors.New("default_per_page must not be negative")
	}
	if c.Timeout.Duration < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.CacheTTL.Duration < 0 {
		return errors.New("cache_ttl must not be negative")
	}
	if c.Redis != nil && c.Redis.Addr == "" {
		return errors.New("redis.addr must be set when redis is configured")
	}
	return nil
}

func (c Config) setupCache() error {
	if c.Redis == nil {
		return nil
	}
	return cache.UseRedisCache(
		&redis.Options{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		},
	)
}
