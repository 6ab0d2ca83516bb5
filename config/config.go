package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every environment override,
	// e.g. CARFINDER_SERVER_PORT.
	EnvPrefix = "CARFINDER"

	HTMXURL        = "https://unpkg.com/htmx.org@1.9.12"
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
)

// Catalog drivers.
const (
	DriverEmbedded = "embedded"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
)

// Config is the application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Cache   CacheConfig   `mapstructure:"cache"`
	UI      UIConfig      `mapstructure:"ui"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	RateLimitMax    int           `mapstructure:"rate_limit_max"`
	RateLimitExp    time.Duration `mapstructure:"rate_limit_exp"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Address returns the listen address.
func (c ServerConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CatalogConfig selects where the vehicle catalog is read from at start-up.
type CatalogConfig struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type UIConfig struct {
	HTMXURL        string `mapstructure:"htmx_url"`
	TailwindCSSURL string `mapstructure:"tailwind_css_url"`
}

// SetDefaults registers every key with its default so that environment
// overrides are picked up by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_limit_max", 100)
	v.SetDefault("server.rate_limit_exp", time.Minute)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("catalog.driver", DriverEmbedded)
	v.SetDefault("catalog.path", "")
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("ui.htmx_url", HTMXURL)
	v.SetDefault("ui.tailwind_css_url", TailwindCSSURL)
}

// Load reads configuration from defaults, the optional YAML file and
// CARFINDER_* environment variables, in increasing precedence. Flags bound
// to v before the call take precedence over all of them.
func Load(v *viper.Viper, file string) (*Config, error) {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Catalog.inferDriver()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Catalog.Validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := validation.ValidateStruct(&c.Cache,
		validation.Field(&c.Cache.TTL, validation.Required),
	); err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	if err := validation.ValidateStruct(&c.UI,
		validation.Field(&c.UI.HTMXURL, validation.Required),
		validation.Field(&c.UI.TailwindCSSURL, validation.Required),
	); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// Validate validates the server configuration.
func (c *ServerConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.RateLimitMax, validation.Required, validation.Min(1)),
		validation.Field(&c.RateLimitExp, validation.Required),
		validation.Field(&c.ReadTimeout, validation.Required),
		validation.Field(&c.WriteTimeout, validation.Required),
		validation.Field(&c.ShutdownTimeout, validation.Required),
	)
}

// inferDriver switches the embedded driver to file or sqlite, by
// extension, when a catalog path is set.
func (c *CatalogConfig) inferDriver() {
	if c.Driver != DriverEmbedded || c.Path == "" {
		return
	}
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".db", ".sqlite", ".sqlite3":
		c.Driver = DriverSQLite
	default:
		c.Driver = DriverFile
	}
}

// Validate validates the catalog configuration. Path is required for
// every driver except the embedded one.
func (c *CatalogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Driver, validation.Required, validation.In(DriverEmbedded, DriverFile, DriverSQLite)),
		validation.Field(&c.Path, validation.When(c.Driver != DriverEmbedded, validation.Required)),
	)
}
