package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Address())
	assert.Equal(t, 100, cfg.Server.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.Server.RateLimitExp)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DriverEmbedded, cfg.Catalog.Driver)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, HTMXURL, cfg.UI.HTMXURL)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9000
  rate_limit_exp: 30s
catalog:
  driver: file
  path: ./cars.yaml
cache:
  ttl: 5m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RateLimitExp)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, DriverFile, cfg.Catalog.Driver)
	assert.Equal(t, "./cars.yaml", cfg.Catalog.Path)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CARFINDER_SERVER_PORT", "9090")
	t.Setenv("CARFINDER_CATALOG_DRIVER", "sqlite")
	t.Setenv("CARFINDER_CATALOG_PATH", "/data/cars.db")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Catalog.Driver)
	assert.Equal(t, "/data/cars.db", cfg.Catalog.Path)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		cfg, err := Load(viper.New(), "")
		require.NoError(t, err)
		return *cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, errMsg: "server"},
		{name: "zero port", mutate: func(c *Config) { c.Server.Port = 0 }, errMsg: "server"},
		{name: "zero rate limit", mutate: func(c *Config) { c.Server.RateLimitMax = 0 }, errMsg: "server"},
		{name: "unknown driver", mutate: func(c *Config) { c.Catalog.Driver = "postgres" }, errMsg: "catalog"},
		{name: "file driver without path", mutate: func(c *Config) { c.Catalog.Driver = DriverFile }, errMsg: "catalog"},
		{name: "sqlite driver with path", mutate: func(c *Config) {
			c.Catalog.Driver = DriverSQLite
			c.Catalog.Path = "cars.db"
		}},
		{name: "zero cache ttl", mutate: func(c *Config) { c.Cache.TTL = 0 }, errMsg: "cache"},
		{name: "missing htmx url", mutate: func(c *Config) { c.UI.HTMXURL = "" }, errMsg: "ui"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestInferDriver(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "", expected: DriverEmbedded},
		{path: "cars.json", expected: DriverFile},
		{path: "cars.YAML", expected: DriverFile},
		{path: "cars.db", expected: DriverSQLite},
		{path: "/var/lib/cars.sqlite3", expected: DriverSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c := CatalogConfig{Driver: DriverEmbedded, Path: tt.path}
			c.inferDriver()
			assert.Equal(t, tt.expected, c.Driver)
		})
	}

	explicit := CatalogConfig{Driver: DriverSQLite, Path: "cars.json"}
	explicit.inferDriver()
	assert.Equal(t, DriverSQLite, explicit.Driver)
}
