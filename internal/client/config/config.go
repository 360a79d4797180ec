package config

import "time"

// Config holds runtime settings for the EduHub CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend (scheme://host:port).
//   - DatabasePath: sqlite file holding the client state (session slot).
//   - PhotoCacheDir: directory for locally cached photo previews.
//   - RequestTimeout: bound on every backend request.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	PhotoCacheDir      string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000"
	c.DatabasePath = "eduhub.db"
	c.PhotoCacheDir = "photo_cache"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
