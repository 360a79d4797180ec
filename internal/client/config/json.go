package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkalinin/eduhub/internal/flagx"
	"github.com/dkalinin/eduhub/internal/timex"
)

// jsonConfig is the DTO for JSON unmarshalling. timex.Duration lets the file
// specify the timeout either as "10s" or as integer nanoseconds. Empty
// fields leave the current Config value alone.
type jsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DatabasePath       string         `json:"database_path"`
	PhotoCacheDir      string         `json:"photo_cache_dir"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. With no such flag nothing happens. Read or unmarshal errors
// panic; the config stage runs before anything worth recovering exists.
func parseJSON(cfg *Config) {
	jsonConfigFile := flagx.JSONConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.PhotoCacheDir != "" {
		cfg.PhotoCacheDir = jc.PhotoCacheDir
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
