package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkalinin/eduhub/internal/flagx"
)

// parseFlags overlays cfg with values from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend server
//	-d string   path to the client database file
//	-p string   directory for cached photo previews
//	-t int      request timeout in seconds
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, so it does not interfere with the config-file flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-p", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the client database file")
	fs.StringVar(&cfg.PhotoCacheDir, "p", cfg.PhotoCacheDir, "directory for cached photo previews")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
