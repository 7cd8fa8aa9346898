package config

import (
	"os"
	"path/filepath"

	"deskresolve/pkg/logger"
)

const (
	DefaultCommandTimeout = "3s"
	DefaultEnrichWorkers  = 4
	socketName            = "deskresolve.sock"
)

// DefaultConfig creates a default configuration.
func DefaultConfig(log *logger.Logger) *Config {
	log.Debug("Creating default configuration")

	config := &Config{log: log}
	config.apply(fileConfig{})

	log.Debug("Created default configuration",
		"socket_path", config.socketPath,
		"command_timeout", config.commandTimeout.String(),
		"enrich_workers", config.enrichWorkers)
	return config
}

// DefaultSocketPath places the socket in XDG_RUNTIME_DIR when available.
func DefaultSocketPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, socketName)
	}
	return filepath.Join(os.TempDir(), socketName)
}
