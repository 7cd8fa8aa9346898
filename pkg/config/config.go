package config

import (
	"time"

	"deskresolve/pkg/logger"
)

// Config holds the application configuration.
type Config struct {
	// Configurable via JSON file (private fields to enforce immutability)
	socketPath     string
	commandTimeout time.Duration
	iconTheme      string
	enrichWorkers  int
	logFile        string

	log *logger.Logger
}

// fileConfig is the on-disk JSON shape.
type fileConfig struct {
	SocketPath     string `json:"socket_path,omitempty"`
	CommandTimeout string `json:"command_timeout,omitempty"`
	IconTheme      string `json:"icon_theme,omitempty"`
	EnrichWorkers  int    `json:"enrich_workers,omitempty"`
	LogFile        string `json:"log_file,omitempty"`
}

// GetSocketPath returns the unix socket the daemon listens on.
func (c *Config) GetSocketPath() string {
	return c.socketPath
}

// GetCommandTimeout returns the limit applied to each external command.
func (c *Config) GetCommandTimeout() time.Duration {
	return c.commandTimeout
}

// GetIconTheme returns the configured icon theme, empty to auto-detect.
func (c *Config) GetIconTheme() string {
	return c.iconTheme
}

// GetEnrichWorkers returns how many window icons are resolved in parallel.
func (c *Config) GetEnrichWorkers() int {
	return c.enrichWorkers
}

// GetLogFile returns the optional log file path.
func (c *Config) GetLogFile() string {
	return c.logFile
}

func (c *Config) toFile() fileConfig {
	return fileConfig{
		SocketPath:     c.socketPath,
		CommandTimeout: c.commandTimeout.String(),
		IconTheme:      c.iconTheme,
		EnrichWorkers:  c.enrichWorkers,
		LogFile:        c.logFile,
	}
}
