package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"deskresolve/pkg/logger"
)

// LoadFromFile loads the configuration from a JSON file. Keys missing from
// the file keep their defaults.
func (c *Config) LoadFromFile(path string, log *logger.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	var temp fileConfig
	if err := json.Unmarshal(data, &temp); err != nil {
		log.Error("Failed to parse config JSON", err)
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.Debug("Config JSON parsed successfully")

	if err := temp.validate(); err != nil {
		log.Error("Invalid configuration", err, "path", path)
		return fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	c.apply(temp)
	return nil
}

func (f fileConfig) validate() error {
	if f.CommandTimeout != "" {
		d, err := time.ParseDuration(f.CommandTimeout)
		if err != nil {
			return fmt.Errorf("command_timeout: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("command_timeout must be positive, got %s", d)
		}
	}
	if f.EnrichWorkers < 0 {
		return fmt.Errorf("enrich_workers must be positive, got %d", f.EnrichWorkers)
	}
	return nil
}

// apply copies f into c, filling unset values with defaults. f must be valid.
func (c *Config) apply(f fileConfig) {
	c.socketPath = f.SocketPath
	if c.socketPath == "" {
		c.socketPath = DefaultSocketPath()
	}

	timeout := f.CommandTimeout
	if timeout == "" {
		timeout = DefaultCommandTimeout
	}
	c.commandTimeout, _ = time.ParseDuration(timeout)

	c.enrichWorkers = f.EnrichWorkers
	if c.enrichWorkers == 0 {
		c.enrichWorkers = DefaultEnrichWorkers
	}

	c.iconTheme = f.IconTheme
	c.logFile = f.LogFile
}

// loadConfigFromPath loads the configuration from a file.
func loadConfigFromPath(path string, log *logger.Logger) (*Config, error) {
	config := &Config{log: log}
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
