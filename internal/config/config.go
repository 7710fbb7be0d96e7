// Package config handles runtime settings for the API server: defaults
// first, then environment overrides.
package config

import (
	"os"
	"strconv"

	"github.com/labstack/gommon/log"
)

// Config holds runtime settings for the notekeep server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - APIKey: shared secret expected in the x-api-key header.
//   - MachineID: snowflake node ID for note ID generation.
type Config struct {
	Addr      string
	APIKey    string
	MachineID int64
}

// LoadDefaults populates Config with development defaults.
// NOTE: The default key is insecure and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":3002"
	c.APIKey = "peas-and-carrots"
	c.MachineID = 1
}

// Load builds a Config by applying defaults and then overlaying values
// from the environment (previously filled by godotenv or SSM).
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.loadEnv()
	return cfg
}

func (c *Config) loadEnv() {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("MACHINE_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warnf("ignoring invalid MACHINE_ID %q: %v", v, err)
			return
		}
		c.MachineID = id
	}
}
