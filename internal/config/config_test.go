package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.Addr, ":3002")
	assert.Equal(t, c.APIKey, "peas-and-carrots")
	assert.Equal(t, c.MachineID, int64(1))
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":8081")
	t.Setenv("API_KEY", "supersecret")
	t.Setenv("MACHINE_ID", "7")

	c := Load()
	require.NotNil(t, c, "Load must not return nil")

	assert.Equal(t, c.Addr, ":8081")
	assert.Equal(t, c.APIKey, "supersecret")
	assert.Equal(t, c.MachineID, int64(7))
}

func TestLoad_InvalidMachineIDKeepsDefault(t *testing.T) {
	t.Setenv("MACHINE_ID", "not-a-number")

	c := Load()
	assert.Equal(t, c.MachineID, int64(1))
}
