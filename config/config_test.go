// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/startupseg/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("k_max: 8\nrestarts: 5\nseed: 7\n"), 0o600))

	t.Setenv("STARTUPSEG_RESTARTS", "3")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--seed=11"}))

	c, err := config.Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, 8, c.KMax, "file over default")
	assert.Equal(t, 3, c.Restarts, "env over file")
	assert.Equal(t, int64(11), c.Seed, "flag over file")
	assert.Equal(t, 2, c.KMin, "unset flag keeps default")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"k_min zero", func(c *config.Config) { c.KMin = 0 }},
		{"k_max below k_min", func(c *config.Config) { c.KMin, c.KMax = 5, 4 }},
		{"negative k", func(c *config.Config) { c.K = -1 }},
		{"no restarts", func(c *config.Config) { c.Restarts = 0 }},
		{"no iterations", func(c *config.Config) { c.MaxIterations = 0 }},
		{"no parallelism", func(c *config.Config) { c.Parallelism = 0 }},
		{"unknown init", func(c *config.Config) { c.Init = "farthest" }},
		{"unknown log level", func(c *config.Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := config.Default()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}

	c := config.Default()
	c.K = 3
	assert.NoError(t, c.Validate())
}

func TestLoad_InvalidFromEnv(t *testing.T) {
	t.Setenv("STARTUPSEG_K_MIN", "0")

	_, err := config.Load(nil, "")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
