package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/star-hauler/parameter"
)

func TestLoad_DefaultValues(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, parameter.CameraFOVDeg, c.FOVDeg)
	assert.Equal(t, parameter.CameraNearPlane, c.NearPlane)
	assert.Equal(t, parameter.CameraCellAspect, c.CellAspect)
	assert.Equal(t, parameter.BoostRampDuration, c.Boost.Ramp())
	assert.Equal(t, parameter.FlashDuration, c.Flash.Duration())
	assert.Equal(t, parameter.DeathRedDuration, c.Death.Red())
	assert.Equal(t, parameter.DockBlackDuration, c.Dock.Black())
	assert.Equal(t, parameter.WarpFadeDuration, c.Warp.Fade())
	assert.Equal(t, parameter.StarfieldCount, c.Starfield.Count)
	assert.Equal(t, parameter.DustCount, c.Dust.Count)
	assert.Equal(t, parameter.HeatDamagePerSecond, c.Heat.DamagePerSecond)
	assert.Equal(t, parameter.StationCollisionDamage, c.Station.CollisionDamage)
	assert.True(t, c.Audio)
	assert.Empty(t, c.SystemFile)

	assert.Equal(t, c, Default())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "tuning.yaml", "fov_deg: 90\nboost:\n  ramp_seconds: 0.5\ndust:\n  count: 12\n"},
		{"toml", "tuning.toml", "fov_deg = 90\n[boost]\nramp_seconds = 0.5\n[dust]\ncount = 12\n"},
		{"json", "tuning.json", `{"fov_deg": 90, "boost": {"ramp_seconds": 0.5}, "dust": {"count": 12}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			c, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 90.0, c.FOVDeg)
			assert.Equal(t, 500*time.Millisecond, c.Boost.Ramp())
			assert.Equal(t, 12, c.Dust.Count)
			// Untouched keys keep defaults
			assert.Equal(t, parameter.BoostMaxAlpha, c.Boost.MaxAlpha)
		})
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("STARHAULER_DUST_COUNT", "7")
	t.Setenv("STARHAULER_HEAT_DAMAGE_PER_SECOND", "12.5")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, c.Dust.Count)
	assert.Equal(t, 12.5, c.Heat.DamagePerSecond)

	// Defaults ignore the environment
	assert.Equal(t, parameter.DustCount, Default().Dust.Count)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/tuning.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"fov zero", func(c *Config) { c.FOVDeg = 0 }},
		{"fov straight", func(c *Config) { c.FOVDeg = 180 }},
		{"near plane", func(c *Config) { c.NearPlane = 0 }},
		{"alpha above one", func(c *Config) { c.Flash.Alpha = 1.5 }},
		{"boost alphas inverted", func(c *Config) { c.Boost.MinAlpha, c.Boost.MaxAlpha = 0.5, 0.1 }},
		{"negative duration", func(c *Config) { c.Death.RedSeconds = -1 }},
		{"dust shell inverted", func(c *Config) { c.Dust.SpawnDistance = c.Dust.MaxDistance + 1 }},
		{"negative count", func(c *Config) { c.Starfield.Count = -3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			require.NoError(t, c.Validate())
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("near_plane: -1\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}
