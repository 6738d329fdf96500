// Package config loads runtime tuning over the compiled defaults in parameter
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/star-hauler/parameter"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix scopes environment overrides, e.g. STARHAULER_DUST_COUNT
const EnvPrefix = "STARHAULER"

type BoostConfig struct {
	MinAlpha    float64 `mapstructure:"min_alpha"`
	MaxAlpha    float64 `mapstructure:"max_alpha"`
	RampSeconds float64 `mapstructure:"ramp_seconds"`
	FadeSeconds float64 `mapstructure:"fade_seconds"`
}

type FlashConfig struct {
	DurationSeconds float64 `mapstructure:"duration_seconds"`
	Alpha           float64 `mapstructure:"alpha"`
}

type DeathConfig struct {
	RedSeconds   float64 `mapstructure:"red_seconds"`
	BlackSeconds float64 `mapstructure:"black_seconds"`
}

type DockConfig struct {
	BlackSeconds float64 `mapstructure:"black_seconds"`
	RangeAU      float64 `mapstructure:"range_au"`
}

type WarpConfig struct {
	FadeSeconds float64 `mapstructure:"fade_seconds"`
}

type StarfieldConfig struct {
	Count          int     `mapstructure:"count"`
	Radius         float64 `mapstructure:"radius"`
	RenderDistance float64 `mapstructure:"render_distance"`
}

type DustConfig struct {
	Count           int     `mapstructure:"count"`
	SpawnDistance   float64 `mapstructure:"spawn_distance"`
	MinDistance     float64 `mapstructure:"min_distance"`
	MaxDistance     float64 `mapstructure:"max_distance"`
	VelocityBias    float64 `mapstructure:"velocity_bias"`
	StreakThreshold float64 `mapstructure:"streak_threshold"`
}

type HeatConfig struct {
	MaxDistance     float64 `mapstructure:"max_distance"`
	DamagePerSecond float64 `mapstructure:"damage_per_second"`
}

type StationConfig struct {
	CollisionDamage float64 `mapstructure:"collision_damage"`
}

// Config is the complete runtime configuration
type Config struct {
	FOVDeg     float64 `mapstructure:"fov_deg"`
	NearPlane  float64 `mapstructure:"near_plane"`
	CellAspect float64 `mapstructure:"cell_aspect"`

	Boost     BoostConfig     `mapstructure:"boost"`
	Flash     FlashConfig     `mapstructure:"flash"`
	Death     DeathConfig     `mapstructure:"death"`
	Dock      DockConfig      `mapstructure:"dock"`
	Warp      WarpConfig      `mapstructure:"warp"`
	Starfield StarfieldConfig `mapstructure:"starfield"`
	Dust      DustConfig      `mapstructure:"dust"`
	Heat      HeatConfig      `mapstructure:"heat"`
	Station   StationConfig   `mapstructure:"station"`

	// SystemFile is an optional star-system fixture; empty uses the built-in
	SystemFile string `mapstructure:"system_file"`
	Audio      bool   `mapstructure:"audio"`
}

// setDefaults registers every key so environment overrides resolve
func setDefaults(v *viper.Viper) {
	v.SetDefault("fov_deg", parameter.CameraFOVDeg)
	v.SetDefault("near_plane", parameter.CameraNearPlane)
	v.SetDefault("cell_aspect", parameter.CameraCellAspect)

	v.SetDefault("boost.min_alpha", parameter.BoostMinAlpha)
	v.SetDefault("boost.max_alpha", parameter.BoostMaxAlpha)
	v.SetDefault("boost.ramp_seconds", parameter.BoostRampDuration.Seconds())
	v.SetDefault("boost.fade_seconds", parameter.BoostFadeDuration.Seconds())

	v.SetDefault("flash.duration_seconds", parameter.FlashDuration.Seconds())
	v.SetDefault("flash.alpha", parameter.FlashAlpha)

	v.SetDefault("death.red_seconds", parameter.DeathRedDuration.Seconds())
	v.SetDefault("death.black_seconds", parameter.DeathBlackDuration.Seconds())

	v.SetDefault("dock.black_seconds", parameter.DockBlackDuration.Seconds())
	v.SetDefault("dock.range_au", parameter.DockRangeAU)

	v.SetDefault("warp.fade_seconds", parameter.WarpFadeDuration.Seconds())

	v.SetDefault("starfield.count", parameter.StarfieldCount)
	v.SetDefault("starfield.radius", parameter.StarfieldRadius)
	v.SetDefault("starfield.render_distance", parameter.StarRenderDistance)

	v.SetDefault("dust.count", parameter.DustCount)
	v.SetDefault("dust.spawn_distance", parameter.DustSpawnDistance)
	v.SetDefault("dust.min_distance", parameter.DustMinDistance)
	v.SetDefault("dust.max_distance", parameter.DustMaxDistance)
	v.SetDefault("dust.velocity_bias", parameter.DustVelocityBias)
	v.SetDefault("dust.streak_threshold", parameter.DustStreakThreshold)

	v.SetDefault("heat.max_distance", parameter.HeatMaxDistance)
	v.SetDefault("heat.damage_per_second", parameter.HeatDamagePerSecond)

	v.SetDefault("station.collision_damage", parameter.StationCollisionDamage)

	v.SetDefault("system_file", "")
	v.SetDefault("audio", true)
}

// Default returns the compiled defaults, ignoring files and environment
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config defaults do not decode: %v", err))
	}
	return &c
}

// Load reads defaults, an optional config file (format by extension) and
// STARHAULER_* environment overrides, then validates
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports every out-of-range option, each wrapping ErrInvalid
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.FOVDeg > 0 && c.FOVDeg < 180, "fov_deg %v outside (0,180)", c.FOVDeg)
	check(c.NearPlane > 0, "near_plane %v must be positive", c.NearPlane)
	check(c.CellAspect > 0, "cell_aspect %v must be positive", c.CellAspect)

	check(unit(c.Boost.MinAlpha) && unit(c.Boost.MaxAlpha), "boost alphas must lie in [0,1]")
	check(c.Boost.MinAlpha <= c.Boost.MaxAlpha, "boost.min_alpha above boost.max_alpha")
	check(unit(c.Flash.Alpha), "flash.alpha %v outside [0,1]", c.Flash.Alpha)

	durations := []struct {
		key string
		s   float64
	}{
		{"boost.ramp_seconds", c.Boost.RampSeconds},
		{"boost.fade_seconds", c.Boost.FadeSeconds},
		{"flash.duration_seconds", c.Flash.DurationSeconds},
		{"death.red_seconds", c.Death.RedSeconds},
		{"death.black_seconds", c.Death.BlackSeconds},
		{"dock.black_seconds", c.Dock.BlackSeconds},
		{"warp.fade_seconds", c.Warp.FadeSeconds},
	}
	for _, d := range durations {
		check(d.s >= 0, "%s %v must not be negative", d.key, d.s)
	}

	check(c.Dock.RangeAU >= 0, "dock.range_au %v must not be negative", c.Dock.RangeAU)
	check(c.Starfield.Count >= 0, "starfield.count %d must not be negative", c.Starfield.Count)
	check(c.Starfield.Radius > 0, "starfield.radius %v must be positive", c.Starfield.Radius)
	check(c.Dust.Count >= 0, "dust.count %d must not be negative", c.Dust.Count)
	check(c.Dust.MinDistance > 0, "dust.min_distance %v must be positive", c.Dust.MinDistance)
	check(c.Dust.MinDistance <= c.Dust.SpawnDistance && c.Dust.SpawnDistance <= c.Dust.MaxDistance,
		"dust distances must satisfy min <= spawn <= max")
	check(c.Heat.MaxDistance >= 0 && c.Heat.DamagePerSecond >= 0, "heat options must not be negative")
	check(c.Station.CollisionDamage >= 0, "station.collision_damage must not be negative")

	return errors.Join(errs...)
}

func unit(a float64) bool {
	return a >= 0 && a <= 1
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func (b BoostConfig) Ramp() time.Duration     { return seconds(b.RampSeconds) }
func (b BoostConfig) Fade() time.Duration     { return seconds(b.FadeSeconds) }
func (f FlashConfig) Duration() time.Duration { return seconds(f.DurationSeconds) }
func (d DeathConfig) Red() time.Duration      { return seconds(d.RedSeconds) }
func (d DeathConfig) Black() time.Duration    { return seconds(d.BlackSeconds) }
func (d DockConfig) Black() time.Duration     { return seconds(d.BlackSeconds) }
func (w WarpConfig) Fade() time.Duration      { return seconds(w.FadeSeconds) }
