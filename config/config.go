package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/vi-runner/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// RespawnPolicy selects what triggers the next obstacle
type RespawnPolicy string

const (
	// PolicyCompletion respawns exactly when the previous traversal completes
	PolicyCompletion RespawnPolicy = "completion"
	// PolicyInterval respawns on a fixed period regardless of traversal state
	PolicyInterval RespawnPolicy = "interval"
)

// Config is the full tuning surface of a session
type Config struct {
	Variant       string         `yaml:"variant" toml:"variant"`
	Seed          uint64         `yaml:"seed" toml:"seed"`
	FrameInterval time.Duration  `yaml:"frame_interval" toml:"frame_interval"`
	Field         FieldConfig    `yaml:"field" toml:"field"`
	Physics       PhysicsConfig  `yaml:"physics" toml:"physics"`
	Obstacle      ObstacleConfig `yaml:"obstacle" toml:"obstacle"`
	Score         ScoreConfig    `yaml:"score" toml:"score"`
	Audio         AudioConfig    `yaml:"audio" toml:"audio"`

	// Keys rebinds terminal keys to actions, e.g. {"w": "jump", "space": "none"}
	Keys map[string]string `yaml:"keys" toml:"keys"`
}

// FieldConfig is the playfield geometry in screen units
type FieldConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	PlayerLeft   float64 `yaml:"player_left" toml:"player_left"`
	PlayerWidth  float64 `yaml:"player_width" toml:"player_width"`
	PlayerHeight float64 `yaml:"player_height" toml:"player_height"`
}

// PhysicsConfig tunes the jump integrator
type PhysicsConfig struct {
	Gravity      float64       `yaml:"gravity" toml:"gravity"`
	JumpVelocity float64       `yaml:"jump_velocity" toml:"jump_velocity"`
	MaxJumps     int           `yaml:"max_jumps" toml:"max_jumps"`
	Tick         time.Duration `yaml:"tick" toml:"tick"`
	GroundLevel  float64       `yaml:"ground_level" toml:"ground_level"`
	// PinOnStart arms the integrator on start so the player is pinned to ground before any jump
	PinOnStart bool `yaml:"pin_on_start" toml:"pin_on_start"`
}

// ObstacleConfig tunes spawn variance and respawn policy
type ObstacleConfig struct {
	Policy          RespawnPolicy `yaml:"policy" toml:"policy"`
	RespawnInterval time.Duration `yaml:"respawn_interval" toml:"respawn_interval"`
	// Heights is the discrete pick set; empty selects the continuous [HeightMin, HeightMax] range
	Heights       []float64     `yaml:"heights" toml:"heights"`
	HeightMin     float64       `yaml:"height_min" toml:"height_min"`
	HeightMax     float64       `yaml:"height_max" toml:"height_max"`
	InitialHeight float64       `yaml:"initial_height" toml:"initial_height"`
	Width         float64       `yaml:"width" toml:"width"`
	DurationMin   time.Duration `yaml:"duration_min" toml:"duration_min"`
	DurationMax   time.Duration `yaml:"duration_max" toml:"duration_max"`
}

// ScoreConfig tunes the score accumulator
type ScoreConfig struct {
	Tick      time.Duration `yaml:"tick" toml:"tick"`
	Divisor   int           `yaml:"divisor" toml:"divisor"`
	Milestone int           `yaml:"milestone" toml:"milestone"`
}

// AudioConfig tunes the sound layer
type AudioConfig struct {
	Enabled      bool               `yaml:"enabled" toml:"enabled"`
	MasterVolume float64            `yaml:"master_volume" toml:"master_volume"`
	Effects      map[string]float64 `yaml:"effects" toml:"effects"`
}

// Default returns the classic preset
func Default() Config {
	cfg, _ := Preset("classic")
	return cfg
}

// Load builds a config from the preset named in the file, then overlays the file
// Files ending in .toml decode as TOML, everything else as YAML
// An empty path returns the default preset
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}
	return Parse(data)
}

// Parse decodes YAML over the preset it names
func Parse(data []byte) (Config, error) {
	return decodeOverPreset(data, yaml.Unmarshal)
}

// ParseTOML decodes TOML over the preset it names
func ParseTOML(data []byte) (Config, error) {
	return decodeOverPreset(data, toml.Unmarshal)
}

func decodeOverPreset(data []byte, unmarshal func([]byte, any) error) (Config, error) {
	var head struct {
		Variant string `yaml:"variant" toml:"variant"`
	}
	if err := unmarshal(data, &head); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	variant := head.Variant
	if variant == "" {
		variant = "classic"
	}
	cfg, err := Preset(variant)
	if err != nil {
		return Config{}, err
	}

	if err := unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overlays VI_RUNNER_* environment variables
// lookup is os.LookupEnv in production; malformed values are ignored
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup("VI_RUNNER_RESPAWN_POLICY"); ok {
		c.Obstacle.Policy = RespawnPolicy(strings.ToLower(strings.TrimSpace(v)))
	}

	if v, ok := lookup("VI_RUNNER_SEED"); ok {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = seed
		}
	}

	if v, ok := lookup("VI_RUNNER_AUDIO_ENABLED"); ok {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = enabled
		}
	}

	// Master volume is 0-100 in the environment, 0.0-1.0 in config
	if v, ok := lookup("VI_RUNNER_MASTER_VOLUME"); ok {
		if vol, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = min(max(float64(vol)/100.0, 0), 1)
		}
	}
}

// Validate rejects configurations the core cannot run
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.FrameInterval > 0, "frame_interval must be positive")

	check(c.Field.Width > 0 && c.Field.Height > 0, "field size must be positive")
	check(c.Field.PlayerWidth > 0 && c.Field.PlayerHeight > 0, "player size must be positive")

	check(c.Physics.Tick > 0, "physics.tick must be positive")
	check(c.Physics.Gravity > 0, "physics.gravity must be positive")
	check(c.Physics.JumpVelocity > 0, "physics.jump_velocity must be positive")
	check(c.Physics.MaxJumps >= 1, "physics.max_jumps must be at least 1")
	check(c.Physics.GroundLevel >= 0 && c.Physics.GroundLevel < c.Field.Height,
		"physics.ground_level %v outside field", c.Physics.GroundLevel)

	switch c.Obstacle.Policy {
	case PolicyCompletion:
	case PolicyInterval:
		check(c.Obstacle.RespawnInterval > 0, "obstacle.respawn_interval must be positive for interval policy")
	default:
		check(false, "unknown obstacle.policy %q", c.Obstacle.Policy)
	}
	if len(c.Obstacle.Heights) == 0 {
		check(c.Obstacle.HeightMin > 0 && c.Obstacle.HeightMin <= c.Obstacle.HeightMax,
			"obstacle height range [%v, %v] invalid", c.Obstacle.HeightMin, c.Obstacle.HeightMax)
	}
	for _, h := range c.Obstacle.Heights {
		check(h > 0, "obstacle height %v must be positive", h)
	}
	check(c.Obstacle.Width > 0, "obstacle.width must be positive")
	check(c.Obstacle.DurationMin > 0 && c.Obstacle.DurationMin <= c.Obstacle.DurationMax,
		"obstacle duration range [%v, %v] invalid", c.Obstacle.DurationMin, c.Obstacle.DurationMax)

	check(c.Score.Tick > 0, "score.tick must be positive")
	check(c.Score.Divisor >= 1, "score.divisor must be at least 1")
	check(c.Score.Milestone >= 0, "score.milestone must not be negative")

	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume must be within [0, 1]")

	return errors.Join(errs...)
}

// baseline holds values shared by every preset
func baseline() Config {
	return Config{
		FrameInterval: parameter.FrameUpdateInterval,
		Field: FieldConfig{
			Width:        parameter.FieldWidth,
			Height:       parameter.FieldHeight,
			PlayerLeft:   parameter.PlayerLeft,
			PlayerWidth:  parameter.PlayerWidth,
			PlayerHeight: parameter.PlayerHeight,
		},
		Physics: PhysicsConfig{
			Gravity:      parameter.Gravity,
			JumpVelocity: parameter.JumpVelocity,
			MaxJumps:     parameter.MaxJumps,
			Tick:         parameter.PhysicsTickInterval,
			GroundLevel:  parameter.GroundLevel,
		},
		Obstacle: ObstacleConfig{
			Policy:          PolicyCompletion,
			RespawnInterval: parameter.ObstacleRespawnInterval,
			HeightMin:       parameter.ObstacleHeightMin,
			HeightMax:       parameter.ObstacleHeightMax,
			InitialHeight:   parameter.ObstacleInitialHeight,
			Width:           parameter.ObstacleWidth,
			DurationMin:     parameter.ObstacleDurationMin,
			DurationMax:     parameter.ObstacleDurationMax,
		},
		Score: ScoreConfig{
			Tick:      parameter.ScoreTickInterval,
			Divisor:   parameter.ScoreDivisor,
			Milestone: parameter.ScoreMilestone,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
			Effects: map[string]float64{
				"jump":      0.6,
				"land":      0.3,
				"crash":     0.8,
				"milestone": 0.5,
			},
		},
	}
}
