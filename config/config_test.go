package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestPresetsValidate(t *testing.T) {
	for _, name := range Presets() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			if err != nil {
				t.Fatal(err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset %s invalid: %v", name, err)
			}
			if cfg.Variant != name {
				t.Errorf("Variant = %q, want %q", cfg.Variant, name)
			}
		})
	}
}

func TestPresetValues(t *testing.T) {
	classic := Default()
	if classic.Obstacle.Policy != PolicyCompletion {
		t.Errorf("classic policy = %q, want completion", classic.Obstacle.Policy)
	}
	if len(classic.Obstacle.Heights) != 2 || classic.Obstacle.Heights[0] != 40 || classic.Obstacle.Heights[1] != 60 {
		t.Errorf("classic heights = %v, want [40 60]", classic.Obstacle.Heights)
	}
	if classic.Physics.JumpVelocity != 15 || classic.Physics.MaxJumps != 2 {
		t.Errorf("classic physics = %+v", classic.Physics)
	}
	if classic.Score.Tick != 100*time.Millisecond || classic.Score.Divisor != 10 {
		t.Errorf("classic score = %+v", classic.Score)
	}

	original, _ := Preset("original")
	if original.Obstacle.Policy != PolicyInterval || original.Obstacle.RespawnInterval != 3*time.Second {
		t.Errorf("original obstacle = %+v", original.Obstacle)
	}

	arcade, _ := Preset("arcade")
	if len(arcade.Obstacle.Heights) != 0 || arcade.Obstacle.HeightMin != 50 || arcade.Obstacle.HeightMax != 100 {
		t.Errorf("arcade heights = %v [%v,%v]", arcade.Obstacle.Heights, arcade.Obstacle.HeightMin, arcade.Obstacle.HeightMax)
	}
	if arcade.Obstacle.Width != 40 || arcade.Score.Tick != 50*time.Millisecond {
		t.Errorf("arcade = %+v / %+v", arcade.Obstacle, arcade.Score)
	}

	// Presets must not share the height slice
	classic.Obstacle.Heights[0] = 999
	if fresh := Default(); fresh.Obstacle.Heights[0] != 40 {
		t.Error("preset heights slice is shared between calls")
	}
}

func TestPresetUnknown(t *testing.T) {
	if _, err := Preset("hard"); !errors.Is(err, ErrInvalid) {
		t.Errorf("Preset(hard) error = %v, want ErrInvalid", err)
	}
}

func TestParseOverlaysPreset(t *testing.T) {
	data := []byte(`
variant: arcade
seed: 42
physics:
  jump_velocity: 18
  tick: 25ms
obstacle:
  policy: interval
  respawn_interval: 2500ms
score:
  divisor: 5
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Variant != "arcade" || cfg.Seed != 42 {
		t.Errorf("variant/seed = %q/%d", cfg.Variant, cfg.Seed)
	}
	if cfg.Physics.JumpVelocity != 18 || cfg.Physics.Tick != 25*time.Millisecond {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	// Untouched preset values survive the overlay
	if cfg.Physics.Gravity != 1 || cfg.Obstacle.Width != 40 {
		t.Errorf("preset values lost: gravity=%v width=%v", cfg.Physics.Gravity, cfg.Obstacle.Width)
	}
	if cfg.Obstacle.Policy != PolicyInterval || cfg.Obstacle.RespawnInterval != 2500*time.Millisecond {
		t.Errorf("obstacle = %+v", cfg.Obstacle)
	}
	if cfg.Score.Divisor != 5 {
		t.Errorf("divisor = %d, want 5", cfg.Score.Divisor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestParseDefaultsToClassic(t *testing.T) {
	cfg, err := Parse([]byte("seed: 7\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "classic" {
		t.Errorf("Variant = %q, want classic", cfg.Variant)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("physics: [unclosed")); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := Parse([]byte("variant: nightmare\n")); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown variant error = %v, want ErrInvalid", err)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil || cfg.Variant != "classic" {
		t.Fatalf("Load(\"\") = %q, %v", cfg.Variant, err)
	}

	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("variant: original\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Obstacle.Policy != PolicyInterval {
		t.Errorf("policy = %q, want interval", cfg.Obstacle.Policy)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.toml")
	data := `variant = "arcade"
seed = 42

[obstacle]
policy = "interval"
respawn_interval = "2s"

[keys]
w = "jump"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != "arcade" || cfg.Seed != 42 {
		t.Errorf("variant/seed = %q/%d, want arcade/42", cfg.Variant, cfg.Seed)
	}
	if cfg.Obstacle.Policy != PolicyInterval || cfg.Obstacle.RespawnInterval != 2*time.Second {
		t.Errorf("obstacle = %+v", cfg.Obstacle)
	}
	// Fields the file leaves out keep the preset value
	if cfg.Obstacle.Width != 40 {
		t.Errorf("width = %v, want arcade 40", cfg.Obstacle.Width)
	}
	if cfg.Keys["w"] != "jump" {
		t.Errorf("keys = %v", cfg.Keys)
	}

	if _, err := ParseTOML([]byte("variant = \n")); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"VI_RUNNER_RESPAWN_POLICY": " Interval ",
		"VI_RUNNER_SEED":           "1234",
		"VI_RUNNER_AUDIO_ENABLED":  "false",
		"VI_RUNNER_MASTER_VOLUME":  "150",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnv(lookup)

	if cfg.Obstacle.Policy != PolicyInterval {
		t.Errorf("policy = %q", cfg.Obstacle.Policy)
	}
	if cfg.Seed != 1234 {
		t.Errorf("seed = %d", cfg.Seed)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}
	if cfg.Audio.MasterVolume != 1 {
		t.Errorf("master volume = %v, want clamp to 1", cfg.Audio.MasterVolume)
	}

	env = map[string]string{"VI_RUNNER_SEED": "not-a-number", "VI_RUNNER_MASTER_VOLUME": "x"}
	cfg = Default()
	cfg.ApplyEnv(lookup)
	if cfg.Seed != 0 || cfg.Audio.MasterVolume != 0.5 {
		t.Errorf("malformed env changed config: seed=%d vol=%v", cfg.Seed, cfg.Audio.MasterVolume)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero physics tick", func(c *Config) { c.Physics.Tick = 0 }},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"no jumps", func(c *Config) { c.Physics.MaxJumps = 0 }},
		{"ground above field", func(c *Config) { c.Physics.GroundLevel = c.Field.Height }},
		{"unknown policy", func(c *Config) { c.Obstacle.Policy = "random" }},
		{"interval without period", func(c *Config) {
			c.Obstacle.Policy = PolicyInterval
			c.Obstacle.RespawnInterval = 0
		}},
		{"inverted height range", func(c *Config) {
			c.Obstacle.Heights = nil
			c.Obstacle.HeightMin, c.Obstacle.HeightMax = 100, 50
		}},
		{"negative discrete height", func(c *Config) { c.Obstacle.Heights = []float64{40, -1} }},
		{"inverted duration range", func(c *Config) { c.Obstacle.DurationMin = 5 * time.Second }},
		{"zero divisor", func(c *Config) { c.Score.Divisor = 0 }},
		{"zero score tick", func(c *Config) { c.Score.Tick = 0 }},
		{"volume out of range", func(c *Config) { c.Audio.MasterVolume = 2 }},
		{"zero frame interval", func(c *Config) { c.FrameInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}
