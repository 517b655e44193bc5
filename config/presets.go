package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/lixenwraith/vi-runner/parameter"
)

// Presets lists the variant names accepted by Preset
func Presets() []string {
	return []string{"arcade", "classic", "original"}
}

// Preset returns the named variant
//
//   - classic: discrete heights {40,60}, width 20, 1.5s-4.0s traversal, 100ms score tick, completion respawn
//   - original: classic with the fixed 3000ms interval respawn
//   - arcade: continuous heights [50,100], width 40, 1.0s-2.5s traversal, 50ms score tick
func Preset(name string) (Config, error) {
	cfg := baseline()
	cfg.Variant = name

	switch name {
	case "classic":
		cfg.Obstacle.Heights = slices.Clone(parameter.ObstacleHeights)
	case "original":
		cfg.Obstacle.Heights = slices.Clone(parameter.ObstacleHeights)
		cfg.Obstacle.Policy = PolicyInterval
	case "arcade":
		cfg.Obstacle.Heights = nil
		cfg.Obstacle.Width = 40
		cfg.Obstacle.DurationMin = 1000 * time.Millisecond
		cfg.Obstacle.DurationMax = 2500 * time.Millisecond
		cfg.Score.Tick = 50 * time.Millisecond
		cfg.Physics.PinOnStart = true
	default:
		return Config{}, fmt.Errorf("%w: unknown variant %q", ErrInvalid, name)
	}
	return cfg, nil
}
