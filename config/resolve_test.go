package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func noEnv(string) (string, bool) { return "", false }

func TestResolveLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runner.yaml")
	data := []byte("variant: arcade\nseed: 5\nscore:\n  divisor: 5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	env := map[string]string{"VI_RUNNER_SEED": "9", "VI_RUNNER_RESPAWN_POLICY": "interval"}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	cfg, err := Resolve(path, Overrides{}, lookup)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Variant != "arcade" || cfg.Score.Divisor != 5 {
		t.Errorf("file layer lost: variant %q divisor %d", cfg.Variant, cfg.Score.Divisor)
	}
	if cfg.Seed != 9 || cfg.Obstacle.Policy != PolicyInterval {
		t.Errorf("env layer lost: seed %d policy %q", cfg.Seed, cfg.Obstacle.Policy)
	}

	cfg, err = Resolve(path, Overrides{Seed: 11, Mute: true}, lookup)
	if err != nil {
		t.Fatalf("Resolve with flags: %v", err)
	}
	if cfg.Seed != 11 || cfg.Audio.Enabled {
		t.Errorf("flag layer lost: seed %d audio %v", cfg.Seed, cfg.Audio.Enabled)
	}
}

func TestResolveVariantFlag(t *testing.T) {
	cfg, err := Resolve("", Overrides{Variant: "original"}, noEnv)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if cfg.Obstacle.Policy != PolicyInterval {
		t.Errorf("policy = %q", cfg.Obstacle.Policy)
	}

	if _, err := Resolve("", Overrides{Variant: "turbo"}, noEnv); !errors.Is(err, ErrInvalid) {
		t.Errorf("unknown variant err = %v", err)
	}
	if _, err := Resolve("x.yaml", Overrides{Variant: "classic"}, noEnv); !errors.Is(err, ErrInvalid) {
		t.Errorf("exclusive flags err = %v", err)
	}
}

func TestResolveRejectsBadEnv(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "VI_RUNNER_RESPAWN_POLICY" {
			return "whenever", true
		}
		return "", false
	}
	if _, err := Resolve("", Overrides{}, lookup); !errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want ErrInvalid", err)
	}
}
