package config

import (
	"fmt"
	"os"
)

// Overrides are the command-line layer, applied last
type Overrides struct {
	Variant string // Preset name, exclusive with a config file
	Seed    uint64 // 0 keeps the lower layers' seed
	Mute    bool
}

// Resolve layers preset or file, environment and flags, then validates
func Resolve(path string, flags Overrides, lookup func(string) (string, bool)) (Config, error) {
	var (
		cfg Config
		err error
	)
	switch {
	case path != "" && flags.Variant != "":
		return Config{}, fmt.Errorf("%w: -variant and -config are exclusive, set variant in the file", ErrInvalid)
	case path != "":
		cfg, err = Load(path)
	case flags.Variant != "":
		cfg, err = Preset(flags.Variant)
	default:
		cfg = Default()
	}
	if err != nil {
		return Config{}, err
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg.ApplyEnv(lookup)

	if flags.Seed != 0 {
		cfg.Seed = flags.Seed
	}
	if flags.Mute {
		cfg.Audio.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
