package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/input"
	"github.com/lixenwraith/vi-runner/render/tui"
	"github.com/lixenwraith/vi-runner/service"
)

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	variantFlag = flag.String("variant", "", "Preset name: classic, original, arcade")
	seedFlag    = flag.Uint64("seed", 0, "Obstacle RNG seed, 0 picks one from the clock")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/vi-runner.log and show the debug overlay")
	muteFlag    = flag.Bool("mute", false, "Start with sound effects muted")
)

func main() {
	// Panics on the main goroutine restore the terminal first
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Resolve(*configFlag, config.Overrides{
		Variant: *variantFlag,
		Seed:    *seedFlag,
		Mute:    *muteFlag,
	}, os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	if logFile := core.SetupLogging(*debugFlag, core.LogDir, "vi-runner.log"); logFile != nil {
		defer logFile.Close()
	}

	keys := input.DefaultKeyTable()
	if err := keys.ApplyBindings(cfg.Keys); err != nil {
		fmt.Fprintf(os.Stderr, "keys: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg, keys); err != nil {
		fmt.Fprintf(os.Stderr, "vi-runner: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, keys *input.KeyTable) error {
	rt, err := service.NewRuntime(cfg, service.Options{})
	if err != nil {
		return err
	}
	if err := rt.Start(); err != nil {
		return fmt.Errorf("start services: %w", err)
	}
	defer rt.Stop()

	app, err := tui.New(tui.Options{
		Session:       rt.Session,
		Sim:           rt.Sim,
		Frames:        rt.Frames,
		Router:        rt.Router,
		Keys:          keys,
		Sound:         rt.Sound,
		Status:        rt.Status,
		FrameInterval: cfg.FrameInterval,
		Debug:         *debugFlag,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("vi-runner starting: variant %s, seed %d", cfg.Variant, cfg.Seed)
	return app.Run(ctx)
}
