package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/render/gui"
	"github.com/lixenwraith/vi-runner/service"
)

var (
	configFlag  = flag.String("config", "", "Path to a YAML config file")
	variantFlag = flag.String("variant", "", "Preset name: classic, original, arcade")
	seedFlag    = flag.Uint64("seed", 0, "Obstacle RNG seed, 0 picks one from the clock")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/vi-runner-gui.log and show the debug overlay")
	muteFlag    = flag.Bool("mute", false, "Start with sound effects muted")
)

func main() {
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

	if logFile := core.SetupLogging(*debugFlag, core.LogDir, "vi-runner-gui.log"); logFile != nil {
		defer logFile.Close()
	}

	rt, err := service.NewRuntime(cfg, service.Options{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-runner-gui: %v\n", err)
		os.Exit(1)
	}
	if err := rt.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start services: %v\n", err)
		os.Exit(1)
	}

	log.Printf("vi-runner-gui starting: variant %s", cfg.Variant)
	err = gui.New(gui.Options{
		Session: rt.Session,
		Sim:     rt.Sim,
		Frames:  rt.Frames,
		Router:  rt.Router,
		Sound:   rt.Sound,
		Status:  rt.Status,
		Debug:   *debugFlag,
	}).Run()
	rt.Stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-runner-gui: %v\n", err)
		os.Exit(1)
	}
}
