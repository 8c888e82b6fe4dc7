// Command heartburst plays a fireworks love note in the terminal
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/heartburst/audio"
	"github.com/lixenwraith/heartburst/config"
	"github.com/lixenwraith/heartburst/core"
	"github.com/lixenwraith/heartburst/engine"
)

var (
	configFlag  = flag.String("config", "", "Path to a heartburst.toml file")
	debugFlag   = flag.Bool("debug", false, "Write a debug log to logs/heartburst.log")
	muteFlag    = flag.Bool("mute", false, "Start with sound muted")
	seedFlag    = flag.Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	fpsFlag     = flag.Int("fps", 0, "Frames per second (overrides the config)")
	messageFlag = flag.String("message", "", "Message carried by the main rocket (overrides the config)")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "heartburst: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "heartburst: %v\n", err)
		os.Exit(1)
	}
	printFarewell(os.Stdout, cfg.FinalLines)
}

// loadConfig reads the config file and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *messageFlag != "" {
		cfg.Message = *messageFlag
	}
	if *fpsFlag != 0 {
		cfg.Display.FPS = *fpsFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.RegisterTerminal(screen)
	defer func() {
		core.RegisterTerminal(nil)
		screen.Fini()
	}()
	screen.HideCursor()

	player := audio.Open(cfg.Audio.Enabled, cfg.Audio.Volume, *muteFlag)
	defer player.Close()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("heartburst: seed %d, %d fps, dot %d", seed, cfg.Display.FPS, cfg.Display.DotSize)

	a, err := newApp(screen, cfg, player, engine.NewPausableClock(), seed)
	if err != nil {
		return err
	}
	defer a.close()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	stop := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)
	core.Go(func() {
		if _, ok := <-sigCh; ok {
			close(stop)
		}
	})

	a.run(cfg.Display.FPS, events, stop)
	return nil
}
