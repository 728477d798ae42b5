package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"snake-arcade/audio"
	"snake-arcade/game"
	"snake-arcade/tui"
	"snake-arcade/ui"
)

const (
	frontendWindow   = "window"
	frontendTerminal = "terminal"
)

func main() {
	gridSize := flag.Int("grid", 20, "Grid dimension in cells")
	tile := flag.Int("tile", 20, "Tile size in pixels (window frontend)")
	speed := flag.Int("speed", 150, "Initial tick interval in milliseconds (lower = faster)")
	minSpeed := flag.Int("min-speed", 50, "Fastest tick interval in milliseconds")
	speedStep := flag.Int("speed-step", 5, "Tick interval decrease per target eaten, in milliseconds")
	seed := flag.Uint64("seed", 0, "Seed for target placement (0 = time based)")
	frontend := flag.String("frontend", frontendWindow, "Frontend: window or terminal")
	sound := flag.Bool("sound", true, "Play sound cues")
	debug := flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	cfg := configFromFlags(*gridSize, *speed, *minSpeed, *speedStep, *seed)
	g, err := game.NewGame(cfg)
	if err != nil {
		fatalf("Invalid configuration: %v", err)
	}

	loop := game.NewLoop(g, log.Default())

	if *sound {
		cues := audio.NewCues()
		if err := cues.Initialize(); err != nil {
			// Non-fatal, the game runs silent
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer cues.Cleanup()
			loop.AddListener(cues)
		}
	}

	switch *frontend {
	case frontendTerminal:
		err = runTerminal(loop)
	case frontendWindow:
		err = ui.Run(loop, int32(*tile), 60)
	default:
		log.Printf("Unknown frontend %q", *frontend)
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		// Only a tick on a finished session ends up here
		fatalf("Session %s: %v", g.UUID, err)
	}
	log.Printf("Session %s closed: score %d after %v", g.UUID, g.Score(), g.ElapsedTime().Round(time.Second))
}

// fatalf logs and also prints to stderr, since the log may be discarded
func fatalf(format string, args ...any) {
	log.Printf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// configFromFlags overlays command line values on the default session.
// The initial body and target stay at their classic cells, scaled to the
// grid when it is not 20 wide.
func configFromFlags(gridSize, speed, minSpeed, speedStep int, seed uint64) game.Config {
	cfg := game.DefaultConfig()
	if gridSize != cfg.GridSize && gridSize > 0 {
		head := cfg.InitialBody[0]
		cfg.InitialBody[0].X = head.X * gridSize / cfg.GridSize
		cfg.InitialBody[0].Y = head.Y * gridSize / cfg.GridSize
		cfg.InitialFood.X = cfg.InitialFood.X * gridSize / cfg.GridSize
		cfg.InitialFood.Y = cfg.InitialFood.Y * gridSize / cfg.GridSize
	}
	cfg.GridSize = gridSize
	cfg.Speed = time.Duration(speed) * time.Millisecond
	cfg.MinSpeed = time.Duration(minSpeed) * time.Millisecond
	cfg.SpeedStep = time.Duration(speedStep) * time.Millisecond
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	cfg.Seed = seed
	return cfg
}

func runTerminal(loop *game.Loop) error {
	screen, err := tui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Fini()
	return tui.Run(screen, loop)
}
