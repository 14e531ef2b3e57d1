// cmd/arena-tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/clock"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/sound"
	"go-arena-survival/internal/tui"
	"go-arena-survival/internal/utils"

	"github.com/gdamore/tcell/v2"
)

const (
	logDir      = "logs"
	logFileName = "arena-tui.log"
)

// setupLogging sends the standard logger to a file when debug is set and
// discards it otherwise, since the terminal belongs to the game.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

func main() {
	configPath := flag.String("config", "", "tuning file (yaml, toml or json)")
	seed := flag.Int64("seed", 0, "map and combat seed, 0 picks one from the clock")
	profile := flag.String("profile", "", "obstacle profile: sparse, forest or open (default random)")
	debug := flag.Bool("debug", false, "write a log to "+filepath.Join(logDir, logFileName))
	mute := flag.Bool("mute", false, "start with sound muted")
	flag.Parse()

	if logFile := setupLogging(*debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(*configPath, *seed, *profile, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "arena-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, profile string, mute bool) error {
	tuning, err := config.LoadTuning(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		tuning.Seed = seed
	}
	if profile != "" {
		tuning.Profile = profile
	}

	rng := utils.NewPRNGService(tuning.Seed)
	log.Printf("seed %d", rng.Seed())

	dispatcher := event.NewDispatcher()
	player := sound.NewPlayer()
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("audio initialization failed: %v", err)
	} else {
		player.Subscribe(dispatcher)
		defer player.Cleanup()
	}
	player.SetMuted(mute)

	game, err := app.NewGame(tuning, rng, dispatcher, log.Default())
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	frontend := tui.NewApp(screen, game, clock.NewPausable(clock.NewMonotonic()))
	frontend.Sound = player
	if err := frontend.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
