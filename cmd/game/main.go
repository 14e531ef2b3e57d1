// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/clock"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/event"
	"go-arena-survival/internal/sound"
	"go-arena-survival/internal/state"
	"go-arena-survival/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	a.stateMachine.Update()
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "tuning file (yaml, toml or json)")
	seed := flag.Int64("seed", 0, "map and combat seed, 0 picks one from the clock")
	profile := flag.String("profile", "", "obstacle profile: sparse, forest or open (default random)")
	skipMenu := flag.Bool("skip-menu", false, "start straight in the arena")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	tuning, err := config.LoadTuning(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		tuning.Seed = *seed
	}
	if *profile != "" {
		tuning.Profile = *profile
	}

	rng := utils.NewPRNGService(tuning.Seed)
	log.Printf("seed %d", rng.Seed())

	dispatcher := event.NewDispatcher()
	player := sound.NewPlayer()
	if err := player.Initialize(); err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		player.Subscribe(dispatcher)
		defer player.Cleanup()
	}

	game, err := app.NewGame(tuning, rng, dispatcher, log.Default())
	if err != nil {
		log.Fatal(err)
	}

	session := &state.Session{
		Game:  game,
		Clock: clock.NewPausable(clock.NewMonotonic()),
		Sound: player,
	}
	sm := state.NewStateMachine() // Создаём машину состояний
	if *skipMenu {
		sm.SetState(state.NewGameState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Arena Survival")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		log.Fatal(err)
	}
}
