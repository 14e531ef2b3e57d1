// internal/state/game_state.go
package state

import (
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/config"
	"go-arena-survival/internal/ui"
	"go-arena-survival/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	session   *Session
	renderer  *render.ArenaRenderer
	hud       *ui.HUD
	overlay   *ui.EndOverlay
	face      font.Face
	drawables []component.Drawable
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	face := basicfont.Face7x13
	return &GameState{
		sm:       sm,
		session:  session,
		renderer: render.NewArenaRenderer(config.ScreenWidth, config.ScreenHeight),
		hud:      ui.NewHUD(face),
		overlay:  ui.NewEndOverlay(face),
		face:     face,
	}
}

func (g *GameState) Enter() {
	if g.session.Game.World == nil {
		g.session.Game.Reset(g.session.Clock.Now())
	}
}

func (g *GameState) Update() {
	game := g.session.Game
	playing := game.World.Phase == component.PhasePlaying

	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.session.Sound != nil {
		g.session.Sound.SetMuted(!g.session.Sound.Muted())
	}

	if playing && (inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || !ebiten.IsFocused()) {
		g.session.Clock.Pause()
		g.sm.SetState(NewPauseState(g.sm, g, g.session.Clock))
		return
	}

	now := g.session.Clock.Now()
	if !playing && g.restartRequested() {
		// the reset replaces the round inside this tick, so only one tick chain ever runs
		game.Reset(now)
		return
	}
	game.Tick(now, sampleInput())
}

func (g *GameState) restartRequested() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return g.overlay.Restart.IsHovered(ebiten.CursorPosition())
	}
	return false
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.session.Game
	g.drawables = game.AppendDrawables(g.drawables[:0])
	g.renderer.Draw(screen, g.drawables, game.RoundID)

	snap := game.Snapshot(g.session.Clock.Now())
	if snap.Phase == component.PhasePlaying {
		g.hud.Draw(screen, snap)
		return
	}
	g.overlay.Draw(screen, snap, g.overlay.Restart.IsHovered(ebiten.CursorPosition()))
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
