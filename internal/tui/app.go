// internal/tui/app.go
package tui

import (
	"context"
	"fmt"
	"math"
	"time"

	"go-arena-survival/internal/app"
	"go-arena-survival/internal/clock"
	"go-arena-survival/internal/component"
	"go-arena-survival/internal/sound"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// App — терминальный фронтенд. Один цикл Run владеет и вводом, и тиками,
// так что второй цепочки тиков не бывает.
type App struct {
	screen tcell.Screen
	game   *app.Game
	clock  *clock.Pausable
	Sound  *sound.Player // optional, toggled with m

	keys      heldKeys
	fireUntil time.Duration
	mouseDown bool
	autoAim   bool // keyboard fire aims at the nearest enemy
	pointerX  float64
	pointerY  float64
	restart   bool
	quit      bool

	frame     *Frame
	drawables []component.Drawable
}

// NewApp creates the terminal frontend. The screen must already be
// initialised; a round is started if the game has none yet.
func NewApp(screen tcell.Screen, game *app.Game, c *clock.Pausable) *App {
	cols, rows := GridSize()
	a := &App{
		screen: screen,
		game:   game,
		clock:  c,
		keys:   newHeldKeys(defaultHoldWindow),
		frame:  NewFrame(cols, rows+hudRows),
	}
	if game.World == nil {
		game.Reset(c.Now())
	}
	screen.EnableMouse()
	screen.HideCursor()
	return a
}

// Frame returns the last rendered frame.
func (a *App) Frame() *Frame {
	return a.frame
}

// Quit reports whether the user asked to leave.
func (a *App) Quit() bool {
	return a.quit
}

// HandleEvent applies one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.handleMouse(x, y, ev.Buttons())
	case *tcell.EventResize:
		a.screen.Sync()
	}
}

func (a *App) handleKey(key tcell.Key, r rune) {
	now := a.clock.Now()
	terminal := a.game.World.Phase.Terminal()

	switch key {
	case tcell.KeyCtrlC:
		a.quit = true
		return
	case tcell.KeyEscape:
		a.togglePause()
		return
	case tcell.KeyEnter:
		a.restart = terminal
		return
	case tcell.KeyLeft:
		a.keys.press(dirLeft, now)
		return
	case tcell.KeyRight:
		a.keys.press(dirRight, now)
		return
	case tcell.KeyUp:
		a.keys.press(dirUp, now)
		return
	case tcell.KeyDown:
		a.keys.press(dirDown, now)
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r {
	case 'q':
		a.quit = true
	case 'p':
		a.togglePause()
	case 'm':
		if a.Sound != nil {
			a.Sound.SetMuted(!a.Sound.Muted())
		}
	case 'r':
		a.restart = terminal
	case ' ':
		if terminal {
			a.restart = true
			return
		}
		a.fireUntil = now + defaultHoldWindow
		a.autoAim = true
	case 'a', 'h':
		a.keys.press(dirLeft, now)
	case 'd', 'l':
		a.keys.press(dirRight, now)
	case 'w', 'k':
		a.keys.press(dirUp, now)
	case 's', 'j':
		a.keys.press(dirDown, now)
	}
}

func (a *App) handleMouse(x, y int, buttons tcell.ButtonMask) {
	a.pointerX, a.pointerY = CellToPixel(x, y-hudRows)
	a.mouseDown = buttons&tcell.Button1 != 0
	a.autoAim = false
}

func (a *App) togglePause() {
	if a.clock.IsPaused() {
		a.clock.Resume()
		return
	}
	if a.game.World.Phase == component.PhasePlaying {
		a.clock.Pause()
		a.keys.releaseAll()
		a.mouseDown = false
	}
}

// Step runs one tick, or a restart when one is pending, then redraws.
func (a *App) Step() {
	now := a.clock.Now()
	switch {
	case a.clock.IsPaused():
	case a.restart && a.game.World.Phase.Terminal():
		a.game.Reset(now)
	default:
		a.game.Tick(now, a.input(now))
	}
	a.restart = false
	a.Render(now)
}

func (a *App) input(now time.Duration) component.Input {
	in := component.Input{
		Left:     a.keys.held(dirLeft, now),
		Right:    a.keys.held(dirRight, now),
		Up:       a.keys.held(dirUp, now),
		Down:     a.keys.held(dirDown, now),
		PointerX: a.pointerX,
		PointerY: a.pointerY,
		Firing:   a.mouseDown || now < a.fireUntil,
	}
	if a.autoAim {
		if x, y, ok := nearestEnemy(a.game); ok {
			in.PointerX, in.PointerY = x, y
		}
	}
	return in
}

// nearestEnemy returns the centre of the enemy closest to the player.
func nearestEnemy(g *app.Game) (float64, float64, bool) {
	w := g.World
	px, py := w.Player.Rect.Center()
	best := math.Inf(1)
	var bx, by float64
	for i := range w.Enemies {
		ex, ey := w.Enemies[i].Rect.Center()
		if d := math.Hypot(ex-px, ey-py); d < best {
			best, bx, by = d, ex, ey
		}
	}
	return bx, by, !math.IsInf(best, 1)
}

// Render draws the current round into the frame and shows it.
func (a *App) Render(now time.Duration) {
	f := a.frame
	f.Clear()

	a.drawables = a.game.AppendDrawables(a.drawables[:0])
	for row := hudRows; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			f.Set(col, row, ' ', backgroundStyle)
		}
	}
	for _, d := range a.drawables {
		r, style := Glyph(d)
		c0, r0, c1, r1 := cellSpan(d.Rect)
		for row := r0; row <= r1; row++ {
			for col := c0; col <= c1; col++ {
				f.Set(col, row+hudRows, r, style)
			}
		}
	}

	snap := a.game.Snapshot(now)
	a.drawHUD(snap)
	switch {
	case a.clock.IsPaused():
		a.drawBanner([]string{"PAUSED", "p / Esc to resume"}, "")
	case snap.Phase.Terminal():
		a.drawBanner([]string{
			app.Headline(snap.Phase),
			"Time: " + app.FormatElapsed(snap.Elapsed),
			fmt.Sprintf("Kills: %d", snap.Kills),
		}, "[ Restart: Enter ]")
	}

	f.Blit(a.screen)
	a.screen.Show()
}

func (a *App) drawHUD(s app.Snapshot) {
	a.frame.Text(1, 0, fmt.Sprintf("+ %d/%d", s.HP, s.MaxHP), hpStyle)
	status := fmt.Sprintf("%d/%d  %s  [%s]", s.Alive, s.Total, app.FormatElapsed(s.Elapsed), s.Profile)
	a.frame.Text(14, 0, status, hudStyle)
}

func (a *App) drawBanner(lines []string, button string) {
	f := a.frame
	row := f.Rows/2 - len(lines)
	for _, line := range lines {
		f.CenteredText(row, " "+line+" ", overlayStyle)
		row += 2
	}
	if button != "" {
		f.CenteredText(row+1, button, buttonStyle)
	}
}

// Run drives the frontend until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return // screen finalised
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			a.HandleEvent(ev)
			if a.quit {
				return nil
			}
		case <-ticker.C:
			a.Step()
		}
	}
}
