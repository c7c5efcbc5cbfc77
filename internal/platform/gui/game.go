// Package gui runs the game in a desktop window with Ebitengine.
package gui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/checker-snake/internal/core"
	"github.com/vovakirdan/checker-snake/internal/games/snake"
)

// Options configures the window frontend.
type Options struct {
	Title  string
	Theme  snake.Theme
	Keys   KeyMap
	Logger *log.Logger
	Hold   time.Duration // Game-over display time; zero means core.GameOverHold
}

// DefaultOptions returns the default window title, theme and keys.
func DefaultOptions() Options {
	return Options{
		Title:  "Snake",
		Theme:  snake.DefaultTheme(),
		Keys:   DefaultKeyMap(),
		Logger: log.New(io.Discard),
	}
}

// Game implements ebiten.Game for one game of snake.
type Game struct {
	state  *snake.State
	opts   Options
	fonts  *Fonts
	input  core.InputFrame
	keys   []ebiten.Key
	status snake.GameStatus
	pacer  *core.Pacer // Ebitengine updates at DefaultTPS
}

// NewGame creates a window game for a fresh state.
func NewGame(cfg core.RuntimeConfig, opts Options) (*Game, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Hold <= 0 {
		opts.Hold = core.GameOverHold
	}

	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("game started", "seed", cfg.Seed)
	return &Game{
		state: snake.New(cfg),
		opts:  opts,
		fonts: fonts,
		input: core.NewInputFrame(),
		pacer: core.NewPacer(ebiten.DefaultTPS, opts.Hold),
	}, nil
}

// Update collects key presses every frame and advances the game at TickRate.
func (g *Game) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		action := g.opts.Keys.Action(k, ctrl)
		if action == core.ActionQuit {
			g.opts.Logger.Info("quit", "score", g.status.Score, "ticks", g.state.Tick())
			return ebiten.Termination
		}
		if !g.pacer.Holding() {
			g.input.Set(action)
		}
	}

	switch g.pacer.Frame() {
	case core.PaceDone:
		return ebiten.Termination
	case core.PaceIdle:
		return nil
	}

	result := g.state.Step(g.input)
	g.status = result.Status
	g.input.Clear()

	if result.Ate {
		g.opts.Logger.Debug("food eaten", "score", g.status.Score, "food", g.state.Food().Position())
	}
	if result.Died {
		snap := g.state.Snapshot()
		g.opts.Logger.Info("game over", "score", snap.Score, "length", snap.Length, "ticks", snap.Tick)
		g.opts.Logger.Debug("final state", "state", g.state.DebugState())
		g.pacer.Hold()
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	snake.Render(NewCanvas(screen, g.fonts), g.state, g.opts.Theme)
}

// Layout fixes the logical screen to the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	return core.ScreenWidth, core.ScreenHeight
}

// Status returns the last game status.
func (g *Game) Status() snake.GameStatus {
	return g.status
}

// Run opens the window and blocks until the game ends or the window is
// closed. It returns the final game status.
func Run(cfg core.RuntimeConfig, opts Options) (snake.GameStatus, error) {
	g, err := NewGame(cfg, opts)
	if err != nil {
		return snake.GameStatus{}, err
	}

	ebiten.SetWindowSize(core.ScreenWidth, core.ScreenHeight)
	ebiten.SetWindowTitle(opts.Title)

	if err := ebiten.RunGame(g); err != nil {
		return g.Status(), fmt.Errorf("gui: %w", err)
	}
	return g.Status(), nil
}
