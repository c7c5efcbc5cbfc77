package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/checker-snake/internal/core"
	"github.com/vovakirdan/checker-snake/internal/games/snake"
)

// Options configures a terminal game.
type Options struct {
	Theme  snake.Theme
	Keys   KeyMap
	Logger *log.Logger
	Hold   time.Duration // Game-over display time; zero means core.GameOverHold
}

// DefaultOptions returns the default theme and keys with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Theme:  snake.DefaultTheme(),
		Keys:   DefaultKeyMap(),
		Logger: log.New(io.Discard),
	}
}

// Model is the Bubble Tea model for one game of snake.
type Model struct {
	state      *snake.State
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	help       help.Model
	inputFrame core.InputFrame
	status     snake.GameStatus
	quitting   bool
	finished   bool // Game-over display is done
}

var noticeStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 2)

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Hold <= 0 {
		opts.Hold = core.GameOverHold
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		state:      snake.New(cfg),
		screen:     core.NewScreen(core.BoardCols, core.BoardRows),
		config:     cfg,
		opts:       opts,
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.opts.Logger.Debug("game started", "seed", m.config.Seed, "direction", m.state.Snake().Direction())
	return tickCmd()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case holdDoneMsg:
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey queues directional input; quit keys act immediately in any state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.opts.Keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.opts.Logger.Info("quit", "score", m.status.Score, "ticks", m.state.Tick())
		return m, tea.Quit
	}

	if m.status.GameOver {
		return m, nil
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.status.GameOver {
		return m, nil
	}

	// Hold the simulation while the board does not fit
	if m.TooSmall() {
		m.inputFrame.Clear()
		return m, tickCmd()
	}

	result := m.state.Step(m.inputFrame)
	m.status = result.Status
	m.inputFrame.Clear()

	if result.Ate {
		m.opts.Logger.Debug("food eaten", "score", m.status.Score, "food", m.state.Food().Position())
	}
	if result.Died {
		snap := m.state.Snapshot()
		m.opts.Logger.Info("game over", "score", snap.Score, "length", snap.Length, "ticks", snap.Tick)
		m.opts.Logger.Debug("final state", "state", m.state.DebugState())
		return m, holdCmd(m.opts.Hold)
	}

	return m, tickCmd()
}

// TooSmall reports whether the terminal cannot fit the board and help line.
// An unknown size (no WindowSizeMsg yet) is not considered too small.
func (m Model) TooSmall() bool {
	if m.config.ScreenW == 0 && m.config.ScreenH == 0 {
		return false
	}
	return m.config.ScreenW < core.BoardCols || m.config.ScreenH < core.BoardRows+1
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.TooSmall() {
		notice := noticeStyle.Render(fmt.Sprintf("Terminal too small\nNeed %dx%d, have %dx%d",
			core.BoardCols, core.BoardRows+1, m.config.ScreenW, m.config.ScreenH))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, notice)
	}

	m.screen.Clear()
	snake.Render(core.NewScreenCanvas(m.screen, 0, 0), m.state, m.opts.Theme)

	content := lipgloss.JoinVertical(lipgloss.Center,
		RenderScreen(m.screen),
		m.help.View(m.opts.Keys),
	)
	if m.config.ScreenW == 0 || m.config.ScreenH == 0 {
		return content
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
}

// Status returns the last game status.
func (m Model) Status() snake.GameStatus {
	return m.status
}

// IsQuitting returns true if the player pressed a quit key.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Finished returns true once the game-over screen has been shown.
func (m Model) Finished() bool {
	return m.finished
}

// Run starts a Bubble Tea program for one game and blocks until it exits.
// It returns the final game status.
func Run(cfg core.RuntimeConfig, opts Options, progOpts ...tea.ProgramOption) (snake.GameStatus, error) {
	model := NewModel(cfg, opts)

	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	p := tea.NewProgram(model, progOpts...)

	final, err := p.Run()
	if err != nil {
		return snake.GameStatus{}, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Status(), nil
	}
	return model.Status(), nil
}
