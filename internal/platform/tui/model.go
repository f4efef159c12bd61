package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cave-bat/internal/core"
)

// Game is the contract a playable game satisfies toward the platform.
type Game interface {
	Reset(core.RuntimeConfig)
	Step(in core.InputFrame, dt float64)
	Render(dst *core.Screen)
}

// maxFrameDt caps the simulation step after a stall (suspend, slow
// terminal), so the bat never teleports through an obstacle.
const maxFrameDt = 100 * time.Millisecond

// Model is the Bubble Tea model running one game session.
type Model struct {
	game   Game
	screen *core.Screen
	config core.RuntimeConfig

	inputFrame core.InputFrame
	keys       GameKeyMap
	help       help.Model

	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	game.Reset(cfg)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultGameKeyMap(),
		help:       h,
	}
}

// gameHeight reserves the bottom row for the help bar.
func gameHeight(screenH int) int {
	return core.Max(1, screenH-1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input onto the next input frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Flap):
		m.inputFrame.Set(core.ActionFlap)
	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
	case key.Matches(msg, m.keys.Restart):
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleResize adjusts the screen buffer. The simulation runs in fixed
// world units, so a resize only changes the projection, never the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	return m, nil
}

// handleTick advances the simulation by the wall-clock delta since the
// previous tick, clamped so stalls do not tunnel the bat.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(m.config.TickRate)
	if !m.lastTick.IsZero() {
		if elapsed := now.Sub(m.lastTick); elapsed > 0 {
			dt = elapsed
		}
	}
	if dt > maxFrameDt {
		dt = maxFrameDt
	}
	m.lastTick = now

	m.game.Step(m.inputFrame, dt.Seconds())
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(game Game, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(game, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
