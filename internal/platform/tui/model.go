package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-shooter/internal/audio"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/registry"
)

// helpRows is the number of terminal rows taken by the help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures the game screen.
type Options struct {
	Runtime   core.RuntimeConfig
	HoldTicks int
	Player    audio.Player
	Logger    *log.Logger
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	clock     frameClock
	input     *HeldTracker
	player    audio.Player
	logger    *log.Logger
	keys      KeyMap
	help      help.Model
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	player := opts.Player
	if player == nil {
		player = audio.Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	cfg.ScreenH = max(cfg.ScreenH-helpRows, 1)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		clock:  newFrameClock(cfg.TickRate),
		input:  NewHeldTracker(opts.HoldTicks),
		player: player,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	// Start the tick loop
	return tickCmd(m.clock.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Debug("quit requested", "score", m.gameState.Score)
		return m, tea.Quit
	}
	m.input.Press(action)

	return m, nil
}

// handleMouse turns a primary-button press into a click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// world units, so a resize only changes how the frame is drawn.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.input.Next())
	m.gameState = result.State

	for _, e := range result.Events {
		if cue, ok := audio.CueFor(e); ok {
			m.player.Play(cue)
		}
	}

	if result.State.GameOver && !prev.GameOver {
		m.logger.Info("run ended", "kills", result.State.Score)
	}
	if result.State.Paused != prev.Paused {
		// Keys held when pausing would otherwise resume moving.
		m.input.Release()
	}

	// Sleep only what is left of this frame's budget
	return m, tickCmd(m.clock.Next(time.Now()))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tui-shooter", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the on-screen buttons
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
