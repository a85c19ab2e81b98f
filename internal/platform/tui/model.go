package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ringflip/internal/audio"
	"github.com/vovakirdan/ringflip/internal/config"
	"github.com/vovakirdan/ringflip/internal/core"
	"github.com/vovakirdan/ringflip/internal/ledger"
	"github.com/vovakirdan/ringflip/internal/logging"
	"github.com/vovakirdan/ringflip/internal/registry"
	"github.com/vovakirdan/ringflip/internal/storage"
)

// Env bundles the collaborators a terminal session needs besides the game.
type Env struct {
	Store  *storage.Store // nil disables run history
	Ledger *ledger.Ledger // read by the scoreboard
	Sound  *audio.Manager // nil is silent
	Logger *log.Logger
}

// leveled is implemented by games that run at a selectable difficulty.
type leveled interface {
	Difficulty() config.DifficultyLevel
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	env        Env
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // run history written for the current game over
	openScores bool // scoreboard requested from the home or game over panel
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, env Env, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		env:        env,
		logger:     logging.OrNop(env.Logger),
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if a := m.keys.MapMouse(msg); a != core.ActionNone {
			m.inputFrame.Set(a)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "tab":
		if !m.gameState.Active {
			m.openScores = true
		}
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize only changes the viewport. The world is sized in world
// units, so a run in progress carries on at the new scale.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.env.Sound.PlayAll(result.Events)

	if m.gameState.GameOver {
		if !m.scoreSaved {
			m.saveScore()
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore appends the finished run to the history table. Best scores are
// tracked by the game's own ledger; this is the per-run log.
func (m Model) saveScore() {
	if m.env.Store == nil {
		return
	}
	lv, ok := m.game.(leveled)
	if !ok {
		return
	}
	if _, err := m.env.Store.SaveScore(lv.Difficulty(), m.gameState.Score); err != nil {
		m.logger.Warn("cannot save run", "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".ringflip", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting reports whether the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// SessionModel switches between the game and the scoreboard. It is the
// top-level model for both local and SSH play.
type SessionModel struct {
	game    Model
	board   ScoreboardModel
	inBoard bool
	env     Env
	width   int
	height  int
}

// NewSessionModel creates a session starting on the game's home panel.
func NewSessionModel(game registry.Game, env Env, cfg core.RuntimeConfig) SessionModel {
	return SessionModel{
		game:   NewModel(game, env, cfg),
		env:    env,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
		next, _ := m.game.Update(wsm)
		m.game = next.(Model)
		if m.inBoard {
			board, _ := m.board.Update(wsm)
			m.board = board.(ScoreboardModel)
		}
		return m, nil
	}

	if m.inBoard {
		return m.updateBoard(msg)
	}

	next, cmd := m.game.Update(msg)
	m.game = next.(Model)
	if m.game.openScores {
		m.game.openScores = false
		m.board = NewScoreboardModel(m.env, m.currentLevel(), m.width, m.height)
		m.inBoard = true
	}
	return m, cmd
}

// updateBoard handles the scoreboard. Ticks keep their loop alive without
// stepping the game, which is idle on the home or game over panel.
func (m SessionModel) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		return m, tickCmd(m.game.config.TickRate)
	}

	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.inBoard = false
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) currentLevel() config.DifficultyLevel {
	if lv, ok := m.game.game.(leveled); ok {
		return lv.Difficulty()
	}
	return config.Medium
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.inBoard {
		return m.board.View()
	}
	return m.game.View()
}

// Run starts the Bubble Tea program for a local game.
func Run(game registry.Game, env Env, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewSessionModel(game, env, cfg),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
