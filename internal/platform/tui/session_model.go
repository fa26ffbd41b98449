package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/missile-protector/internal/core"
	"github.com/vovakirdan/missile-protector/internal/registry"
	"github.com/vovakirdan/missile-protector/internal/session"
	"github.com/vovakirdan/missile-protector/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenDifficulty
	screenScoreboard
	screenGame
)

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Store      *storage.Store
	Config     core.RuntimeConfig
	ConfigPath string
	Username   string
	HoldTicks  int
	Handle     *session.Handle // Optional; updated with the current variant
	Logger     *log.Logger
}

// SessionModel manages a full remote session: menu, difficulty, game and
// scoreboard, all inside one program.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	screen     sessionScreen
	menu       MenuModel
	difficulty DifficultyModel
	scoreboard ScoreboardModel
	game       *Model
	gameID     string
	errMsg     string
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := SessionModel{
		opts:   opts,
		config: opts.Config,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	menu := NewMenuModel(m.opts.Store, m.config)
	menu.embedded = true
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenDifficulty:
		return m.updateDifficulty(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// Stale tick from a finished game
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scoreboard = NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard.embedded = true
		m.screen = screenScoreboard
		return m, nil

	case m.menu.Selected() != nil:
		sel := m.menu.Selected()
		m.gameID = sel.GameID
		m.difficulty = NewDifficultyModel(sel.Title, m.config.ScreenW, m.config.ScreenH)
		m.difficulty.embedded = true
		m.errMsg = ""
		m.screen = screenDifficulty
		return m, nil
	}

	return m, cmd
}

func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.difficulty.Update(msg)
	if dm, ok := newModel.(DifficultyModel); ok {
		m.difficulty = dm
	}

	if m.difficulty.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.difficulty.WantsBack() {
		return m.backToMenu()
	}

	preset, ok := m.difficulty.Selected()
	if !ok {
		return m, cmd
	}

	game, err := registry.CreateConfigured(m.gameID, m.opts.ConfigPath, string(preset))
	if err != nil {
		m.opts.Logger.Error("cannot start game", "game", m.gameID, "error", err)
		m, cmd = m.backToMenuModel()
		m.errMsg = err.Error()
		return m, cmd
	}

	model := NewModel(game, m.config, Options{
		Store:     m.opts.Store,
		Player:    m.opts.Username,
		HoldTicks: m.opts.HoldTicks,
		Logger:    m.opts.Logger,
		Embedded:  true,
	})
	m.game = &model
	m.screen = screenGame
	if m.opts.Handle != nil {
		m.opts.Handle.SetGame(m.gameID)
		m.opts.Handle.SetOnEnd(model.recorder.AbandonLast)
	}
	m.opts.Logger.Info("game started", "user", m.opts.Username, "game", m.gameID, "difficulty", preset)

	return m, m.game.Init()
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sm, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sm
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		if m.opts.Handle != nil {
			m.opts.Handle.SetGame("")
			m.opts.Handle.SetOnEnd(nil)
		}
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	return m.backToMenuModel()
}

func (m SessionModel) backToMenuModel() (SessionModel, tea.Cmd) {
	m.screen = screenMenu
	// Rebuild so best scores are fresh
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenDifficulty:
		return m.difficulty.View()
	case screenScoreboard:
		return m.scoreboard.View()
	case screenGame:
		if m.game != nil {
			return m.game.View()
		}
	}

	view := m.menu.View()
	if m.errMsg != "" {
		view += "\n" + centerText("Error: "+m.errMsg, m.config.ScreenW)
	}
	return view
}

// IsQuitting returns true once the player has left the session.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}
