package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-down/internal/audio"
	"github.com/vovakirdan/tui-down/internal/config"
	"github.com/vovakirdan/tui-down/internal/core"
	"github.com/vovakirdan/tui-down/internal/game"
	"github.com/vovakirdan/tui-down/internal/storage"
)

// Options configures a game session.
type Options struct {
	Config  config.DownConfig
	Runtime core.RuntimeConfig
	Player  string

	// Store is the shared ranking board. Nil keeps the ranking in the
	// session only.
	Store *storage.Store

	// Sink plays sound cues. Nil plays nothing.
	Sink audio.Sink

	Logger *log.Logger

	// Renderer styles output for a remote terminal. Nil uses stdout's.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one player's session.
type Model struct {
	opts       Options
	game       *game.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	held       heldKeys
	scoreboard Scoreboard
	styleOf    func(core.Color) lipgloss.Style

	last        time.Time
	width       int
	height      int
	retry       bool
	recorded    bool
	showRanking bool
	quitting    bool
}

// NewModel creates a session and its first game.
func NewModel(opts Options) Model {
	if opts.Sink == nil {
		opts.Sink = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Player == "" {
		opts.Player = "player"
	}
	if opts.Config == (config.DownConfig{}) {
		opts.Config = config.DefaultDownConfig()
	}
	if opts.Runtime.FPS <= 0 {
		opts.Runtime.FPS = core.DefaultConfig().FPS
	}

	m := Model{
		opts:       opts,
		screen:     core.NewScreen(game.ViewWidth, game.ViewHeight),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		held:       newHeldKeys(),
		scoreboard: NewScoreboard(opts.Store, opts.Runtime.ScreenH),
		width:      opts.Runtime.ScreenW,
		height:     opts.Runtime.ScreenH,
	}
	if opts.Renderer != nil {
		m.styleOf = sessionStyles(opts.Renderer)
	}
	m.game = m.newGame(nil)
	return m
}

// newGame builds the next game, carrying the ranking forward.
func (m Model) newGame(prev *game.Game) *game.Game {
	var ranking []int
	if prev != nil {
		ranking = prev.HighScores()
	}
	if m.opts.Store != nil {
		scores, err := m.opts.Store.Scores(m.opts.Config.Rules.HighScores)
		if err != nil {
			m.opts.Logger.Warn("could not load ranking", "err", err)
		} else {
			ranking = scores
		}
	}

	return game.New(
		game.WithConfig(m.opts.Config),
		game.WithSeed(m.opts.Runtime.Seed),
		game.WithLogger(m.opts.Logger),
		game.WithHighScores(ranking),
	)
}

// Init starts the background loop and the frame clock.
func (m Model) Init() tea.Cmd {
	m.opts.Sink.Music(audio.MusicPlay)
	return tickCmd(m.opts.Runtime.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.scoreboard.SetHeight(msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionLeft, core.ActionRight:
		m.held.press(action, time.Now())

	case core.ActionRestart:
		if m.game.IsOver() {
			m.retry = true
		}

	case core.ActionRanking:
		m.showRanking = !m.showRanking
		if m.showRanking {
			m.scoreboard.Refresh()
		}

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	default:
		if m.showRanking {
			var cmd tea.Cmd
			m.scoreboard.table, cmd = m.scoreboard.table.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// handleTick advances the game by the real time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.last, now)
	m.last = now

	retry := m.retry
	m.retry = false
	if retry && m.game.State().Finished && !m.opts.Sink.Busy() {
		m.restart()
		return m, tickCmd(m.opts.Runtime.FPS)
	}

	// The ranking covers the shaft, so the game holds still behind it.
	if m.showRanking {
		return m, tickCmd(m.opts.Runtime.FPS)
	}

	cmd := game.CommandFromInput(m.held.frame(now))
	m.game.Update(cmd, dt)
	m.flushAudio()

	if m.game.State().GameOver && !m.recorded {
		m.record()
	}

	return m, tickCmd(m.opts.Runtime.FPS)
}

// flushAudio hands the game's queued cues to the sink.
func (m Model) flushAudio() {
	for _, id := range m.game.DrainSounds() {
		m.opts.Sink.PlaySound(id)
	}
	for _, cmd := range m.game.DrainMusic() {
		m.opts.Sink.Music(cmd)
	}
}

// record saves the finished run to the ranking board once.
func (m *Model) record() {
	m.recorded = true
	if m.opts.Store == nil {
		return
	}

	run := storage.Run{
		Player:   m.opts.Player,
		Score:    m.game.Score(),
		Seed:     m.game.Seed(),
		Duration: m.game.Now(),
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.Logger.Warn("could not save run", "err", err)
		return
	}
	m.opts.Logger.Debug("run recorded", "player", run.Player, "score", run.Score)
	if m.showRanking {
		m.scoreboard.Refresh()
	}
}

func (m *Model) restart() {
	m.game = m.newGame(m.game)
	m.recorded = false
	m.held.release()
	m.opts.Sink.Music(audio.MusicPlay)
}

// Game returns the running game.
func (m Model) Game() *game.Game {
	return m.game
}

// View renders the field, the sidebar and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.width > 0 && m.height > 0 && (m.width < game.ViewWidth || m.height < game.ViewHeight+1) {
		return fmt.Sprintf(
			"Terminal too small: %dx%d, need at least %dx%d.\nResize or press q to quit.",
			m.width, m.height, game.ViewWidth, game.ViewHeight+1,
		)
	}

	var body string
	if m.showRanking {
		body = m.scoreboard.View()
	} else {
		m.game.Render(m.screen)
		if m.styleOf != nil {
			body = renderScreenWith(m.screen, m.styleOf)
		} else {
			body = RenderScreen(m.screen)
		}
	}

	helpStyle := m.newStyle().Foreground(lipgloss.Color("241"))
	footer := helpStyle.Render(m.help.View(m.keys))

	view := lipgloss.JoinVertical(lipgloss.Left, body, footer)
	if m.width > 0 && m.height > 0 {
		view = lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m Model) newStyle() lipgloss.Style {
	if m.opts.Renderer != nil {
		return m.opts.Renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// Run plays locally until the user quits.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

var _ help.KeyMap = KeyMap{}
