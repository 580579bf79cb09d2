package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bouncer/internal/audio"
	"github.com/vovakirdan/tui-bouncer/internal/config"
	"github.com/vovakirdan/tui-bouncer/internal/core"
	"github.com/vovakirdan/tui-bouncer/internal/engine"
	"github.com/vovakirdan/tui-bouncer/internal/storage"
)

// spinDuration is how many ticks the RotateBall animation runs.
const spinDuration = 12

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	bestStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	promptBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3)
)

// Model is the Bubble Tea model driving the bouncer engine. It owns the
// collaborators (storage, audio) and only ever reads engine snapshots.
type Model struct {
	eng     *engine.Engine
	gameCfg config.BouncerConfig
	runtime core.RuntimeConfig

	screen *core.Screen
	store  *storage.Store
	sound  *audio.Player

	keys      KeyMap
	help      help.Model
	nameInput textinput.Model

	snap       engine.Snapshot
	best       *storage.HighScore
	scoreSaved bool
	newHigh    bool
	spinTicks  int

	showScores bool
	scoreboard scoreboardView

	quitting bool
}

// NewModel creates the Bubble Tea model. A nil store disables persistence
// (name entry still runs, nothing is saved); a nil sound disables audio.
func NewModel(store *storage.Store, sound *audio.Player, runtime core.RuntimeConfig, gameCfg config.BouncerConfig) Model {
	// Use time-based seed if not specified
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	eng := engine.New(gameCfg, runtime.Seed)

	var best *storage.HighScore
	if store != nil {
		// Best-effort reads: a broken database must not block the game.
		if name, err := store.PlayerName(); err == nil && name != "" {
			eng.SetPlayerName(name)
		}
		if b, err := store.Best(); err == nil {
			best = b
		}
	}

	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 16
	input.Width = 20
	input.Focus()

	return Model{
		eng:       eng,
		gameCfg:   gameCfg,
		runtime:   runtime,
		screen:    core.NewScreen(runtime.ScreenW, core.Max(runtime.ScreenH-1, 1)),
		store:     store,
		sound:     sound,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		nameInput: input,
		best:      best,
		snap:      eng.Snapshot(),
	}
}

// Init starts the tick loop and the name input cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(m.runtime.TickRate))
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

// handleKey processes keyboard input per phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.eng.Phase() {
	case engine.PhaseNameEntry:
		return m.handleNameEntryKey(msg)
	case engine.PhaseMenu:
		return m.handleMenuKey(msg)
	case engine.PhasePlaying:
		return m.handlePlayingKey(msg)
	case engine.PhaseGameOver:
		return m.handleGameOverKey(msg)
	}

	return m, nil
}

// handleNameEntryKey drives the name input. Names shorter than the minimum
// never reach the engine.
func (m Model) handleNameEntryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if len(name) < config.MinNameLength {
			return m, nil
		}
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SavePlayerName(name)
		}
		m.eng.SetPlayerName(name)
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// handleMenuKey handles the menu and the scoreboard overlay.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		switch msg.String() {
		case "esc", "b", "q":
			m.showScores = false
		default:
			m.scoreboard.Update(msg)
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "enter", " ":
		m.startGame()
	case "s", "tab":
		m.openScoreboard()
	}
	return m, nil
}

// handlePlayingKey maps keys to jump commands, one jump per key press.
func (m Model) handlePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "left", "a":
		m.eng.Jump(engine.DirLeft)
	case "right", "d":
		m.eng.Jump(engine.DirRight)
	case " ", "up", "w":
		m.eng.Jump(engine.DirNone)
	}
	return m, nil
}

// handleGameOverKey handles replay and menu dismissal.
func (m Model) handleGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		m.startGame()
	case "esc", "m":
		m.eng.Dismiss()
	}
	return m, nil
}

// handleMouse maps a click column to a directed jump while playing.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.eng.Phase() != engine.PhasePlaying {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	dir := DirectionForTap(msg.X, m.runtime.ScreenW, m.gameCfg.World.Width)
	m.eng.Jump(dir)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the engine one step and dispatches its events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.eng.Tick()
	m.snap = res.Snapshot

	for _, ev := range res.Events {
		if m.sound != nil {
			m.sound.Handle(ev)
		}

		switch ev.Kind {
		case engine.EventRotateBall:
			m.spinTicks = spinDuration
		case engine.EventGameOver:
			m.saveScore(ev.FinalScore)
		}
	}

	if m.spinTicks > 0 {
		m.spinTicks--
	}

	return m, tickCmd(m.runtime.TickRate)
}

// startGame begins a new session from the menu or game-over screen.
func (m *Model) startGame() {
	m.eng.Reset()
	m.snap = m.eng.Snapshot()
	m.scoreSaved = false
	m.newHigh = false
	m.spinTicks = 0
}

// saveScore persists the final score once per session. A failed write is
// ignored; the game-over transition never depends on storage.
func (m *Model) saveScore(finalScore int) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || finalScore <= 0 {
		return
	}

	newHigh, err := m.store.SubmitScore(m.eng.PlayerName(), finalScore)
	if err != nil {
		return
	}
	m.newHigh = newHigh
	if b, err := m.store.Best(); err == nil {
		m.best = b
	}
}

// openScoreboard loads the score table for the menu overlay.
func (m *Model) openScoreboard() {
	if m.store == nil {
		return
	}
	sb, err := newScoreboardView(m.store, m.runtime.ScreenW, m.runtime.ScreenH)
	if err != nil {
		return
	}
	m.scoreboard = sb
	m.showScores = true
}

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.eng.Phase() {
	case engine.PhaseNameEntry:
		return m.viewNameEntry()
	case engine.PhaseMenu:
		if m.showScores {
			return m.scoreboard.View()
		}
		return m.viewMenu()
	default:
		return m.viewWorld()
	}
}

// viewNameEntry renders the first-session name prompt.
func (m Model) viewNameEntry() string {
	prompt := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("BOUNCER"),
		"",
		"Enter your name:",
		m.nameInput.View(),
		"",
		subtleStyle.Render(fmt.Sprintf("at least %d characters · enter to confirm · esc to quit", config.MinNameLength)),
	)

	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH,
		lipgloss.Center, lipgloss.Center,
		promptBoxStyle.Render(prompt),
	)
}

// viewMenu renders the menu with the persisted high score.
func (m Model) viewMenu() string {
	best := subtleStyle.Render("no high score yet")
	if m.best != nil {
		best = bestStyle.Render(fmt.Sprintf("Best: %d by %s", m.best.Score, m.best.PlayerName))
	}

	menu := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("BOUNCER"),
		subtleStyle.Render("break boxes · dodge the triangles · don't touch the ground"),
		"",
		fmt.Sprintf("player: %s", m.eng.PlayerName()),
		best,
		"",
		"enter · play",
		"s · scores",
		"q · quit",
	)

	return lipgloss.Place(m.runtime.ScreenW, m.runtime.ScreenH,
		lipgloss.Center, lipgloss.Center,
		promptBoxStyle.Render(menu),
	)
}

// viewWorld renders the playing field, with the game-over overlay on top
// when the session has ended.
func (m Model) viewWorld() string {
	drawWorld(m.screen, m.snap, m.gameCfg.World, m.spinTicks)

	if m.eng.Phase() == engine.PhaseGameOver {
		title := "GAME OVER"
		if m.newHigh {
			title = "NEW HIGH SCORE"
		}
		subtitle := fmt.Sprintf("Score: %d  |  r replay · m menu · q quit", m.snap.Score)
		drawCenteredMessage(m.screen, title, subtitle)
	}

	// One terminal row below the world is reserved for the help line.
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(store *storage.Store, sound *audio.Player, runtime core.RuntimeConfig, gameCfg config.BouncerConfig) error {
	model := NewModel(store, sound, runtime, gameCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Tap-to-jump support
	)

	_, err := p.Run()
	return err
}
