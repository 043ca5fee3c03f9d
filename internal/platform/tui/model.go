// Package tui provides the Bubble Tea integration for the roguelike.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-rogue/internal/components"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/game"
	"github.com/vovakirdan/tui-rogue/internal/storage"
)

// Model is the Bubble Tea model for playing a roguelike session.
// The game is turn-based: there is no tick loop, the world only
// advances when a key arrives.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	store    *storage.Store
	keys     *KeyMapper
	width    int
	height   int
	status   string
	quitting bool
	runSaved bool // whether the run has been recorded for this termination
}

// NewModel creates a new Bubble Tea model around a prepared session.
// The session must already have its first level set up.
func NewModel(session *game.Session, store *storage.Store, width, height int) Model {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}
	return Model{
		session: session,
		screen:  core.NewScreen(width, height),
		store:   store,
		keys:    NewKeyMapper(),
		width:   width,
		height:  height,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey advances the session by exactly one turn.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.status = m.saveSnapshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if action == core.ActionNone {
		return m, nil
	}

	result, err := m.session.RunTurn(action)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	if result.LevelCompleted {
		m.status = fmt.Sprintf("Descending to level %d...", result.Level)
	} else if !result.Terminated {
		m.status = ""
	}

	if result.Terminated {
		m.saveRun(storage.OutcomeQuit)
		m.quitting = true
		return m, tea.Quit
	}
	if isQuit {
		// Quit key on an idle session
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// saveRun records the finished run once per termination.
func (m *Model) saveRun(outcome string) {
	if m.store == nil || m.runSaved {
		return
	}
	//nolint:errcheck // Best-effort save, shutdown continues regardless
	m.store.SaveRun(storage.RunEntry{
		Seed:      m.session.Seed(),
		Generator: m.session.Generator(),
		Level:     m.session.Level(),
		Turns:     m.session.Turns(),
		Outcome:   outcome,
		Duration:  int(m.session.Duration().Seconds()),
	})
	m.runSaved = true
}

// saveSnapshot writes the current session to ~/.rogue/saves and
// returns a status line for the HUD.
func (m *Model) saveSnapshot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "save failed: no home directory"
	}
	dir := filepath.Join(home, ".rogue", "saves")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "save failed: " + err.Error()
	}

	path := filepath.Join(dir, time.Now().Format("20060102_150405")+".yaml")
	if err := m.session.Save(path); err != nil {
		return "save failed: " + err.Error()
	}
	return "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()

	// Center the dungeon, leaving the bottom two rows for the HUD.
	g := m.session.World().Grid()
	offsetX, offsetY := 0, 0
	if g != nil {
		offsetX = core.Max(0, (m.width-g.Width())/2)
		offsetY = core.Max(0, (m.height-2-g.Height())/2)
		m.screen.DrawBox(core.NewRect(offsetX-1, offsetY-1, g.Width()+2, g.Height()+2), core.ColorGray)
	}
	game.Render(m.session.World(), m.screen, offsetX, offsetY)

	m.drawHUD()

	return RenderScreen(m.screen)
}

// drawHUD paints the status rows under the dungeon.
func (m Model) drawHUD() {
	hud := fmt.Sprintf("L:%d  T:%d  seed:%d  [%s]",
		m.session.Level(), m.session.Turns(), m.session.Seed(), m.session.Generator())
	if hp := m.playerHealth(); hp != nil {
		hud = fmt.Sprintf("HP:%d/%d  %s", hp.Current(), hp.Max(), hud)
	}
	m.screen.DrawText(1, m.height-2, hud, core.ColorWhite)

	if m.status != "" {
		m.screen.DrawTextCentered(m.height-1, m.status, core.ColorBrightCyan)
	}
}

func (m Model) playerHealth() *components.Health {
	player := m.session.World().FirstWithTag(components.TagPlayer)
	if player == nil {
		return nil
	}
	c, ok := player.Component(components.TypeHealth)
	if !ok {
		return nil
	}
	return c.(*components.Health)
}

// Run starts the Bubble Tea program with the given model.
func Run(session *game.Session, store *storage.Store, width, height int) error {
	model := NewModel(session, store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
