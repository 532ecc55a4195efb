package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/app"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
)

// Model is the Bubble Tea model that pumps an App: every tick runs one
// logic frame and every view draws it.
type Model struct {
	app      *app.App
	screen   *core.Screen
	keys     *KeyState
	tickRate int
	shotDir  string
	now      func() time.Time
	quitting bool
}

// NewModel creates a model for a game sized to the terminal.
func NewModel(a *app.App, cfg core.RuntimeConfig) Model {
	dir := ""
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".invaders", "screenshots")
	}
	return Model{
		app:      a,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:     NewKeyState(HoldWindow),
		tickRate: cfg.TickRate,
		shotDir:  dir,
		now:      time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and advances the game.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if m.keys.HandleKey(msg, m.now(), m.app.WantsText()) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.app.Logic(m.keys.Frame(now))
	if m.app.ConsumeInputReset() {
		m.keys.Reset()
	}
	return m, tickCmd(m.tickRate)
}

// draw renders the current mode into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	w, h := m.app.WorldSize()
	m.app.Draw(gfx.NewCanvas(m.screen, w, h))
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.draw()

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	name := fmt.Sprintf("invaders_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the game carries on regardless
	os.WriteFile(filepath.Join(m.shotDir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Run plays the game in the current terminal until the player quits.
func Run(a *app.App, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(NewModel(a, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
