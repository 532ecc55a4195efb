package app

import (
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
)

// titleMode reveals the logo and waits for fire.
type titleMode struct {
	app     *App
	logo    *gfx.Sprite
	reveal  int // Logo pixels uncovered so far; kept across visits
	timeout int
}

func (m *titleMode) enter() {
	m.timeout = m.app.cfg.Secs(m.app.cfg.Menus.TimeoutSecs)
}

func (m *titleMode) Logic(in core.InputFrame) {
	a := m.app
	a.background.Scroll()

	if m.reveal < a.cfg.World.Height {
		m.reveal++
	}

	m.timeout--
	if in.Has(core.ActionFire) {
		a.SetMode(ModeStage)
		return
	}
	if m.timeout <= 0 {
		a.SetMode(ModeHighscores)
	}
}

func (m *titleMode) Draw(c *gfx.Canvas) {
	a := m.app
	a.background.Draw(c)

	w := a.cfg.World.Width
	h := min(m.reveal, m.logo.H)
	if h > 0 {
		c.BlitRect(m.logo, core.NewRect(0, 0, m.logo.W, h), float64(w/2-m.logo.W/2), 100)
	}

	if a.blinkOn(m.timeout) {
		c.Text(w/2, 600, gfx.AlignCenter, core.ColorWhite, "PRESS FIRE TO PLAY!")
	}
}
