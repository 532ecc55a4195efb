package app

import (
	"unicode/utf8"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
	"github.com/vovakirdan/invaders/internal/highscore"
)

// highscoreMode shows the table, or collects a name for a fresh entry.
type highscoreMode struct {
	app     *App
	timeout int
	blink   int
	editor  *highscore.Editor
	score   int // Score being named
}

func (m *highscoreMode) enter() {
	m.timeout = m.app.cfg.Secs(m.app.cfg.Menus.TimeoutSecs)
}

func (m *highscoreMode) edit(index, score int) {
	m.editor = m.app.table.Edit(index)
	m.score = score
}

func (m *highscoreMode) Logic(in core.InputFrame) {
	a := m.app
	a.background.Scroll()

	if m.editor != nil {
		m.doNameInput(in)
	} else {
		m.timeout--
		if in.Has(core.ActionFire) {
			a.SetMode(ModeStage)
			return
		}
		if m.timeout <= 0 {
			a.SetMode(ModeTitle)
			return
		}
	}

	m.blink++
	if m.blink >= a.cfg.World.FPS {
		m.blink = 0
	}
}

func (m *highscoreMode) doNameInput(in core.InputFrame) {
	m.editor.Type(in.Text)
	if in.Has(core.ActionBackspace) {
		m.editor.Backspace()
	}
	if in.Has(core.ActionConfirm) {
		rank := m.editor.Index() + 1
		name := m.editor.Confirm()
		m.editor = nil
		m.app.saveHighscore(name, m.score, rank)
		m.app.inputReset = true
	}
}

func (m *highscoreMode) Draw(c *gfx.Canvas) {
	a := m.app
	a.background.Draw(c)

	if m.editor != nil {
		m.drawNameInput(c)
		return
	}

	m.drawTable(c)
	if a.blinkOn(m.timeout) {
		c.Text(a.cfg.World.Width/2, 600, gfx.AlignCenter, core.ColorWhite, "PRESS FIRE TO PLAY!")
	}
}

func (m *highscoreMode) drawTable(c *gfx.Canvas) {
	mid := m.app.cfg.World.Width / 2
	c.Text(mid, 70, gfx.AlignCenter, core.ColorWhite, "HIGHSCORES")

	y := 150
	for i, e := range m.app.table.Entries() {
		color := core.ColorWhite
		if e.Recent {
			color = core.ColorBrightGreen
		}
		c.Text(mid, y, gfx.AlignCenter, color, "#%d. %-15s ...... %03d", i+1, e.Name, e.Score)
		y += 50
	}
}

func (m *highscoreMode) drawNameInput(c *gfx.Canvas) {
	mid := m.app.cfg.World.Width / 2
	name := m.editor.Name()

	c.Text(mid, 30, gfx.AlignCenter, core.ColorWhite, "CONGRATULATIONS,")
	c.Text(mid, 70, gfx.AlignCenter, core.ColorWhite, "YOU'VE GAINED A HIGHSCORE!")
	c.Text(mid, 120, gfx.AlignCenter, core.ColorWhite, "ENTER YOUR NAME BELOW:")
	if name != "" {
		c.Text(mid, 250, gfx.AlignCenter, core.ColorBrightGreen, "%s", name)
	}

	if m.blink < m.app.cfg.World.FPS/2 {
		// Block cursor just past the centered name.
		x := mid + utf8.RuneCountInString(name)*int(c.Viewport().PxPerCol)/2 + 5
		c.Text(x, 250, gfx.AlignLeft, core.ColorGreen, "█")
	}

	c.Text(mid, 625, gfx.AlignCenter, core.ColorWhite, "PRESS RETURN WHEN FINISHED")
}
