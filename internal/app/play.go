package app

import (
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
	"github.com/vovakirdan/invaders/internal/stage"
)

// stageMode runs a round and hands over to the table when it ends.
type stageMode struct {
	app *App
}

func (m *stageMode) Logic(in core.InputFrame) {
	st := m.app.stage
	st.Logic(in)
	if st.Phase() == stage.PhaseOver {
		m.app.finishStage()
	}
}

func (m *stageMode) Draw(c *gfx.Canvas) {
	m.app.stage.Draw(c, m.app.table.Top())
}
