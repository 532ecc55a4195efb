// Package app sequences the game's screens. An App owns the shared
// background, the highscore table and the stage, and hands every frame to
// whichever mode is installed.
package app

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
	"github.com/vovakirdan/invaders/internal/highscore"
	"github.com/vovakirdan/invaders/internal/stage"
)

// Mode is one screen of the game.
type Mode interface {
	Logic(in core.InputFrame)
	Draw(c *gfx.Canvas)
}

// ModeKind names the installed mode.
type ModeKind int

const (
	ModeTitle ModeKind = iota
	ModeHighscores
	ModeStage
)

// String returns a human-readable name for the mode.
func (k ModeKind) String() string {
	switch k {
	case ModeTitle:
		return "title"
	case ModeHighscores:
		return "highscores"
	case ModeStage:
		return "stage"
	default:
		return "unknown"
	}
}

// ScoreSaver persists a named highscore.
type ScoreSaver interface {
	SaveHighscore(name string, score int) error
}

// Options configures a new App.
type Options struct {
	Config  config.InvadersConfig
	Catalog *gfx.Catalog
	Cues    audio.Player     // nil plays nothing
	Saver   ScoreSaver       // nil keeps scores in memory only
	Table   *highscore.Table // nil starts from placeholders
	Logger  *log.Logger      // nil discards
	Seed    int64
}

// App drives the title screen, the highscore screen and the stage.
type App struct {
	cfg    config.InvadersConfig
	cues   audio.Player
	saver  ScoreSaver
	logger *log.Logger
	rng    *rand.Rand

	background *gfx.Background
	table      *highscore.Table
	stage      *stage.Stage

	title  *titleMode
	scores *highscoreMode
	play   *stageMode

	kind       ModeKind
	mode       Mode
	inputReset bool
}

// New builds an App showing the title screen.
func New(opts Options) (*App, error) {
	if opts.Catalog == nil {
		return nil, errors.New("app: no sprite catalog")
	}
	cfg := opts.Config

	a := &App{
		cfg:    cfg,
		cues:   opts.Cues,
		saver:  opts.Saver,
		logger: opts.Logger,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		table:  opts.Table,
	}
	if a.cues == nil {
		a.cues = audio.Silent{}
	}
	if a.logger == nil {
		a.logger = log.New(io.Discard)
	}
	if a.table == nil {
		a.table = highscore.NewTable()
	}
	a.background = gfx.NewBackground(a.rng, cfg.World.Width, cfg.World.Height, cfg.World.Stars)

	logo, err := opts.Catalog.Load(cfg.Menus.Logo)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a.stage, err = stage.New(stage.Options{
		Config:     cfg,
		Catalog:    opts.Catalog,
		Cues:       a.cues,
		Rand:       a.rng,
		Background: a.background,
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	a.title = &titleMode{app: a, logo: logo}
	a.scores = &highscoreMode{app: a}
	a.play = &stageMode{app: a}
	a.SetMode(ModeTitle)
	return a, nil
}

// SetMode installs a mode and prepares it for its first frame.
func (a *App) SetMode(kind ModeKind) {
	switch kind {
	case ModeTitle:
		a.title.enter()
		a.mode = a.title
	case ModeHighscores:
		a.scores.enter()
		a.mode = a.scores
	case ModeStage:
		a.stage.Reset()
		a.mode = a.play
	default:
		return
	}
	a.kind = kind
	a.inputReset = true
	a.logger.Debug("mode", "kind", kind)
}

// Mode returns the installed mode.
func (a *App) Mode() ModeKind {
	return a.kind
}

// Logic advances the installed mode by one frame.
func (a *App) Logic(in core.InputFrame) {
	a.mode.Logic(in)
}

// Draw renders the installed mode.
func (a *App) Draw(c *gfx.Canvas) {
	a.mode.Draw(c)
}

// ConsumeInputReset reports whether held keys should be forgotten, and
// clears the request.
func (a *App) ConsumeInputReset() bool {
	r := a.inputReset
	a.inputReset = false
	return r
}

// WantsText reports whether typed characters are being collected.
func (a *App) WantsText() bool {
	return a.kind == ModeHighscores && a.scores.editor != nil
}

// WorldSize returns the playfield size in pixels.
func (a *App) WorldSize() (int, int) {
	return a.cfg.World.Width, a.cfg.World.Height
}

// Highscores returns the session's table.
func (a *App) Highscores() *highscore.Table {
	return a.table
}

// Stage returns the round simulation.
func (a *App) Stage() *stage.Stage {
	return a.stage
}

// blinkOn reports whether blinking text is visible at the given countdown.
func (a *App) blinkOn(timeout int) bool {
	period := a.cfg.Menus.BlinkFrames
	return timeout%period < period/2
}

// finishStage submits the round's score and shows the table.
func (a *App) finishStage() {
	score := a.stage.Score()
	rank := a.table.Submit(score)
	a.logger.Info("stage over", "score", score, "rank", rank)

	if rank >= 0 {
		a.cues.Play(audio.CuePoints, audio.ChannelPoints)
	}
	a.SetMode(ModeHighscores)
	if rank >= 0 {
		a.scores.edit(rank, score)
	}
}

// saveHighscore persists a confirmed name. Failures are logged and the game
// carries on.
func (a *App) saveHighscore(name string, score, rank int) {
	if a.saver == nil {
		return
	}
	if err := a.saver.SaveHighscore(name, score); err != nil {
		a.logger.Warn("cannot save highscore", "name", name, "score", score, "err", err)
		return
	}
	a.logger.Info("highscore saved", "name", name, "score", score, "rank", rank)
}
