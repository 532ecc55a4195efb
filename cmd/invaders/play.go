package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/app"
	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/platform/sound"
	"github.com/vovakirdan/invaders/internal/platform/tui"
	"github.com/vovakirdan/invaders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Nature Invaders in the current terminal.

Controls:
  Left/Right, A/D, H/L  - Move
  Space                 - Fire / start a round
  Enter                 - Confirm highscore name
  Ctrl+S                - Save a text screenshot
  Q/Esc/Ctrl+C          - Quit

Examples:
  invaders play
  invaders play --mute --fps 30
  invaders play --config ./invaders.yaml --log ./invaders.log`,
	Run: runPlay,
}

// newLogger writes to the --log file, or nowhere while the TUI owns the
// terminal.
func newLogger(prefix string) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closer := func() {}
	if flagLog != "" {
		f, err := os.OpenFile(flagLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closer = func() { f.Close() }
		}
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	return logger, closer
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, cat := loadGame(cmd)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger, closeLog := newLogger("invaders")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	table, err := tui.LoadTable(store)
	if err != nil {
		logger.Warn("could not load highscores", "error", err)
	}

	var cues audio.Player = audio.Silent{}
	var spk *sound.Speaker
	if !flagMute {
		spk = sound.NewSpeaker(0.8)
		if initErr := spk.Init(); initErr != nil {
			logger.Warn("audio unavailable, playing silently", "error", initErr)
			spk = nil
		} else {
			cues = spk
			spk.PlayMusic()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts := app.Options{
		Config:  cfg,
		Catalog: cat,
		Cues:    cues,
		Table:   table,
		Logger:  logger,
		Seed:    seed,
	}
	if store != nil {
		opts.Saver = store
	}

	a, err := app.New(opts)
	if err != nil {
		fatal("%v", err)
	}
	logger.Info("starting", "seed", seed, "fps", cfg.World.FPS, "screen", fmt.Sprintf("%dx%d", width, height))

	runErr := tui.Run(a, core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.World.FPS,
	})

	if spk != nil {
		spk.Close()
	}
	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fatal("running game: %v", runErr)
	}
}
