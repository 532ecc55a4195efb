package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/gfx"
)

// loadGame resolves the tuning and the sprite catalog shared by play and
// serve. Failures are fatal.
func loadGame(cmd *cobra.Command) (config.InvadersConfig, *gfx.Catalog) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatal("%v", err)
	}
	if f := cmd.Flag("fps"); f != nil && f.Changed {
		if flagFPS <= 0 {
			fatal("--fps must be positive, got %d", flagFPS)
		}
		cfg.World.FPS = flagFPS
	}

	cat, err := gfx.NewCatalog()
	if err != nil {
		fatal("%v", err)
	}
	if flagSprites != "" {
		if err := cat.MergeFile(flagSprites); err != nil {
			fatal("%v", err)
		}
	}
	return cfg, cat
}
