package config

import (
	_ "embed"
)

// FormationRows is the fixed height of the enemy grid.
const FormationRows = 5

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultConfig returns the built-in tuning, identical to the embedded YAML.
func DefaultConfig() InvadersConfig {
	return InvadersConfig{
		World: WorldConfig{
			Width:  720,
			Height: 960,
			FPS:    60,
			Stars:  90,
		},
		Player: PlayerConfig{
			X:            100,
			Y:            800,
			Speed:        4,
			BulletSpeed:  5,
			ReloadFrames: 20,
			Margin:       50,
			Sprite:       "player",
			BulletSprite: "player_bullet",
		},
		Formation: FormationConfig{
			X:                 50,
			Y:                 200,
			MaxSteps:          5,
			StepSecs:          1,
			BulletSpeed:       5,
			InitialReloadSecs: 10,
			ReloadSecs:        10,
			BulletSprite:      "alien_bullet",
			Rows: []RowConfig{
				{Sprite: "small_enemy", Points: 20},
				{Sprite: "medium_enemy", Points: 30},
				{Sprite: "medium_enemy", Points: 20},
				{Sprite: "large_enemy", Points: 20},
				{Sprite: "large_enemy", Points: 10},
			},
		},
		Effects: EffectsConfig{
			ExplosionCount:    32,
			ExplosionSpread:   32,
			ExplosionLifeSecs: 3,
			ExplosionSprite:   "explosion",
			DebrisLifeSecs:    2,
			DebrisGravity:     0.5,
		},
		Stage: StageConfig{
			GraceSecs: 3,
		},
		Menus: MenuConfig{
			TimeoutSecs: 5,
			BlinkFrames: 40,
			Logo:        "logo",
		},
	}
}
