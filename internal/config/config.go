// Package config provides YAML-based tuning for the game: world size, frame
// rate, entity speeds, formation layout, and particle parameters.
package config

// InvadersConfig contains all tunable parameters of the game.
type InvadersConfig struct {
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Formation FormationConfig `yaml:"formation"`
	Effects   EffectsConfig   `yaml:"effects"`
	Stage     StageConfig     `yaml:"stage"`
	Menus     MenuConfig      `yaml:"menus"`
}

// WorldConfig defines the logical playfield, in pixels, and the tick rate
// every frame-counted timer is expressed against.
type WorldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
	Stars  int `yaml:"stars"` // Background starfield density
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Speed        float64 `yaml:"speed"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
	ReloadFrames int     `yaml:"reload_frames"`
	Margin       int     `yaml:"margin"` // Minimum distance from either screen edge
	Sprite       string  `yaml:"sprite"`
	BulletSprite string  `yaml:"bullet_sprite"`
}

// FormationConfig defines the enemy grid and its movement.
type FormationConfig struct {
	X                 float64     `yaml:"x"`
	Y                 float64     `yaml:"y"`
	MaxSteps          int         `yaml:"max_steps"`           // Lateral steps before a descent
	StepSecs          int         `yaml:"step_secs"`           // Seconds between movement ticks
	BulletSpeed       float64     `yaml:"bullet_speed"`        // Downward speed of enemy fire
	InitialReloadSecs int         `yaml:"initial_reload_secs"` // Upper bound of the first shot delay
	ReloadSecs        int         `yaml:"reload_secs"`         // Upper bound of the delay between shots
	BulletSprite      string      `yaml:"bullet_sprite"`
	Rows              []RowConfig `yaml:"rows"`
}

// RowConfig assigns a sprite and a point value to one formation row,
// top row first.
type RowConfig struct {
	Sprite string `yaml:"sprite"`
	Points int    `yaml:"points"`
}

// EffectsConfig defines explosion and debris particles.
type EffectsConfig struct {
	ExplosionCount    int     `yaml:"explosion_count"`
	ExplosionSpread   int     `yaml:"explosion_spread"`    // Max jitter per axis, pixels
	ExplosionLifeSecs int     `yaml:"explosion_life_secs"` // Upper bound of a particle's alpha budget
	ExplosionSprite   string  `yaml:"explosion_sprite"`
	DebrisLifeSecs    int     `yaml:"debris_life_secs"`
	DebrisGravity     float64 `yaml:"debris_gravity"`
}

// StageConfig defines the stage lifecycle.
type StageConfig struct {
	GraceSecs int `yaml:"grace_secs"` // Delay between win/lose and the highscore screen
}

// MenuConfig defines the title and highscore screens.
type MenuConfig struct {
	TimeoutSecs int    `yaml:"timeout_secs"` // Time before the idle screens swap
	BlinkFrames int    `yaml:"blink_frames"` // Period of the "press fire" blink
	Logo        string `yaml:"logo"`
}

// Secs converts whole seconds to frames at the configured tick rate.
func (c InvadersConfig) Secs(n int) int {
	return n * c.World.FPS
}
