package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports every out-of-range parameter at once.
func (c InvadersConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, invalid("world size %dx%d", c.World.Width, c.World.Height))
	}
	if c.World.FPS <= 0 {
		errs = append(errs, invalid("world.fps %d", c.World.FPS))
	}
	if c.World.Stars < 0 {
		errs = append(errs, invalid("world.stars %d", c.World.Stars))
	}

	if c.Player.Speed <= 0 || c.Player.BulletSpeed <= 0 {
		errs = append(errs, invalid("player speeds must be positive"))
	}
	if c.Player.ReloadFrames < 0 {
		errs = append(errs, invalid("player.reload_frames %d", c.Player.ReloadFrames))
	}
	if c.Player.Margin < 0 || 2*c.Player.Margin >= c.World.Width {
		errs = append(errs, invalid("player.margin %d for width %d", c.Player.Margin, c.World.Width))
	}

	if c.Formation.MaxSteps <= 0 {
		errs = append(errs, invalid("formation.max_steps %d", c.Formation.MaxSteps))
	}
	if c.Formation.StepSecs <= 0 {
		errs = append(errs, invalid("formation.step_secs %d", c.Formation.StepSecs))
	}
	if c.Formation.BulletSpeed <= 0 {
		errs = append(errs, invalid("formation.bullet_speed %v", c.Formation.BulletSpeed))
	}
	if c.Formation.InitialReloadSecs <= 0 || c.Formation.ReloadSecs <= 0 {
		errs = append(errs, invalid("formation reload bounds must be positive"))
	}
	if len(c.Formation.Rows) != FormationRows {
		errs = append(errs, invalid("formation.rows has %d entries, want %d", len(c.Formation.Rows), FormationRows))
	}
	for i, row := range c.Formation.Rows {
		if row.Sprite == "" {
			errs = append(errs, invalid("formation.rows[%d] has no sprite", i))
		}
		if row.Points < 0 {
			errs = append(errs, invalid("formation.rows[%d].points %d", i, row.Points))
		}
	}

	if c.Effects.ExplosionCount < 0 || c.Effects.ExplosionSpread <= 0 {
		errs = append(errs, invalid("explosion count %d spread %d", c.Effects.ExplosionCount, c.Effects.ExplosionSpread))
	}
	if c.Effects.ExplosionLifeSecs <= 0 || c.Effects.DebrisLifeSecs <= 0 {
		errs = append(errs, invalid("particle lifetimes must be positive"))
	}

	if c.Stage.GraceSecs <= 0 {
		errs = append(errs, invalid("stage.grace_secs %d", c.Stage.GraceSecs))
	}
	if c.Menus.TimeoutSecs <= 0 || c.Menus.BlinkFrames <= 1 {
		errs = append(errs, invalid("menus timeout %d blink %d", c.Menus.TimeoutSecs, c.Menus.BlinkFrames))
	}

	return errors.Join(errs...)
}
