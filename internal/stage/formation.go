package stage

import (
	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/config"
)

// Grid dimensions of the enemy formation.
const (
	Rows = config.FormationRows
	Cols = 11
)

// Direction of lateral formation movement.
const (
	Left  = -1
	Right = 1
)

// Formation is the enemy grid and its movement state. A nil slot is a
// destroyed enemy.
type Formation struct {
	Grid      [Rows][Cols]*Entity
	Dir       int
	Step      int  // Lateral steps since the last descent
	MoveDown  bool // Next movement tick descends instead
	Timer     int  // Frames until the next movement tick
	Destroyed int
	Cleared   bool
}

// Alive returns the number of enemies still in the grid.
func (f *Formation) Alive() int {
	n := 0
	for row := range Rows {
		for col := range Cols {
			if f.Grid[row][col] != nil {
				n++
			}
		}
	}
	return n
}

// initFormation lays out a full grid at the configured origin.
func (s *Stage) initFormation() {
	fc := s.cfg.Formation
	s.formation = Formation{
		Dir:   Right,
		Timer: s.stepFrames(),
	}

	for row := range Rows {
		sp := s.sprites.rows[row]
		for col := range Cols {
			e := newEntity(sp,
				fc.X+float64((sp.W+sp.W/8)*col),
				fc.Y+float64((sp.H+sp.H/8)*row),
				SideEnemy)
			e.DX = float64(sp.W / 8)
			e.DY = float64(sp.H / 8)
			e.Points = fc.Rows[row].Points
			e.Reload = s.fps * (1 + s.rng.Intn(fc.InitialReloadSecs))
			s.formation.Grid[row][col] = &e
		}
	}
}

func (s *Stage) stepFrames() int {
	return s.cfg.Secs(s.cfg.Formation.StepSecs)
}

// doFormation runs fire control, movement and the destruction sweep.
func (s *Stage) doFormation() {
	s.formationFire()
	s.moveFormation()
	s.sweepFormation()
}

// formationFire lets the lowest live enemy of each column count down and
// shoot.
func (s *Stage) formationFire() {
	for col := range Cols {
		for row := Rows - 1; row >= 0; row-- {
			e := s.formation.Grid[row][col]
			if e == nil {
				continue
			}
			e.Reload--
			if e.Reload <= 0 {
				s.cues.Play(audio.CueAlienFire, audio.ChannelAlienFire)
				s.fireEnemyBullet(e)
			}
			break
		}
	}
}

func (s *Stage) moveFormation() {
	f := &s.formation
	f.Timer--
	if f.Timer > 0 {
		return
	}

	for row := range Rows {
		for col := range Cols {
			e := f.Grid[row][col]
			if e == nil {
				continue
			}
			if f.MoveDown {
				e.Y += e.DY
			} else {
				e.X += float64(f.Dir) * e.DX
			}
		}
	}

	if f.MoveDown {
		f.MoveDown = false
	} else {
		f.Step++
	}
	f.Timer = s.stepFrames()
}

// sweepFormation empties the slots of dead enemies.
func (s *Stage) sweepFormation() {
	f := &s.formation
	for row := range Rows {
		for col := range Cols {
			e := f.Grid[row][col]
			if e != nil && e.Health == 0 {
				f.Grid[row][col] = nil
				f.Destroyed++
			}
		}
	}
	if f.Destroyed == Rows*Cols {
		f.Cleared = true
	}
}

// clipFormation reverses direction and queues a descent after the last
// lateral step.
func (s *Stage) clipFormation() {
	f := &s.formation
	if f.Step == s.cfg.Formation.MaxSteps {
		f.Step = 0
		f.MoveDown = true
		f.Dir = -f.Dir
	}
}
