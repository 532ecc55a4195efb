package stage

import "math"

// Snapshot is a flat copy of the round state for determinism tests.
type Snapshot struct {
	Tick  uint64
	Score int
	Phase int
	Grace int

	PlayerAlive bool
	PlayerX     float64
	PlayerY     float64

	Dir       int
	Step      int
	MoveDown  bool
	Timer     int
	Destroyed int

	// Each live enemy is 4 values: slot index, X, Y, Reload.
	EnemyData []float64

	Bullets    int
	Explosions int
	Debris     int
}

// Snapshot returns the current round state.
func (s *Stage) Snapshot() Snapshot {
	f := &s.formation
	snap := Snapshot{
		Tick:       s.tick,
		Score:      s.score,
		Phase:      int(s.phase),
		Grace:      s.grace,
		Dir:        f.Dir,
		Step:       f.Step,
		MoveDown:   f.MoveDown,
		Timer:      f.Timer,
		Destroyed:  f.Destroyed,
		Bullets:    s.bullets.Len(),
		Explosions: s.explosions.Len(),
		Debris:     s.debris.Len(),
	}
	if p := s.player; p != nil {
		snap.PlayerAlive = true
		snap.PlayerX, snap.PlayerY = p.X, p.Y
	}

	for row := range Rows {
		for col := range Cols {
			e := f.Grid[row][col]
			if e == nil {
				continue
			}
			snap.EnemyData = append(snap.EnemyData,
				float64(row*Cols+col), e.X, e.Y, float64(e.Reload))
		}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	b2u := func(b bool) uint64 {
		if b {
			return 1
		}
		return 0
	}

	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Grace)     //#nosec G115 -- hash computation
	h = h*31 + b2u(snap.PlayerAlive)
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + uint64(snap.Dir)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Step)      //#nosec G115 -- hash computation
	h = h*31 + b2u(snap.MoveDown)
	h = h*31 + uint64(snap.Timer)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed) //#nosec G115 -- hash computation

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}

	h = h*31 + uint64(snap.Bullets)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Explosions) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Debris)     //#nosec G115 -- hash computation
	return h
}
