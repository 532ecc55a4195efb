package stage

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/gfx"
)

func newTestStage(t *testing.T, seed int64) (*Stage, *audio.Recorder) {
	t.Helper()
	cat, err := gfx.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	rec := &audio.Recorder{}
	s, err := New(Options{
		Config:  config.DefaultConfig(),
		Catalog: cat,
		Cues:    rec,
		Rand:    rand.New(rand.NewSource(seed)),
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return s, rec
}

// holdFire stops the formation from shooting for the rest of the test.
func holdFire(s *Stage) {
	for row := range Rows {
		for col := range Cols {
			if e := s.formation.Grid[row][col]; e != nil {
				e.Reload = 1 << 30
			}
		}
	}
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestNewRejectsMissingSprite(t *testing.T) {
	cat, err := gfx.NewCatalog()
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultConfig()
	cfg.Formation.Rows[2].Sprite = "mothership"

	if _, err := New(Options{Config: cfg, Catalog: cat}); err == nil {
		t.Error("expected error for unknown row sprite")
	}
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("expected error without a catalog")
	}
}

func TestResetLayout(t *testing.T) {
	s, _ := newTestStage(t, 1)
	f := s.Formation()

	if f.Alive() != Rows*Cols {
		t.Fatalf("Alive() = %d, expected %d", f.Alive(), Rows*Cols)
	}

	small := f.Grid[0][1]
	if small.X != 50+40 || small.Y != 200 {
		t.Errorf("small enemy at (%v, %v), expected (90, 200)", small.X, small.Y)
	}
	medium := f.Grid[1][1]
	if medium.X != 50+54 || medium.Y != 200+54 {
		t.Errorf("medium enemy at (%v, %v), expected (104, 254)", medium.X, medium.Y)
	}
	if small.DX != 4 || small.DY != 6 || medium.DX != 6 {
		t.Errorf("step sizes small=%v/%v medium=%v", small.DX, small.DY, medium.DX)
	}

	wantPoints := [Rows]int{20, 30, 20, 20, 10}
	total := 0
	for row := range Rows {
		for col := range Cols {
			e := f.Grid[row][col]
			if e.Points != wantPoints[row] {
				t.Errorf("enemy (%d,%d) points = %d, expected %d", row, col, e.Points, wantPoints[row])
			}
			if e.Reload < 60 || e.Reload > 600 || e.Reload%60 != 0 {
				t.Errorf("enemy (%d,%d) initial reload = %d", row, col, e.Reload)
			}
			if e.Side != SideEnemy || e.Health != 1 {
				t.Errorf("enemy (%d,%d) = %+v", row, col, e)
			}
			total += e.Points
		}
	}
	if total != 1100 {
		t.Errorf("total points = %d, expected 1100", total)
	}

	p := s.Player()
	if p == nil || p.X != 100 || p.Y != 800 || p.Side != SidePlayer {
		t.Errorf("player = %+v", p)
	}
	if s.Phase() != PhaseActive || s.grace != 180 || f.Timer != 60 || f.Dir != Right {
		t.Errorf("phase=%s grace=%d timer=%d dir=%d", s.Phase(), s.grace, f.Timer, f.Dir)
	}
}

func TestFormationMovement(t *testing.T) {
	s, _ := newTestStage(t, 1)
	holdFire(s)
	e := s.formation.Grid[0][0]

	run := func(frames int) {
		for range frames {
			s.Logic(idle())
		}
	}

	run(59)
	if e.X != 50 {
		t.Fatalf("formation moved early: X = %v", e.X)
	}
	run(1)
	if e.X != 54 || s.formation.Step != 1 {
		t.Fatalf("after first tick X = %v step = %d", e.X, s.formation.Step)
	}

	run(4 * 60)
	if e.X != 70 || e.Y != 200 {
		t.Errorf("after five lateral steps at (%v, %v)", e.X, e.Y)
	}
	if s.formation.Step != 0 || !s.formation.MoveDown || s.formation.Dir != Left {
		t.Errorf("clip did not turn formation: %+v", s.formation)
	}

	run(60)
	if e.X != 70 || e.Y != 206 || s.formation.MoveDown {
		t.Errorf("descent: at (%v, %v) moveDown=%v", e.X, e.Y, s.formation.MoveDown)
	}

	run(60)
	if e.X != 66 || s.formation.Step != 1 {
		t.Errorf("return leg: X = %v step = %d", e.X, s.formation.Step)
	}
}

func TestFormationFireControl(t *testing.T) {
	s, rec := newTestStage(t, 1)
	holdFire(s)
	f := &s.formation

	f.Grid[4][3].Reload = 1
	f.Grid[3][3].Reload = 1 // Shielded by the enemy below
	f.Grid[4][5] = nil
	f.Grid[3][5].Reload = 1 // Lowest live enemy of its column

	s.Logic(idle())

	if got := s.bullets.Len(); got != 2 {
		t.Fatalf("bullets = %d, expected 2", got)
	}
	if got := rec.Count(audio.CueAlienFire); got != 2 {
		t.Errorf("alien fire cues = %d, expected 2", got)
	}
	if f.Grid[3][3].Reload != 1 {
		t.Errorf("shielded enemy reload = %d, expected untouched", f.Grid[3][3].Reload)
	}
	if r := f.Grid[4][3].Reload; r < 0 || r > 590 || r%10 != 0 {
		t.Errorf("reseeded reload = %d", r)
	}

	b := s.bullets.items[0]
	if b.Side != SideEnemy || b.DY != 5 {
		t.Errorf("enemy bullet = %+v", b)
	}
	// Centered on the enemy at (212, 416), then moved once.
	if b.X != 230 || b.Y != 433 {
		t.Errorf("enemy bullet at (%v, %v), expected (230, 433)", b.X, b.Y)
	}
	for _, e := range rec.Events {
		if e.Cue == audio.CueAlienFire && e.Channel != audio.ChannelAlienFire {
			t.Errorf("alien fire on channel %d", e.Channel)
		}
	}
}

func TestPlayerFireAndReload(t *testing.T) {
	s, rec := newTestStage(t, 1)
	holdFire(s)

	s.Logic(press(core.ActionFire))
	if s.bullets.Len() != 1 || rec.Count(audio.CuePlayerFire) != 1 {
		t.Fatalf("bullets=%d fire cues=%d", s.bullets.Len(), rec.Count(audio.CuePlayerFire))
	}
	b := s.bullets.items[0]
	if b.X != 118 || b.Y != 807 || b.DY != -5 || b.Side != SidePlayer {
		t.Errorf("player bullet = %+v", b)
	}
	if s.player.Reload != 20 {
		t.Errorf("reload = %d, expected 20", s.player.Reload)
	}

	for range 19 {
		s.Logic(press(core.ActionFire))
	}
	if s.bullets.Len() != 1 {
		t.Errorf("fired during reload: %d bullets", s.bullets.Len())
	}
	s.Logic(press(core.ActionFire))
	if s.bullets.Len() != 2 {
		t.Errorf("bullets = %d after reload, expected 2", s.bullets.Len())
	}
}

func TestPlayerMoveAndClip(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		in    core.InputFrame
		want  float64
	}{
		{"right", 100, press(core.ActionRight), 104},
		{"left", 100, press(core.ActionLeft), 96},
		{"right wins", 100, press(core.ActionLeft, core.ActionRight), 104},
		{"idle", 100, idle(), 100},
		{"left margin", 52, press(core.ActionLeft), 50},
		{"right margin", 620, press(core.ActionRight), 622},
		{"far outside", 0, idle(), 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestStage(t, 1)
			holdFire(s)
			s.player.X = tc.start
			s.Logic(tc.in)
			if s.player.X != tc.want {
				t.Errorf("X = %v, expected %v", s.player.X, tc.want)
			}
		})
	}
}

func TestEnemyBulletKillsPlayer(t *testing.T) {
	s, rec := newTestStage(t, 7)
	holdFire(s)
	p := s.player

	b := newEntity(s.sprites.alienBullet, p.X, p.Y, SideEnemy)
	s.bullets.Add(b)
	s.doBullets()

	if s.Player() != nil {
		t.Fatal("player slot should be released on the hit")
	}
	if p.Health != 0 {
		t.Error("player health should be zero")
	}
	if s.bullets.Len() != 0 {
		t.Errorf("bullet should be consumed, %d left", s.bullets.Len())
	}
	if s.explosions.Len() != 32 || s.debris.Len() != 4 {
		t.Errorf("explosions=%d debris=%d, expected 32 and 4", s.explosions.Len(), s.debris.Len())
	}
	if rec.Count(audio.CuePlayerDie) != 1 {
		t.Errorf("death cues = %d, expected 1", rec.Count(audio.CuePlayerDie))
	}

	s.explosions.Each(func(ex *Explosion) {
		if ex.X <= p.X-32 || ex.X >= p.X+32 || ex.Alpha < 0 || ex.Alpha > 59*3 {
			t.Errorf("explosion out of range: %+v", ex)
		}
	})
	s.debris.Each(func(d *Debris) {
		if d.X != p.X+24 || d.Y != p.Y+24 || d.Src.W != 24 || d.Src.H != 24 || d.Life != 120 {
			t.Errorf("debris = %+v", d)
		}
		if d.DY > -5 || d.DY < -16 || d.DX < -4 || d.DX > 4 {
			t.Errorf("debris velocity = (%v, %v)", d.DX, d.DY)
		}
	})

	// A second bullet over the wreck hits nothing.
	s.bullets.Add(newEntity(s.sprites.alienBullet, p.X, p.Y, SideEnemy))
	s.Logic(idle())
	if rec.Count(audio.CuePlayerDie) != 1 {
		t.Error("dead player was hit twice")
	}
	if s.Phase() != PhaseEnding {
		t.Errorf("phase = %s, expected ending", s.Phase())
	}
}

func TestKillBurstSurvivesLogicTick(t *testing.T) {
	for seed := int64(1); seed <= 100; seed++ {
		s, rec := newTestStage(t, seed)
		holdFire(s)
		p := s.player
		s.bullets.Add(newEntity(s.sprites.alienBullet, p.X, p.Y, SideEnemy))

		s.Logic(idle())

		if s.Player() != nil || rec.Count(audio.CuePlayerDie) != 1 {
			t.Fatalf("seed %d: player should die on the first tick", seed)
		}
		if s.explosions.Len() != 32 || s.debris.Len() != 4 {
			t.Fatalf("seed %d: explosions=%d debris=%d after one tick, expected 32 and 4",
				seed, s.explosions.Len(), s.debris.Len())
		}
	}
}

func TestSparksAgeFromSecondFrame(t *testing.T) {
	s, _ := newTestStage(t, 1)
	s.addExplosions(100, 100, 1)
	s.explosions.items[0].Alpha = 0
	s.explosions.items[0].DX = 1
	x := s.explosions.items[0].X

	s.doExplosions()
	if s.explosions.Len() != 1 || s.explosions.items[0].X != x {
		t.Fatalf("spark should be untouched on its spawn frame: %+v", s.explosions.items)
	}
	s.doExplosions()
	if s.explosions.Len() != 0 {
		t.Error("spent spark should be removed on the next frame")
	}
}

func TestPlayerBulletKillsEnemy(t *testing.T) {
	s, rec := newTestStage(t, 3)
	holdFire(s)
	target := s.formation.Grid[2][4]

	s.bullets.Add(newEntity(s.sprites.playerBullet, target.X, target.Y, SidePlayer))
	s.doBullets()

	if s.formation.Grid[2][4] != nil || s.formation.Destroyed != 1 {
		t.Errorf("slot not swept: destroyed=%d", s.formation.Destroyed)
	}
	if s.Score() != 20 {
		t.Errorf("score = %d, expected 20", s.Score())
	}
	if rec.Count(audio.CueAlienDie) != 1 || rec.Events[0].Channel != audio.ChannelAny {
		t.Errorf("cues = %+v", rec.Events)
	}
	if s.bullets.Len() != 0 || s.explosions.Len() != 32 || s.debris.Len() != 4 {
		t.Errorf("bullets=%d explosions=%d debris=%d", s.bullets.Len(), s.explosions.Len(), s.debris.Len())
	}
}

func TestBulletHitsFirstEnemyInRowOrder(t *testing.T) {
	s, _ := newTestStage(t, 3)
	holdFire(s)
	upper := s.formation.Grid[1][0]

	// Tall enough to overlap rows 1 and 2 of the first column.
	b := Entity{X: upper.X, Y: upper.Y, W: 12, H: 100, Health: 1, Side: SidePlayer}
	s.bullets.Add(b)
	s.doBullets()

	if s.formation.Grid[1][0] != nil || s.formation.Grid[2][0] == nil {
		t.Error("only the upper enemy should be destroyed")
	}
	if s.Score() != 30 {
		t.Errorf("score = %d, expected 30", s.Score())
	}
}

func TestEnemyBulletPassesThroughEnemies(t *testing.T) {
	s, rec := newTestStage(t, 3)
	holdFire(s)
	e := s.formation.Grid[0][0]

	s.bullets.Add(newEntity(s.sprites.alienBullet, e.X, e.Y, SideEnemy))
	s.doBullets()

	if s.bullets.Len() != 1 || s.formation.Destroyed != 0 || len(rec.Events) != 0 {
		t.Error("enemy fire should not hurt the formation")
	}
}

func TestBulletOffscreen(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		keep bool
	}{
		{"left edge", -12, 0, true},
		{"past left", -13, 0, false},
		{"right edge", 720, 0, true},
		{"past right", 721, 0, false},
		{"top edge", 0, -24, true},
		{"past top", 0, -25, false},
		{"past bottom", 0, 961, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _ := newTestStage(t, 1)
			s.bullets.Add(newEntity(s.sprites.playerBullet, tc.x, tc.y, SidePlayer))
			s.doBullets()
			if kept := s.bullets.Len() == 1; kept != tc.keep {
				t.Errorf("kept = %v, expected %v", kept, tc.keep)
			}
		})
	}
}

func TestClearingFormationScoresEverything(t *testing.T) {
	s, rec := newTestStage(t, 5)
	holdFire(s)

	for row := range Rows {
		for col := range Cols {
			e := s.formation.Grid[row][col]
			s.bullets.Add(newEntity(s.sprites.playerBullet, e.X, e.Y, SidePlayer))
			s.doBullets()
		}
	}

	f := s.Formation()
	if s.Score() != 1100 {
		t.Errorf("score = %d, expected 1100", s.Score())
	}
	if f.Destroyed != 55 || !f.Cleared || f.Alive() != 0 {
		t.Errorf("destroyed=%d cleared=%v alive=%d", f.Destroyed, f.Cleared, f.Alive())
	}
	if rec.Count(audio.CueAlienDie) != 55 {
		t.Errorf("alien die cues = %d", rec.Count(audio.CueAlienDie))
	}

	s.sweepFormation()
	if f.Destroyed != 55 {
		t.Errorf("repeated sweep counted again: %d", f.Destroyed)
	}
}

func TestGraceHandoff(t *testing.T) {
	s, _ := newTestStage(t, 1)
	holdFire(s)
	s.formation.Cleared = true

	for i := 1; i < 180; i++ {
		s.Logic(idle())
		if s.Phase() != PhaseEnding {
			t.Fatalf("frame %d: phase = %s, expected ending", i, s.Phase())
		}
	}
	s.Logic(idle())
	if s.Phase() != PhaseOver {
		t.Fatalf("phase = %s after grace, expected over", s.Phase())
	}

	tick := s.tick
	s.Logic(idle())
	if s.tick != tick {
		t.Error("Logic should be a no-op once over")
	}
}

func TestReset(t *testing.T) {
	s, _ := newTestStage(t, 9)

	for i := range 400 {
		in := press(core.ActionFire)
		if i%2 == 0 {
			in.Set(core.ActionRight)
		}
		s.Logic(in)
	}
	if s.tick == 0 {
		t.Fatal("expected the round to have progressed before reset")
	}

	for range 2 {
		s.Reset()
		f := s.Formation()
		if s.Score() != 0 || s.Phase() != PhaseActive || s.Player() == nil {
			t.Errorf("score=%d phase=%s player=%v", s.Score(), s.Phase(), s.Player())
		}
		if s.bullets.Len()+s.explosions.Len()+s.debris.Len() != 0 {
			t.Error("pools should be empty after reset")
		}
		if f.Alive() != 55 || f.Destroyed != 0 || f.Cleared || f.Step != 0 || f.Dir != Right || f.Timer != 60 {
			t.Errorf("formation after reset = %+v", f)
		}
		if s.grace != 180 || s.tick != 0 {
			t.Errorf("grace=%d tick=%d", s.grace, s.tick)
		}
	}
}

func inputScript(frames int) []core.InputFrame {
	script := make([]core.InputFrame, frames)
	for i := range script {
		script[i] = core.NewInputFrame()
		switch {
		case i%90 < 40:
			script[i].Set(core.ActionRight)
		case i%90 < 80:
			script[i].Set(core.ActionLeft)
		}
		if i%7 == 0 {
			script[i].Set(core.ActionFire)
		}
	}
	return script
}

func TestStageDeterminism(t *testing.T) {
	script := inputScript(1200)

	run := func(seed int64) Snapshot {
		s, _ := newTestStage(t, seed)
		for _, in := range script {
			s.Logic(in)
		}
		return s.Snapshot()
	}

	a, b := run(42), run(42)
	if a.Hash() != b.Hash() {
		t.Errorf("same seed diverged: %d != %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Tick != b.Tick || a.PlayerAlive != b.PlayerAlive {
		t.Errorf("snapshots differ: %+v vs %+v", a, b)
	}

	c := run(43)
	if a.Hash() == c.Hash() {
		t.Error("different seeds should give different runs")
	}
}

func TestParticleLifetimes(t *testing.T) {
	s, _ := newTestStage(t, 1)

	s.explosions.Add(Explosion{X: 10, DX: 1, Alpha: 2})
	s.doExplosions()
	if s.explosions.Len() != 1 || s.explosions.items[0].X != 11 {
		t.Fatalf("explosion after one frame = %+v", s.explosions.items)
	}
	s.doExplosions()
	if s.explosions.Len() != 0 {
		t.Error("explosion should expire when alpha reaches zero")
	}

	s.debris.Add(Debris{Y: 100, DY: -5, Life: 2})
	s.doDebris()
	d := s.debris.items[0]
	if d.Y != 95 || d.DY != -4.5 || d.Life != 1 {
		t.Errorf("debris after one frame = %+v", d)
	}
	s.doDebris()
	if s.debris.Len() != 0 {
		t.Error("debris should expire when life reaches zero")
	}
}

func TestDrawHUD(t *testing.T) {
	s, _ := newTestStage(t, 1)
	screen := core.NewScreen(72, 48)

	s.Draw(gfx.NewCanvas(screen, 720, 960), 8)
	if !strings.Contains(screen.Row(0), "SCORE<1>") || !strings.Contains(screen.Row(2), "0000") {
		t.Errorf("HUD rows = %q / %q", screen.Row(0), screen.Row(2))
	}
	if got := screen.GetCell(32, 0); got.Rune != 'H' || got.Color != core.ColorWhite {
		t.Errorf("HI-SCORE cell = %+v, expected white", got)
	}

	screen.Clear()
	s.Draw(gfx.NewCanvas(screen, 720, 960), 0)
	if got := screen.GetCell(32, 0); got.Color != core.ColorBrightGreen {
		t.Errorf("beaten HI-SCORE color = %v, expected green", got.Color)
	}
}
