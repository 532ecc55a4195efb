package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/invaders/internal/audio"
)

// Waveform defines oscillator wave shapes.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveNoise
)

// sweep is a one-shot oscillator gliding from one frequency to another
// under an exponential decay envelope.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	decay    float64
	wave     Waveform
	rng      *rand.Rand
	total    int
	position int
	phase    float64
}

func newSweep(rate beep.SampleRate, d time.Duration, from, to, decay float64, wave Waveform) *sweep {
	return &sweep{
		rate:  rate,
		from:  from,
		to:    to,
		decay: decay,
		wave:  wave,
		rng:   rand.New(rand.NewSource(int64(from) + int64(d))),
		total: rate.N(d),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, false
		}
		t := float64(s.position) / float64(s.total)

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			val = 1
			if s.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		val *= math.Exp(-s.decay * t)

		samples[i][0] = val
		samples[i][1] = val

		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// volume scales a stream by a linear gain.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// chime plays two sine notes back to back.
func chime(rate beep.SampleRate, d time.Duration, notes ...float64) beep.Streamer {
	var parts []beep.Streamer
	for _, f := range notes {
		var tone beep.Streamer
		tone, err := generators.SineTone(rate, f)
		if err != nil {
			tone = newSweep(rate, d, f, f, 0, WaveSine)
		}
		parts = append(parts, beep.Take(rate.N(d), tone))
	}
	return beep.Seq(parts...)
}

// cueStreamer builds the raw sound for a cue.
func cueStreamer(rate beep.SampleRate, cue audio.Cue) beep.Streamer {
	switch cue {
	case audio.CuePlayerFire:
		// Water drop: a fast falling blip.
		return volume(newSweep(rate, 90*time.Millisecond, 1400, 380, 4, WaveSine), 0.5)
	case audio.CueAlienFire:
		return volume(newSweep(rate, 110*time.Millisecond, 260, 140, 3, WaveSquare), 0.2)
	case audio.CuePlayerDie:
		return volume(newSweep(rate, 450*time.Millisecond, 900, 90, 2, WaveSquare), 0.35)
	case audio.CueAlienDie:
		return volume(newSweep(rate, 350*time.Millisecond, 0, 0, 5, WaveNoise), 0.4)
	case audio.CuePoints:
		return volume(chime(rate, 90*time.Millisecond, 880, 1320), 0.3)
	default:
		return beep.Silence(0)
	}
}

// renderCues synthesizes every cue into a replayable buffer.
func renderCues(rate beep.SampleRate) [audio.CueCount]*beep.Buffer {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	var bufs [audio.CueCount]*beep.Buffer
	for cue := audio.Cue(0); cue < audio.CueCount; cue++ {
		buf := beep.NewBuffer(format)
		buf.Append(cueStreamer(rate, cue))
		bufs[cue] = buf
	}
	return bufs
}

// melody loops a short bass line forever.
type melody struct {
	rate     beep.SampleRate
	notes    []float64
	noteLen  int
	position int
	phase    float64
}

func newMelody(rate beep.SampleRate) *melody {
	return &melody{
		rate:    rate,
		notes:   []float64{110, 98, 87.31, 82.41},
		noteLen: rate.N(500 * time.Millisecond),
	}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := m.notes[(m.position/m.noteLen)%len(m.notes)]
		t := float64(m.position%m.noteLen) / float64(m.noteLen)

		val := math.Sin(2*math.Pi*m.phase) * math.Exp(-3*t) * 0.15
		samples[i][0] = val
		samples[i][1] = val

		m.phase += note / float64(m.rate)
		m.phase -= math.Floor(m.phase)
		m.position = (m.position + 1) % (m.noteLen * len(m.notes))
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }
