// Package sound plays the game's cues and music on the system audio device.
//
// Cues are synthesized at startup and mixed on a small set of voices.
// Named channels map to fixed voices so a new cue on a channel cuts off the
// previous one; ChannelAny takes a free voice outside the named range.
package sound

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/invaders/internal/audio"
)

var _ audio.Player = (*Speaker)(nil)

const sampleRate = beep.SampleRate(44100)

type voice struct {
	ctrl *beep.Ctrl
	done bool
}

func (v *voice) busy() bool {
	return v.ctrl != nil && v.ctrl.Streamer != nil && !v.done
}

// Speaker mixes cues onto the system audio device.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	cues        [audio.CueCount]*beep.Buffer
	voices      [audio.Voices]*voice
	music       *beep.Ctrl
	lock        func()
	unlock      func()
	release     func() // Detaches from the device
	initialized bool
}

// NewSpeaker synthesizes the cue set. Volume is a linear gain in [0, 1].
// Nothing is audible until Init succeeds.
func NewSpeaker(volume float64) *Speaker {
	mixer := &beep.Mixer{}
	master := &effects.Volume{Streamer: mixer, Base: 2}
	if volume <= 0 {
		master.Silent = true
	} else {
		master.Volume = math.Log2(math.Min(volume, 1))
	}

	s := &Speaker{
		rate:   sampleRate,
		mixer:  mixer,
		master: master,
		cues:   renderCues(sampleRate),
		lock:   func() {},
		unlock: func() {},
	}
	for i := range s.voices {
		s.voices[i] = &voice{}
	}
	return s
}

// Init opens the audio device and starts playback of the mixer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(s.master)
	s.lock, s.unlock = speaker.Lock, speaker.Unlock
	s.release = func() {
		speaker.Clear()
		speaker.Close()
	}
	s.initialized = true
	return nil
}

// voiceFor picks the voice a cue on ch should use. Named channels always get
// their own voice; audio.ChannelAny returns -1 when every shared voice is busy.
func (s *Speaker) voiceFor(ch audio.Channel) int {
	if ch >= 0 && int(ch) < audio.NamedVoices {
		return int(ch)
	}
	for i := audio.NamedVoices; i < audio.Voices; i++ {
		if !s.voices[i].busy() {
			return i
		}
	}
	return -1
}

// Play implements audio.Player. A cue on a named channel interrupts whatever that
// channel was playing.
func (s *Speaker) Play(cue audio.Cue, ch audio.Channel) {
	if cue < 0 || cue >= audio.CueCount {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
	defer s.unlock()

	idx := s.voiceFor(ch)
	if idx < 0 {
		return
	}
	v := s.voices[idx]
	if v.ctrl != nil {
		// Nil streamer drains the old ctrl out of the mixer.
		v.ctrl.Streamer = nil
	}

	next := &voice{}
	buf := s.cues[cue]
	next.ctrl = &beep.Ctrl{Streamer: beep.Seq(
		buf.Streamer(0, buf.Len()),
		beep.Callback(func() { next.done = true }),
	)}
	s.voices[idx] = next
	s.mixer.Add(next.ctrl)
}

// PlayMusic starts the looping background tune if it is not already playing.
func (s *Speaker) PlayMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
	defer s.unlock()

	if s.music != nil && !s.music.Paused {
		return
	}
	if s.music != nil {
		s.music.Paused = false
		return
	}
	s.music = &beep.Ctrl{Streamer: newMelody(s.rate)}
	s.mixer.Add(s.music)
}

// StopMusic pauses the background tune.
func (s *Speaker) StopMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
	defer s.unlock()

	if s.music != nil {
		s.music.Paused = true
	}
}

// Close silences every voice and detaches from the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lock()
	s.mixer.Clear()
	for i := range s.voices {
		s.voices[i] = &voice{}
	}
	s.music = nil
	s.unlock()

	if s.initialized {
		s.release()
		s.initialized = false
	}
}
