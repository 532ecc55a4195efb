// Package audio names the game's sound cues and the channels they play on.
// The simulation only sees Player; devices live in platform/sound.
package audio

// Cue identifies a sound effect.
type Cue int

const (
	CuePlayerFire Cue = iota
	CueAlienFire
	CuePlayerDie
	CueAlienDie
	CuePoints

	// CueCount is the number of defined cues.
	CueCount
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CuePlayerFire:
		return "PlayerFire"
	case CueAlienFire:
		return "AlienFire"
	case CuePlayerDie:
		return "PlayerDie"
	case CueAlienDie:
		return "AlienDie"
	case CuePoints:
		return "Points"
	default:
		return "Unknown"
	}
}

// Channel selects the voice a cue plays on.
type Channel int

const (
	ChannelAny       Channel = -1
	ChannelPlayer    Channel = 0
	ChannelAlienFire Channel = 1
	ChannelPoints    Channel = 2
)

const (
	// Voices is the number of simultaneously playing cues.
	Voices = 8
	// NamedVoices are reserved for the explicit channels above.
	NamedVoices = 3
)

// Player triggers cues. Calls never block and report nothing back.
type Player interface {
	Play(cue Cue, ch Channel)
}

// Silent discards every cue.
type Silent struct{}

// Play implements Player.
func (Silent) Play(Cue, Channel) {}

// Event is one recorded Play call.
type Event struct {
	Cue     Cue
	Channel Channel
}

// Recorder keeps every cue it is asked to play, in order.
type Recorder struct {
	Events []Event
}

// Play implements Player.
func (r *Recorder) Play(cue Cue, ch Channel) {
	r.Events = append(r.Events, Event{Cue: cue, Channel: ch})
}

// Count returns how many times a cue was played.
func (r *Recorder) Count(cue Cue) int {
	n := 0
	for _, e := range r.Events {
		if e.Cue == cue {
			n++
		}
	}
	return n
}

// Reset forgets all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
