package audio

import "github.com/vovakirdan/skyfall/internal/sim"

// Cues is the part of a sound player the games trigger.
type Cues interface {
	PlayCatch()
	PlayHit()
}

// Listener turns simulation events into sound cues.
type Listener struct {
	sim.NopListener
	cues Cues
}

// NewListener creates a listener that plays cues on catches and hits.
func NewListener(c Cues) *Listener {
	return &Listener{cues: c}
}

// Caught plays the catch blip.
func (l *Listener) Caught(sim.Entity) {
	l.cues.PlayCatch()
}

// Hit plays the hit buzz.
func (l *Listener) Hit(sim.Entity) {
	l.cues.PlayHit()
}
