package sim

import "time"

// RandSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Clock reports the current time. Used by wall-clock spawn policies.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the monotonic system clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Spawner decides, once per frame, whether a new entity appears.
type Spawner interface {
	// ShouldSpawn is called once per running frame with the frame's delta
	// time in seconds.
	ShouldSpawn(dt float64) bool

	// Reset restarts any internal timer. Called on every round reset.
	Reset()
}

// PoissonSpawner spawns with probability dt * rate each frame, which
// approximates a Poisson process of rate entities per second for small dt.
// Long frames under-spawn; the draw is never repeated to catch up.
type PoissonSpawner struct {
	rng  RandSource
	rate float64
}

// NewPoissonSpawner creates a probabilistic spawner.
func NewPoissonSpawner(rng RandSource, rate float64) *PoissonSpawner {
	return &PoissonSpawner{rng: rng, rate: rate}
}

// ShouldSpawn draws once and compares against dt * rate.
func (s *PoissonSpawner) ShouldSpawn(dt float64) bool {
	return s.rng.Float64() < dt*s.rate
}

// Reset is a no-op; the policy is memoryless.
func (s *PoissonSpawner) Reset() {}

// Rate returns the expected spawns per second.
func (s *PoissonSpawner) Rate() float64 {
	return s.rate
}

// IntervalSpawner spawns once every interval of wall-clock time,
// independent of frame delta.
type IntervalSpawner struct {
	clock     Clock
	interval  time.Duration
	last      time.Time
	immediate bool // spawn on the first frame after Reset
	primed    bool
}

// IntervalOption configures an IntervalSpawner.
type IntervalOption func(*IntervalSpawner)

// SpawnImmediately makes the spawner fire on the first frame after every
// Reset instead of waiting a full interval.
func SpawnImmediately() IntervalOption {
	return func(s *IntervalSpawner) {
		s.immediate = true
	}
}

// NewIntervalSpawner creates a fixed-cadence spawner. The timer starts now.
func NewIntervalSpawner(clock Clock, interval time.Duration, opts ...IntervalOption) *IntervalSpawner {
	s := &IntervalSpawner{clock: clock, interval: interval}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// ShouldSpawn fires when more than one interval has passed since the last
// spawn, and restarts the timer from now.
func (s *IntervalSpawner) ShouldSpawn(_ float64) bool {
	now := s.clock.Now()
	if s.primed || now.Sub(s.last) > s.interval {
		s.primed = false
		s.last = now
		return true
	}
	return false
}

// Reset restarts the timer from now.
func (s *IntervalSpawner) Reset() {
	s.last = s.clock.Now()
	s.primed = s.immediate
}

// LastSpawn returns the time the timer was last restarted.
func (s *IntervalSpawner) LastSpawn() time.Time {
	return s.last
}
