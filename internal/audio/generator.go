package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// BlipGenerator generates a short upward chirp.
type BlipGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	length   int
}

// NewBlipGenerator creates a chirp sweeping from one frequency to another
// over 90ms.
func NewBlipGenerator(sr beep.SampleRate, from, to float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, from: from, to: to, length: sr.N(time.Millisecond * 90)}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := math.Min(float64(g.pos)/float64(g.length), 1)

		freq := g.from + (g.to-g.from)*progress
		envelope := 1 - progress
		sample := 0.25 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Odd harmonics for a harsh edge
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.06 * math.Sin(2*math.Pi*g.freq*5*t)

		envelope := math.Min(t/0.01, 1) * math.Exp(-t*6)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// RainGenerator generates endless soft noise with random droplet ticks.
type RainGenerator struct {
	seed  int64
	lp    float64 // one-pole low-pass state
	drop  float64 // decaying droplet envelope
	decay float64
}

// NewRainGenerator creates a rain bed generator. The seed makes the noise
// reproducible.
func NewRainGenerator(sr beep.SampleRate, seed int64) *RainGenerator {
	return &RainGenerator{
		seed:  seed,
		decay: math.Exp(-1 / (0.004 * float64(sr))),
	}
}

func (g *RainGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		g.lp += 0.08 * (noise - g.lp)

		// Roughly one droplet every few thousand samples
		if g.seed%3001 == 0 {
			g.drop = 1
		}
		g.drop *= g.decay

		sample := 0.18*g.lp + 0.12*g.drop*noise

		samples[i][0] = sample
		samples[i][1] = sample
	}
	return len(samples), true
}

func (g *RainGenerator) Err() error {
	return nil
}
