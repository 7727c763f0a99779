package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave with a linear frequency glide.
type oscillator struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	volume   float64
	rng      *rand.Rand
}

// NewTone creates a tone that glides from one frequency to another and
// fades out linearly over its duration.
func NewTone(from, to float64, duration time.Duration, wave WaveType, volume float64, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		volume:   volume,
		rng:      rand.New(rand.NewSource(int64(from*1000 + to))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		progress := float64(o.position) / float64(o.duration)
		val *= o.volume * (1 - progress)

		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fallbackTone synthesizes the stand-in sound for a cue without a file.
func fallbackTone(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueShoot:
		return NewTone(1200, 600, 70*time.Millisecond, WaveSquare, 0.15, rate)
	case CueHit:
		return NewTone(300, 80, 140*time.Millisecond, WaveNoise, 0.3, rate)
	case CueLose:
		return NewTone(440, 55, 900*time.Millisecond, WaveSaw, 0.25, rate)
	case CueVictory:
		return beep.Seq(
			NewTone(523, 523, 150*time.Millisecond, WaveSine, 0.3, rate),
			NewTone(659, 659, 150*time.Millisecond, WaveSine, 0.3, rate),
			NewTone(784, 784, 150*time.Millisecond, WaveSine, 0.3, rate),
			NewTone(1047, 1047, 450*time.Millisecond, WaveSine, 0.3, rate),
		)
	default:
		return beep.Silence(0)
	}
}
