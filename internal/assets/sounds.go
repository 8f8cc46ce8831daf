package assets

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is shared with the audio context.
const SampleRate = beep.SampleRate(44100)

// Format is 16 bit stereo, the layout ebiten's audio players expect.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// --- Sound bank ---

var soundBank = map[string]func() beep.Streamer{
	SoundWallBounce1: func() beep.Streamer {
		return withVolume(blip(660, 60*time.Millisecond, waveSine), 0.5)
	},
	SoundWallBounce2: func() beep.Streamer {
		return withVolume(blip(880, 50*time.Millisecond, waveSquare), 0.25)
	},
	SoundEatCandy: func() beep.Streamer {
		return withVolume(beep.Seq(
			blip(523.25, 70*time.Millisecond, waveSquare),
			blip(783.99, 110*time.Millisecond, waveSquare),
		), 0.3)
	},
	SoundEndFart: func() beep.Streamer {
		return withVolume(newSweep(150, 55, 700*time.Millisecond), 0.6)
	},
	MusicTitle: func() beep.Streamer {
		// Half of the pulse period the title animation is tuned to.
		return melody([]float64{261.63, 329.63, 392.00, 523.25, 392.00, 329.63, 293.66, 246.94}, 567*time.Millisecond, 0.2)
	},
	MusicGameplay: func() beep.Streamer {
		return melody([]float64{
			440.00, 523.25, 659.25, 523.25, 440.00, 523.25, 659.25, 783.99,
			392.00, 493.88, 587.33, 493.88, 392.00, 493.88, 587.33, 739.99,
		}, 150*time.Millisecond, 0.2)
	},
}

// --- Generators ---

type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
	wave     waveType
	rng      *rand.Rand
}

func newOscillator(freq float64, d time.Duration, wave waveType) *oscillator {
	return &oscillator{
		freq:     freq,
		duration: SampleRate.N(d),
		wave:     wave,
		rng:      rand.New(rand.NewSource(int64(freq * 1000))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}
		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case waveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sweep glides a rough saw tone from one pitch to another, mixed with noise.
type sweep struct {
	from, to float64
	phase    float64
	position int
	duration int
	noise    *oscillator
}

func newSweep(from, to float64, d time.Duration) *sweep {
	return &sweep{
		from:     from,
		to:       to,
		duration: SampleRate.N(d),
		noise:    newOscillator(1, d, waveNoise),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.duration)
		freq := s.from + (s.to-s.from)*t
		saw := 2*s.phase - 1
		noise := s.noise.rng.Float64()*2 - 1
		val := (0.7*saw + 0.3*noise) * (1 - t)

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(SampleRate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a stream of known length.
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total int, attack, release time.Duration) *envelope {
	return &envelope{
		streamer: s,
		total:    total,
		attack:   SampleRate.N(attack),
		release:  SampleRate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; e.release > 0 && left < e.release {
			gain = math.Min(gain, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

func blip(freq float64, d time.Duration, wave waveType) beep.Streamer {
	osc := newOscillator(freq, d, wave)
	return newEnvelope(osc, osc.duration, 5*time.Millisecond, d/2)
}

func tone(freq float64, d time.Duration) beep.Streamer {
	n := SampleRate.N(d)
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return newEnvelope(newOscillator(freq, d, waveSine), n, 10*time.Millisecond, d/3)
	}
	return newEnvelope(beep.Take(n, sine), n, 10*time.Millisecond, d/3)
}

func melody(notes []float64, step time.Duration, vol float64) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		// a fifth above, quiet, for some body
		parts = append(parts, beep.Mix(tone(f, step), withVolume(tone(f*1.5, step), 0.3)))
	}
	return withVolume(beep.Seq(parts...), vol)
}

// withVolume scales by a linear gain. Log2(0) is -Inf, so zero is silence.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
