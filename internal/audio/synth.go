package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Output format: 44.1 kHz, stereo, signed 16-bit.
const (
	sampleRate    = beep.SampleRate(44100)
	bytesPerFrame = 4
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator streams one waveform for a fixed number of samples.
type oscillator struct {
	freq   float64
	phase  float64
	pos    int
	length int
	wave   wave
}

func newOscillator(freq float64, d time.Duration, w wave) beep.Streamer {
	return &oscillator{freq: freq, length: sampleRate.N(d), wave: w}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			v = -1
			if o.phase < 0.5 {
				v = 1
			}
		case waveSaw:
			v = 2 * (o.phase - 0.5)
		case waveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over the last release
// samples of its length.
type envelope struct {
	s       beep.Streamer
	pos     int
	length  int
	attack  int
	release int
}

func newEnvelope(s beep.Streamer, length, attack, release time.Duration) beep.Streamer {
	return &envelope{
		s:       s,
		length:  sampleRate.N(length),
		attack:  sampleRate.N(attack),
		release: sampleRate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.length - e.pos; left < e.release {
			gain = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// tone is one shaped note.
func tone(freq float64, d time.Duration, w wave, attack, release time.Duration) beep.Streamer {
	return newEnvelope(newOscillator(freq, d, w), d, attack, release)
}

// volume scales a stream linearly; 0 silences it.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// render synthesizes s into a replayable buffer.
func render(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}
