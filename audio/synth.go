package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/plus3/towerdefense/game"
)

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

// Tone generates a wave starting at freq and sliding linearly to freq+sweep
// over duration.
func Tone(freq, sweep float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, sweep: sweep, length: rate.N(duration), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		progress := float64(o.position) / float64(o.length)
		o.phase += (o.freq + o.sweep*progress) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades its streamer out linearly over length samples.
type decay struct {
	streamer beep.Streamer
	position int
	length   int
}

func Decay(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, length: rate.N(duration)}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1 - float64(d.position)/float64(d.length)
		if gain < 0 {
			gain = 0
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// withVolume scales s by vol in [0, 1]; zero is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Effect builds a fresh streamer for sound. Streamers are single use.
func Effect(sound game.Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case game.SoundShot:
		d := 90 * time.Millisecond
		s = Decay(Tone(880, -440, d, WaveSquare, rate), d, rate)
	case game.SoundTargetDown:
		d := 250 * time.Millisecond
		s = beep.Mix(
			Decay(Tone(220, -160, d, WaveSaw, rate), d, rate),
			withVolume(Decay(Tone(0, 0, d, WaveNoise, rate), d, rate), 0.3),
		)
	case game.SoundBuild:
		note := 80 * time.Millisecond
		s = beep.Seq(
			Decay(Tone(523.25, 0, note, WaveSine, rate), note, rate),
			Decay(Tone(783.99, 0, 2*note, WaveSine, rate), 2*note, rate),
		)
	case game.SoundSpawn:
		d := 120 * time.Millisecond
		s = Decay(Tone(300, 300, d, WaveSine, rate), d, rate)
	default:
		s = beep.Silence(0)
	}
	return withVolume(s, volume)
}
