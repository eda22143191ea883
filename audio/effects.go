package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/orrery/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, sweeping linearly from freq to freqEnd
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to freqEnd over duration
func NewSweep(freq, freqEnd float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		freqEnd:  freqEnd,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.freqEnd-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release, truncating at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateFlightSound generates a rising whoosh: noise over a low sine glide
func CreateFlightSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.FlightCueDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d,
		constants.FlightCueAttack, constants.FlightCueRelease, rate)
	glide := NewEnvelope(NewSweep(110, 440, d, WaveSine, rate), d,
		constants.FlightCueAttack, constants.FlightCueRelease, rate)

	mixed := beep.Mix(
		newVolume(noise, 0.35),
		newVolume(glide, 0.65),
	)

	vol := cfg.EffectVolumes[SoundFlight] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateArrivalSound generates a soft two-partial chime (E5 plus octave)
func CreateArrivalSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ArrivalChimeDuration

	var partials []beep.Streamer
	for _, p := range []struct {
		freq, gain float64
	}{
		{659.25, 0.7},
		{1318.51, 0.3},
	} {
		tone, err := generators.SineTone(rate, p.freq)
		if err != nil {
			// Frequency above Nyquist for a low sample rate, drop the partial
			continue
		}
		shaped := NewEnvelope(beep.Take(rate.N(d), tone), d,
			constants.ArrivalChimeAttack, constants.ArrivalChimeRelease, rate)
		partials = append(partials, newVolume(shaped, p.gain))
	}
	if len(partials) == 0 {
		return generators.Silence(rate.N(d))
	}

	vol := cfg.EffectVolumes[SoundArrival] * cfg.MasterVolume
	return newVolume(beep.Mix(partials...), vol)
}

// GetSoundEffect returns the streamer for the given cue, nil if unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundFlight:
		return CreateFlightSound(cfg)
	case SoundArrival:
		return CreateArrivalSound(cfg)
	default:
		return nil
	}
}
