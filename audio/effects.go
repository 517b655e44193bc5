package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-runner/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping linearly from freq to sweepTo
type oscillator struct {
	freq     float64
	sweepTo  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another over its duration
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweepTo:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.sweepTo-o.freq)*progress

		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
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
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.totalSamples-e.releaseSamples, e.attackSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// createJumpSound is a short upward chirp
func createJumpSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.JumpSoundFreqLow, parameter.JumpSoundFreqHigh, parameter.JumpSoundDuration, WaveSquare, rate)
	return NewEnvelope(osc, parameter.JumpSoundDuration, parameter.JumpSoundAttack, parameter.JumpSoundRelease, rate)
}

// createLandSound is a soft low thud
func createLandSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.LandSoundFreq*2, parameter.LandSoundFreq, parameter.LandSoundDuration, WaveSine, rate)
	return NewEnvelope(osc, parameter.LandSoundDuration, parameter.LandSoundAttack, parameter.LandSoundRelease, rate)
}

// createCrashSound layers a noise burst over a falling saw rumble
func createCrashSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.CrashSoundDuration

	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)
	rumble := NewEnvelope(NewSweep(160, 50, d, WaveSaw, rate), d, parameter.CrashSoundAttack, parameter.CrashSoundRelease, rate)

	return beep.Mix(
		newVolume(noise, 0.6),
		newVolume(rumble, 0.4),
	)
}

// createMilestoneSound is a two-note chime (B5 then E6)
func createMilestoneSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, parameter.MilestoneNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.MilestoneNote1Duration, parameter.MilestoneSoundAttack, parameter.MilestoneNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.MilestoneNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.MilestoneNote2Duration, parameter.MilestoneSoundAttack, parameter.MilestoneNote2Release, rate)

	return beep.Seq(n1Shaped, n2Shaped)
}

// soundEffect returns the unity-gain streamer for st, nil for unknown types
func soundEffect(st SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case SoundJump:
		return createJumpSound(rate)
	case SoundLand:
		return createLandSound(rate)
	case SoundCrash:
		return createCrashSound(rate)
	case SoundMilestone:
		return createMilestoneSound(rate)
	default:
		return nil
	}
}

// soundDuration is the nominal length of st, used to size test reads
func soundDuration(st SoundType) time.Duration {
	switch st {
	case SoundJump:
		return parameter.JumpSoundDuration
	case SoundLand:
		return parameter.LandSoundDuration
	case SoundCrash:
		return parameter.CrashSoundDuration
	case SoundMilestone:
		return parameter.MilestoneNote1Duration + parameter.MilestoneNote2Duration
	default:
		return 0
	}
}
