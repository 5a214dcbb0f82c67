package audio

import (
	"math"

	noise "flappy/internal/math"
	"flappy/internal/util"
)

// DefaultSampleRate is the output rate of the PortAudio stream
const DefaultSampleRate = 44100

// Sound identifies one of the procedural effects
type Sound string

const (
	SoundFlap  Sound = "flap"
	SoundScore Sound = "score"
	SoundCrash Sound = "crash"
)

// Sounds lists every effect the synth can render
var Sounds = []Sound{SoundFlap, SoundScore, SoundCrash}

// Synth renders the game's sound effects as mono float32 samples
type Synth struct {
	sampleRate int
}

// NewSynth creates a synth for the given sample rate
func NewSynth(sampleRate int) *Synth {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Synth{sampleRate: sampleRate}
}

// SampleRate returns the rate the synth renders at
func (s *Synth) SampleRate() int {
	return s.sampleRate
}

// Generate renders a sound. The same seed always yields the same samples.
func (s *Synth) Generate(sound Sound, seed int64) []float32 {
	ng := noise.NewNoiseGenerator(seed)

	var samples []float32
	switch sound {
	case SoundFlap:
		samples = s.generateFlap(ng)
	case SoundScore:
		samples = s.generateScore()
	case SoundCrash:
		samples = s.generateCrash(ng)
	default:
		return nil
	}

	normalizeAudio(samples)
	return samples
}

// GenerateAll renders every effect once
func (s *Synth) GenerateAll(seed int64) map[Sound][]float32 {
	bank := make(map[Sound][]float32, len(Sounds))
	for i, sound := range Sounds {
		bank[sound] = s.Generate(sound, seed+int64(i))
	}
	return bank
}

func (s *Synth) buffer(durationSeconds float64) []float32 {
	return make([]float32, int(durationSeconds*float64(s.sampleRate)))
}

// generateFlap is a short rising chirp with a breathy attack
func (s *Synth) generateFlap(ng *noise.NoiseGenerator) []float32 {
	const duration = 0.09
	samples := s.buffer(duration)
	attackTime := 0.005
	decayTime := 0.03

	phase := 0.0
	for i := range samples {
		t := float64(i) / float64(s.sampleRate)
		freq := util.Map(t, 0, duration, 420, 888)
		phase += baseFreqToAngular(freq) / float64(s.sampleRate)

		envelope := math.Exp(-t / decayTime)
		if t < attackTime {
			envelope = t / attackTime
		}

		tone := math.Sin(phase)
		breath := ng.White() * 0.25 * math.Exp(-t/0.01)
		samples[i] = float32((tone + breath) * envelope)
	}
	return samples
}

// generateScore is a two-note ding
func (s *Synth) generateScore() []float32 {
	samples := s.buffer(0.25)
	split := 0.07

	for i := range samples {
		t := float64(i) / float64(s.sampleRate)
		freq := 988.0
		local := t
		if t >= split {
			freq = 1319.0
			local = t - split
		}
		envelope := math.Exp(-local / 0.06)
		tone := math.Sin(baseFreqToAngular(freq)*t) + 0.3*math.Sin(baseFreqToAngular(freq*2)*t)
		samples[i] = float32(tone * envelope)
	}
	return samples
}

// generateCrash is a low noise rumble with a falling thud
func (s *Synth) generateCrash(ng *noise.NoiseGenerator) []float32 {
	const duration = 0.5
	samples := s.buffer(duration)

	lowpass := 0.0
	for i := range samples {
		t := float64(i) / float64(s.sampleRate)
		envelope := math.Exp(-t / 0.15)

		rumble := ng.FBM1D(t*180.0, 4, 2.0, 0.5)
		lowpass += (ng.White() - lowpass) * 0.08
		thud := math.Sin(baseFreqToAngular(util.Lerp(110, 50, t/duration)) * t)

		samples[i] = float32((rumble*0.6 + lowpass*0.8 + thud*0.7) * envelope)
	}
	return samples
}

// normalizeAudio normalizes audio samples to avoid clipping
func normalizeAudio(samples []float32) {
	maxAmp := float32(0)
	for _, sample := range samples {
		if a := float32(math.Abs(float64(sample))); a > maxAmp {
			maxAmp = a
		}
	}
	if maxAmp == 0 {
		return
	}

	// Scale down anything hot, and lift very quiet effects
	if maxAmp > 1.0 || maxAmp < 0.1 {
		gain := float32(1.0) / maxAmp
		if maxAmp < 0.1 {
			gain = 0.7 / maxAmp
		}
		for i := range samples {
			samples[i] *= gain
		}
	}
}

// baseFreqToAngular converts a frequency in Hz to angular frequency
func baseFreqToAngular(freqHz float64) float64 {
	return 2.0 * math.Pi * freqHz
}
