package audio

import (
	"math"
	"sync"

	"flappy/internal/util"
)

// voice is one playing instance of a sample buffer
type voice struct {
	samples  []float32
	position int
	volume   float32
}

// Mixer sums active voices into interleaved output buffers. Play and Mix
// may be called from different goroutines.
type Mixer struct {
	mu        sync.Mutex
	channels  int
	volume    float32
	maxVoices int
	voices    []*voice
}

// NewMixer creates a mixer for the given channel count and master volume,
// clamped to [0, 1]
func NewMixer(channels int, volume float64) *Mixer {
	if channels <= 0 {
		channels = 2
	}
	return &Mixer{
		channels:  channels,
		volume:    float32(util.Clamp(volume, 0, 1)),
		maxVoices: 16,
	}
}

// Play starts a voice. When the mixer is full the oldest voice is dropped.
func (m *Mixer) Play(samples []float32, volume float32) {
	if len(samples) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.voices) >= m.maxVoices {
		m.voices = m.voices[1:]
	}
	m.voices = append(m.voices, &voice{samples: samples, volume: volume})
}

// SetVolume sets the master volume, clamped to [0, 1]
func (m *Mixer) SetVolume(volume float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = float32(util.Clamp(volume, 0, 1))
}

// Active returns the number of voices still playing
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Stop silences every voice
func (m *Mixer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voices = nil
}

// Mix fills out with the next len(out)/channels frames. Mono voices are
// copied to every channel. Finished voices are removed.
func (m *Mixer) Mix(out []float32) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range out {
		out[i] = 0
	}

	alive := m.voices[:0]
	for _, v := range m.voices {
		for i := 0; i+m.channels <= len(out) && v.position < len(v.samples); i += m.channels {
			sample := v.samples[v.position] * v.volume * m.volume
			for c := 0; c < m.channels; c++ {
				out[i+c] += sample
			}
			v.position++
		}
		if v.position < len(v.samples) {
			alive = append(alive, v)
		}
	}
	for i := len(alive); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = alive

	for i := range out {
		out[i] = softClip(out[i])
	}
}

// softClip is linear up to the knee and saturates smoothly towards +-1
func softClip(x float32) float32 {
	const knee = 0.5
	a := math.Abs(float64(x))
	if a <= knee {
		return x
	}
	y := knee + (1-knee)*math.Tanh((a-knee)/(1-knee))
	return float32(math.Copysign(y, float64(x)))
}
