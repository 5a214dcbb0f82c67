package engine

import (
	"fmt"
	"sync"

	"github.com/gordonklaus/portaudio"

	"flappy/internal/logger"
	"flappy/pkg/audio"
	"flappy/pkg/config"
	"flappy/pkg/game"
)

const (
	framesPerBuffer = 512
	numChannels     = 2
)

// AudioEngine plays the synthesized effects through a PortAudio stream
type AudioEngine struct {
	config config.AudioConfig
	logger *logger.Logger
	stream *portaudio.Stream
	mixer  *audio.Mixer
	bank   map[audio.Sound][]float32

	mutex     sync.Mutex
	isRunning bool
}

// NewAudioEngine initializes PortAudio and starts the output stream
func NewAudioEngine(cfg config.AudioConfig, log *logger.Logger, seed int64) (*AudioEngine, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}

	synth := audio.NewSynth(audio.DefaultSampleRate)
	ae := &AudioEngine{
		config: cfg,
		logger: log,
		mixer:  audio.NewMixer(numChannels, cfg.Volume),
		bank:   synth.GenerateAll(seed),
	}

	if err := ae.initAudio(); err != nil {
		portaudio.Terminate()
		return nil, err
	}

	log.Debugf("Audio stream running at %d Hz, %d frames per buffer", audio.DefaultSampleRate, framesPerBuffer)
	return ae, nil
}

// initAudio opens and starts the output stream
func (ae *AudioEngine) initAudio() error {
	var err error
	ae.stream, err = portaudio.OpenDefaultStream(0, numChannels, float64(audio.DefaultSampleRate), framesPerBuffer, ae.audioCallback)
	if err != nil {
		return fmt.Errorf("failed to open audio stream: %w", err)
	}

	if err := ae.stream.Start(); err != nil {
		ae.stream.Close()
		return fmt.Errorf("failed to start audio stream: %w", err)
	}

	ae.isRunning = true
	return nil
}

// audioCallback is called by PortAudio to fill the audio buffer
func (ae *AudioEngine) audioCallback(out []float32) {
	ae.mixer.Mix(out)
}

// Play starts one of the effects
func (ae *AudioEngine) Play(sound audio.Sound, volume float32) {
	samples, ok := ae.bank[sound]
	if !ok {
		ae.logger.Warnf("Unknown sound %q", sound)
		return
	}
	ae.mixer.Play(samples, volume)
}

// Attach plays effects in response to game events
func (ae *AudioEngine) Attach(bus *game.EventBus) {
	bus.Subscribe(game.EventFlap, func(game.Event) { ae.Play(audio.SoundFlap, 0.5) })
	bus.Subscribe(game.EventScore, func(game.Event) { ae.Play(audio.SoundScore, 0.7) })
	bus.Subscribe(game.EventCrash, func(game.Event) { ae.Play(audio.SoundCrash, 1.0) })
	bus.Subscribe(game.EventReset, func(game.Event) { ae.mixer.Stop() })
}

// Shutdown stops the stream and releases PortAudio
func (ae *AudioEngine) Shutdown() {
	ae.mutex.Lock()
	defer ae.mutex.Unlock()

	if !ae.isRunning {
		return
	}
	ae.isRunning = false

	if err := ae.stream.Stop(); err != nil {
		ae.logger.Warnf("Failed to stop audio stream: %v", err)
	}
	if err := ae.stream.Close(); err != nil {
		ae.logger.Warnf("Failed to close audio stream: %v", err)
	}
	portaudio.Terminate()
}
