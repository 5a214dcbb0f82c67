package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Game     GameConfig     `yaml:"game"`
	Assets   AssetManifest  `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig contains window and frame pacing settings
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	FrameRate  int    `yaml:"framerate"` // 0 disables the frame cap
	Title      string `yaml:"title"`
}

// AudioConfig contains audio-related configuration
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// GameConfig holds every tuning constant of the simulation. All distances are
// in world units where the visible play field spans [-1, 1] on both axes.
type GameConfig struct {
	Speed    float64 `yaml:"speed"`     // background and pipe scroll per tick
	FallRate float64 `yaml:"fall_rate"` // bird drop per tick without impulse
	RiseRate float64 `yaml:"rise_rate"` // bird climb per tick while impulse is pending
	Floor    float64 `yaml:"floor"`
	Ceiling  float64 `yaml:"ceiling"`

	FlapImpulse    int     `yaml:"flap_impulse"`     // ticks of climb added per flap
	MaxFlapImpulse int     `yaml:"max_flap_impulse"` // saturation of the pending impulse
	DiveDepth      float64 `yaml:"dive_depth"`       // drop below the flap point before the bird tilts

	TileWidth float64 `yaml:"tile_width"`

	PipeCount      int     `yaml:"pipe_count"`
	PipeStartX     float64 `yaml:"pipe_start_x"`
	PipeSpacing    float64 `yaml:"pipe_spacing"`
	PipeWrapX      float64 `yaml:"pipe_wrap_x"`
	PipeSpawnX     float64 `yaml:"pipe_spawn_x"`
	PipeBandRange  int     `yaml:"pipe_band_range"`  // y = (rand % range + offset) / 100
	PipeBandOffset int     `yaml:"pipe_band_offset"` // see PipeBandRange

	BirdX            float64 `yaml:"bird_x"`
	ScoringHalfWidth float64 `yaml:"scoring_half_width"`
	SafeLow          float64 `yaml:"safe_low"`
	SafeHigh         float64 `yaml:"safe_high"`
	ScoreDivisor     int     `yaml:"score_divisor"`

	TickRate         int   `yaml:"tick_rate"`
	MaxTicksPerFrame int   `yaml:"max_ticks_per_frame"`
	Seed             int64 `yaml:"seed"` // 0 means seed from the clock
	StartInMenu      bool  `yaml:"start_in_menu"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stdout only
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FrameRate:  60,
			Title:      "Flappy",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Game:   DefaultGameConfig(),
		Assets: DefaultAssetManifest(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultGameConfig returns the tuning the game was balanced with.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Speed:    0.002,
		FallRate: 0.005,
		RiseRate: 0.01,
		Floor:    -0.77,
		Ceiling:  0.9,

		FlapImpulse:    25,
		MaxFlapImpulse: 50,
		DiveDepth:      0.15,

		TileWidth: 4.0,

		PipeCount:      8,
		PipeStartX:     1.5,
		PipeSpacing:    0.5,
		PipeWrapX:      -2.5,
		PipeSpawnX:     1.5,
		PipeBandRange:  50,
		PipeBandOffset: 50,

		BirdX:            0,
		ScoringHalfWidth: 0.1,
		SafeLow:          0.6,
		SafeHigh:         0.9,
		ScoreDivisor:     100,

		TickRate:         120,
		MaxTicksPerFrame: 12,
		StartInMenu:      true,
	}
}

// LoadConfig loads the configuration from a file. When the file is missing
// or malformed the defaults are returned together with the error.
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("config file not found, using defaults: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("error parsing config: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// Validate reports every setting that would break the simulation.
func (c *Config) Validate() error {
	g := c.Game
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: invalid window size %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio: volume %.2f outside [0, 1]", c.Audio.Volume))
	}
	if g.Speed <= 0 {
		errs = append(errs, errors.New("game: speed must be positive"))
	}
	if g.FallRate <= 0 || g.RiseRate <= 0 {
		errs = append(errs, errors.New("game: fall_rate and rise_rate must be positive"))
	}
	if g.Floor >= g.Ceiling {
		errs = append(errs, fmt.Errorf("game: floor %.2f must be below ceiling %.2f", g.Floor, g.Ceiling))
	}
	if g.FlapImpulse <= 0 || g.MaxFlapImpulse < g.FlapImpulse {
		errs = append(errs, errors.New("game: need 0 < flap_impulse <= max_flap_impulse"))
	}
	if g.TileWidth <= 0 {
		errs = append(errs, errors.New("game: tile_width must be positive"))
	}
	if g.PipeCount <= 0 {
		errs = append(errs, errors.New("game: pipe_count must be positive"))
	}
	if g.PipeWrapX >= g.PipeSpawnX {
		errs = append(errs, errors.New("game: pipe_wrap_x must be left of pipe_spawn_x"))
	}
	if g.PipeBandRange <= 0 {
		errs = append(errs, errors.New("game: pipe_band_range must be positive"))
	}
	if g.SafeLow >= g.SafeHigh {
		errs = append(errs, errors.New("game: safe_low must be below safe_high"))
	}
	if g.ScoreDivisor <= 0 {
		errs = append(errs, errors.New("game: score_divisor must be positive"))
	}
	if g.TickRate <= 0 || g.MaxTicksPerFrame <= 0 {
		errs = append(errs, errors.New("game: tick_rate and max_ticks_per_frame must be positive"))
	}
	return errors.Join(errs...)
}

// Environment variables read by ApplyEnv.
const (
	EnvSeed       = "FLAPPY_SEED"
	EnvLogLevel   = "FLAPPY_LOG_LEVEL"
	EnvFullscreen = "FLAPPY_FULLSCREEN"
	EnvAudio      = "FLAPPY_AUDIO"
)

// ApplyEnv overrides selected settings from the process environment.
// Unparseable values are reported and leave the setting untouched.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var errs []error
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			c.Game.Seed = seed
		}
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvFullscreen); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFullscreen, err))
		} else {
			c.Graphics.Fullscreen = b
		}
	}
	if v, ok := lookup(EnvAudio); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvAudio, err))
		} else {
			c.Audio.Enabled = b
		}
	}
	return errors.Join(errs...)
}
