package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/google/uuid"

	"flappy/internal/logger"
	"flappy/pkg/config"
	"flappy/pkg/game"
	"flappy/pkg/scene"
)

// Options select how the engine runs
type Options struct {
	// Headless runs without a window or audio, steered by the autopilot,
	// and prints frames as text to Output.
	Headless bool
	Output   io.Writer
	Columns  int
	Rows     int

	// Frames stops the loop after this many frames; 0 runs until quit.
	Frames int
}

// Engine represents the main game engine
type Engine struct {
	window      *glfw.Window
	config      *config.Config
	logger      *logger.Logger
	options     Options
	game        *game.Game
	renderer    Renderer
	input       *InputHandler
	audioEngine *AudioEngine

	isRunning  bool
	lastUpdate time.Time
	frameRate  int
	frames     int
	width      int
	height     int
}

// NewEngine creates a new game engine instance
func NewEngine(cfg *config.Config, log *logger.Logger, opts Options) (*Engine, error) {
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// every line from this engine carries the session id
	log = log.WithField("session", uuid.NewString())
	log.WithField("seed", seed).Info("Starting new session")

	e := &Engine{
		config:    cfg,
		logger:    log,
		options:   opts,
		game:      game.NewGame(cfg.Game, rand.New(rand.NewSource(seed))),
		frameRate: cfg.Graphics.FrameRate,
		width:     cfg.Graphics.Width,
		height:    cfg.Graphics.Height,
	}
	e.logEvents()

	if opts.Headless {
		e.initHeadless()
		return e, nil
	}

	if err := e.initWindow(); err != nil {
		return nil, err
	}

	renderer, err := NewOpenGLRenderer(cfg, log, e.width, e.height)
	if err != nil {
		e.window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL renderer: %w", err)
	}
	e.renderer = renderer
	e.input = NewInputHandler(e.window, nil)

	if cfg.Audio.Enabled {
		audioEngine, err := NewAudioEngine(cfg.Audio, log, seed)
		if err != nil {
			log.Warnf("Audio disabled: %v", err)
		} else {
			audioEngine.Attach(e.game.Events())
			e.audioEngine = audioEngine
		}
	}

	return e, nil
}

// initWindow creates the GLFW window and GL context
func (e *Engine) initWindow() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor
	if e.config.Graphics.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			e.width, e.height = mode.Width, mode.Height
		}
	}

	window, err := glfw.CreateWindow(e.width, e.height, e.config.Graphics.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}

	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	e.logger.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	if e.config.Graphics.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// Framebuffer size differs from window size on HiDPI displays
	e.width, e.height = window.GetFramebufferSize()
	window.SetFramebufferSizeCallback(e.resizeCallback)

	e.window = window
	return nil
}

func (e *Engine) initHeadless() {
	cols, rows := e.options.Columns, e.options.Rows
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	e.renderer = scene.NewASCIIRenderer(e.options.Output, cols, rows, true)
	e.game.SetAutopilot(game.NewAutopilot(e.config.Game))
	e.game.Reset()
}

// logEvents writes game events to the log
func (e *Engine) logEvents() {
	bus := e.game.Events()
	bus.SubscribeAll(func(ev game.Event) {
		e.logger.WithField("event", ev.Type).Debugf("y=%.3f score=%d", ev.Y, ev.Score)
	})
	bus.Subscribe(game.EventCrash, func(ev game.Event) {
		e.logger.Infof("Run over with score %d", ev.Score)
	})
}

// Game exposes the running session
func (e *Engine) Game() *game.Game {
	return e.game
}

// Run starts the main game loop
func (e *Engine) Run() {
	e.isRunning = true
	e.lastUpdate = time.Now()

	for e.isRunning && !e.shouldClose() {
		currentTime := time.Now()
		deltaTime := currentTime.Sub(e.lastUpdate).Seconds()
		e.lastUpdate = currentTime

		e.processInput()
		e.update(deltaTime)
		e.render()

		if e.window != nil {
			e.window.SwapBuffers()
			glfw.PollEvents()
		}

		e.frames++
		if e.options.Frames > 0 && e.frames >= e.options.Frames {
			e.isRunning = false
		}

		// Cap the frame rate
		if e.frameRate > 0 {
			frameTime := time.Since(currentTime)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	e.cleanup()
}

func (e *Engine) shouldClose() bool {
	return e.window != nil && e.window.ShouldClose()
}

// processInput handles user input
func (e *Engine) processInput() {
	if e.input == nil {
		// headless: the autopilot flaps, a crash restarts the run
		if e.game.State().Mode == game.ModeGameOver {
			e.game.HandleCommand(game.CommandConfirm)
		}
		return
	}

	e.input.Update()
	for _, cmd := range e.input.Commands() {
		e.game.HandleCommand(cmd)
	}
}

// update advances the simulation
func (e *Engine) update(deltaTime float64) {
	e.game.Advance(deltaTime)
	if e.game.QuitRequested() {
		e.isRunning = false
	}
}

// render renders the current frame
func (e *Engine) render() {
	sd := scene.BuildScene(e.game.State(), e.config.Game, e.width, e.height)
	if err := e.renderer.Render(sd); err != nil {
		e.logger.Errorf("Render failed: %v", err)
		if e.options.Headless {
			e.isRunning = false
		}
	}
}

func (e *Engine) resizeCallback(_ *glfw.Window, width int, height int) {
	e.logger.Debugf("Framebuffer resized to %dx%d", width, height)
	e.width = width
	e.height = height
	e.renderer.UpdateResolution(width, height)
}

// cleanup performs necessary cleanup before exiting
func (e *Engine) cleanup() {
	e.logger.Info("Shutting down engine...")
	if e.audioEngine != nil {
		e.audioEngine.Shutdown()
	}
	e.renderer.Close()
	if e.window != nil {
		e.window.Destroy()
		glfw.Terminate()
	}
}
