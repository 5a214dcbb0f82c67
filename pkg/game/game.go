package game

import (
	"math"

	"flappy/internal/util"
	"flappy/pkg/config"
)

// maxFrameDelta bounds the time fed into a single Advance call
const maxFrameDelta = 0.1

// Command is an input already translated from keys
type Command int

const (
	CommandFlap Command = iota
	CommandLeft
	CommandRight
	CommandConfirm
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandFlap:
		return "flap"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandConfirm:
		return "confirm"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Game owns the state of one session and runs the mode machine around
// UpdateStep and CheckCollision.
type Game struct {
	cfg       config.GameConfig
	rng       RandSource
	state     *State
	events    *EventBus
	autopilot *Autopilot

	accumulator float64
	quit        bool
}

// NewGame creates a session. The caller owns rng; pass a seeded *rand.Rand
// for reproducible runs.
func NewGame(cfg config.GameConfig, rng RandSource) *Game {
	return &Game{
		cfg:    cfg,
		rng:    rng,
		state:  NewState(cfg),
		events: NewEventBus(),
	}
}

// State returns the live state. Callers must not keep it across ticks if
// they run on another goroutine; use Clone for that.
func (g *Game) State() *State {
	return g.state
}

func (g *Game) Events() *EventBus {
	return g.events
}

func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// QuitRequested reports whether a quit command was accepted
func (g *Game) QuitRequested() bool {
	return g.quit
}

// SetAutopilot installs (or, with nil, removes) an automatic flapper that
// runs before every playing tick.
func (g *Game) SetAutopilot(a *Autopilot) {
	g.autopilot = a
}

// Tick runs one fixed simulation step. Only the playing mode moves the world.
func (g *Game) Tick() {
	s := g.state
	if s.Mode != ModePlaying {
		return
	}

	if g.autopilot != nil && g.autopilot.ShouldFlap(s) {
		g.Flap()
	}

	before := s.DisplayScore(g.cfg.ScoreDivisor)
	UpdateStep(s, g.cfg, g.rng)
	crashed := CheckCollision(s, g.cfg)

	if after := s.DisplayScore(g.cfg.ScoreDivisor); after > before {
		g.emit(EventScore)
	}
	if crashed {
		s.Mode = ModeGameOver
		g.emit(EventCrash)
	}
}

// Advance feeds wall-clock time into the fixed-rate simulation and returns
// the number of ticks that ran. The unspent remainder carries over to the
// next call; a backlog beyond MaxTicksPerFrame is dropped.
func (g *Game) Advance(dt float64) int {
	if dt <= 0 {
		return 0
	}
	dt = math.Min(dt, maxFrameDelta)

	g.accumulator += dt * float64(g.cfg.TickRate)
	ticks := 0
	for g.accumulator >= 1 && ticks < g.cfg.MaxTicksPerFrame {
		g.Tick()
		g.accumulator--
		ticks++
	}
	if g.accumulator >= 1 {
		g.accumulator = math.Mod(g.accumulator, 1)
	}
	return ticks
}

// Flap adds an upward impulse. It is ignored outside the playing mode and
// the pending impulse never exceeds MaxFlapImpulse.
func (g *Game) Flap() bool {
	s := g.state
	if s.Mode != ModePlaying {
		return false
	}
	s.Bird.FallPoint = s.Bird.Y
	s.Bird.FlapImpulse = util.ClampInt(s.Bird.FlapImpulse+g.cfg.FlapImpulse, 0, g.cfg.MaxFlapImpulse)
	g.emit(EventFlap)
	return true
}

// HandleCommand applies one input command according to the current mode
func (g *Game) HandleCommand(c Command) {
	if c == CommandQuit {
		g.requestQuit()
		return
	}

	s := g.state
	switch s.Mode {
	case ModePlaying:
		if c == CommandFlap {
			g.Flap()
		}
	case ModeMenu:
		g.handleMenu(c)
	case ModeGameOver:
		if c == CommandConfirm {
			g.Reset()
		}
	}
}

func (g *Game) handleMenu(c Command) {
	m := &g.state.Menu
	switch c {
	case CommandLeft:
		m.Selected = MenuOption(util.ClampInt(int(m.Selected)-1, int(OptionPlay), int(OptionQuit)))
	case CommandRight:
		m.Selected = MenuOption(util.ClampInt(int(m.Selected)+1, int(OptionPlay), int(OptionQuit)))
	case CommandConfirm:
		switch m.Selected {
		case OptionPlay:
			g.Reset()
		case OptionControls:
			m.ShowControls = !m.ShowControls
		case OptionQuit:
			g.requestQuit()
		}
	}
}

// Reset starts a fresh run in the playing mode
func (g *Game) Reset() {
	g.state.Reset(g.cfg)
	g.state.Mode = ModePlaying
	g.state.Menu.ShowControls = false
	g.accumulator = 0
	g.emit(EventReset)
}

func (g *Game) requestQuit() {
	if g.quit {
		return
	}
	g.quit = true
	g.emit(EventQuit)
}

func (g *Game) emit(t EventType) {
	g.events.Emit(Event{
		Type:  t,
		Y:     g.state.Bird.Y,
		Score: g.state.DisplayScore(g.cfg.ScoreDivisor),
	})
}
