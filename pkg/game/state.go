package game

import (
	"flappy/pkg/config"
)

// Mode is the top-level screen the game is on
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MenuOption is a 1-based entry of the main menu
type MenuOption int

const (
	OptionPlay MenuOption = iota + 1
	OptionControls
	OptionQuit
)

// MenuOptions lists the menu entries in display order
var MenuOptions = []MenuOption{OptionPlay, OptionControls, OptionQuit}

func (o MenuOption) String() string {
	switch o {
	case OptionPlay:
		return "Play"
	case OptionControls:
		return "Controls"
	case OptionQuit:
		return "Quit"
	default:
		return "?"
	}
}

// BirdState is the vertical state of the player.
// FlapImpulse counts the remaining ticks of climb and stays within
// [0, MaxFlapImpulse]. FallPoint is the height of the last accepted flap.
type BirdState struct {
	Y           float64
	FlapImpulse int
	FallPoint   float64
}

// Pipe is one obstacle slot. Y is the vertical offset of the gap.
type Pipe struct {
	X float64
	Y float64
}

// BackgroundState holds the horizontal scroll offset in (-TileWidth, 0]
type BackgroundState struct {
	X float64
}

// MenuState is the main menu cursor
type MenuState struct {
	Selected     MenuOption
	ShowControls bool
}

// State is everything a single run needs. Nothing here is global; the
// renderer and the update step both take it explicitly.
type State struct {
	Mode       Mode
	Bird       BirdState
	Background BackgroundState
	Pipes      []Pipe
	Score      int
	Menu       MenuState
	Ticks      int
}

// NewState returns the initial state for the given tuning
func NewState(cfg config.GameConfig) *State {
	s := &State{
		Mode: ModePlaying,
		Menu: MenuState{Selected: OptionPlay},
	}
	if cfg.StartInMenu {
		s.Mode = ModeMenu
	}
	s.Reset(cfg)
	return s
}

// Reset restores the world (bird, background, pipes, score) to its initial
// values. Mode and menu are left to the caller.
func (s *State) Reset(cfg config.GameConfig) {
	s.Bird = BirdState{}
	s.Background = BackgroundState{}
	s.Score = 0
	s.Ticks = 0

	if cap(s.Pipes) < cfg.PipeCount {
		s.Pipes = make([]Pipe, cfg.PipeCount)
	}
	s.Pipes = s.Pipes[:cfg.PipeCount]
	for i := range s.Pipes {
		s.Pipes[i] = Pipe{X: cfg.PipeStartX + float64(i)*cfg.PipeSpacing}
	}
}

// DisplayScore is the score shown to the player
func (s *State) DisplayScore(divisor int) int {
	if divisor <= 0 {
		return s.Score
	}
	return s.Score / divisor
}

// Clone returns a deep copy, safe to hand to another goroutine
func (s *State) Clone() *State {
	c := *s
	c.Pipes = append([]Pipe(nil), s.Pipes...)
	return &c
}
