package game

import (
	"flappy/pkg/config"
)

// Autopilot flaps on behalf of the player. It keeps the bird oscillating
// around the middle of the safe window of the nearest pipe that has not yet
// passed the bird.
type Autopilot struct {
	cfg config.GameConfig
}

func NewAutopilot(cfg config.GameConfig) *Autopilot {
	return &Autopilot{cfg: cfg}
}

// Target returns the bird height the autopilot is steering for
func (a *Autopilot) Target(s *State) float64 {
	target := 0.0
	nearest := 0.0
	found := false
	for _, p := range s.Pipes {
		if p.X < a.cfg.BirdX-a.cfg.ScoringHalfWidth {
			continue
		}
		if !found || p.X < nearest {
			nearest = p.X
			target = (a.cfg.SafeLow+a.cfg.SafeHigh)/2 - p.Y
			found = true
		}
	}
	return target
}

// ShouldFlap reports whether a flap should be issued this tick
func (a *Autopilot) ShouldFlap(s *State) bool {
	if s.Mode != ModePlaying || s.Bird.FlapImpulse > 0 {
		return false
	}
	climb := float64(a.cfg.FlapImpulse) * a.cfg.RiseRate
	return s.Bird.Y < a.Target(s)-climb/2
}
