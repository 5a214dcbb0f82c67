package game

import (
	"math"

	"flappy/pkg/config"
)

// CheckCollision reports whether the bird hit the floor or a pipe. Every
// pipe inside the scoring band that the bird clears adds one to the raw
// score, so a single pass through a pipe scores once per tick spent in the
// band.
func CheckCollision(s *State, cfg config.GameConfig) bool {
	if s.Bird.Y <= cfg.Floor {
		return true
	}

	for _, p := range s.Pipes {
		if math.Abs(p.X-cfg.BirdX) > cfg.ScoringHalfWidth {
			continue
		}
		gap := s.Bird.Y + p.Y
		if gap < cfg.SafeLow || gap > cfg.SafeHigh {
			return true
		}
		s.Score++
	}
	return false
}
