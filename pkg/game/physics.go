package game

import (
	"math"

	"flappy/pkg/config"
)

// RandSource is the subset of *rand.Rand the simulation draws from
type RandSource interface {
	Intn(n int) int
}

// wrapEpsilon absorbs accumulated float error at the background wrap
const wrapEpsilon = 1e-9

// UpdateStep advances the world by one tick: bird, background, then pipes.
// It performs no I/O and is deterministic for a fixed random source.
func UpdateStep(s *State, cfg config.GameConfig, rng RandSource) {
	updateBird(&s.Bird, cfg)
	updateBackground(&s.Background, cfg)
	updatePipes(s.Pipes, cfg, rng)
	s.Ticks++
}

func updateBird(b *BirdState, cfg config.GameConfig) {
	if b.FlapImpulse <= 0 {
		b.FlapImpulse = 0
		b.Y = math.Max(b.Y-cfg.FallRate, cfg.Floor)
		return
	}

	b.Y = math.Min(b.Y+cfg.RiseRate, cfg.Ceiling)
	b.FlapImpulse--
	if b.Y >= cfg.Ceiling {
		b.FlapImpulse = 0
	}
}

func updateBackground(bg *BackgroundState, cfg config.GameConfig) {
	bg.X -= cfg.Speed
	if bg.X <= -cfg.TileWidth+wrapEpsilon {
		bg.X = 0
	}
}

func updatePipes(pipes []Pipe, cfg config.GameConfig, rng RandSource) {
	for i := range pipes {
		p := &pipes[i]
		prev := p.X
		p.X -= cfg.Speed

		switch {
		case p.X <= cfg.PipeWrapX:
			p.X = cfg.PipeSpawnX
			p.Y = PipeGapY(cfg, rng)
		case prev >= cfg.PipeSpawnX && p.X < cfg.PipeSpawnX:
			// entering the play field
			p.Y = PipeGapY(cfg, rng)
		}
	}
}

// PipeGapY draws a gap offset from the configured band
func PipeGapY(cfg config.GameConfig, rng RandSource) float64 {
	return float64(rng.Intn(cfg.PipeBandRange)+cfg.PipeBandOffset) / 100
}

// GapBand returns the inclusive range PipeGapY can produce
func GapBand(cfg config.GameConfig) (lo, hi float64) {
	return float64(cfg.PipeBandOffset) / 100, float64(cfg.PipeBandOffset+cfg.PipeBandRange-1) / 100
}
