package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBirdFallsWithoutImpulse(t *testing.T) {
	cfg := testConfig()
	for _, y := range []float64{0.9, 0.3, 0, -0.5, -0.768, -0.77} {
		s := NewState(cfg)
		s.Bird.Y = y
		UpdateStep(s, cfg, seeded(1))
		assert.InDelta(t, math.Max(y-cfg.FallRate, cfg.Floor), s.Bird.Y, 1e-12, "start %v", y)
		assert.GreaterOrEqual(t, s.Bird.Y, cfg.Floor)
		assert.Equal(t, 0, s.Bird.FlapImpulse)
	}
}

func TestBirdRisesWhileImpulsePending(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	s.Bird.FlapImpulse = cfg.FlapImpulse

	for i := 0; i < cfg.FlapImpulse; i++ {
		y, impulse := s.Bird.Y, s.Bird.FlapImpulse
		UpdateStep(s, cfg, seeded(1))
		assert.InDelta(t, math.Min(y+cfg.RiseRate, cfg.Ceiling), s.Bird.Y, 1e-12)
		assert.Equal(t, impulse-1, s.Bird.FlapImpulse)
	}
	assert.InDelta(t, 0.25, s.Bird.Y, 1e-9)

	// impulse spent, falling again
	UpdateStep(s, cfg, seeded(1))
	assert.InDelta(t, 0.245, s.Bird.Y, 1e-9)
}

func TestImpulseClearedAtCeiling(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	s.Bird.Y = 0.895
	s.Bird.FlapImpulse = 10

	UpdateStep(s, cfg, seeded(1))
	assert.Equal(t, cfg.Ceiling, s.Bird.Y)
	assert.Equal(t, 0, s.Bird.FlapImpulse)
}

func TestNegativeImpulseIsClamped(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	s.Bird.FlapImpulse = -3

	UpdateStep(s, cfg, seeded(1))
	assert.Equal(t, 0, s.Bird.FlapImpulse)
	assert.InDelta(t, -cfg.FallRate, s.Bird.Y, 1e-12)
}

func TestBackgroundWrapsAfterOneTile(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	ticks := int(math.Round(cfg.TileWidth / cfg.Speed))
	require.Equal(t, 2000, ticks)

	for i := 1; i <= ticks; i++ {
		UpdateStep(s, cfg, seeded(1))
		require.LessOrEqual(t, s.Background.X, 0.0)
		require.Greater(t, s.Background.X, -cfg.TileWidth)
		if i == ticks-1 {
			assert.InDelta(t, -cfg.TileWidth+cfg.Speed, s.Background.X, 1e-9)
		}
	}
	assert.InDelta(t, 0, s.Background.X, 1e-9)
}

func TestPipeWrapDrawsFromBand(t *testing.T) {
	cfg := testConfig()
	lo, hi := GapBand(cfg)
	require.Equal(t, 0.5, lo)
	require.Equal(t, 0.99, hi)

	rng := seeded(42)
	s := NewState(cfg)
	s.Pipes = []Pipe{{}}
	seen := map[float64]bool{}
	for i := 0; i < 1000; i++ {
		s.Pipes[0] = Pipe{X: cfg.PipeWrapX + cfg.Speed/2, Y: -5}
		UpdateStep(s, cfg, rng)

		p := s.Pipes[0]
		require.Equal(t, cfg.PipeSpawnX, p.X)
		require.GreaterOrEqual(t, p.Y, lo)
		require.LessOrEqual(t, p.Y, hi)
		seen[p.Y] = true
	}
	assert.Greater(t, len(seen), 10)
}

func TestPipeBandExtremes(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	s.Pipes = []Pipe{{X: cfg.PipeWrapX}, {X: cfg.PipeWrapX}}

	UpdateStep(s, cfg, &seqRand{vals: []int{0, 49}})
	assert.Equal(t, 0.5, s.Pipes[0].Y)
	assert.Equal(t, 0.99, s.Pipes[1].Y)
}

func TestPipeEnteringFieldGetsGap(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	require.Len(t, s.Pipes, 8)
	assert.Equal(t, 1.5, s.Pipes[0].X)
	assert.Equal(t, 5.0, s.Pipes[7].X)

	UpdateStep(s, cfg, &seqRand{vals: []int{30}})
	assert.InDelta(t, 1.498, s.Pipes[0].X, 1e-12)
	assert.Equal(t, 0.8, s.Pipes[0].Y)
	for _, p := range s.Pipes[1:] {
		assert.Equal(t, 0.0, p.Y, "pipes right of the spawn line keep their gap")
	}
}

func TestPipesScrollAtSpeed(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	for i := 0; i < 100; i++ {
		UpdateStep(s, cfg, seeded(1))
	}
	for i, p := range s.Pipes {
		assert.InDelta(t, cfg.PipeStartX+float64(i)*cfg.PipeSpacing-100*cfg.Speed, p.X, 1e-9)
	}
	assert.Equal(t, 100, s.Ticks)
}

func TestUpdateStepDeterministic(t *testing.T) {
	cfg := testConfig()
	a, b := NewState(cfg), NewState(cfg)
	ra, rb := seeded(7), seeded(7)

	for i := 0; i < 5000; i++ {
		if i%40 == 0 {
			a.Bird.FlapImpulse += 25
			b.Bird.FlapImpulse += 25
		}
		UpdateStep(a, cfg, ra)
		UpdateStep(b, cfg, rb)
	}
	assert.Equal(t, a, b)
}
