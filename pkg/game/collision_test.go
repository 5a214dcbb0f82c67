package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollisionBelowFloorIgnoresPipes(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	s.Bird.Y = -0.8
	s.Pipes = []Pipe{{X: 0, Y: 1.45}}

	assert.True(t, CheckCollision(s, cfg))
	assert.Equal(t, 0, s.Score)
}

func TestCollisionAtFloor(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	s.Bird.Y = cfg.Floor

	assert.True(t, CheckCollision(s, cfg))
}

func TestCollisionScoring(t *testing.T) {
	tests := []struct {
		name      string
		birdY     float64
		pipe      Pipe
		collision bool
		score     int
	}{
		{"inside safe window", 0.25, Pipe{X: 0, Y: 0.5}, false, 1},
		{"edge of scoring band", 0.25, Pipe{X: 0.1, Y: 0.5}, false, 1},
		{"outside scoring band", -0.5, Pipe{X: 0.15, Y: 0.5}, false, 0},
		{"too low", 0, Pipe{X: 0.05, Y: 0.5}, true, 0},
		{"too high", 0.3, Pipe{X: -0.05, Y: 0.7}, true, 0},
		{"lower bound", 0.1, Pipe{X: 0, Y: 0.5}, false, 1},
		{"upper bound", 0.4, Pipe{X: 0, Y: 0.5}, false, 1},
	}
	cfg := testConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(cfg)
			s.Bird.Y = tt.birdY
			s.Pipes = []Pipe{tt.pipe}

			assert.Equal(t, tt.collision, CheckCollision(s, cfg))
			assert.Equal(t, tt.score, s.Score)
		})
	}
}

func TestScoreCountsEveryTickInBand(t *testing.T) {
	cfg := testConfig()
	s := NewState(cfg)
	s.Bird.Y = 0.25
	s.Pipes = []Pipe{{X: 0, Y: 0.5}}

	for i := 0; i < 10; i++ {
		assert.False(t, CheckCollision(s, cfg))
	}
	assert.Equal(t, 10, s.Score)
	assert.Equal(t, 0, s.DisplayScore(cfg.ScoreDivisor))
}
