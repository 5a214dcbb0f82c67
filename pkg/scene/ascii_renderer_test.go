package scene

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flappy/pkg/config"
	"flappy/pkg/game"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestASCIIRendererPlaying(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s := playingState(cfg)
	s.Pipes[0] = game.Pipe{X: 0.5, Y: 0.75}

	var buf bytes.Buffer
	r := NewASCIIRenderer(&buf, 40, 20, false)
	require.NoError(t, r.Render(BuildScene(s, cfg, 800, 600)))

	frame := buf.String()
	assert.Equal(t, frame, r.Frame())
	assert.Len(t, strings.Split(strings.TrimSuffix(frame, "\n"), "\n"), 20)
	assert.Contains(t, frame, "#")
	assert.Contains(t, frame, ">")
	assert.Contains(t, frame, "Score: 0")

	rows := strings.Split(frame, "\n")
	assert.Equal(t, byte('>'), rows[9][20], "bird sits in the middle of the grid")
	assert.Equal(t, ' ', rune(rows[10][30]), "pipe gap is open at the bird's height")
	assert.Equal(t, byte('#'), rows[19][30])
	assert.Equal(t, byte('#'), rows[1][30])
}

func TestASCIIRendererGameOver(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s := playingState(cfg)
	s.Mode = game.ModeGameOver

	var buf bytes.Buffer
	r := NewASCIIRenderer(&buf, 60, 24, true)
	require.NoError(t, r.Render(BuildScene(s, cfg, 800, 600)))

	frame := buf.String()
	assert.True(t, strings.HasPrefix(frame, clearScreen))
	assert.Contains(t, frame, "GAME OVER")
	assert.Contains(t, frame, "x")
	assert.Contains(t, frame, ".")
}

func TestASCIIRendererResizeAndErrors(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s := game.NewState(cfg)

	r := NewASCIIRenderer(failingWriter{}, 10, 5, false)
	assert.Error(t, r.Render(BuildScene(s, cfg, 800, 600)))

	r.UpdateResolution(0, 0)
	r.out = nil
	require.NoError(t, r.Render(BuildScene(s, cfg, 800, 600)))
	assert.Len(t, strings.Split(strings.TrimSuffix(r.Frame(), "\n"), "\n"), 1)
}
