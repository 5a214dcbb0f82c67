package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flappy/pkg/config"
	"flappy/pkg/game"
)

func playingState(cfg config.GameConfig) *game.State {
	s := game.NewState(cfg)
	s.Mode = game.ModePlaying
	return s
}

func texts(sd *SceneData) []string {
	var out []string
	for _, t := range sd.Texts {
		out = append(out, t.Text)
	}
	return out
}

func countTexture(sd *SceneData, id string) int {
	n := 0
	for _, s := range sd.Sprites {
		if s.Texture == id {
			n++
		}
	}
	return n
}

func TestMeshes(t *testing.T) {
	meshes := Meshes()
	require.Len(t, meshes, len(MeshIDs))
	for _, id := range MeshIDs {
		m := meshes[id]
		assert.Len(t, m.Vertices, 4*VertexStride, id.String())
		assert.Equal(t, []uint32{0, 1, 3, 1, 2, 3}, m.Indices)
	}

	x0, y0, x1, y1 := meshes[MeshBackground].Bounds()
	assert.Equal(t, []float32{-1, -1, 3, 1}, []float32{x0, y0, x1, y1})

	x0, y0, x1, y1 = meshes[MeshBird].Bounds()
	assert.Equal(t, []float32{-0.06, -0.1, 0.06, 0.1}, []float32{x0, y0, x1, y1})

	x0, _, x1, _ = Mesh{}.Bounds()
	assert.Zero(t, x0)
	assert.Zero(t, x1)
}

func TestBuildScenePlaying(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s := playingState(cfg)
	s.Background.X = -1.25
	s.Score = 345

	sd := BuildScene(s, cfg, 1280, 720)
	assert.Equal(t, game.ModePlaying, sd.Mode)
	assert.Len(t, sd.Sprites, 2+2*cfg.PipeCount+1)
	assert.Equal(t, 2, countTexture(sd, config.AssetBackground))
	assert.Equal(t, 2*cfg.PipeCount, countTexture(sd, config.AssetPipe))

	assert.Equal(t, mgl32.Translate3D(-1.25, 0, 0), sd.Sprites[0].Model)
	assert.Equal(t, mgl32.Translate3D(2.75, 0, 0), sd.Sprites[1].Model)

	require.Len(t, sd.Texts, 1)
	score := sd.Texts[0]
	assert.Equal(t, "Score: 3", score.Text)
	assert.Equal(t, float32(25), score.X)
	assert.Equal(t, float32(640), score.Y)
	assert.Equal(t, mgl32.Vec3{0.8, 0.2, 0.4}, score.Color)
}

func TestPipeSpritesLeaveGap(t *testing.T) {
	sprites := pipeSprites(game.Pipe{X: 0.3, Y: 0.75})
	require.Len(t, sprites, 2)

	lowerTop := sprites[0].Model.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1})
	assert.InDelta(t, 0.3, lowerTop.X(), 1e-6)
	assert.InDelta(t, -0.25, lowerTop.Y(), 1e-6)

	upperBottom := sprites[1].Model.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1})
	assert.InDelta(t, 0.3, upperBottom.X(), 1e-6)
	assert.InDelta(t, 0.25, upperBottom.Y(), 1e-6)
}

func TestBirdSpriteFollowsPose(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s := playingState(cfg)
	s.Bird = game.BirdState{Y: 0.4, FlapImpulse: 10}

	sd := BuildScene(s, cfg, 800, 600)
	bird := sd.Sprites[len(sd.Sprites)-1]
	assert.Equal(t, MeshBird, bird.Mesh)
	assert.Equal(t, config.AssetBirdUp, bird.Texture)
	assert.Equal(t, mgl32.Translate3D(0, 0.4, 0), bird.Model)

	assert.Equal(t, config.AssetBird, BirdTexture(game.PoseLevel))
	assert.Equal(t, config.AssetBirdTiltDown, BirdTexture(game.PoseDescending))
	assert.Equal(t, config.AssetBirdDown, BirdTexture(game.PoseDiving))
}

func TestBuildSceneGameOver(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s := playingState(cfg)
	s.Mode = game.ModeGameOver
	s.Score = 1200

	sd := BuildScene(s, cfg, 800, 600)
	require.Len(t, sd.Sprites, 2)
	assert.Equal(t, config.AssetBackgroundKO, sd.Sprites[0].Texture)
	assert.Equal(t, mgl32.Ident4(), sd.Sprites[0].Model)
	assert.Equal(t, config.AssetBirdKO, sd.Sprites[1].Texture)
	assert.Equal(t, mgl32.Translate3D(0, -0.77, 1), sd.Sprites[1].Model)
	assert.Contains(t, texts(sd), "Score: 12")
	assert.Contains(t, texts(sd), "GAME OVER")
}

func TestBuildSceneMenu(t *testing.T) {
	cfg := config.DefaultGameConfig()
	s := game.NewState(cfg)
	require.Equal(t, game.ModeMenu, s.Mode)
	s.Menu.Selected = game.OptionControls

	sd := BuildScene(s, cfg, 800, 600)
	require.Len(t, sd.Sprites, 1)
	assert.Equal(t, config.AssetMenuBackground, sd.Sprites[0].Texture)
	assert.Equal(t, MeshScreen, sd.Sprites[0].Mesh)

	all := texts(sd)
	assert.Contains(t, all, "Play")
	assert.Contains(t, all, "> Controls <")
	assert.Contains(t, all, "Quit")
	assert.NotContains(t, all, ControlsHelp[0])

	s.Menu.ShowControls = true
	sd = BuildScene(s, cfg, 800, 600)
	assert.Subset(t, texts(sd), ControlsHelp)
}

func TestTextureIDsInManifest(t *testing.T) {
	manifest := config.DefaultAssetManifest()
	for _, id := range TextureIDs() {
		_, err := manifest.Path(id)
		assert.NoError(t, err, id)
	}
}
