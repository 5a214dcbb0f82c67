package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"flappy/pkg/config"
	"flappy/pkg/game"
)

// Sprite is one textured quad. Texture is an asset ID from the manifest.
type Sprite struct {
	Mesh    MeshID
	Texture string
	Model   mgl32.Mat4
}

// Align controls how a text item is anchored on X
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextItem is a string in window pixels, origin at the bottom-left corner
type TextItem struct {
	Text  string
	X, Y  float32
	Scale float32
	Color mgl32.Vec3
	Align Align
}

// SceneData is everything a renderer needs for one frame, in draw order
type SceneData struct {
	Mode       game.Mode
	Width      int
	Height     int
	ClearColor mgl32.Vec4
	Sprites    []Sprite
	Texts      []TextItem
}

var (
	scoreColor     = mgl32.Vec3{0.8, 0.2, 0.4}
	textColor      = mgl32.Vec3{1, 1, 1}
	highlightColor = mgl32.Vec3{1, 0.85, 0.2}
	skyColor       = mgl32.Vec4{0.2, 0.3, 0.3, 1}
)

// ControlsHelp is shown by the Controls menu entry
var ControlsHelp = []string{
	"Space   flap",
	"Left/Right   choose",
	"Enter   confirm / restart",
	"Esc   quit",
}

// BuildScene describes the frame for the given state. width and height are
// the window size in pixels and only affect text placement.
func BuildScene(s *game.State, cfg config.GameConfig, width, height int) *SceneData {
	sd := &SceneData{
		Mode:       s.Mode,
		Width:      width,
		Height:     height,
		ClearColor: skyColor,
	}

	switch s.Mode {
	case game.ModeMenu:
		buildMenu(sd, s)
	case game.ModePlaying:
		buildPlaying(sd, s, cfg)
	case game.ModeGameOver:
		buildGameOver(sd, s, cfg)
	}
	return sd
}

func buildMenu(sd *SceneData, s *game.State) {
	w, h := float32(sd.Width), float32(sd.Height)
	sd.Sprites = append(sd.Sprites, Sprite{
		Mesh:    MeshScreen,
		Texture: config.AssetMenuBackground,
		Model:   mgl32.Ident4(),
	})

	sd.Texts = append(sd.Texts, TextItem{
		Text: "FLAPPY", X: w / 2, Y: h * 0.72, Scale: 1.5, Color: scoreColor, Align: AlignCenter,
	})

	for i, opt := range game.MenuOptions {
		item := TextItem{
			Text:  opt.String(),
			X:     w * float32(i+1) / float32(len(game.MenuOptions)+1),
			Y:     h * 0.45,
			Scale: 1,
			Color: textColor,
			Align: AlignCenter,
		}
		if opt == s.Menu.Selected {
			item.Text = "> " + item.Text + " <"
			item.Color = highlightColor
		}
		sd.Texts = append(sd.Texts, item)
	}

	if s.Menu.ShowControls {
		for i, line := range ControlsHelp {
			sd.Texts = append(sd.Texts, TextItem{
				Text: line, X: w / 2, Y: h*0.3 - float32(i)*h*0.06, Scale: 0.6, Color: textColor, Align: AlignCenter,
			})
		}
	}
}

func buildPlaying(sd *SceneData, s *game.State, cfg config.GameConfig) {
	bgX := float32(s.Background.X)
	tile := float32(cfg.TileWidth)
	sd.Sprites = append(sd.Sprites,
		Sprite{Mesh: MeshBackground, Texture: config.AssetBackground, Model: mgl32.Translate3D(bgX, 0, 0)},
		Sprite{Mesh: MeshBackground, Texture: config.AssetBackground, Model: mgl32.Translate3D(bgX+tile, 0, 0)},
	)

	for _, p := range s.Pipes {
		sd.Sprites = append(sd.Sprites, pipeSprites(p)...)
	}

	sd.Sprites = append(sd.Sprites, Sprite{
		Mesh:    MeshBird,
		Texture: BirdTexture(s.Bird.Pose(cfg.DiveDepth)),
		Model:   mgl32.Translate3D(float32(cfg.BirdX), float32(s.Bird.Y), 0),
	})

	sd.Texts = append(sd.Texts, scoreText(sd, s, cfg))
}

func buildGameOver(sd *SceneData, s *game.State, cfg config.GameConfig) {
	w, h := float32(sd.Width), float32(sd.Height)
	sd.Sprites = append(sd.Sprites,
		Sprite{Mesh: MeshBackground, Texture: config.AssetBackgroundKO, Model: mgl32.Ident4()},
		Sprite{Mesh: MeshBird, Texture: config.AssetBirdKO, Model: mgl32.Translate3D(float32(cfg.BirdX), float32(cfg.Floor), 1)},
	)
	sd.Texts = append(sd.Texts,
		scoreText(sd, s, cfg),
		TextItem{Text: "GAME OVER", X: w / 2, Y: h * 0.6, Scale: 1.5, Color: scoreColor, Align: AlignCenter},
		TextItem{Text: "Press Enter to play again", X: w / 2, Y: h * 0.45, Scale: 0.7, Color: textColor, Align: AlignCenter},
	)
}

// pipeSprites returns the lower and the mirrored upper half of a pipe
func pipeSprites(p game.Pipe) []Sprite {
	x, y := float32(p.X), float32(p.Y)
	return []Sprite{
		{Mesh: MeshPipe, Texture: config.AssetPipe, Model: mgl32.Translate3D(x, -y, 0)},
		{Mesh: MeshPipe, Texture: config.AssetPipe, Model: mgl32.Scale3D(1, -1, 1).Mul4(mgl32.Translate3D(x, -1.5+y, 0))},
	}
}

func scoreText(sd *SceneData, s *game.State, cfg config.GameConfig) TextItem {
	return TextItem{
		Text:  fmt.Sprintf("Score: %d", s.DisplayScore(cfg.ScoreDivisor)),
		X:     25,
		Y:     float32(sd.Height) - 80,
		Scale: 1,
		Color: scoreColor,
	}
}

// BirdTexture maps a pose to its texture asset
func BirdTexture(p game.Pose) string {
	switch p {
	case game.PoseRising:
		return config.AssetBirdUp
	case game.PoseDescending:
		return config.AssetBirdTiltDown
	case game.PoseDiving:
		return config.AssetBirdDown
	default:
		return config.AssetBird
	}
}

// TextureIDs lists every texture a scene can reference
func TextureIDs() []string {
	return []string{
		config.AssetBird,
		config.AssetBirdUp,
		config.AssetBirdTiltDown,
		config.AssetBirdDown,
		config.AssetBirdKO,
		config.AssetBackground,
		config.AssetBackgroundKO,
		config.AssetMenuBackground,
		config.AssetPipe,
	}
}
