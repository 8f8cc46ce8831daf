package main

import (
	"time"

	"caticorn/internal/assets"
	"caticorn/internal/audio"
	"caticorn/internal/config"
	"caticorn/internal/gamemode"
	"caticorn/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/peterhellberg/gfx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Game adapts the simulation to ebiten's loop.
type Game struct {
	world    *gamemode.World
	renderer *render.Renderer
	log      *logrus.Logger

	lastUpdate time.Time
	width      int
	height     int
	showDebug  bool
}

func NewGame(logger *logrus.Logger, version string) (*Game, error) {
	m := assets.NewManager()

	bounce, err := m.LoadClips(assets.SoundWallBounce1, assets.SoundWallBounce2)
	if err != nil {
		return nil, err
	}
	rest, err := m.LoadClips(assets.SoundEatCandy, assets.SoundEndFart, assets.MusicTitle, assets.MusicGameplay)
	if err != nil {
		return nil, err
	}

	speaker, err := audio.NewSpeaker(m, logger)
	if err != nil {
		return nil, errors.Wrap(err, "audio")
	}
	renderer, err := render.NewRenderer(m)
	if err != nil {
		return nil, err
	}

	world := gamemode.NewWorld(gamemode.Config{
		Window:  gfx.V(config.ScreenWidth, config.ScreenHeight),
		Sizes:   m,
		Speaker: speaker,
		Images: gamemode.Images{
			Player: m.LoadImage(assets.SpriteCaticorn),
			Candy:  m.LoadImage(assets.SpriteDonut),
		},
		Clips: gamemode.Clips{
			Bounce:        bounce,
			Eat:           rest[0],
			Fart:          rest[1],
			TitleMusic:    rest[2],
			GameplayMusic: rest[3],
		},
		Logger:  logger,
		Version: version,
	})
	world.Setup()

	return &Game{
		world:      world,
		renderer:   renderer,
		log:        logger,
		lastUpdate: time.Now(),
		width:      config.ScreenWidth,
		height:     config.ScreenHeight,
	}, nil
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	now := time.Now()
	dt := gamemode.ClampFrame(now.Sub(g.lastUpdate))
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.showDebug = !g.showDebug
	}

	g.world.Resize(float64(g.width), float64(g.height))
	g.world.Step(readInput(), dt)
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.renderer.Draw(screen, g.world, g.showDebug); err != nil {
		g.log.Fatalf("draw: %v", err)
	}
}

// Layout: the world is as big as the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func readInput() gamemode.Input {
	pressed := ebiten.IsKeyPressed
	return gamemode.Input{
		Left:   pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA),
		Right:  pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD),
		Up:     pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW),
		Down:   pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS),
		Grow:   pressed(ebiten.KeyP),
		Skip:   pressed(ebiten.KeyEnter),
		Cancel: pressed(ebiten.KeyEscape),

		Click:      inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Start:      inpututil.IsKeyJustPressed(ebiten.KeySpace),
		SpawnCandy: inpututil.IsKeyJustPressed(ebiten.KeyO),
	}
}
