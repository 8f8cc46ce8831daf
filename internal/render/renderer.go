// Package render draws the world with ebiten.
package render

import (
	"bytes"
	"fmt"
	"image/color"

	"caticorn/internal/assets"
	"caticorn/internal/entity"
	"caticorn/internal/gamemode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/peterhellberg/gfx"
	"github.com/pkg/errors"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	promptSize    = 30
	promptSpacing = 36
	promptRight   = 15
	promptBottom  = 5
)

type Renderer struct {
	assets *assets.Manager
	images map[assets.Image]*ebiten.Image
	face   *text.GoTextFace
	loaded bool
}

func NewRenderer(m *assets.Manager) (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, errors.Wrap(err, "load prompt font")
	}
	return &Renderer{
		assets: m,
		images: map[assets.Image]*ebiten.Image{},
		face:   &text.GoTextFace{Source: src, Size: promptSize},
	}, nil
}

// load paints every registered sprite and resolves its size. It runs on
// the first Draw, so Update frames before it see unresolved images.
func (r *Renderer) load() error {
	for name, paint := range spriteBook {
		h := r.assets.LoadImage(name)
		img := paint()
		r.images[h] = img
		b := img.Bounds()
		if err := r.assets.Resolve(h, gfx.V(float64(b.Dx()), float64(b.Dy()))); err != nil {
			return errors.Wrapf(err, "resolve sprite %s", name)
		}
	}
	r.loaded = true
	return nil
}

// Draw renders the world. Debug adds an overlay with frame stats.
func (r *Renderer) Draw(screen *ebiten.Image, w *gamemode.World, debug bool) error {
	if !r.loaded {
		if err := r.load(); err != nil {
			return err
		}
	}
	screen.Fill(ColBg)

	w.Candies.Each(func(_ entity.ID, c *entity.Candy) {
		r.drawSprite(screen, w.Window, c.Image, c.Transform)
	})
	if w.Player != nil {
		r.drawSprite(screen, w.Window, w.Player.Image, w.Player.Transform)
	}

	if w.Prompt != "" {
		op := &text.DrawOptions{}
		op.GeoM.Translate(w.Window.X-promptRight, w.Window.Y-promptBottom)
		op.ColorScale.ScaleWithColor(color.White)
		op.PrimaryAlign = text.AlignEnd
		op.SecondaryAlign = text.AlignEnd
		op.LineSpacing = promptSpacing
		text.Draw(screen, w.Prompt, r.face, op)
	}

	if debug {
		msg := fmt.Sprintf("TPS: %0.1f FPS: %0.1f\nphase: %v\ncandies: %d eaten: %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), w.Phase, w.CandyCount(), w.Eaten)
		if w.Player != nil {
			msg += fmt.Sprintf("\nscale: %.2f", w.Player.Scale.X)
		}
		ebitenutil.DebugPrint(screen, msg)
	}
	return nil
}

// drawSprite maps centered, y-up world coordinates to the screen.
func (r *Renderer) drawSprite(screen *ebiten.Image, window gfx.Vec, h assets.Image, t entity.Transform) {
	img, ok := r.images[h]
	if !ok {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(t.Scale.X, t.Scale.Y)
	op.GeoM.Translate(window.X/2+t.Translation.X, window.Y/2-t.Translation.Y)
	screen.DrawImage(img, op)
}
