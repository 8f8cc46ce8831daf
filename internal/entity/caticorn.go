package entity

import (
	"caticorn/internal/assets"

	"github.com/peterhellberg/gfx"
)

// Transform places a sprite. Coordinates are centered on the window with
// y pointing up.
type Transform struct {
	Translation gfx.Vec
	Scale       gfx.Vec
}

func NewTransform(x, y float64) Transform {
	return Transform{Translation: gfx.V(x, y), Scale: gfx.V(1, 1)}
}

// Player is the caticorn.
type Player struct {
	Transform
	Image assets.Image
}

func NewPlayer(img assets.Image) *Player {
	return &Player{
		Transform: NewTransform(0, 0),
		Image:     img,
	}
}

// Reset puts the player back at the center at its natural size.
func (p *Player) Reset() {
	p.Translation = gfx.V(0, 0)
	p.SetScale(1)
}

// SetScale sets both axes.
func (p *Player) SetScale(s float64) {
	p.Scale = gfx.V(s, s)
}

// Candy drifts along Direction, which is kept at unit length.
type Candy struct {
	Transform
	Image     assets.Image
	Direction gfx.Vec

	// game clock seconds of the last bounce
	ChangedDirectionAt float64
}

func NewCandy(img assets.Image, pos, dir gfx.Vec) Candy {
	return Candy{
		Transform: Transform{Translation: pos, Scale: gfx.V(1, 1)},
		Image:     img,
		Direction: dir,
	}
}
