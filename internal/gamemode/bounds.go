package gamemode

import (
	"caticorn/internal/assets"
	"caticorn/internal/entity"

	"github.com/peterhellberg/gfx"
)

// Rect is the box an entity's center must stay inside.
type Rect struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// ConfinementRect insets the window half extents by half the scaled
// sprite. A sprite bigger than the window gets a box collapsed to its
// middle.
func ConfinementRect(window, image gfx.Vec, t entity.Transform) Rect {
	halfX := image.X * t.Scale.X / 2
	halfY := image.Y * t.Scale.Y / 2
	r := Rect{
		MinX: -window.X/2 + halfX,
		MaxX: window.X/2 - halfX,
		MinY: -window.Y/2 + halfY,
		MaxY: window.Y/2 - halfY,
	}
	if r.MinX > r.MaxX {
		mid := (r.MinX + r.MaxX) / 2
		r.MinX, r.MaxX = mid, mid
	}
	if r.MinY > r.MaxY {
		mid := (r.MinY + r.MaxY) / 2
		r.MinY, r.MaxY = mid, mid
	}
	return r
}

func (r Rect) contains(p gfx.Vec) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

func (r Rect) Clamp(p gfx.Vec) gfx.Vec {
	return gfx.V(gfx.Clamp(p.X, r.MinX, r.MaxX), gfx.Clamp(p.Y, r.MinY, r.MaxY))
}

// updateCandyDirections bounces candies off the confinement box.
func (w *World) updateCandyDirections() {
	w.Candies.Each(func(_ entity.ID, c *entity.Candy) {
		img, ok := w.size(c.Image)
		if !ok {
			return
		}
		if w.bounce(c, ConfinementRect(w.Window, img, c.Transform)) {
			if w.Elapsed-c.ChangedDirectionAt > BounceSoundCooldown {
				w.playBounce()
			}
			c.ChangedDirectionAt = w.Elapsed
		}
	})
}

// bounce flips each direction component whose axis is at or past the
// box edge. Only signs change, so the direction keeps its length.
func (w *World) bounce(c *entity.Candy, r Rect) bool {
	changed := false
	pos := c.Translation
	if pos.X <= r.MinX || pos.X >= r.MaxX {
		c.Direction.X = -c.Direction.X
		changed = true
	}
	if pos.Y <= r.MinY || pos.Y >= r.MaxY {
		c.Direction.Y = -c.Direction.Y
		changed = true
	}
	return changed
}

// bounceSpeeds detune wall hits a little. The set is small so rendered
// clips stay cached.
var bounceSpeeds = [...]float64{0.94, 1, 1.06}

func (w *World) playBounce() {
	if len(w.clips.Bounce) == 0 {
		return
	}
	pb := assets.Once()
	pb.Speed = bounceSpeeds[w.rng.Intn(len(bounceSpeeds))]
	w.play(w.clips.Bounce[w.rng.Intn(len(w.clips.Bounce))], pb)
}

// confine clamps scale into [MinScale, MaxScale] and then position into
// the box for that scale. Running it twice changes nothing.
func (w *World) confine() {
	if w.Player != nil {
		w.confineTransform(&w.Player.Transform, w.Player.Image)
	}
	w.Candies.Each(func(_ entity.ID, c *entity.Candy) {
		w.confineTransform(&c.Transform, c.Image)
	})
}

func (w *World) confineTransform(t *entity.Transform, h assets.Image) {
	img, ok := w.size(h)
	if !ok {
		return
	}
	t.Scale = gfx.V(gfx.Clamp(t.Scale.X, MinScale, MaxScale), gfx.Clamp(t.Scale.Y, MinScale, MaxScale))
	t.Translation = ConfinementRect(w.Window, img, *t).Clamp(t.Translation)
}
