package gamemode

import (
	"caticorn/internal/entity"

	"github.com/peterhellberg/gfx"
)

// heldDirection sums the axis vectors of held keys. Diagonals are not
// renormalized, so they are faster.
func heldDirection(in Input) gfx.Vec {
	var d gfx.Vec
	if in.Left {
		d = d.Add(gfx.V(-1, 0))
	}
	if in.Right {
		d = d.Add(gfx.V(1, 0))
	}
	if in.Up {
		d = d.Add(gfx.V(0, 1))
	}
	if in.Down {
		d = d.Add(gfx.V(0, -1))
	}
	return d
}

func (w *World) movePlayer(in Input, dt float64) {
	p := w.Player
	if p == nil {
		return
	}
	if in.Grow {
		p.Scale = p.Scale.Scaled(DebugGrowFactor)
	}
	p.Translation = p.Translation.Add(heldDirection(in).Scaled(PlayerSpeed * dt))
}

func (w *World) moveCandies(dt float64) {
	p := w.Player
	if p == nil {
		w.log.Errorf("candy movement: no player")
		return
	}
	w.Candies.Each(func(_ entity.ID, c *entity.Candy) {
		c.Translation = c.Translation.Add(c.Direction.Scaled(CandySpeed * dt))
		c.Translation = c.Translation.Add(attraction(c.Translation, p.Translation, dt))
	})
}

// attraction is the pull on a candy at pos toward target for one frame.
// It grows as the candy gets closer and is zero outside AttractRadius.
func attraction(pos, target gfx.Vec, dt float64) gfx.Vec {
	toward := target.Sub(pos)
	dist := toward.Len()
	if dist >= AttractRadius || dist == 0 {
		return gfx.Vec{}
	}
	unit := toward.Scaled(1 / dist)
	if dist < AttractMinDistance {
		dist = AttractMinDistance
	}
	return unit.Scaled((AttractStrength - dist) * dt)
}
