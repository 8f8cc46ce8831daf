package gamemode

import (
	"time"

	"caticorn/internal/entity"

	"github.com/peterhellberg/gfx"
)

// spawnCandy drops a candy somewhere in the window heading in a random
// direction. It does nothing once MaxCandy candies are out.
func (w *World) spawnCandy() (entity.ID, bool) {
	if w.Candies.Len() >= MaxCandy {
		return entity.ID{}, false
	}
	pos := gfx.V(
		w.rng.Float64()*w.Window.X-w.Window.X/2,
		w.rng.Float64()*w.Window.Y-w.Window.Y/2,
	)
	id := w.Candies.Spawn(entity.NewCandy(w.images.Candy, pos, w.randomDirection()))
	w.log.Debugf("spawned candy %v at %.1f,%.1f (%d out)", id, pos.X, pos.Y, w.Candies.Len())
	return id, true
}

func (w *World) randomDirection() gfx.Vec {
	for {
		d := gfx.V(w.rng.Float64()*2-1, w.rng.Float64()*2-1)
		if l := d.Len(); l > 1e-6 {
			return d.Scaled(1 / l)
		}
	}
}

func (w *World) spawnOnTimer(in Input, dt time.Duration) {
	w.SpawnTimer.Tick(dt)
	for i := 0; i < w.SpawnTimer.TimesFinished(); i++ {
		w.spawnCandy()
	}
	if in.SpawnCandy {
		w.spawnCandy()
	}
}
