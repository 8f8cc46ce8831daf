package gamemode

import "caticorn/internal/assets"

// resolveCollisions lets the player eat every candy it overlaps enough.
func (w *World) resolveCollisions() {
	p := w.Player
	if p == nil {
		return
	}
	playerSize, ok := w.size(p.Image)
	if !ok {
		w.log.Errorf("collision: player image not loaded")
		return
	}
	for _, id := range w.Candies.IDs() {
		c, ok := w.Candies.Get(id)
		if !ok {
			continue
		}
		candySize, ok := w.size(c.Image)
		if !ok {
			continue
		}
		dist := p.Translation.Sub(c.Translation).Len()
		dist -= playerSize.X * p.Scale.X / 2
		dist -= candySize.X * c.Scale.X / 2
		if dist > CollisionOverlap {
			continue
		}
		w.Candies.Despawn(id)
		w.play(w.clips.Eat, assets.Once())
		p.Scale.X += GrowthPerCandy
		p.Scale.Y += GrowthPerCandy
		w.Eaten++
		w.log.Debugf("ate candy %v, scale now %.2f", id, p.Scale.X)
	}
}
