package gamemode

import (
	"math"

	"github.com/peterhellberg/gfx"
)

// titlePulse throbs the caticorn in time with the title music.
func (w *World) titlePulse() {
	p := w.Player
	if p == nil {
		return
	}
	elapsed := w.Elapsed - w.TitlePulseStart
	p.SetScale(1 + math.Abs(math.Sin(elapsed*TitlePulseRate))*TitlePulseAmount)
}

// endSequence walks the player to the center, then hands over to Poop.
func (w *World) endSequence(dt float64) {
	p := w.Player
	if p == nil {
		return
	}
	toMid := gfx.V(0, 0).Sub(p.Translation)
	remaining := toMid.Len()
	if remaining < EndArriveDist {
		w.SetNext(PhasePoop)
		return
	}
	change := toMid.Scaled(EndSpeed * dt / remaining)
	// damp the step until it no longer overshoots the center
	for change.Len() > remaining {
		change = change.Scaled(EndStepDamping)
	}
	p.Translation = p.Translation.Add(change)
}

// poopSequence shrinks the player back toward scale 1 over PoopDuration.
func (w *World) poopSequence(dt float64) {
	p := w.Player
	if p == nil {
		return
	}
	shrink := (w.Shrink.InitialScale - 1) / PoopDuration
	p.SetScale(math.Max(p.Scale.X-shrink*dt, MinScale))

	if w.Shrink.TotalTime > PoopDuration {
		w.SetNext(PhaseTitle)
	}
	w.Shrink.TotalTime += dt
}
