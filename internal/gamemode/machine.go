package gamemode

import (
	"fmt"

	"caticorn/internal/assets"
)

// SetNext requests a phase change. It takes effect at the end of the
// current Step; a later request in the same frame wins.
func (w *World) SetNext(p Phase) {
	w.next = p
	w.pending = true
}

func (w *World) applyTransition() {
	if !w.pending {
		return
	}
	w.pending = false
	from, to := w.Phase, w.next
	if from == to {
		return
	}
	w.log.Infof("phase %v -> %v", from, to)
	w.exit(from)
	w.Phase = to
	w.enter(to)
}

func (w *World) enter(p Phase) {
	switch p {
	case PhaseInit:
		w.initSetup()
	case PhaseTitle:
		w.titleSetup()
	case PhasePlaying:
		w.gameplaySetup()
	case PhasePoop:
		w.poopSetup()
	}
}

func (w *World) exit(p Phase) {
	switch p {
	case PhaseInit:
		w.log.Infof("init_teardown")
	case PhaseTitle:
		w.titleTeardown()
	case PhasePlaying:
		w.gameplayTeardown()
	case PhasePoop:
		w.poopTeardown()
	}
}

func (w *World) startMusic(c assets.Clip) {
	w.stopMusic()
	w.music = w.play(c, assets.Looping())
}

func (w *World) stopMusic() {
	if w.music == nil {
		return
	}
	w.music.Stop()
	w.music = nil
}

// despawnTransient clears everything but the player.
func (w *World) despawnTransient() {
	w.Candies.Clear()
	w.Prompt = ""
}

// --- Init ---

func (w *World) initSetup() {
	w.log.Infof("init_setup")
	version := w.version
	if version == "" {
		version = "dev"
	}
	w.Prompt = fmt.Sprintf("mouse click to activate\n(%s)", version)
}

func (w *World) initWaitForInput(in Input) {
	if in.Click {
		w.SetNext(PhaseTitle)
	}
}

// --- Title ---

func (w *World) titleSetup() {
	w.log.Infof("title_setup")
	w.despawnTransient()
	if w.Player != nil {
		w.Player.Reset()
	}
	w.Prompt = "press space to start"
	w.startMusic(w.clips.TitleMusic)
	w.TitlePulseStart = w.Elapsed
}

func (w *World) titleTeardown() {
	w.log.Infof("title_teardown")
	w.Prompt = ""
	w.stopMusic()
}

func (w *World) titleWaitForKeypress(in Input) {
	if in.Start {
		w.SetNext(PhasePlaying)
	}
}

// --- Playing ---

func (w *World) gameplaySetup() {
	w.log.Infof("gameplay_setup")
	if w.Player != nil {
		w.Player.SetScale(1)
	}
	w.Eaten = 0
	w.SpawnTimer.Reset()
	for i := 0; i < InitialCandies; i++ {
		w.spawnCandy()
	}
	w.startMusic(w.clips.GameplayMusic)
}

func (w *World) gameplayTeardown() {
	w.log.Infof("gameplay_teardown")
	w.despawnTransient()
	w.stopMusic()
}

func (w *World) awaitZeroCandy() {
	if w.Candies.Len() < 1 {
		w.SetNext(PhaseEnd)
	}
}

func (w *World) exitKeys(in Input) {
	if in.Cancel {
		w.SetNext(PhaseTitle)
	}
	if in.Skip {
		w.SetNext(PhaseEnd)
	}
}

// --- Poop ---

func (w *World) poopSetup() {
	w.log.Infof("poop_setup")
	w.play(w.clips.Fart, assets.Once())
	w.Shrink = ShrinkData{InitialScale: 1}
	if w.Player != nil {
		w.Shrink.InitialScale = w.Player.Scale.X
	}
}

func (w *World) poopTeardown() {
	w.log.Infof("poop_teardown")
	w.despawnTransient()
}
