// Package gamemode runs the per-frame simulation and the phase machine.
package gamemode

import (
	"math/rand"
	"time"

	"caticorn/internal/assets"
	"caticorn/internal/entity"
	"caticorn/internal/log"

	"github.com/peterhellberg/gfx"
	"github.com/sirupsen/logrus"
)

// Sizer looks up the pixel size of an image. It reports false while the
// image is not loaded.
type Sizer interface {
	Size(h assets.Image) (gfx.Vec, bool)
}

// Speaker starts clips.
type Speaker interface {
	Play(clip assets.Clip, p assets.Playback) assets.Sink
}

// Input is what the player did this frame. Held keys are level
// triggered, the rest fire on the frame the key went down.
type Input struct {
	Left, Right, Up, Down bool // held
	Grow                  bool // held, debug
	Skip                  bool // held, jump to the end sequence
	Cancel                bool // held, back to the title

	Click      bool
	Start      bool
	SpawnCandy bool // debug
}

type Images struct {
	Player assets.Image
	Candy  assets.Image
}

type Clips struct {
	Bounce        []assets.Clip
	Eat           assets.Clip
	Fart          assets.Clip
	TitleMusic    assets.Clip
	GameplayMusic assets.Clip
}

type Config struct {
	Window  gfx.Vec
	Sizes   Sizer
	Speaker Speaker
	Images  Images
	Clips   Clips
	Rand    *rand.Rand
	Logger  *logrus.Logger
	Version string
}

// ShrinkData drives the poop sequence.
type ShrinkData struct {
	InitialScale float64
	TotalTime    float64
}

// World owns all mutable game state. Only Step and the phase hooks
// touch it.
type World struct {
	Phase   Phase
	Window  gfx.Vec
	Elapsed float64 // seconds since start

	Player  *entity.Player
	Candies entity.Arena[entity.Candy]

	// Prompt is the on-screen hint for the current phase
	Prompt string

	SpawnTimer      Timer
	Shrink          ShrinkData
	TitlePulseStart float64
	Eaten           int

	music   assets.Sink
	next    Phase
	pending bool

	sizes   Sizer
	speaker Speaker
	images  Images
	clips   Clips
	rng     *rand.Rand
	log     *logrus.Logger
	version string
}

func NewWorld(cfg Config) *World {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Discard()
	}
	return &World{
		Phase:      PhaseInit,
		Window:     cfg.Window,
		SpawnTimer: NewRepeatingTimer(CandySpawnPeriod),
		sizes:      cfg.Sizes,
		speaker:    cfg.Speaker,
		images:     cfg.Images,
		clips:      cfg.Clips,
		rng:        rng,
		log:        logger,
		version:    cfg.Version,
	}
}

// Setup spawns the player and enters the initial phase.
func (w *World) Setup() {
	w.log.Infof("setup")
	w.Player = entity.NewPlayer(w.images.Player)
	w.enter(w.Phase)
}

// Resize follows the window size.
func (w *World) Resize(width, height float64) {
	w.Window = gfx.V(width, height)
}

// Step advances the game by one frame.
func (w *World) Step(in Input, dt time.Duration) {
	secs := dt.Seconds()
	w.Elapsed += secs

	switch w.Phase {
	case PhaseInit:
		w.initWaitForInput(in)
	case PhaseTitle:
		w.titleWaitForKeypress(in)
		w.titlePulse()
	case PhasePlaying:
		// Order matters: movement, then bounce, then collision, then clamp.
		w.awaitZeroCandy()
		w.exitKeys(in)
		w.movePlayer(in, secs)
		w.moveCandies(secs)
		w.spawnOnTimer(in, dt)
		w.updateCandyDirections()
		w.resolveCollisions()
		w.confine()
	case PhaseEnd:
		w.endSequence(secs)
	case PhasePoop:
		w.poopSequence(secs)
	}

	w.applyTransition()
	w.Candies.Flush()
}

func (w *World) CandyCount() int { return w.Candies.Len() }

func (w *World) play(c assets.Clip, p assets.Playback) assets.Sink {
	if w.speaker == nil || c == 0 {
		return assets.NopSink{}
	}
	return w.speaker.Play(c, p)
}

func (w *World) size(h assets.Image) (gfx.Vec, bool) {
	if w.sizes == nil {
		return gfx.Vec{}, false
	}
	return w.sizes.Size(h)
}
