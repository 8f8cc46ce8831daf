package gamemode

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"caticorn/internal/assets"
	"caticorn/internal/entity"

	"github.com/peterhellberg/gfx"
)

const (
	imgPlayer assets.Image = 1
	imgCandy  assets.Image = 2
	imgGhost  assets.Image = 99 // never resolves

	clipBounceA  assets.Clip = 10
	clipBounceB  assets.Clip = 11
	clipEat      assets.Clip = 12
	clipFart     assets.Clip = 13
	clipTitle    assets.Clip = 14
	clipGameplay assets.Clip = 15
)

const frame = 16 * time.Millisecond

type fakeSizer map[assets.Image]gfx.Vec

func (f fakeSizer) Size(h assets.Image) (gfx.Vec, bool) {
	v, ok := f[h]
	return v, ok
}

type fakeSink struct{ stopped bool }

func (s *fakeSink) Stop() { s.stopped = true }

type play struct {
	clip assets.Clip
	pb   assets.Playback
	sink *fakeSink
}

type fakeSpeaker struct{ plays []play }

func (f *fakeSpeaker) Play(c assets.Clip, pb assets.Playback) assets.Sink {
	s := &fakeSink{}
	f.plays = append(f.plays, play{clip: c, pb: pb, sink: s})
	return s
}

func (f *fakeSpeaker) count(c assets.Clip) int {
	n := 0
	for _, p := range f.plays {
		if p.clip == c {
			n++
		}
	}
	return n
}

func (f *fakeSpeaker) last(c assets.Clip) *play {
	for i := len(f.plays) - 1; i >= 0; i-- {
		if f.plays[i].clip == c {
			return &f.plays[i]
		}
	}
	return nil
}

func newTestWorld(t *testing.T) (*World, *fakeSpeaker) {
	t.Helper()
	spk := &fakeSpeaker{}
	w := NewWorld(Config{
		Window: gfx.V(800, 600),
		Sizes: fakeSizer{
			imgPlayer: gfx.V(96, 96),
			imgCandy:  gfx.V(64, 64),
		},
		Speaker: spk,
		Images:  Images{Player: imgPlayer, Candy: imgCandy},
		Clips: Clips{
			Bounce:        []assets.Clip{clipBounceA, clipBounceB},
			Eat:           clipEat,
			Fart:          clipFart,
			TitleMusic:    clipTitle,
			GameplayMusic: clipGameplay,
		},
		Rand:    rand.New(rand.NewSource(1)),
		Version: "test",
	})
	return w, spk
}

// playingWorld skips the phase hooks: a player at the origin, no candies.
func playingWorld(t *testing.T) (*World, *fakeSpeaker) {
	t.Helper()
	w, spk := newTestWorld(t)
	w.Player = entity.NewPlayer(imgPlayer)
	w.Phase = PhasePlaying
	return w, spk
}

func addCandy(w *World, x, y, dx, dy float64) entity.ID {
	return w.Candies.Spawn(entity.NewCandy(imgCandy, gfx.V(x, y), gfx.V(dx, dy)))
}

func mustCandy(t *testing.T, w *World, id entity.ID) *entity.Candy {
	t.Helper()
	c, ok := w.Candies.Get(id)
	if !ok {
		t.Fatalf("candy %v is gone", id)
	}
	return c
}

func alive(w *World, id entity.ID) bool {
	_, ok := w.Candies.Get(id)
	return ok
}

func near(a, b, eps float64) bool { return math.Abs(a-b) <= eps }
