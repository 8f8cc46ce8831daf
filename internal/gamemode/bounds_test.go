package gamemode

import (
	"math/rand"
	"testing"

	"caticorn/internal/entity"

	"github.com/peterhellberg/gfx"
)

func TestConfinementRect(t *testing.T) {
	tr := entity.NewTransform(0, 0)
	tr.Scale = gfx.V(2, 2)
	r := ConfinementRect(gfx.V(800, 600), gfx.V(64, 32), tr)

	want := Rect{MinX: -336, MaxX: 336, MinY: -268, MaxY: 268}
	if r != want {
		t.Fatalf("ConfinementRect = %+v, want %+v", r, want)
	}
}

func TestConfinementRectCollapsesWhenSpriteTooBig(t *testing.T) {
	tr := entity.NewTransform(0, 0)
	tr.Scale = gfx.V(6, 6)
	r := ConfinementRect(gfx.V(100, 100), gfx.V(64, 64), tr)
	if r.MinX != r.MaxX || r.MinY != r.MaxY {
		t.Fatalf("degenerate rect not collapsed: %+v", r)
	}
}

func TestBounceScenario(t *testing.T) {
	w, spk := playingWorld(t)
	w.Elapsed = 5
	id := addCandy(w, 790, 0, 1, 0)

	w.Step(Input{}, frame)

	c := mustCandy(t, w, id)
	if c.Direction.X != -1 || c.Direction.Y != 0 {
		t.Fatalf("direction = %v, want (-1,0)", c.Direction)
	}
	if !near(c.Direction.Len(), 1, 1e-12) {
		t.Fatalf("direction lost unit length: %v", c.Direction.Len())
	}
	if c.Translation.X != 400-32 {
		t.Fatalf("candy x = %v, want clamped to %v", c.Translation.X, 400-32)
	}
	if n := spk.count(clipBounceA) + spk.count(clipBounceB); n != 1 {
		t.Fatalf("bounce sounds = %d, want 1", n)
	}
}

func TestBounceCornerFlipsBothAxes(t *testing.T) {
	w, _ := playingWorld(t)
	id := addCandy(w, -400, 300, -0.6, 0.8)
	w.updateCandyDirections()

	c := mustCandy(t, w, id)
	if !near(c.Direction.X, 0.6, 1e-12) || !near(c.Direction.Y, -0.8, 1e-12) {
		t.Fatalf("direction = %v, want (0.6,-0.8)", c.Direction)
	}
}

func TestBounceSoundDebounce(t *testing.T) {
	w, spk := playingWorld(t)
	id := addCandy(w, 368, 0, 1, 0)
	sounds := func() int { return spk.count(clipBounceA) + spk.count(clipBounceB) }

	w.Elapsed = 5
	w.updateCandyDirections()
	if sounds() != 1 {
		t.Fatalf("first bounce: %d sounds, want 1", sounds())
	}

	w.Elapsed = 5.05
	w.updateCandyDirections()
	if sounds() != 1 {
		t.Fatalf("bounce inside cooldown played a sound")
	}
	if got := mustCandy(t, w, id).ChangedDirectionAt; got != 5.05 {
		t.Fatalf("timestamp = %v, want 5.05 even without sound", got)
	}

	w.Elapsed = 5.2
	w.updateCandyDirections()
	if sounds() != 2 {
		t.Fatalf("bounce after cooldown: %d sounds, want 2", sounds())
	}
}

func TestBounceSoundsAreDetuned(t *testing.T) {
	w, spk := playingWorld(t)
	for i := 0; i < 40; i++ {
		w.playBounce()
	}
	seen := map[float64]bool{}
	for _, p := range spk.plays {
		if p.clip != clipBounceA && p.clip != clipBounceB {
			t.Fatalf("played clip %d, want a bounce clip", p.clip)
		}
		if p.pb.Repeat || p.pb.Volume != 1 {
			t.Fatalf("bounce playback = %+v, want one-shot at full volume", p.pb)
		}
		seen[p.pb.Speed] = true
	}
	for speed := range seen {
		if speed != 0.94 && speed != 1 && speed != 1.06 {
			t.Fatalf("bounce speed %v outside the detune set", speed)
		}
	}
	if len(seen) < 2 {
		t.Fatalf("40 bounces all played at speed %v", spk.plays[0].pb.Speed)
	}
}

func TestUnresolvedImageIsSkipped(t *testing.T) {
	w, _ := playingWorld(t)
	id := w.Candies.Spawn(entity.NewCandy(imgGhost, gfx.V(1000, 0), gfx.V(1, 0)))

	w.updateCandyDirections()
	w.confine()

	c := mustCandy(t, w, id)
	if c.Direction.X != 1 || c.Translation.X != 1000 {
		t.Fatalf("unresolved candy was touched: %+v", c)
	}
}

func TestConfineClampsScaleAndPosition(t *testing.T) {
	w, _ := playingWorld(t)
	w.Player.Translation = gfx.V(1000, -1000)
	w.Player.SetScale(9)
	id := addCandy(w, -500, 500, 1, 0)
	mustCandy(t, w, id).Scale = gfx.V(0.5, 0.5)

	w.confine()

	if w.Player.Scale.X != MaxScale || w.Player.Scale.Y != MaxScale {
		t.Fatalf("player scale = %v, want %v", w.Player.Scale, MaxScale)
	}
	// 96 * 6 / 2 = 288
	if want := gfx.V(400-288, -(300 - 288)); w.Player.Translation != want {
		t.Fatalf("player at %v, want %v", w.Player.Translation, want)
	}

	c := mustCandy(t, w, id)
	if c.Scale.X != MinScale {
		t.Fatalf("candy scale = %v, want %v", c.Scale, MinScale)
	}
	if want := gfx.V(-368, 268); c.Translation != want {
		t.Fatalf("candy at %v, want %v", c.Translation, want)
	}
}

func TestConfineIsIdempotentAndInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		w, _ := playingWorld(t)
		w.Window = gfx.V(200+rng.Float64()*1000, 200+rng.Float64()*800)
		w.Player.Translation = gfx.V(rng.Float64()*4000-2000, rng.Float64()*4000-2000)
		w.Player.SetScale(rng.Float64() * 10)
		id := addCandy(w, rng.Float64()*4000-2000, rng.Float64()*4000-2000, 1, 0)
		mustCandy(t, w, id).Scale = gfx.V(rng.Float64()*8, rng.Float64()*8)

		w.confine()
		p1, c1 := w.Player.Transform, mustCandy(t, w, id).Transform
		w.confine()
		p2, c2 := w.Player.Transform, mustCandy(t, w, id).Transform

		if p1 != p2 || c1 != c2 {
			t.Fatalf("case %d: second clamp moved things: %+v -> %+v, %+v -> %+v", i, p1, p2, c1, c2)
		}
		for _, tr := range []struct {
			t   entity.Transform
			img gfx.Vec
		}{{p1, gfx.V(96, 96)}, {c1, gfx.V(64, 64)}} {
			if tr.t.Scale.X < MinScale || tr.t.Scale.X > MaxScale || tr.t.Scale.Y < MinScale || tr.t.Scale.Y > MaxScale {
				t.Fatalf("case %d: scale %v out of range", i, tr.t.Scale)
			}
			if !ConfinementRect(w.Window, tr.img, tr.t).contains(tr.t.Translation) {
				t.Fatalf("case %d: %v outside its rect", i, tr.t.Translation)
			}
		}
	}
}

func TestDirectionsStayUnitOverManyFrames(t *testing.T) {
	w, _ := playingWorld(t)
	for i := 0; i < 20; i++ {
		w.spawnCandy()
	}
	for f := 0; f < 600; f++ {
		w.Step(Input{}, frame)
		w.Candies.Each(func(id entity.ID, c *entity.Candy) {
			if !near(c.Direction.Len(), 1, 1e-9) {
				t.Fatalf("frame %d: candy %v direction length %v", f, id, c.Direction.Len())
			}
		})
		if w.Phase != PhasePlaying {
			break
		}
	}
}
