package assets

import (
	"github.com/gopxl/beep"
	"github.com/peterhellberg/gfx"
	"github.com/pkg/errors"
)

// Image is an opaque handle to a sprite. The zero value never resolves.
type Image int

// Clip is an opaque handle to a synthesized sound.
type Clip int

// Sprite and sound names
const (
	SpriteCaticorn = "sprites/caticorn"
	SpriteDonut    = "sprites/donut"

	SoundWallBounce1 = "audio/candy_wall_collision_1"
	SoundWallBounce2 = "audio/candy_wall_collision_2"
	SoundEatCandy    = "audio/caticorn_eat_candy"
	SoundEndFart     = "audio/end_fart"
	MusicTitle       = "music/music_title"
	MusicGameplay    = "music/music_gameplay"
)

type imageEntry struct {
	name   string
	size   gfx.Vec
	loaded bool
}

// Manager hands out handles by name. Images are registered first and
// resolved once their pixels exist, so a size lookup can fail in between.
type Manager struct {
	images  []imageEntry
	byImage map[string]Image

	clips  []*beep.Buffer
	byClip map[string]Clip
	pcm    map[pcmKey][]byte
}

func NewManager() *Manager {
	return &Manager{
		// index 0 is the invalid handle
		images:  []imageEntry{{}},
		byImage: map[string]Image{},
		clips:   []*beep.Buffer{nil},
		byClip:  map[string]Clip{},
	}
}

// LoadImage returns the handle for name, registering it if needed.
func (m *Manager) LoadImage(name string) Image {
	if h, ok := m.byImage[name]; ok {
		return h
	}
	h := Image(len(m.images))
	m.images = append(m.images, imageEntry{name: name})
	m.byImage[name] = h
	return h
}

// Resolve records the pixel size of a loaded image.
func (m *Manager) Resolve(h Image, size gfx.Vec) error {
	if h <= 0 || int(h) >= len(m.images) {
		return errors.Errorf("unknown image handle %d", h)
	}
	m.images[h].size = size
	m.images[h].loaded = true
	return nil
}

// Size reports the pixel size of h, or false while it is unresolved.
func (m *Manager) Size(h Image) (gfx.Vec, bool) {
	if h <= 0 || int(h) >= len(m.images) {
		return gfx.Vec{}, false
	}
	e := m.images[h]
	if !e.loaded {
		return gfx.Vec{}, false
	}
	return e.size, true
}

// LoadClip synthesizes the named sound once and returns its handle.
func (m *Manager) LoadClip(name string) (Clip, error) {
	if h, ok := m.byClip[name]; ok {
		return h, nil
	}
	gen, ok := soundBank[name]
	if !ok {
		return 0, errors.Errorf("no sound named %q", name)
	}
	buf := beep.NewBuffer(Format)
	buf.Append(gen())
	if buf.Len() == 0 {
		return 0, errors.Errorf("sound %q rendered no samples", name)
	}
	h := Clip(len(m.clips))
	m.clips = append(m.clips, buf)
	m.byClip[name] = h
	return h, nil
}

// Buffer returns the samples behind a clip handle.
func (m *Manager) Buffer(c Clip) (*beep.Buffer, bool) {
	if c <= 0 || int(c) >= len(m.clips) {
		return nil, false
	}
	return m.clips[c], true
}

// LoadClips loads every name in order, stopping at the first failure.
func (m *Manager) LoadClips(names ...string) ([]Clip, error) {
	out := make([]Clip, 0, len(names))
	for _, n := range names {
		c, err := m.LoadClip(n)
		if err != nil {
			return nil, errors.Wrapf(err, "load clip %s", n)
		}
		out = append(out, c)
	}
	return out, nil
}
