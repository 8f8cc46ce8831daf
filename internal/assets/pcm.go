package assets

import (
	"math"

	"github.com/gopxl/beep"
	"github.com/pkg/errors"
)

type pcmKey struct {
	clip  Clip
	speed float64
}

// PCM renders a clip as 16 bit little endian stereo at the given speed.
// Results are cached per clip and speed.
func (m *Manager) PCM(c Clip, speed float64) ([]byte, error) {
	if speed <= 0 {
		speed = 1
	}
	key := pcmKey{clip: c, speed: speed}
	if b, ok := m.pcm[key]; ok {
		return b, nil
	}
	buf, ok := m.Buffer(c)
	if !ok {
		return nil, errors.Errorf("unknown clip handle %d", c)
	}
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if speed != 1 {
		s = beep.ResampleRatio(4, speed, s)
	}
	b, err := EncodePCM(s)
	if err != nil {
		return nil, errors.Wrapf(err, "encode clip %d", c)
	}
	if m.pcm == nil {
		m.pcm = map[pcmKey][]byte{}
	}
	m.pcm[key] = b
	return b, nil
}

// EncodePCM drains a finite streamer into 16 bit little endian stereo.
func EncodePCM(s beep.Streamer) ([]byte, error) {
	var out []byte
	samples := make([][2]float64, 512)
	for {
		n, ok := s.Stream(samples)
		for _, smp := range samples[:n] {
			for ch := 0; ch < 2; ch++ {
				v := int16(math.Max(-1, math.Min(1, smp[ch])) * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
