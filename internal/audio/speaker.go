// Package audio plays synthesized clips through ebiten's audio context.
package audio

import (
	"bytes"

	"caticorn/internal/assets"
	"caticorn/internal/log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PCMSource renders clips to 16 bit stereo bytes.
type PCMSource interface {
	PCM(c assets.Clip, speed float64) ([]byte, error)
}

type Speaker struct {
	ctx     *audio.Context
	clips   PCMSource
	log     *logrus.Logger
	oneShot []*audio.Player
}

func NewSpeaker(clips PCMSource, logger *logrus.Logger) (*Speaker, error) {
	if logger == nil {
		logger = log.Discard()
	}
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(assets.SampleRate))
	}
	if ctx.SampleRate() != int(assets.SampleRate) {
		return nil, errors.Errorf("audio context runs at %d Hz, clips are %d Hz", ctx.SampleRate(), int(assets.SampleRate))
	}
	return &Speaker{ctx: ctx, clips: clips, log: logger}, nil
}

// Play starts a clip. Failures are logged and yield a sink that does
// nothing, the game carries on without the sound.
func (s *Speaker) Play(c assets.Clip, pb assets.Playback) assets.Sink {
	s.reap()

	pcm, err := s.clips.PCM(c, pb.Speed)
	if err != nil {
		s.log.Warnf("play clip %d: %v", c, err)
		return assets.NopSink{}
	}

	var p *audio.Player
	if pb.Repeat {
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err = s.ctx.NewPlayer(loop)
		if err != nil {
			s.log.Warnf("play clip %d: %v", c, errors.Wrap(err, "new looping player"))
			return assets.NopSink{}
		}
	} else {
		p = s.ctx.NewPlayerFromBytes(pcm)
		s.oneShot = append(s.oneShot, p)
	}
	p.SetVolume(pb.Volume)
	p.Play()
	return &Sink{player: p, log: s.log}
}

// reap closes one-shot players that have run out.
func (s *Speaker) reap() {
	live := s.oneShot[:0]
	for _, p := range s.oneShot {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			s.log.Debugf("close player: %v", err)
		}
	}
	s.oneShot = live
}

// Sink stops a started clip.
type Sink struct {
	player *audio.Player
	log    *logrus.Logger
}

func (s *Sink) Stop() {
	if s.player == nil {
		return
	}
	s.player.Pause()
	if err := s.player.Close(); err != nil {
		s.log.Debugf("close player: %v", err)
	}
	s.player = nil
}
