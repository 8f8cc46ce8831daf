package assets

// Playback is how a clip is started.
type Playback struct {
	Repeat bool
	Volume float64 // linear gain, 1 is unchanged
	Speed  float64 // playback rate, 1 is unchanged
}

// Once plays a clip a single time at its natural volume and speed.
func Once() Playback {
	return Playback{Volume: 1, Speed: 1}
}

// Looping repeats a clip until its sink is stopped.
func Looping() Playback {
	return Playback{Repeat: true, Volume: 1, Speed: 1}
}

// Sink controls a clip that has been started.
type Sink interface {
	Stop()
}

// NopSink is returned when playback could not start.
type NopSink struct{}

func (NopSink) Stop() {}
