package gamemode

import "time"

// ClampFrame bounds a measured frame time to [0, MaxFrameDelta].
func ClampFrame(dt time.Duration) time.Duration {
	switch {
	case dt < 0:
		return 0
	case dt > MaxFrameDelta:
		return MaxFrameDelta
	}
	return dt
}

// Timer is a repeating countdown advanced by frame deltas.
type Timer struct {
	Period   time.Duration
	elapsed  time.Duration
	finished int
}

func NewRepeatingTimer(period time.Duration) Timer {
	return Timer{Period: period}
}

// Tick advances the timer. A long frame can finish it several times.
func (t *Timer) Tick(d time.Duration) {
	t.finished = 0
	if t.Period <= 0 || d <= 0 {
		return
	}
	t.elapsed += d
	for t.elapsed >= t.Period {
		t.elapsed -= t.Period
		t.finished++
	}
}

// TimesFinished is how many periods the last Tick crossed.
func (t *Timer) TimesFinished() int { return t.finished }

func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = 0
}
