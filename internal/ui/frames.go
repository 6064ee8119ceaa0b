package ui

import "time"

// frameMeter tracks the achieved frame rate for debug logging. Frames are
// counted per call and averaged over the configured interval.
type frameMeter struct {
	interval time.Duration
	frames   int
	last     time.Time
}

func newFrameMeter(interval time.Duration) frameMeter {
	return frameMeter{interval: interval}
}

// tick records one frame at 'now'. When a full interval has elapsed it
// returns the averaged frames-per-second and resets the window.
func (m *frameMeter) tick(now time.Time) (float64, bool) {
	if m.last.IsZero() {
		m.last = now
		return 0, false
	}

	m.frames++
	elapsed := now.Sub(m.last)
	if elapsed < m.interval {
		return 0, false
	}

	fps := float64(m.frames) / elapsed.Seconds()
	m.frames = 0
	m.last = now
	return fps, true
}
