package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-countdown/internal/config"
)

// Snapshot is the immutable view of the countdown handed to the renderer
// once per frame.
type Snapshot struct {
	Remaining Remaining
	Pulse     PulseFlags
	Font      string
	Complete  bool
}

// Countdown is the core service owning all countdown state: the resolved
// target, the sampler's previous values, pulse windows, the typography
// cycle, and the sampling watermark. One instance drives one display; the
// state is explicit rather than ambient so multiple instances can coexist
// and tests can run deterministically against a mocked Clock.
type Countdown struct {
	Clock Clock // Interface for time mocking.

	target       time.Time
	sampler      *Sampler
	pulse        PulseTracker
	fonts        *FontCycle
	remaining    Remaining
	lastSampleAt time.Time
	sampled      bool
	complete     bool
}

// NewCountdown resolves the target instant exactly once, from the injected
// clock, and wires the sampler and font cycle. The target is never
// re-evaluated mid-run; a long session crossing the year boundary keeps its
// originally resolved target.
func NewCountdown(clock Clock) *Countdown {
	now := clock.Now()
	target := ResolveTarget(now)

	slog.Info(config.MsgTargetResolved,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyTarget, target.Format(config.DateFormatLog),
		config.LogKeyRemaining, int64(target.Sub(now)/time.Second))

	return &Countdown{
		Clock:   clock,
		target:  target,
		sampler: NewSampler(target),
		fonts:   NewFontCycle(config.FontCycleNames),
	}
}

// Target returns the resolved target instant.
func (c *Countdown) Target() time.Time {
	return c.target
}

// Tick is invoked once per display frame by the host loop. Re-sampling is
// throttled to at most once per SampleInterval; frames in between reuse the
// last-known values, decoupling the smooth frame rate from the coarse data
// cadence. Every call returns a snapshot for rendering.
//
// Completion is sticky: once a sample observes the target instant, the
// engine stops sampling and reports zeros forever, so a backward clock jump
// can neither resurrect the countdown nor surface negative values.
func (c *Countdown) Tick() Snapshot {
	now := c.Clock.Now()

	if !c.complete && (!c.sampled || now.Sub(c.lastSampleAt) >= config.SampleInterval) {
		rem, changed := c.sampler.Sample(now)
		c.pulse.Mark(now, changed)
		if changed.Any() {
			c.fonts.Advance()
		}

		c.remaining = rem
		c.lastSampleAt = now
		c.sampled = true

		if !now.Before(c.target) {
			c.complete = true
			slog.Info(config.MsgCountdownDone,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyTarget, c.target.Format(config.DateFormatLog))
		}
	}

	return Snapshot{
		Remaining: c.remaining,
		Pulse:     c.pulse.Active(now),
		Font:      c.fonts.Current(),
		Complete:  c.complete,
	}
}
