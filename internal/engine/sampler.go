package engine

import (
	"time"

	"github.com/tartampluch/go-countdown/internal/config"
)

// Remaining holds the whole time units left until the target instant.
// All fields are non-negative; once the target is reached they clamp to
// zero and stay there for the life of the process.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether every field is zero.
func (r Remaining) IsZero() bool {
	return r.Days == 0 && r.Hours == 0 && r.Minutes == 0 && r.Seconds == 0
}

// TotalSeconds collapses the decomposition back into a single second count.
func (r Remaining) TotalSeconds() int64 {
	return int64(r.Days)*86400 + int64(r.Hours)*3600 + int64(r.Minutes)*60 + int64(r.Seconds)
}

// ChangeFlags reports, per field, whether the newly sampled value differs
// from the value recorded on the previous sample.
type ChangeFlags struct {
	Days    bool
	Hours   bool
	Minutes bool
	Seconds bool
}

// Any reports whether at least one field changed.
func (c ChangeFlags) Any() bool {
	return c.Days || c.Hours || c.Minutes || c.Seconds
}

// Sampler decomposes the distance to a fixed target instant into whole
// days, hours, minutes and seconds, and tracks which fields changed between
// consecutive samples.
//
// Sample mutates the stored previous-value state, so callers must invoke it
// at most once per intended tick; the arithmetic itself is pure.
type Sampler struct {
	target time.Time
	prev   Remaining
}

// NewSampler creates a sampler for the given target instant. The previous
// values are primed with an out-of-range sentinel so that all four fields
// register as changed on the first sample.
func NewSampler(target time.Time) *Sampler {
	return &Sampler{
		target: target,
		prev: Remaining{
			Days:    config.SentinelValue,
			Hours:   config.SentinelValue,
			Minutes: config.SentinelValue,
			Seconds: config.SentinelValue,
		},
	}
}

// Sample computes the remaining time at 'now' and the per-field change
// flags relative to the previous call. A non-positive difference clamps all
// fields to zero; the countdown never displays negative values, including
// after a backward system-clock jump.
func (s *Sampler) Sample(now time.Time) (Remaining, ChangeFlags) {
	var rem Remaining

	if diff := s.target.Sub(now).Milliseconds(); diff > 0 {
		// Truncating decomposition: the displayed second only decrements on
		// an exact boundary.
		rem.Days = int(diff / config.MillisPerDay)
		rem.Hours = int(diff % config.MillisPerDay / config.MillisPerHour)
		rem.Minutes = int(diff % config.MillisPerHour / config.MillisPerMinute)
		rem.Seconds = int(diff % config.MillisPerMinute / config.MillisPerSecond)
	}

	changed := ChangeFlags{
		Days:    rem.Days != s.prev.Days,
		Hours:   rem.Hours != s.prev.Hours,
		Minutes: rem.Minutes != s.prev.Minutes,
		Seconds: rem.Seconds != s.prev.Seconds,
	}
	s.prev = rem

	return rem, changed
}
