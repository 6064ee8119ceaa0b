package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-countdown/internal/config"
	"github.com/tartampluch/go-countdown/internal/engine"
)

// targetForTest is an arbitrary fixed instant; sampler behavior depends
// only on the distance between target and now.
var targetForTest = time.Date(2025, config.TargetMonth, config.TargetDay, 0, 0, 0, 0, time.UTC)

func TestSampler_FloorConsistency(t *testing.T) {
	// Property: the decomposition collapses back to exactly
	// floor((target-now)/1s) for any instant before the target.
	offsets := []time.Duration{
		time.Millisecond,
		999 * time.Millisecond,
		time.Second,
		90 * time.Second,
		time.Hour + 30*time.Minute,
		26 * time.Hour,
		100*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 678*time.Millisecond,
	}

	for _, offset := range offsets {
		s := engine.NewSampler(targetForTest)
		now := targetForTest.Add(-offset)

		rem, _ := s.Sample(now)

		assert.GreaterOrEqual(t, rem.Days, 0)
		assert.GreaterOrEqual(t, rem.Hours, 0)
		assert.GreaterOrEqual(t, rem.Minutes, 0)
		assert.GreaterOrEqual(t, rem.Seconds, 0)

		wholeSeconds := targetForTest.Sub(now).Milliseconds() / 1000
		assert.Equal(t, wholeSeconds, rem.TotalSeconds(),
			"Decomposition of %v must collapse to floor(diff/1s)", offset)
	}
}

func TestSampler_ZeroClamp(t *testing.T) {
	// Property: at or past the target, every field is zero.
	s := engine.NewSampler(targetForTest)

	for _, now := range []time.Time{
		targetForTest,
		targetForTest.Add(time.Millisecond),
		targetForTest.Add(400 * 24 * time.Hour),
	} {
		rem, _ := s.Sample(now)
		assert.True(t, rem.IsZero(), "All fields must clamp to zero at %v", now)
	}
}

func TestSampler_Monotonicity(t *testing.T) {
	// Property: as now advances toward the target, the total remaining
	// seconds never increases.
	s := engine.NewSampler(targetForTest)

	now := targetForTest.Add(-3 * 24 * time.Hour)
	prevTotal := int64(1<<62 - 1)

	for now.Before(targetForTest) {
		rem, _ := s.Sample(now)
		total := rem.TotalSeconds()
		assert.LessOrEqual(t, total, prevTotal, "Remaining time re-increased at %v", now)
		prevTotal = total
		now = now.Add(37 * time.Minute)
	}
}

func TestSampler_ChangeDetection(t *testing.T) {
	s := engine.NewSampler(targetForTest)

	// First sample: the sentinel guarantees every field registers as changed.
	now := targetForTest.Add(-(48*time.Hour + 30*time.Minute + 10*time.Second))
	_, changed := s.Sample(now)
	assert.Equal(t, engine.ChangeFlags{Days: true, Hours: true, Minutes: true, Seconds: true}, changed,
		"First sample must report all fields as changed")

	// Same instant again: arithmetic is pure, nothing differs.
	_, changed = s.Sample(now)
	assert.False(t, changed.Any(), "Resampling the same instant must report no changes")

	// One second later, away from a minute boundary: only seconds moves.
	_, changed = s.Sample(now.Add(time.Second))
	assert.Equal(t, engine.ChangeFlags{Seconds: true}, changed)

	// Crossing a minute boundary: minutes and seconds both move.
	_, changed = s.Sample(now.Add(11 * time.Second))
	assert.True(t, changed.Minutes)
	assert.True(t, changed.Seconds)
	assert.False(t, changed.Hours)
	assert.False(t, changed.Days)
}

func TestSampler_FinalSecondScenario(t *testing.T) {
	// Scenario: one second before the target, the display reads 00:00:00:01.
	target := time.Date(2025, 4, 11, 0, 0, 0, 0, time.Local)
	s := engine.NewSampler(target)

	rem, changed := s.Sample(time.Date(2025, 4, 10, 23, 59, 59, 0, time.Local))

	assert.Equal(t, engine.Remaining{Days: 0, Hours: 0, Minutes: 0, Seconds: 1}, rem)
	assert.Equal(t, engine.ChangeFlags{Days: true, Hours: true, Minutes: true, Seconds: true}, changed,
		"First sample registers every field")

	// Scenario: 1000ms later the target is reached and stays reached.
	rem, _ = s.Sample(time.Date(2025, 4, 11, 0, 0, 0, 0, time.Local))
	assert.True(t, rem.IsZero())

	rem, changed = s.Sample(time.Date(2025, 4, 11, 0, 0, 5, 0, time.Local))
	assert.True(t, rem.IsZero())
	assert.False(t, changed.Any(), "Zero state must be stable across further advancement")
}

func TestSampler_BackwardClockJump(t *testing.T) {
	// A clock adjustment past the target and back must never surface
	// negative values; non-positive differences clamp to zero.
	s := engine.NewSampler(targetForTest)

	rem, _ := s.Sample(targetForTest.Add(time.Minute))
	assert.True(t, rem.IsZero())

	rem, _ = s.Sample(targetForTest.Add(-time.Minute))
	assert.Equal(t, int64(60), rem.TotalSeconds(),
		"The sampler itself is pure; stickiness is enforced by the controller")
}
