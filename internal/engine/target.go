package engine

import (
	"time"

	"github.com/tartampluch/go-countdown/internal/config"
)

// ResolveTarget returns the countdown's target instant: local midnight of
// the next occurrence of the configured calendar date, relative to 'now'.
// If that date's midnight is already in the past at startup, the target
// rolls forward to the same date next year.
//
// The candidate is built with calendar-day arithmetic (time.Date in the
// location of 'now'), not raw duration addition, so the result is correct
// across daylight-saving transitions. Both "now" and the target share the
// observer's timezone, making the displayed countdown timezone-relative.
func ResolveTarget(now time.Time) time.Time {
	loc := now.Location()

	candidate := time.Date(now.Year(), config.TargetMonth, config.TargetDay, 0, 0, 0, 0, loc)
	if candidate.Before(now) {
		candidate = time.Date(now.Year()+1, config.TargetMonth, config.TargetDay, 0, 0, 0, 0, loc)
	}

	return candidate
}
