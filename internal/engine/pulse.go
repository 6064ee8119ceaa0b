package engine

import (
	"time"

	"github.com/tartampluch/go-countdown/internal/config"
)

// PulseFlags reports which digit groups are currently inside their pulse
// window. Pulse state only affects render scale and opacity; it never
// feeds back into countdown arithmetic.
type PulseFlags struct {
	Days    bool
	Hours   bool
	Minutes bool
	Seconds bool
}

// PulseTracker records, per field, the instant until which that field's
// pulse styling stays active. State is a set of expiry timestamps evaluated
// against the current time, so pulse activity is a pure function of 'now'
// and needs no timer subsystem.
type PulseTracker struct {
	days    time.Time
	hours   time.Time
	minutes time.Time
	seconds time.Time
}

// Mark opens a pulse window for every changed field, expiring PulseWindow
// after 'now'. Marking a field that is already pulsing extends its window.
func (p *PulseTracker) Mark(now time.Time, changed ChangeFlags) {
	expiry := now.Add(config.PulseWindow)
	if changed.Days {
		p.days = expiry
	}
	if changed.Hours {
		p.hours = expiry
	}
	if changed.Minutes {
		p.minutes = expiry
	}
	if changed.Seconds {
		p.seconds = expiry
	}
}

// Active reports which fields are pulsing at 'now'. A field is active
// strictly before its expiry instant.
func (p *PulseTracker) Active(now time.Time) PulseFlags {
	return PulseFlags{
		Days:    now.Before(p.days),
		Hours:   now.Before(p.hours),
		Minutes: now.Before(p.minutes),
		Seconds: now.Before(p.seconds),
	}
}
