package engine

// FontCycle rotates through a fixed ordered list of font names. The
// selection applies uniformly to all digit groups for a tick; the names are
// opaque to the engine and are mapped onto concrete text styles by the
// renderer.
type FontCycle struct {
	names    []string
	current  int
	previous int
}

// NewFontCycle creates a cycle over the given names, starting on the first
// entry.
func NewFontCycle(names []string) *FontCycle {
	return &FontCycle{names: names}
}

// Current returns the font name selected for the most recent tick.
func (f *FontCycle) Current() string {
	if len(f.names) == 0 {
		return ""
	}
	return f.names[f.current]
}

// Advance moves the selection one step through the list and returns the new
// name, recording it as both the current and the previously selected index.
// If wrapping would land on the previously selected font, the cycle steps
// once more, so the newly selected font never equals the one rendered on
// the immediately preceding update (for any list length >= 2).
func (f *FontCycle) Advance() string {
	if len(f.names) == 0 {
		return ""
	}

	next := (f.current + 1) % len(f.names)
	if next == f.previous && len(f.names) > 1 {
		next = (next + 1) % len(f.names)
	}

	f.previous = next
	f.current = next
	return f.names[next]
}
