package ui

import (
	"context"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-countdown/internal/config"
	"github.com/tartampluch/go-countdown/internal/engine"
)

func TestNewCountdownApp_WiresDependencies(t *testing.T) {
	a := test.NewApp()

	app := NewCountdownApp(a, context.Background())

	require.NotNil(t, app.Countdown)
	require.NotNil(t, app.display)
	assert.Equal(t, a, app.App)
	assert.False(t, app.Countdown.Target().Before(app.Clock.Now().Add(-1)),
		"A freshly resolved target is never in the past")
}

// TestCountdownApp_QuitsOnCancel exercises the lifecycle bridge directly:
// once the root context is cancelled, watchLifecycle must observe it, quit
// the app, and return. A hang here fails the test via its deadline.
func TestCountdownApp_QuitsOnCancel(t *testing.T) {
	a := test.NewApp()
	ctx, cancel := context.WithCancel(context.Background())

	app := NewCountdownApp(a, ctx)
	assert.Equal(t, ctx, app.Ctx, "The root context must be retained for the bridge")

	cancel()
	app.watchLifecycle()
}

func TestDisplay_DrawCountdown(t *testing.T) {
	_ = test.NewApp()

	d := newDisplay()
	snap := engine.Snapshot{
		Remaining: engine.Remaining{Days: 100, Hours: 3, Minutes: 4, Seconds: 5},
		Font:      config.FontMono,
	}
	size := fyne.NewSize(1280, 720)

	d.draw(snap, size)

	assert.Equal(t, "100", d.values[0].Text, "Day counts past 99 are not truncated")
	assert.Equal(t, "03", d.values[1].Text)
	assert.Equal(t, "04", d.values[2].Text)
	assert.Equal(t, "05", d.values[3].Text)

	for i, v := range d.values {
		assert.True(t, v.TextStyle.Monospace, "Digit group %d should carry the cycle's face", i)
	}

	assert.Equal(t, config.TitleText, d.title.Text)
	for _, sep := range d.separators {
		assert.Equal(t, config.SeparatorGlyph, sep.Text)
	}

	assert.True(t, d.complete.Hidden, "Banner stays hidden while counting down")
	assert.Equal(t, size, d.background.Size(), "Gradient must cover the viewport")
}

func TestDisplay_PulseScalesAndFades(t *testing.T) {
	_ = test.NewApp()

	d := newDisplay()
	size := fyne.NewSize(1280, 720)
	snap := engine.Snapshot{
		Remaining: engine.Remaining{Seconds: 30},
		Pulse:     engine.PulseFlags{Seconds: true},
		Font:      config.FontRegular,
	}

	d.draw(snap, size)

	unit := size.Height // smaller dimension of 1280x720
	baseSize := unit * config.DigitSizeRatio

	assert.InDelta(t, float64(baseSize), float64(d.values[0].TextSize), 0.01,
		"Non-pulsing groups render at base size")
	assert.InDelta(t, float64(baseSize*config.PulseScale), float64(d.values[3].TextSize), 0.01,
		"The pulsing group is scaled up")

	pulsed, ok := d.values[3].Color.(color.NRGBA)
	require.True(t, ok)
	assert.EqualValues(t, config.PulseAlpha, pulsed.A, "The pulsing group is faded")

	steady, ok := d.values[0].Color.(color.NRGBA)
	require.True(t, ok)
	assert.EqualValues(t, 0xff, steady.A)
}

func TestDisplay_CompleteBanner(t *testing.T) {
	_ = test.NewApp()

	d := newDisplay()
	size := fyne.NewSize(1280, 720)

	d.draw(engine.Snapshot{Remaining: engine.Remaining{Seconds: 1}, Font: config.FontRegular}, size)
	assert.True(t, d.complete.Hidden)

	d.draw(engine.Snapshot{Complete: true, Font: config.FontRegular}, size)
	assert.False(t, d.complete.Hidden, "Reaching zero reveals the completion banner")
	assert.Equal(t, config.CompleteText, d.complete.Text)

	for _, v := range d.values {
		assert.Equal(t, "00", v.Text, "All groups clamp to zero once complete")
	}
}

func TestDisplay_ResizeIsIdempotent(t *testing.T) {
	_ = test.NewApp()

	d := newDisplay()
	snap := engine.Snapshot{Remaining: engine.Remaining{Minutes: 2}, Font: config.FontRegular}

	// Portrait viewport: sizes derive from the width.
	portrait := fyne.NewSize(400, 1000)
	d.draw(snap, portrait)
	assert.InDelta(t, float64(400*config.DigitSizeRatio), float64(d.values[0].TextSize), 0.01)
	assert.Equal(t, portrait, d.background.Size())

	// Landscape viewport: sizes derive from the height; nothing but
	// geometry changes.
	landscape := fyne.NewSize(1000, 400)
	d.draw(snap, landscape)
	assert.InDelta(t, float64(400*config.DigitSizeRatio), float64(d.values[0].TextSize), 0.01)
	assert.Equal(t, landscape, d.background.Size())

	// Re-drawing at the same size and snapshot is a no-op.
	d.draw(snap, landscape)
	assert.Equal(t, landscape, d.background.Size())
}
