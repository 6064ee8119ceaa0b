package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/tartampluch/go-countdown/internal/config"
	"github.com/tartampluch/go-countdown/internal/engine"
)

// fieldLabels names the digit groups in render order.
var fieldLabels = [config.FieldCount]string{
	config.LabelDays,
	config.LabelHours,
	config.LabelMinutes,
	config.LabelSeconds,
}

// display owns the canvas object graph for one countdown window: gradient
// background, title, four labeled digit groups, separator glyphs, and the
// completion banner. It holds no countdown logic; draw is a pure view of an
// engine snapshot at a given viewport size.
type display struct {
	root       *fyne.Container
	background *canvas.LinearGradient
	title      *canvas.Text
	values     [config.FieldCount]*canvas.Text
	labels     [config.FieldCount]*canvas.Text
	separators [config.FieldCount - 1]*canvas.Text
	complete   *canvas.Text

	lastSnap engine.Snapshot
	lastSize fyne.Size
	drawn    bool
}

// newDisplay builds the object graph in an absolute-positioning container.
// Geometry is assigned on the first draw, once the viewport size is known.
func newDisplay() *display {
	d := &display{
		background: canvas.NewVerticalGradient(config.GradientTop, config.GradientBottom),
		title:      canvas.NewText(config.TitleText, config.TitleColor),
		complete:   canvas.NewText(config.CompleteText, config.CompleteColor),
	}

	d.title.Alignment = fyne.TextAlignCenter
	d.title.TextStyle = fyne.TextStyle{Bold: true}

	d.complete.Alignment = fyne.TextAlignCenter
	d.complete.TextStyle = fyne.TextStyle{Bold: true}
	d.complete.Hide()

	objects := []fyne.CanvasObject{d.background, d.title}

	for i := range d.values {
		d.values[i] = canvas.NewText("", config.DigitColor)
		d.values[i].Alignment = fyne.TextAlignCenter

		d.labels[i] = canvas.NewText(fieldLabels[i], config.LabelColor)
		d.labels[i].Alignment = fyne.TextAlignCenter

		objects = append(objects, d.values[i], d.labels[i])
	}

	for i := range d.separators {
		d.separators[i] = canvas.NewText(config.SeparatorGlyph, config.SeparatorColor)
		d.separators[i].Alignment = fyne.TextAlignCenter
		objects = append(objects, d.separators[i])
	}

	objects = append(objects, d.complete)
	d.root = container.NewWithoutLayout(objects...)

	return d
}

// draw lays out and repaints the frame for the given snapshot and viewport
// size. All sizes derive from the smaller viewport dimension, so the layout
// is resolution-independent and resizing just redraws at the new geometry.
// Identical consecutive frames are skipped.
func (d *display) draw(snap engine.Snapshot, size fyne.Size) {
	if size.Width <= 0 || size.Height <= 0 {
		return
	}
	if d.drawn && snap == d.lastSnap && size == d.lastSize {
		return
	}

	unit := size.Height
	if size.Width < unit {
		unit = size.Width
	}

	if size != d.lastSize {
		d.background.Move(fyne.NewPos(0, 0))
		d.background.Resize(size)
		d.background.Refresh()
	}

	placeText(d.title,
		unit*config.TitleSizeRatio,
		0, size.Height*config.TitleYRatio, size.Width)

	style := faceStyle(snap.Font)
	colWidth := size.Width / config.FieldCount
	digitSize := unit * config.DigitSizeRatio
	digitBox := digitSize * config.LineBoxRatio
	centerY := size.Height * config.DigitYRatio

	fieldValues := [config.FieldCount]int{
		snap.Remaining.Days,
		snap.Remaining.Hours,
		snap.Remaining.Minutes,
		snap.Remaining.Seconds,
	}
	fieldPulses := [config.FieldCount]bool{
		snap.Pulse.Days,
		snap.Pulse.Hours,
		snap.Pulse.Minutes,
		snap.Pulse.Seconds,
	}

	for i := range d.values {
		textSize := digitSize
		digitColor := config.DigitColor
		if fieldPulses[i] {
			textSize *= config.PulseScale
			digitColor.A = config.PulseAlpha
		}

		value := d.values[i]
		value.Text = formatPadded(fieldValues[i], config.DigitMinWidth)
		value.TextStyle = style
		value.Color = digitColor
		placeText(value, textSize,
			colWidth*float32(i), centerY-digitBox/2, colWidth)

		placeText(d.labels[i],
			unit*config.LabelSizeRatio,
			colWidth*float32(i), centerY-digitBox/2+digitSize*config.LabelGapRatio, colWidth)
	}

	sepSize := unit * config.SeparatorSizeRatio
	sepBox := sepSize * config.LineBoxRatio
	for i := range d.separators {
		placeText(d.separators[i], sepSize,
			colWidth*float32(i+1)-colWidth/2, centerY-sepBox/2, colWidth)
	}

	placeText(d.complete,
		unit*config.CompleteSizeRatio,
		0, size.Height*config.CompleteYRatio, size.Width)
	if snap.Complete {
		d.complete.Show()
	} else {
		d.complete.Hide()
	}

	d.lastSnap = snap
	d.lastSize = size
	d.drawn = true
}

// placeText sizes a text object, positions its cell, and repaints it. The
// cell height pads the text size so ascenders and descenders stay visible.
func placeText(t *canvas.Text, textSize, x, y, width float32) {
	t.TextSize = textSize
	t.Move(fyne.NewPos(x, y))
	t.Resize(fyne.NewSize(width, textSize*config.LineBoxRatio))
	t.Refresh()
}
