package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-countdown/internal/config"
	"github.com/tartampluch/go-countdown/internal/engine"
)

// CountdownApp encapsulates the UI state and the frame loop driving the
// countdown display.
type CountdownApp struct {
	App    fyne.App
	Window fyne.Window
	Ctx    context.Context

	Clock     engine.Clock // Injected clock for testability (e.g. mocking time travel)
	Countdown *engine.Countdown

	display *display
	anim    *fyne.Animation
	meter   frameMeter
}

// NewCountdownApp constructs the application and wires dependencies. The
// countdown target is resolved here, once, from the real clock.
func NewCountdownApp(a fyne.App, ctx context.Context) *CountdownApp {
	clock := engine.RealClock{}

	return &CountdownApp{
		App:       a,
		Ctx:       ctx,
		Clock:     clock,
		Countdown: engine.NewCountdown(clock),
		display:   newDisplay(),
		meter:     newFrameMeter(config.FrameLogInterval),
	}
}

// Run builds the window, starts the frame loop, and enters the Fyne main
// loop. Blocks until the window closes or the app quits.
func (app *CountdownApp) Run() {
	w := app.App.NewWindow(config.WindowTitle)
	w.SetPadded(false)
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	w.SetFullScreen(config.StartFullScreen)
	w.SetContent(app.display.root)
	app.Window = w

	slog.Info(config.MsgDisplayStart,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyTarget, app.Countdown.Target().Format(config.DateFormatLog))

	go app.watchLifecycle()
	app.startFrameLoop()
	w.ShowAndRun()
}

// watchLifecycle blocks until the root context is cancelled (SIGINT or
// SIGTERM) and then quits the Fyne main loop so Run returns cleanly.
func (app *CountdownApp) watchLifecycle() {
	<-app.Ctx.Done()
	slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompUI)
	app.App.Quit()
}

// startFrameLoop registers a repeating animation with the driver. The tick
// callback fires once per display frame, implicitly throttled to the
// host's refresh rate; data sampling is throttled further inside the
// engine.
func (app *CountdownApp) startFrameLoop() {
	app.anim = &fyne.Animation{
		Duration:    config.FrameCyclePeriod,
		Curve:       fyne.AnimationLinear,
		RepeatCount: fyne.AnimationRepeatForever,
		Tick:        func(float32) { app.renderFrame() },
	}
	app.anim.Start()
}

// renderFrame advances the engine and redraws from the returned snapshot.
// Reading the canvas size every frame makes resize handling idempotent: a
// resized surface is simply drawn at its new geometry on the next frame,
// with no other state affected.
func (app *CountdownApp) renderFrame() {
	snap := app.Countdown.Tick()
	app.display.draw(snap, app.Window.Canvas().Size())

	if fps, ok := app.meter.tick(app.Clock.Now()); ok {
		slog.Debug(config.MsgFrameRate,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyFPS, fps)
	}
}
