package config

import (
	"image/color"
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Countdown"
	AppID       = "com.github.tartampluch.go-countdown"
	LogFileName = "app.log"
	WindowTitle = "Go Countdown"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Preferences
// -----------------------------------------------------------------------------

const (
	PrefLastRun = "last_run_version"
)

// -----------------------------------------------------------------------------
// Target Date Policy
// -----------------------------------------------------------------------------

// The countdown targets local midnight of the next occurrence of this
// calendar date. If the date has already passed when the process starts,
// the target rolls forward to the same date next year. Resolution happens
// exactly once at startup and is never re-evaluated mid-run.
const (
	TargetMonth = time.April
	TargetDay   = 11
)

// -----------------------------------------------------------------------------
// Countdown Timing
// -----------------------------------------------------------------------------

const (
	// SampleInterval is the minimum time between two re-samplings of the
	// remaining time. Frames in between redraw the last-known values.
	SampleInterval = 250 * time.Millisecond

	// PulseWindow is how long a digit group stays visually pulsed after its
	// value changes. Shorter than SampleInterval so pulses from consecutive
	// ticks do not overlap in normal operation.
	PulseWindow = 200 * time.Millisecond

	// FrameCyclePeriod is the nominal duration of one repeat of the frame
	// animation. The driver invokes the tick callback once per display frame
	// regardless of this value.
	FrameCyclePeriod = time.Second

	// FrameLogInterval is how often the achieved frame rate is logged at
	// debug level.
	FrameLogInterval = 5 * time.Second
)

// Millisecond decomposition factors for the remaining-time breakdown.
const (
	MillisPerSecond int64 = 1000
	MillisPerMinute int64 = 60 * MillisPerSecond
	MillisPerHour   int64 = 60 * MillisPerMinute
	MillisPerDay    int64 = 24 * MillisPerHour
)

// SentinelValue primes the sampler's previous-value state so that every
// field registers as changed on the first sample. Remaining values are
// always non-negative, so -1 can never collide with a real sample.
const SentinelValue = -1

// -----------------------------------------------------------------------------
// Typography Cycle
// -----------------------------------------------------------------------------

// Font face identifiers. The engine rotates through these names; only the
// renderer knows how each maps onto a concrete text style.
const (
	FontRegular        = "regular"
	FontBold           = "bold"
	FontItalic         = "italic"
	FontBoldItalic     = "bold-italic"
	FontMono           = "mono"
	FontMonoBold       = "mono-bold"
	FontMonoItalic     = "mono-italic"
	FontMonoBoldItalic = "mono-bold-italic"
	FontUnderline      = "underline"
	FontBoldUnderline  = "bold-underline"
	FontItalicUnder    = "italic-underline"
	FontMonoUnderline  = "mono-underline"
)

// FontCycleNames is the fixed rotation order for digit typography. The
// cycle advances once per tick in which any field changed and never selects
// the same name twice in a row.
var FontCycleNames = []string{
	FontRegular,
	FontBold,
	FontItalic,
	FontBoldItalic,
	FontMono,
	FontMonoBold,
	FontMonoItalic,
	FontMonoBoldItalic,
	FontUnderline,
	FontBoldUnderline,
	FontItalicUnder,
	FontMonoUnderline,
}

// -----------------------------------------------------------------------------
// Display Strings
// -----------------------------------------------------------------------------

const (
	TitleText    = "COUNTDOWN"
	CompleteText = "THE DAY HAS COME"

	LabelDays    = "DAYS"
	LabelHours   = "HOURS"
	LabelMinutes = "MINUTES"
	LabelSeconds = "SECONDS"

	SeparatorGlyph = ":"

	// DigitMinWidth is the minimum number of digits rendered per field.
	// A minimum, not a maximum: day counts above 99 are never truncated.
	DigitMinWidth = 2
)

// -----------------------------------------------------------------------------
// Layout Ratios
// -----------------------------------------------------------------------------

// All display sizes scale with the smaller of the viewport width and
// height, keeping the layout resolution-independent.
const (
	TitleSizeRatio     float32 = 0.07
	DigitSizeRatio     float32 = 0.16
	LabelSizeRatio     float32 = 0.035
	SeparatorSizeRatio float32 = 0.12
	CompleteSizeRatio  float32 = 0.05

	TitleYRatio    float32 = 0.12
	DigitYRatio    float32 = 0.42
	CompleteYRatio float32 = 0.78

	// LabelGapRatio is the label cell's offset below the top of its digit
	// cell, relative to the digit text size. Kept above LineBoxRatio so the
	// label clears the digit box even when pulsed.
	LabelGapRatio float32 = 1.55

	// LineBoxRatio pads a text cell's height relative to its text size so
	// glyph ascenders and descenders are never clipped.
	LineBoxRatio float32 = 1.4

	// PulseScale is the transient size multiplier applied to a digit group
	// while its pulse window is active.
	PulseScale float32 = 1.1
)

// FieldCount is the number of digit groups (days, hours, minutes, seconds).
const FieldCount = 4

// -----------------------------------------------------------------------------
// Palette
// -----------------------------------------------------------------------------

// PulseAlpha replaces the digit color's alpha channel while a field pulses.
const PulseAlpha = 0x99

var (
	GradientTop    = color.NRGBA{R: 0x0e, G: 0x1b, B: 0x3a, A: 0xff}
	GradientBottom = color.NRGBA{R: 0x3d, G: 0x10, B: 0x42, A: 0xff}

	TitleColor     = color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff}
	DigitColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	LabelColor     = color.NRGBA{R: 0xc9, G: 0xc9, B: 0xd4, A: 0xff}
	SeparatorColor = color.NRGBA{R: 0x8e, G: 0x8e, B: 0xa6, A: 0xff}
	CompleteColor  = color.NRGBA{R: 0xff, G: 0xd7, B: 0x6b, A: 0xff}
)

// -----------------------------------------------------------------------------
// Window Defaults
// -----------------------------------------------------------------------------

const (
	// Fallback window size used when the driver declines full screen.
	WindowWidth  = 960
	WindowHeight = 540

	StartFullScreen = true
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatLog is used when logging resolved instants.
	DateFormatLog = "2006-01-02 15:04:05 MST"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLogFile   = "failed to open log file"
	ErrCacheDir  = "could not determine user cache dir"
	ErrCreateDir = "could not create app cache dir"
	ErrAppFailed = "application failed unexpectedly"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgTargetResolved = "Countdown target resolved"
	MsgCountdownDone  = "Countdown reached zero"
	MsgDisplayStart   = "Countdown display starting"
	MsgFrameRate      = "Frame rate"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyTarget    = "target"
	LogKeyRemaining = "remaining_s"
	LogKeyFPS       = "fps"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompMain   = "main"
)
