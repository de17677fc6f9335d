package gio

import (
	"gioui.org/text"
	"github.com/tdewolff/gioplot"
)

// Options configures a Chart.
type Options struct {
	// Shaper shapes and measures text, nil gives every Chart a shaper of its own with the Go
	// fonts. A shaper must not be used from several goroutines at once, so charts laid out by
	// different windows must not share one.
	Shaper *text.Shaper

	// Background is painted under the chart, transparent paints nothing.
	Background gioplot.Color
}

// DefaultOptions are used when nil options are passed.
var DefaultOptions = Options{
	Background: gioplot.Transparent,
}
