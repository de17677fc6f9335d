package gio

import (
	"errors"
	"fmt"
	"image"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"github.com/tdewolff/gioplot"
)

// constraints at least this large are treated as unbounded
const unbounded = 1e6

// Chart is a Gio widget that fills the space it is given with a chart. Besides its text shaper
// it holds no state between frames, the chart itself lives in a gioplot.Model that may be
// shared. A Chart is laid out by one goroutine at a time.
type Chart struct {
	model *gioplot.Model
	opts  *Options

	ownShaper *text.Shaper
}

// New returns a widget for the chart with a model of its own.
func New(c gioplot.Chart, opts *Options) *Chart {
	return WithSharedModel(gioplot.NewModel(c), opts)
}

// WithSharedModel returns a widget that draws the chart of an existing model.
func WithSharedModel(m *gioplot.Model, opts *Options) *Chart {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	return &Chart{
		model: m,
		opts:  opts,
	}
}

// Model returns the chart's model.
func (c *Chart) Model() *gioplot.Model {
	return c.model
}

func (c *Chart) shaper() *text.Shaper {
	if c.opts.Shaper != nil {
		return c.opts.Shaper
	} else if c.ownShaper == nil {
		c.ownShaper = NewShaper()
	}
	return c.ownShaper
}

// Layout paints the chart over the maximum constraints, or the minimum constraints along
// unbounded axes.
func (c *Chart) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	if unbounded <= size.X {
		size.X = gtx.Constraints.Min.X
	}
	if unbounded <= size.Y {
		size.Y = gtx.Constraints.Min.Y
	}
	gtx.Constraints = layout.Exact(size)

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	if 0.0 < c.opts.Background.A {
		paint.FillShape(gtx.Ops, c.opts.Background.NRGBA(), clip.Rect{Max: size}.Op())
	}

	c.Paint(NewSink(gtx, c.shaper()), Bounds{Size: layout.FPt(size)})
	return layout.Dimensions{Size: size}
}

// Paint draws the chart into sink at bounds. It is the recovery boundary for failing charts:
// errors and panics of the chart are logged once and returned, the primitives emitted before
// the failure stay in the sink.
func (c *Chart) Paint(sink Sink, bounds Bounds) error {
	b := NewBackend(sink, bounds)
	defer b.release()

	root := gioplot.NewDrawingArea(b)
	err := c.model.WithRead(func(chart gioplot.Chart) error {
		return plot(chart, root)
	})
	if errors.Is(err, gioplot.ErrModelPoisoned) {
		gioplot.Logger().Warn("chart paint skipped", "err", err)
	} else if err != nil {
		w, h := b.Size()
		gioplot.Logger().Error("chart plot failed", "err", err, "size", image.Pt(w, h))
	}
	return err
}

func plot(chart gioplot.Chart, root *gioplot.DrawingArea) (err error) {
	if chart == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = &gioplot.PlotError{Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if err := root.Backend().EnsurePrepared(); err != nil {
		return &gioplot.PlotError{Err: err}
	} else if err := chart.Plot(root); err != nil {
		return &gioplot.PlotError{Err: err}
	}
	return root.Present()
}
