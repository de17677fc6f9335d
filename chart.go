package gioplot

// Chart is user plotting code. Plot draws the chart onto the root area and returns the first
// drawing error. Plot runs on the UI goroutine during paint and must not block.
type Chart interface {
	Plot(root *DrawingArea) error
}

// ChartFunc adapts a function to a Chart.
type ChartFunc func(root *DrawingArea) error

// Plot calls f(root).
func (f ChartFunc) Plot(root *DrawingArea) error {
	return f(root)
}
