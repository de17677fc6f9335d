package scene

import (
	"errors"
	"unicode/utf8"

	"gioui.org/f32"
)

// ErrNoMeasurer is returned by a Recorder without a measure function.
var ErrNoMeasurer = errors.New("scene: recorder has no text measurer")

// Recorder is a paint sink that appends every primitive to Primitives. Measure measures text,
// Refuse may reject primitives to simulate a failing sink.
type Recorder struct {
	Primitives []Primitive
	Measure    func(text string, font Font) (f32.Point, error)
	Refuse     func(Primitive) error
}

// Emit records p.
func (r *Recorder) Emit(p Primitive) error {
	if r.Refuse != nil {
		if err := r.Refuse(p); err != nil {
			return err
		}
	}
	r.Primitives = append(r.Primitives, p)
	return nil
}

// MeasureText measures text with the measure function.
func (r *Recorder) MeasureText(text string, font Font) (f32.Point, error) {
	if r.Measure == nil {
		return f32.Point{}, ErrNoMeasurer
	}
	return r.Measure(text, font)
}

// Reset drops all recorded primitives.
func (r *Recorder) Reset() {
	r.Primitives = r.Primitives[:0]
}

// Len returns the number of recorded primitives.
func (r *Recorder) Len() int {
	return len(r.Primitives)
}

// MonospaceMeasure measures text as if every rune were 0.6em wide and the line 1.2em high.
func MonospaceMeasure(text string, font Font) (f32.Point, error) {
	n := float32(utf8.RuneCountInString(text))
	return f32.Point{X: n * font.Size * 3.0 / 5.0, Y: font.Size * 6.0 / 5.0}, nil
}
