package gioplot

import (
	"errors"
	"sync"
	"testing"

	"github.com/tdewolff/test"
)

type counterChart struct {
	n int
}

func (c *counterChart) Plot(root *DrawingArea) error {
	return nil
}

func TestModelRead(t *testing.T) {
	c := &counterChart{}
	m := NewModel(c)
	err := m.WithRead(func(chart Chart) error {
		test.T(t, chart, Chart(c))
		test.That(t, !m.mu.TryLock(), "writer acquired the lock during a read")
		return nil
	})
	test.Error(t, err)
	test.That(t, m.mu.TryLock(), "lock not released after a read")
	m.mu.Unlock()

	errPlot := errors.New("plot")
	test.T(t, m.WithRead(func(Chart) error { return errPlot }), errPlot)
}

func TestModelWrite(t *testing.T) {
	m := NewModel(&counterChart{})
	calls := 0
	m.SetInvalidator(func() { calls++ })

	test.Error(t, m.WithWrite(func(chart Chart) error {
		chart.(*counterChart).n++
		return nil
	}))
	m.MarkDirty()
	m.Replace(&counterChart{n: 10})
	test.T(t, calls, 3)
	test.T(t, m.Version(), uint64(3))

	m.SetInvalidator(nil)
	m.MarkDirty()
	test.T(t, calls, 3)
	test.T(t, m.Version(), uint64(4))

	test.Error(t, m.WithRead(func(chart Chart) error {
		test.T(t, chart.(*counterChart).n, 10)
		return nil
	}))
}

func TestModelPoisoned(t *testing.T) {
	m := NewModel(&counterChart{})
	func() {
		defer func() {
			test.That(t, recover() != nil, "panic must propagate")
		}()
		m.WithWrite(func(Chart) error {
			panic("boom")
		})
	}()
	test.That(t, m.Poisoned())
	test.T(t, m.Version(), uint64(0))

	called := false
	err := m.WithRead(func(Chart) error {
		called = true
		return nil
	})
	test.That(t, errors.Is(err, ErrModelPoisoned))
	test.That(t, !called)
	test.That(t, errors.Is(m.WithWrite(func(Chart) error { return nil }), ErrModelPoisoned))

	m.Replace(&counterChart{})
	test.That(t, !m.Poisoned())
	test.Error(t, m.WithRead(func(Chart) error { return nil }))
}

func TestModelConcurrent(t *testing.T) {
	m := NewModel(&counterChart{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.WithWrite(func(chart Chart) error {
					chart.(*counterChart).n++
					return nil
				})
			}
		}()
	}
	for j := 0; j < 100; j++ {
		m.WithRead(func(chart Chart) error {
			_ = chart.(*counterChart).n
			return nil
		})
	}
	wg.Wait()

	m.WithRead(func(chart Chart) error {
		test.T(t, chart.(*counterChart).n, 400)
		return nil
	})
	test.T(t, m.Version(), uint64(400))
}
