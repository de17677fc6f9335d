package gioplot

import (
	"sync"
	"sync/atomic"
)

// Model owns a Chart and shares it between the UI goroutine that paints it and any goroutine
// that modifies or replaces it. A writer waiting for the lock blocks new readers, so a paint in
// progress delays a writer by at most one frame.
type Model struct {
	mu    sync.RWMutex
	chart Chart

	poisoned    atomic.Bool
	version     atomic.Uint64
	invalidator atomic.Pointer[func()]
}

// NewModel wraps a chart.
func NewModel(c Chart) *Model {
	return &Model{chart: c}
}

// WithRead calls fn with shared access to the chart.
func (m *Model) WithRead(fn func(Chart) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.poisoned.Load() {
		return ErrModelPoisoned
	}
	return fn(m.chart)
}

// WithWrite calls fn with exclusive access to the chart. If fn panics the model is poisoned
// and the panic continues.
func (m *Model) WithWrite(fn func(Chart) error) error {
	ok, err := m.write(fn)
	if ok {
		m.changed()
	}
	return err
}

func (m *Model) write(fn func(Chart) error) (ok bool, err error) {
	m.mu.Lock()
	defer func() {
		if !ok && err == nil {
			m.poisoned.Store(true)
		}
		m.mu.Unlock()
	}()
	if m.poisoned.Load() {
		return false, ErrModelPoisoned
	}
	err = fn(m.chart)
	return true, err
}

// Replace swaps the chart and clears poisoning.
func (m *Model) Replace(c Chart) {
	m.mu.Lock()
	m.chart = c
	m.poisoned.Store(false)
	m.mu.Unlock()
	m.changed()
}

// MarkDirty signals that the chart's data changed without going through WithWrite.
func (m *Model) MarkDirty() {
	m.changed()
}

// Poisoned returns true if a write panicked and the chart was not replaced since.
func (m *Model) Poisoned() bool {
	return m.poisoned.Load()
}

// Version is incremented on every change.
func (m *Model) Version() uint64 {
	return m.version.Load()
}

// SetInvalidator sets a function that is called after every change, typically the window's
// Invalidate method so that a new frame is painted. It may be called from any goroutine.
func (m *Model) SetInvalidator(fn func()) {
	if fn == nil {
		m.invalidator.Store(nil)
		return
	}
	m.invalidator.Store(&fn)
}

func (m *Model) changed() {
	m.version.Add(1)
	if fn := m.invalidator.Load(); fn != nil {
		(*fn)()
	}
}
