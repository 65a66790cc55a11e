package ports

// ProgressReporter observes a grid sweep. It never influences results.
type ProgressReporter interface {
	// CellCompleted is called once per (class size, mu) cell, in iteration order
	CellCompleted(done, total, classSize int, mu float64)
}

// NopProgress discards progress events
type NopProgress struct{}

// CellCompleted implements ProgressReporter
func (NopProgress) CellCompleted(done, total, classSize int, mu float64) {}
