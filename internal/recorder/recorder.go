package recorder

import (
	"errors"

	"PortfolioSentinel/internal/model"
)

// Recorder persists rebalance runs for audit and later analysis.
type Recorder interface {
	RecordRun(plan *model.RebalancePlan) error
	Close() error
}

// Multi fans a run out to several recorders. Individual failures are
// collected, not short-circuited, so one broken sink never blocks another.
type Multi struct {
	recorders []Recorder
}

// NewMulti creates a Recorder writing to all of the given recorders.
func NewMulti(recorders ...Recorder) *Multi {
	return &Multi{recorders: recorders}
}

func (m *Multi) RecordRun(plan *model.RebalancePlan) error {
	var errs []error
	for _, r := range m.recorders {
		if err := r.RecordRun(plan); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Close() error {
	var errs []error
	for _, r := range m.recorders {
		if err := r.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
