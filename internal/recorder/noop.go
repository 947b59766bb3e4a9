package recorder

import "PortfolioSentinel/internal/model"

// NoopRecorder is a no-op implementation used for dry runs and when no
// persistence is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *model.RebalancePlan) error { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
