package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Scheduler triggers periodic rebalance runs via cron.
type Scheduler struct {
	cron *cron.Cron
	run  func()
	log  zerolog.Logger
}

// New creates a Scheduler around the given run function.
func New(run func(), log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		run:  run,
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// Register adds the rebalance task with the given cron spec (with seconds).
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, func() {
		s.log.Info().Msg("scheduled rebalance triggered")
		s.run()
	}); err != nil {
		return fmt.Errorf("register rebalance task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.log.Info().Msg("scheduler stopped")
}

// RunNow executes the rebalance task immediately (manual trigger / run-on-start).
func (s *Scheduler) RunNow() {
	s.run()
}
