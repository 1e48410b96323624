package database

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Supervisor keeps retrying a connection at a fixed interval until it succeeds.
// It runs once per process, detached from request lifecycles.
type Supervisor struct {
	interval       time.Duration
	attemptTimeout time.Duration
	log            logrus.FieldLogger
}

// NewSupervisor builds a supervisor. attemptTimeout <= 0 leaves attempts bounded only by ctx.
func NewSupervisor(interval, attemptTimeout time.Duration, log logrus.FieldLogger) *Supervisor {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Supervisor{interval: interval, attemptTimeout: attemptTimeout, log: log}
}

// Run calls connect until it returns nil or ctx ends. It does not retry after a success.
func (s *Supervisor) Run(ctx context.Context, connect func(ctx context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := s.try(ctx, connect)
		if err == nil {
			s.log.WithField("attempt", attempt).Info("store connected")
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.log.WithError(err).WithField("attempt", attempt).Warnf("store connection failed, retrying in %s", s.interval)

		timer := time.NewTimer(s.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *Supervisor) try(ctx context.Context, connect func(ctx context.Context) error) error {
	if s.attemptTimeout <= 0 {
		return connect(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, s.attemptTimeout)
	defer cancel()
	return connect(attemptCtx)
}
