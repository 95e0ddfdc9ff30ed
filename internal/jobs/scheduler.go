// Package jobs runs the background schedule that keeps the catalog cache
// warm.
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher re-primes a cache from its source.
type Refresher interface {
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewScheduler(log *zap.Logger) *Scheduler {
	return &Scheduler{cron: cron.New(), log: log}
}

// AddCatalogRefresh schedules a cache refresh on the given cron expression.
func (s *Scheduler) AddCatalogRefresh(spec string, cache Refresher) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := cache.Refresh(ctx); err != nil {
			s.log.Warn("scheduled catalog refresh failed", zap.Error(err))
			return
		}
		s.log.Info("catalog cache refreshed")
	})
	return err
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}
