package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// MajorsRefresher перечитывает список групп из БД в кэш
type MajorsRefresher interface {
	Refresh(ctx context.Context) (int, error)
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	refresher MajorsRefresher
	interval  time.Duration
	logger    *zap.Logger
	stopChan  chan struct{}
	done      chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(refresher MajorsRefresher, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		logger:    logger,
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))

	go s.runMajorsRefreshTask(ctx)
}

// Stop останавливает фоновые задачи и ждёт их завершения
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
	<-s.done
}

// runMajorsRefreshTask периодически обновляет кэш групп
func (s *Scheduler) runMajorsRefreshTask(ctx context.Context) {
	defer close(s.done)

	// Первый запуск сразу при старте
	s.refreshMajors(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refreshMajors(ctx)
		case <-s.stopChan:
			s.logger.Info("Majors refresh task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Majors refresh task cancelled")
			return
		}
	}
}

func (s *Scheduler) refreshMajors(ctx context.Context) {
	count, err := s.refresher.Refresh(ctx)
	if err != nil {
		s.logger.Error("Failed to refresh majors cache", zap.Error(err))
		return
	}

	s.logger.Debug("Majors cache refreshed", zap.Int("count", count))
}
