package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/mathangi54/Travelling-System/internal/database"
)

// DemandSnapshot is a point-in-time view of confirmed booking demand
// per upcoming travel date, used by the pricing status endpoint.
type DemandSnapshot struct {
	RefreshedAt time.Time             `json:"refreshed_at"`
	Dates       []database.DateDemand `json:"dates"`
	HighDemand  int                   `json:"high_demand_dates"`
}

// DemandService periodically recomputes confirmed booking counts per
// travel date and keeps the latest snapshot in memory.
type DemandService struct {
	bookings *database.BookingRepository
	cron     *cron.Cron
	schedule string
	logger   *logrus.Logger

	mu       sync.RWMutex
	snapshot DemandSnapshot
}

// NewDemandService creates a demand service with the given cron schedule.
func NewDemandService(bookings *database.BookingRepository, schedule string, logger *logrus.Logger) *DemandService {
	return &DemandService{
		bookings: bookings,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger,
	}
}

// Start refreshes the snapshot once and schedules periodic refreshes.
func (s *DemandService) Start() error {
	if err := s.Refresh(); err != nil {
		s.logger.WithError(err).Warn("initial demand refresh failed")
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.Refresh(); err != nil {
			s.logger.WithError(err).Error("scheduled demand refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule demand refresh: %w", err)
	}

	s.cron.Start()
	s.logger.WithField("schedule", s.schedule).Info("demand refresh scheduled")
	return nil
}

// Stop stops the scheduler and waits for a running refresh to finish.
func (s *DemandService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Refresh recomputes the demand snapshot from confirmed bookings.
func (s *DemandService) Refresh() error {
	counts, err := s.bookings.ConfirmedCountsByDate()
	if err != nil {
		return fmt.Errorf("failed to refresh demand counts: %w", err)
	}

	high := 0
	for _, d := range counts {
		if d.Count > 5 {
			high++
		}
	}

	s.mu.Lock()
	s.snapshot = DemandSnapshot{
		RefreshedAt: time.Now().UTC(),
		Dates:       counts,
		HighDemand:  high,
	}
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"dates":       len(counts),
		"high_demand": high,
	}).Info("demand snapshot refreshed")
	return nil
}

// Snapshot returns the most recent demand snapshot.
func (s *DemandService) Snapshot() DemandSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}
