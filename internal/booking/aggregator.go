package booking

import (
	"context"
	"log/slog"

	"github.com/metinatakli/theater-box-office/internal/domain"
)

// Aggregator computes seat availability for display. Its numbers may lag behind a
// concurrent commit and must not be used to decide a booking.
type Aggregator struct {
	logger          *slog.Logger
	performanceRepo domain.PerformanceRepository
	cache           AvailabilityCache
}

func NewAggregator(logger *slog.Logger, performanceRepo domain.PerformanceRepository, cache AvailabilityCache) *Aggregator {
	return &Aggregator{
		logger:          logger,
		performanceRepo: performanceRepo,
		cache:           cache,
	}
}

func (a *Aggregator) AvailableSeats(ctx context.Context, performanceID int) (domain.Availability, error) {
	var version int64
	cacheable := a.cache != nil

	if a.cache != nil {
		cached, err := a.cache.Get(ctx, performanceID)
		if err != nil {
			a.logger.Warn("failed to read availability cache", "performance_id", performanceID, "error", err)
		} else if cached != nil {
			return *cached, nil
		}

		// read before counting so a commit landing in between discards our write
		version, err = a.cache.Version(ctx, performanceID)
		if err != nil {
			a.logger.Warn("failed to read availability version", "performance_id", performanceID, "error", err)
			cacheable = false
		}
	}

	performance, err := a.performanceRepo.GetById(ctx, performanceID)
	if err != nil {
		return domain.Availability{}, err
	}

	sold, err := a.performanceRepo.CountTickets(ctx, performanceID)
	if err != nil {
		return domain.Availability{}, err
	}

	availability := domain.NewAvailability(performanceID, performance.Hall.Capacity(), sold)

	if cacheable {
		err = a.cache.Set(ctx, availability, version)
		if err != nil {
			a.logger.Warn("failed to write availability cache", "performance_id", performanceID, "error", err)
		}
	}

	return availability, nil
}
