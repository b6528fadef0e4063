// Package booking turns seat selections into committed reservations and serves the
// read-side availability of performances.
package booking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/metinatakli/theater-box-office/internal/domain"
)

const DefaultCommitTimeout = 5 * time.Second

// AvailabilityCache holds display snapshots. Set is a no-op when Invalidate ran
// after the given version was read.
type AvailabilityCache interface {
	Get(ctx context.Context, performanceID int) (*domain.Availability, error)
	Version(ctx context.Context, performanceID int) (int64, error)
	Set(ctx context.Context, availability domain.Availability, version int64) error
	Invalidate(ctx context.Context, performanceID int) error
}

type EventPublisher interface {
	PublishReservationCreated(ctx context.Context, reservation domain.Reservation) error
}

// Manager validates seat requests and commits reservations. Correctness rests on the
// store: each commit re-checks occupancy inside its own transaction and the unique
// constraint on tickets decides the races between concurrent commits.
type Manager struct {
	logger          *slog.Logger
	performanceRepo domain.PerformanceRepository
	reservationRepo domain.ReservationRepository
	cache           AvailabilityCache
	publisher       EventPublisher
	commitTimeout   time.Duration
	metrics         *Metrics
}

type Option func(*Manager)

func WithCache(cache AvailabilityCache) Option {
	return func(m *Manager) {
		m.cache = cache
	}
}

func WithPublisher(publisher EventPublisher) Option {
	return func(m *Manager) {
		m.publisher = publisher
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

func WithCommitTimeout(timeout time.Duration) Option {
	return func(m *Manager) {
		if timeout > 0 {
			m.commitTimeout = timeout
		}
	}
}

func NewManager(
	logger *slog.Logger,
	performanceRepo domain.PerformanceRepository,
	reservationRepo domain.ReservationRepository,
	opts ...Option) *Manager {

	m := &Manager{
		logger:          logger,
		performanceRepo: performanceRepo,
		reservationRepo: reservationRepo,
		commitTimeout:   DefaultCommitTimeout,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// CreateReservation books the requested seats for the user. Request errors are reported
// before any transaction is opened; occupancy is decided inside the commit transaction.
func (m *Manager) CreateReservation(
	ctx context.Context,
	userID, performanceID int,
	seats []domain.Coordinate) (*domain.Reservation, error) {

	reservation, err := m.createReservation(ctx, userID, performanceID, seats)
	m.metrics.recordAttempt(ctx, err)

	return reservation, err
}

func (m *Manager) createReservation(
	ctx context.Context,
	userID, performanceID int,
	seats []domain.Coordinate) (*domain.Reservation, error) {

	if len(seats) == 0 {
		return nil, domain.ErrEmptyRequest
	}

	performance, err := m.performanceRepo.GetById(ctx, performanceID)
	if err != nil {
		return nil, classify(err)
	}

	err = performance.Hall.ValidateSeats(seats)
	if err != nil {
		return nil, err
	}

	if duplicates := domain.FindDuplicates(seats); len(duplicates) > 0 {
		return nil, domain.NewSeatError(domain.ErrDuplicateInRequest, duplicates...)
	}

	reservation := domain.NewReservation(userID, performanceID, seats)

	commitCtx, cancel := context.WithTimeout(ctx, m.commitTimeout)
	defer cancel()

	start := time.Now()

	err = m.reservationRepo.Create(commitCtx, &reservation, checkSeats(seats))
	if err != nil {
		err = classify(err)
	}

	m.metrics.recordCommit(ctx, time.Since(start), err)

	if err != nil {
		return nil, err
	}

	// the booking is durable from here on, so a departing client must not skip it
	m.afterCommit(context.WithoutCancel(ctx), reservation)

	return &reservation, nil
}

func checkSeats(seats []domain.Coordinate) domain.SeatCheck {
	return func(hall domain.TheaterHall, taken []domain.Coordinate) error {
		// the layout may have changed since the request was validated
		err := hall.ValidateSeats(seats)
		if err != nil {
			return err
		}

		index := domain.NewAvailabilityIndex(hall, taken)

		if conflicts := index.Conflicts(seats); len(conflicts) > 0 {
			return domain.NewSeatError(domain.ErrSeatAlreadyBooked, conflicts...)
		}

		return nil
	}
}

// classify keeps domain outcomes as they are and turns everything else, timeouts
// included, into a retryable storage failure.
func classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound),
		errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, domain.ErrSeatAlreadyBooked),
		errors.Is(err, domain.ErrStorageUnavailable):
		return err
	default:
		return &domain.StorageError{Err: err}
	}
}

func (m *Manager) afterCommit(ctx context.Context, reservation domain.Reservation) {
	if m.cache != nil {
		err := m.cache.Invalidate(ctx, reservation.PerformanceID)
		if err != nil {
			m.logger.Warn("failed to invalidate availability cache",
				"performance_id", reservation.PerformanceID, "error", err)
		}
	}

	if m.publisher != nil {
		err := m.publisher.PublishReservationCreated(ctx, reservation)
		if err != nil {
			m.logger.Warn("failed to publish reservation event",
				"reservation_id", reservation.ID, "error", err)
		}
	}
}

// Outcome names the result of a reservation attempt for logs and metrics.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "booked"
	case errors.Is(err, domain.ErrEmptyRequest):
		return "empty_request"
	case errors.Is(err, domain.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, domain.ErrDuplicateInRequest):
		return "duplicate_in_request"
	case errors.Is(err, domain.ErrSeatAlreadyBooked):
		return "seat_already_booked"
	case errors.Is(err, domain.ErrRecordNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrStorageUnavailable):
		return "storage_unavailable"
	default:
		return "error"
	}
}
