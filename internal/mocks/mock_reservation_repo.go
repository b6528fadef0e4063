package mocks

import (
	"context"

	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationRepo struct {
	mock.Mock
	domain.ReservationRepository
}

// Create returns the configured error, or the result of calling a configured
// func(*domain.Reservation, domain.SeatCheck) error.
func (m *MockReservationRepo) Create(ctx context.Context, reservation *domain.Reservation, check domain.SeatCheck) error {
	args := m.Called(ctx, reservation, check)
	if fn, ok := args.Get(0).(func(*domain.Reservation, domain.SeatCheck) error); ok {
		return fn(reservation, check)
	}
	return args.Error(0)
}

func (m *MockReservationRepo) GetTakenSeats(ctx context.Context, performanceID int) ([]domain.Coordinate, error) {
	args := m.Called(ctx, performanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coordinate), args.Error(1)
}

func (m *MockReservationRepo) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {

	args := m.Called(ctx, userID, pagination)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.ReservationSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}
