package mocks

import (
	"context"

	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockReservationService struct {
	mock.Mock
}

func (m *MockReservationService) CreateReservation(
	ctx context.Context,
	userID, performanceID int,
	seats []domain.Coordinate) (*domain.Reservation, error) {

	args := m.Called(ctx, userID, performanceID, seats)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockAvailabilityService struct {
	mock.Mock
}

func (m *MockAvailabilityService) AvailableSeats(ctx context.Context, performanceID int) (domain.Availability, error) {
	args := m.Called(ctx, performanceID)
	return args.Get(0).(domain.Availability), args.Error(1)
}

type MockAvailabilityCache struct {
	mock.Mock
}

func (m *MockAvailabilityCache) Get(ctx context.Context, performanceID int) (*domain.Availability, error) {
	args := m.Called(ctx, performanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Availability), args.Error(1)
}

func (m *MockAvailabilityCache) Version(ctx context.Context, performanceID int) (int64, error) {
	args := m.Called(ctx, performanceID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAvailabilityCache) Set(ctx context.Context, availability domain.Availability, version int64) error {
	args := m.Called(ctx, availability, version)
	return args.Error(0)
}

func (m *MockAvailabilityCache) Invalidate(ctx context.Context, performanceID int) error {
	args := m.Called(ctx, performanceID)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishReservationCreated(ctx context.Context, reservation domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}
