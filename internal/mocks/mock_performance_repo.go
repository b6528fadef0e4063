package mocks

import (
	"context"

	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPerformanceRepo struct {
	mock.Mock
	domain.PerformanceRepository
}

func (m *MockPerformanceRepo) Create(ctx context.Context, performance *domain.Performance) error {
	args := m.Called(ctx, performance)
	return args.Error(0)
}

func (m *MockPerformanceRepo) GetAll(
	ctx context.Context,
	filters domain.PerformanceFilters) ([]domain.PerformanceSummary, *domain.Metadata, error) {

	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.PerformanceSummary), args.Get(1).(*domain.Metadata), args.Error(2)
}

func (m *MockPerformanceRepo) GetById(ctx context.Context, id int) (*domain.Performance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Performance), args.Error(1)
}

func (m *MockPerformanceRepo) GetDetail(ctx context.Context, id int) (*domain.PerformanceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PerformanceDetail), args.Error(1)
}

func (m *MockPerformanceRepo) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPerformanceRepo) CountTickets(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
