package mocks

import (
	"context"

	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockPlayRepo struct {
	mock.Mock
	domain.PlayRepository
}

func (m *MockPlayRepo) Create(ctx context.Context, play *domain.Play) error {
	args := m.Called(ctx, play)
	return args.Error(0)
}

func (m *MockPlayRepo) GetById(ctx context.Context, id int) (*domain.Play, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Play), args.Error(1)
}
