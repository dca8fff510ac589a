package mocks

import (
	"context"

	"github.com/metinatakli/filmes-api/internal/domain"
)

type MockScreeningRepo struct {
	domain.ScreeningRepository
	CreateFunc func(ctx context.Context, screening *domain.Screening) error
	GetAllFunc func(ctx context.Context, pagination domain.Pagination) ([]*domain.Screening, error)
	GetFunc    func(ctx context.Context, movieID, cinemaID int) (*domain.Screening, error)
	DeleteFunc func(ctx context.Context, movieID, cinemaID int) error
}

func (m *MockScreeningRepo) Create(ctx context.Context, screening *domain.Screening) error {
	return m.CreateFunc(ctx, screening)
}

func (m *MockScreeningRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Screening, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockScreeningRepo) Get(ctx context.Context, movieID, cinemaID int) (*domain.Screening, error) {
	return m.GetFunc(ctx, movieID, cinemaID)
}

func (m *MockScreeningRepo) Delete(ctx context.Context, movieID, cinemaID int) error {
	return m.DeleteFunc(ctx, movieID, cinemaID)
}
