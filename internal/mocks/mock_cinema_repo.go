package mocks

import (
	"context"

	"github.com/metinatakli/filmes-api/internal/domain"
)

type MockCinemaRepo struct {
	domain.CinemaRepository
	CreateFunc  func(ctx context.Context, cinema *domain.Cinema) error
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]*domain.Cinema, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Cinema, error)
	UpdateFunc  func(ctx context.Context, cinema *domain.Cinema) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockCinemaRepo) Create(ctx context.Context, cinema *domain.Cinema) error {
	return m.CreateFunc(ctx, cinema)
}

func (m *MockCinemaRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Cinema, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockCinemaRepo) GetById(ctx context.Context, id int) (*domain.Cinema, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockCinemaRepo) Update(ctx context.Context, cinema *domain.Cinema) error {
	return m.UpdateFunc(ctx, cinema)
}

func (m *MockCinemaRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
