package mocks

import (
	"context"

	"github.com/metinatakli/filmes-api/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	CreateFunc  func(ctx context.Context, movie *domain.Movie) error
	GetAllFunc  func(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Movie, error)
	UpdateFunc  func(ctx context.Context, movie *domain.Movie) error
	ModifyFunc  func(ctx context.Context, id int, fn func(*domain.Movie) error) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Modify(ctx context.Context, id int, fn func(*domain.Movie) error) error {
	return m.ModifyFunc(ctx, id, fn)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
