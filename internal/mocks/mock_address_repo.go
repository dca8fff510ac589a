package mocks

import (
	"context"

	"github.com/metinatakli/filmes-api/internal/domain"
)

type MockAddressRepo struct {
	domain.AddressRepository
	CreateFunc  func(ctx context.Context, address *domain.Address) error
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]*domain.Address, error)
	GetByIdFunc func(ctx context.Context, id int) (*domain.Address, error)
	UpdateFunc  func(ctx context.Context, address *domain.Address) error
	DeleteFunc  func(ctx context.Context, id int) error
}

func (m *MockAddressRepo) Create(ctx context.Context, address *domain.Address) error {
	return m.CreateFunc(ctx, address)
}

func (m *MockAddressRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Address, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockAddressRepo) GetById(ctx context.Context, id int) (*domain.Address, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockAddressRepo) Update(ctx context.Context, address *domain.Address) error {
	return m.UpdateFunc(ctx, address)
}

func (m *MockAddressRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
