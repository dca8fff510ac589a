package domain

import "context"

// Cinema owns at most one Address. The address row carries the foreign key
// and blocks deletion of the cinema while it exists.
type Cinema struct {
	ID         int
	Name       string
	Address    *Address
	Screenings []Screening
}

type Address struct {
	ID       int
	Street   string
	Number   int
	City     string
	CinemaID int
}

type CinemaRepository interface {
	Create(ctx context.Context, cinema *Cinema) error
	GetAll(ctx context.Context, pagination Pagination) ([]*Cinema, error)
	GetById(ctx context.Context, id int) (*Cinema, error)
	Update(ctx context.Context, cinema *Cinema) error
	Delete(ctx context.Context, id int) error
}

type AddressRepository interface {
	Create(ctx context.Context, address *Address) error
	GetAll(ctx context.Context, pagination Pagination) ([]*Address, error)
	GetById(ctx context.Context, id int) (*Address, error)
	Update(ctx context.Context, address *Address) error
	Delete(ctx context.Context, id int) error
}
