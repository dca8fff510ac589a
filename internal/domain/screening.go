package domain

import "context"

// Screening pairs a movie with a cinema. The pair is its identity, so a movie
// is screened at most once per cinema.
type Screening struct {
	MovieID  int
	CinemaID int
	Cinema   *Cinema
}

type ScreeningRepository interface {
	Create(ctx context.Context, screening *Screening) error
	GetAll(ctx context.Context, pagination Pagination) ([]*Screening, error)
	Get(ctx context.Context, movieID, cinemaID int) (*Screening, error)
	Delete(ctx context.Context, movieID, cinemaID int) error
}
