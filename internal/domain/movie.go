package domain

import "context"

const (
	MovieGenreMaxLength = 50
	MovieMinDuration    = 70
	MovieMaxDuration    = 600
)

type Movie struct {
	ID         int
	Title      string
	Genre      string
	Duration   int
	Screenings []Screening
}

// MovieFilters carries the raw offset/limit window of a listing. When
// CinemaName is set it is applied to the rows inside the window, so a page
// may hold fewer than Take movies even if more matches exist further on.
type MovieFilters struct {
	Skip       int
	Take       int
	CinemaName string
}

type MovieRepository interface {
	Create(ctx context.Context, movie *Movie) error
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Update(ctx context.Context, movie *Movie) error
	Modify(ctx context.Context, id int, fn func(*Movie) error) error
	Delete(ctx context.Context, id int) error
}
