package app

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/domain"
	"github.com/metinatakli/filmes-api/internal/jsonpatch"
)

const (
	DefaultSkip = 0
	DefaultTake = 10
)

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := &domain.Movie{
		Title:    input.Titulo,
		Genre:    input.Genero,
		Duration: input.Duracao,
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConstraintViolation):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.contextGetLogger(r).Info("movie created", "movie_id", movie.ID)

	headers := make(http.Header)
	headers.Set("Location", location("Filme", movie.ID))

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovies(w http.ResponseWriter, r *http.Request, params api.GetMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := toMovieFilters(params)

	movies, err := app.movieRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		resp[i] = toMovieResponse(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovieById(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("movie ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("movie not found", "movie_id", id)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("movie ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := &domain.Movie{ID: id}
	applyMovieUpdate(input, movie)

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("movie not found", "movie_id", id)
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrConstraintViolation):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PatchMovie applies a JSON patch document to the editable fields of a movie.
// The patched state is validated before anything is written.
func (app *Application) PatchMovie(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("movie ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	var doc jsonpatch.Document

	err := app.readJSON(w, r, &doc)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Modify(r.Context(), id, func(movie *domain.Movie) error {
		input := toUpdateMovieRequest(movie)

		err := jsonpatch.Apply(doc, &input)
		if err != nil {
			return err
		}

		err = app.validator.Struct(input)
		if err != nil {
			return err
		}

		applyMovieUpdate(input, movie)

		return nil
	})

	if err != nil {
		var patchErr *jsonpatch.Error
		var validationErrs validator.ValidationErrors

		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("movie not found", "movie_id", id)
			app.notFoundResponse(w, r)
		case errors.As(err, &patchErr):
			app.patchErrorResponse(w, r, patchErr)
		case errors.As(err, &validationErrs):
			app.failedValidationResponse(w, r, validationErrs)
		case errors.Is(err, domain.ErrConstraintViolation):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("movie ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	err := app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("movie not found", "movie_id", id)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("movie deleted", "movie_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func toMovieFilters(params api.GetMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Skip: DefaultSkip,
		Take: DefaultTake,
	}

	if params.Skip != nil {
		filters.Skip = *params.Skip
	}
	if params.Take != nil {
		filters.Take = *params.Take
	}
	if params.NomeCinema != nil {
		filters.CinemaName = *params.NomeCinema
	}

	return filters
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	if movie == nil {
		return api.MovieResponse{}
	}

	screenings := make([]api.MovieScreening, len(movie.Screenings))
	for i, s := range movie.Screenings {
		screenings[i] = api.MovieScreening{
			FilmeId:  s.MovieID,
			CinemaId: s.CinemaID,
			Cinema:   toCinemaSummary(s),
		}
	}

	return api.MovieResponse{
		Id:      movie.ID,
		Titulo:  movie.Title,
		Genero:  movie.Genre,
		Duracao: movie.Duration,
		Sessoes: screenings,
	}
}

func toUpdateMovieRequest(movie *domain.Movie) api.UpdateMovieRequest {
	return api.UpdateMovieRequest{
		Titulo:  movie.Title,
		Genero:  movie.Genre,
		Duracao: movie.Duration,
	}
}

func applyMovieUpdate(input api.UpdateMovieRequest, movie *domain.Movie) {
	movie.Title = input.Titulo
	movie.Genre = input.Genero
	movie.Duration = input.Duracao
}
