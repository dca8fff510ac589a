package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/domain"
)

func (app *Application) CreateScreening(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateScreeningRequest

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

	screening := &domain.Screening{
		MovieID:  input.FilmeId,
		CinemaID: input.CinemaId,
	}

	err = app.screeningRepo.Create(r.Context(), screening)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateRecord):
			logger.Warn("screening already exists", "movie_id", input.FilmeId, "cinema_id", input.CinemaId)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("movie %d is already screened at cinema %d", input.FilmeId, input.CinemaId))
		case errors.Is(err, domain.ErrInvalidReference):
			logger.Warn("screening references unknown records", "movie_id", input.FilmeId, "cinema_id", input.CinemaId)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("movie %d or cinema %d does not exist", input.FilmeId, input.CinemaId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	headers := make(http.Header)
	headers.Set("Location", location("Sessao", screening.MovieID, screening.CinemaID))

	err = app.writeJSON(w, http.StatusCreated, toScreeningResponse(screening), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreenings(w http.ResponseWriter, r *http.Request, params api.GetScreeningsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	screenings, err := app.screeningRepo.GetAll(r.Context(), toPagination(params.Skip, params.Take))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		resp[i] = toScreeningResponse(screening)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreening(w http.ResponseWriter, r *http.Request, filmeId int, cinemaId int) {
	logger := app.contextGetLogger(r)

	err := errors.Join(positiveID("movie ID", filmeId), positiveID("cinema ID", cinemaId))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(filmeId, cinemaId) {
		app.notFoundResponse(w, r)
		return
	}

	screening, err := app.screeningRepo.Get(r.Context(), filmeId, cinemaId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("screening not found", "movie_id", filmeId, "cinema_id", cinemaId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteScreening(w http.ResponseWriter, r *http.Request, filmeId int, cinemaId int) {
	logger := app.contextGetLogger(r)

	err := errors.Join(positiveID("movie ID", filmeId), positiveID("cinema ID", cinemaId))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(filmeId, cinemaId) {
		app.notFoundResponse(w, r)
		return
	}

	err = app.screeningRepo.Delete(r.Context(), filmeId, cinemaId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("screening not found", "movie_id", filmeId, "cinema_id", cinemaId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toScreeningResponse(screening *domain.Screening) api.ScreeningResponse {
	if screening == nil {
		return api.ScreeningResponse{}
	}

	return api.ScreeningResponse{
		FilmeId:  screening.MovieID,
		CinemaId: screening.CinemaID,
		Cinema:   toCinemaSummary(*screening),
	}
}
