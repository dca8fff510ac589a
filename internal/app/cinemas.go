package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/domain"
)

func (app *Application) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var input api.CinemaRequest

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

	cinema := &domain.Cinema{Name: input.Nome}

	err = app.cinemaRepo.Create(r.Context(), cinema)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrConstraintViolation):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	headers := make(http.Header)
	headers.Set("Location", location("Cinema", cinema.ID))

	err = app.writeJSON(w, http.StatusCreated, toCinemaResponse(cinema), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinemas(w http.ResponseWriter, r *http.Request, params api.GetCinemasParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	cinemas, err := app.cinemaRepo.GetAll(r.Context(), toPagination(params.Skip, params.Take))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.CinemaResponse, len(cinemas))
	for i, cinema := range cinemas {
		resp[i] = toCinemaResponse(cinema)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCinemaById(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("cinema ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	cinema, err := app.cinemaRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("cinema not found", "cinema_id", id)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toCinemaResponse(cinema), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateCinema(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("cinema ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	var input api.CinemaRequest

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

	err = app.cinemaRepo.Update(r.Context(), &domain.Cinema{ID: id, Name: input.Nome})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("cinema not found", "cinema_id", id)
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

func (app *Application) DeleteCinema(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("cinema ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	err := app.cinemaRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("cinema not found", "cinema_id", id)
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrDependentRecords):
			logger.Warn("cinema still has an address", "cinema_id", id)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("cinema cannot be deleted while it has an address"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("cinema deleted", "cinema_id", id)

	w.WriteHeader(http.StatusNoContent)
}

func toPagination(skip, take *int) domain.Pagination {
	pagination := domain.Pagination{
		Skip: DefaultSkip,
		Take: DefaultTake,
	}

	if skip != nil {
		pagination.Skip = *skip
	}
	if take != nil {
		pagination.Take = *take
	}

	return pagination
}

func toCinemaResponse(cinema *domain.Cinema) api.CinemaResponse {
	if cinema == nil {
		return api.CinemaResponse{}
	}

	screenings := make([]api.CinemaScreening, len(cinema.Screenings))
	for i, s := range cinema.Screenings {
		screenings[i] = api.CinemaScreening{
			FilmeId:  s.MovieID,
			CinemaId: s.CinemaID,
		}
	}

	resp := api.CinemaResponse{
		Id:      cinema.ID,
		Nome:    cinema.Name,
		Sessoes: screenings,
	}

	if cinema.Address != nil {
		address := toAddressResponse(cinema.Address)
		resp.Endereco = &address
	}

	return resp
}

func toCinemaSummary(screening domain.Screening) api.CinemaSummary {
	if screening.Cinema == nil {
		return api.CinemaSummary{Id: screening.CinemaID}
	}

	return api.CinemaSummary{
		Id:   screening.Cinema.ID,
		Nome: screening.Cinema.Name,
	}
}
