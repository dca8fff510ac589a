package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/domain"
)

func (app *Application) CreateAddress(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateAddressRequest

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

	address := &domain.Address{
		Street:   input.Logradouro,
		Number:   input.Numero,
		City:     input.Cidade,
		CinemaID: input.CinemaId,
	}

	err = app.addressRepo.Create(r.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidReference):
			logger.Warn("address for unknown cinema", "cinema_id", input.CinemaId)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("cinema %d does not exist", input.CinemaId))
		case errors.Is(err, domain.ErrDuplicateRecord):
			logger.Warn("cinema already has an address", "cinema_id", input.CinemaId)
			app.editConflictResponseWithErr(w, r, fmt.Errorf("cinema %d already has an address", input.CinemaId))
		case errors.Is(err, domain.ErrConstraintViolation):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	headers := make(http.Header)
	headers.Set("Location", location("Endereco", address.ID))

	err = app.writeJSON(w, http.StatusCreated, toAddressResponse(address), headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAddresses(w http.ResponseWriter, r *http.Request, params api.GetAddressesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	addresses, err := app.addressRepo.GetAll(r.Context(), toPagination(params.Skip, params.Take))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.AddressResponse, len(addresses))
	for i, address := range addresses {
		resp[i] = toAddressResponse(address)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAddressById(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("address ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	address, err := app.addressRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("address not found", "address_id", id)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toAddressResponse(address), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateAddress(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("address ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	var input api.UpdateAddressRequest

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

	address := &domain.Address{
		ID:     id,
		Street: input.Logradouro,
		Number: input.Numero,
		City:   input.Cidade,
	}

	err = app.addressRepo.Update(r.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("address not found", "address_id", id)
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

func (app *Application) DeleteAddress(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	if err := positiveID("address ID", id); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !keyInRange(id) {
		app.notFoundResponse(w, r)
		return
	}

	err := app.addressRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			logger.Warn("address not found", "address_id", id)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toAddressResponse(address *domain.Address) api.AddressResponse {
	if address == nil {
		return api.AddressResponse{}
	}

	return api.AddressResponse{
		Id:         address.ID,
		Logradouro: address.Street,
		Numero:     address.Number,
		Cidade:     address.City,
		CinemaId:   address.CinemaID,
	}
}
