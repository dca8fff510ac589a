package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/filmes-api/api"
	"github.com/metinatakli/filmes-api/internal/jsonpatch"
	appvalidator "github.com/metinatakli/filmes-api/internal/validator"
)

const (
	ErrInternalServer   = "The server encountered a problem and could not process your request"
	ErrNotFound         = "The requested resource not found"
	ErrMethodNotAllowed = "The %s method is not supported for this resource"
	ErrFailedValidation = "One or more fields have invalid values"
	ErrEditConflict     = "The request conflicts with the current state of related records"
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

// invalidParamResponse is used by the router when a path or query parameter
// cannot be bound.
func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var paramErr *api.InvalidParamFormatError
	if errors.As(err, &paramErr) {
		err = fmt.Errorf("invalid value for parameter %s", paramErr.ParamName)
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		ValidationErrors: make([]api.ValidationError, len(validationErrs)),
	}

	for i, e := range validationErrs {
		resp.ValidationErrors[i] = api.ValidationError{
			Field: e.Field(),
			Issue: appvalidator.ValidationMessage(e),
		}
	}

	app.writeValidationErrors(w, r, resp)
}

// patchErrorResponse reports an operation of a patch document that could not
// be applied.
func (app *Application) patchErrorResponse(w http.ResponseWriter, r *http.Request, err *jsonpatch.Error) {
	resp := api.ValidationErrorResponse{
		Message: ErrFailedValidation,
		ValidationErrors: []api.ValidationError{
			{
				Field: err.Path,
				Issue: err.Reason,
			},
		},
	}

	app.writeValidationErrors(w, r, resp)
}

func (app *Application) writeValidationErrors(w http.ResponseWriter, r *http.Request, resp api.ValidationErrorResponse) {
	app.contextGetLogger(r).Warn("request failed validation", "errors", resp.ValidationErrors)

	err := app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
