package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/theater-box-office/api"
	"github.com/metinatakli/theater-box-office/internal/domain"
	appvalidator "github.com/metinatakli/theater-box-office/internal/validator"
)

const (
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrNotFound           = "The requested resource not found"
	ErrMethodNotAllowed   = "The %s method is not supported for this resource"
	ErrUnauthorizedAccess = "You must be authenticated to access this resource"
	ErrForbiddenAccess    = "You do not have permission to perform this action"
	ErrFailedValidation   = "One or more fields have invalid values"
	ErrStorageUnavailable = "The service is temporarily unavailable, please try again"
)

const (
	KindEmptyRequest       = "EmptyRequest"
	KindOutOfRange         = "OutOfRange"
	KindDuplicateInRequest = "DuplicateInRequest"
	KindSeatAlreadyBooked  = "SeatAlreadyBooked"
	KindStorageUnavailable = "StorageUnavailable"
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
	app.writeErrorResponse(w, r, status, api.ErrorResponse{Message: message}, nil)
}

func (app *Application) writeErrorResponse(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	resp api.ErrorResponse,
	headers http.Header) {

	resp.RequestId = middleware.GetReqID(r.Context())
	resp.Timestamp = time.Now()

	err := app.writeJSON(w, status, resp, headers)
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

func (app *Application) notFoundResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusNotFound, err.Error())
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// invalidParamResponse reports path and query parameters the router could not bind.
func (app *Application) invalidParamResponse(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *api.InvalidParamFormatError
	if errors.As(err, &formatErr) {
		app.badRequestResponse(w, r, fmt.Errorf("invalid value for parameter %s", formatErr.ParamName))
		return
	}

	app.badRequestResponse(w, r, err)
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) forbiddenResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusForbidden, ErrForbiddenAccess)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		ValidationErrors: make([]api.ValidationError, len(validationErrors)),
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
	}

	for i, fieldErr := range validationErrors {
		resp.ValidationErrors[i] = api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		}
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// seatErrorResponse reports a rejected seat request with its kind and the offending seats.
func (app *Application) seatErrorResponse(w http.ResponseWriter, r *http.Request, status int, kind string, err error) {
	resp := api.ErrorResponse{
		Message: err.Error(),
		Kind:    kind,
	}

	var seatErr *domain.SeatError
	if errors.As(err, &seatErr) {
		resp.Seats = toApiSeats(seatErr.Seats)
	}

	app.writeErrorResponse(w, r, status, resp, nil)
}

func (app *Application) storageUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	resp := api.ErrorResponse{
		Message: ErrStorageUnavailable,
		Kind:    KindStorageUnavailable,
	}

	app.writeErrorResponse(w, r, http.StatusServiceUnavailable, resp, http.Header{
		"Retry-After": []string{"1"},
	})
}
