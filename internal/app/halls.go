package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/theater-box-office/api"
	"github.com/metinatakli/theater-box-office/internal/domain"
)

func (app *Application) ListHallsHandler(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.HallListResponse{Halls: make([]api.Hall, len(halls))}
	for i, hall := range halls {
		resp.Halls[i] = toApiHall(hall)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateHallHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateHallHandlerJSONRequestBody

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

	hall := domain.TheaterHall{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		if errors.Is(err, domain.ErrHallNameTaken) {
			app.editConflictResponseWithErr(w, r, err)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiHall(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateHallHandler(w http.ResponseWriter, r *http.Request, hallId int) {
	var input api.UpdateHallHandlerJSONRequestBody

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

	hall := domain.TheaterHall{
		ID:         hallId,
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.hallRepo.Update(r.Context(), &hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrHallNameTaken), errors.Is(err, domain.ErrHallGeometryConflict):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiHall(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteHallHandler(w http.ResponseWriter, r *http.Request, hallId int) {
	err := app.hallRepo.Delete(r.Context(), hallId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrHallInUse):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toApiHall(hall domain.TheaterHall) api.Hall {
	return api.Hall{
		Id:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}
