package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/theater-box-office/api"
	"github.com/metinatakli/theater-box-office/internal/domain"
)

var (
	errPlayNotFound = errors.New("play not found")
	errHallNotFound = errors.New("hall not found")
)

func (app *Application) CreatePerformanceHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePerformanceHandlerJSONRequestBody

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

	ctx := r.Context()

	_, err = app.playRepo.GetById(ctx, input.PlayId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, errPlayNotFound)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	_, err = app.hallRepo.GetById(ctx, input.HallId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponseWithErr(w, r, errHallNotFound)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	performance := domain.Performance{
		PlayID:   input.PlayId,
		HallID:   input.HallId,
		ShowTime: input.ShowTime,
	}

	err = app.performanceRepo.Create(ctx, &performance)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CreatedPerformance{
		Id:       performance.ID,
		PlayId:   performance.PlayID,
		HallId:   performance.HallID,
		ShowTime: performance.ShowTime,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListPerformancesHandler(
	w http.ResponseWriter,
	r *http.Request,
	params api.ListPerformancesHandlerParams) {

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.PerformanceFilters{
		Pagination: toPagination(params.Page, params.PageSize),
		PlayID:     params.PlayId,
	}

	if params.Date != nil {
		date := params.Date.Time
		filters.Date = &date
	}

	performances, metadata, err := app.performanceRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PerformanceListResponse{
		Performances: make([]api.PerformanceSummary, len(performances)),
		Metadata:     toApiMetadata(metadata),
	}

	for i, p := range performances {
		resp.Performances[i] = api.PerformanceSummary{
			Id:               p.ID,
			ShowTime:         p.ShowTime,
			PlayId:           p.PlayID,
			PlayTitle:        p.PlayTitle,
			HallId:           p.HallID,
			HallName:         p.HallName,
			HallCapacity:     p.HallCapacity,
			TicketsAvailable: p.TicketsAvailable,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformanceHandler(w http.ResponseWriter, r *http.Request, performanceId int) {
	detail, err := app.performanceRepo.GetDetail(r.Context(), performanceId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.Performance{
		Id:          detail.ID,
		ShowTime:    detail.ShowTime,
		TakenPlaces: toApiSeats(detail.TakenPlaces),
	}
	if detail.Play != nil {
		resp.Play = toApiPlay(*detail.Play)
	}
	if detail.Hall != nil {
		resp.Hall = toApiHall(*detail.Hall)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAvailabilityHandler(w http.ResponseWriter, r *http.Request, performanceId int) {
	availability, err := app.availability.AvailableSeats(r.Context(), performanceId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrStorageUnavailable):
			app.storageUnavailableResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.Availability{
		PerformanceId: availability.PerformanceID,
		Capacity:      availability.Capacity,
		Sold:          availability.Sold,
		Available:     availability.Available,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeletePerformanceHandler(w http.ResponseWriter, r *http.Request, performanceId int) {
	err := app.performanceRepo.Delete(r.Context(), performanceId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrPerformanceHasTickets):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
