package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/metinatakli/theater-box-office/api"
	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/metinatakli/theater-box-office/internal/mailer"
)

func (app *Application) CreateReservationHandler(w http.ResponseWriter, r *http.Request) {
	var input api.CreateReservationHandlerJSONRequestBody

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

	logger := app.contextGetLogger(r)
	userId := app.contextGetUserId(r)

	reservation, err := app.reservations.CreateReservation(
		r.Context(), userId, input.PerformanceId, toCoordinates(input.Tickets))
	if err != nil {
		app.reservationErrorResponse(w, r, err)
		return
	}

	logger.Info("reservation created",
		"reservation_id", reservation.ID,
		"performance_id", reservation.PerformanceID,
		"tickets", len(reservation.Tickets))

	email := app.sessionManager.GetString(r.Context(), SessionKeyEmail.String())
	if email != "" {
		go app.sendReservationConfirmation(r.WithContext(context.WithoutCancel(r.Context())), email, *reservation)
	}

	err = app.writeJSON(w, http.StatusCreated, toApiReservation(*reservation), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) reservationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyRequest):
		app.seatErrorResponse(w, r, http.StatusUnprocessableEntity, KindEmptyRequest, err)
	case errors.Is(err, domain.ErrOutOfRange):
		app.seatErrorResponse(w, r, http.StatusUnprocessableEntity, KindOutOfRange, err)
	case errors.Is(err, domain.ErrDuplicateInRequest):
		app.seatErrorResponse(w, r, http.StatusUnprocessableEntity, KindDuplicateInRequest, err)
	case errors.Is(err, domain.ErrSeatAlreadyBooked):
		app.contextGetLogger(r).Warn("reservation rejected", "error", err)
		app.seatErrorResponse(w, r, http.StatusConflict, KindSeatAlreadyBooked, err)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrStorageUnavailable):
		app.storageUnavailableResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) sendReservationConfirmation(r *http.Request, email string, reservation domain.Reservation) {
	logger := app.contextGetLogger(r)

	defer func() {
		if p := recover(); p != nil {
			logger.Error("panic occurred during sending reservation mail", "panic", p)
		}
	}()

	data := map[string]any{
		"reference":     reservation.Reference.String(),
		"performanceId": reservation.PerformanceID,
		"seats":         reservation.Coordinates(),
	}

	err := app.mailer.Send(email, mailer.ReservationConfirmedTemplate, data)
	if err != nil {
		logger.Error("failed to send reservation email", "reservation_id", reservation.ID, "error", err)
		return
	}

	logger.Info("reservation email sent successfully", "reservation_id", reservation.ID)
}

func (app *Application) GetReservationsOfUserHandler(
	w http.ResponseWriter,
	r *http.Request,
	params api.GetReservationsOfUserHandlerParams) {

	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	reservations, metadata, err := app.reservationRepo.GetSummariesByUserId(r.Context(), userId, toPagination(params.Page, params.PageSize))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserReservationsResponse{
		Reservations: toReservationSummaries(reservations),
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toApiReservation(reservation domain.Reservation) api.Reservation {
	return api.Reservation{
		Id:            reservation.ID,
		Reference:     reservation.Reference,
		PerformanceId: reservation.PerformanceID,
		Tickets:       toApiTickets(reservation.Tickets),
		CreatedAt:     reservation.CreatedAt,
	}
}

func toApiTickets(tickets []domain.Ticket) []api.Ticket {
	apiTickets := make([]api.Ticket, len(tickets))

	for i, t := range tickets {
		apiTickets[i] = api.Ticket{
			Id:            t.ID,
			PerformanceId: t.PerformanceID,
			Row:           t.Row,
			Seat:          t.Seat,
		}
	}

	return apiTickets
}

func toReservationSummaries(reservations []domain.ReservationSummary) []api.ReservationSummary {
	summaries := make([]api.ReservationSummary, len(reservations))

	for i, v := range reservations {
		summaries[i] = api.ReservationSummary{
			Id:            v.ID,
			Reference:     v.Reference,
			PerformanceId: v.PerformanceID,
			PlayTitle:     v.PlayTitle,
			HallName:      v.HallName,
			ShowTime:      v.ShowTime,
			Tickets:       toApiTickets(v.Tickets),
			CreatedAt:     v.CreatedAt,
		}
	}

	return summaries
}
