// Package events publishes reservation events to the message broker.
package events

import (
	"time"

	"github.com/metinatakli/theater-box-office/internal/domain"
)

const ReservationCreatedQueue = "reservation.created"

type TicketPayload struct {
	ID   int `json:"id"`
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type ReservationCreated struct {
	ReservationID int             `json:"reservationId"`
	Reference     string          `json:"reference"`
	UserID        int             `json:"userId"`
	PerformanceID int             `json:"performanceId"`
	Tickets       []TicketPayload `json:"tickets"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func NewReservationCreated(reservation domain.Reservation) ReservationCreated {
	tickets := make([]TicketPayload, len(reservation.Tickets))
	for i, t := range reservation.Tickets {
		tickets[i] = TicketPayload{ID: t.ID, Row: t.Row, Seat: t.Seat}
	}

	return ReservationCreated{
		ReservationID: reservation.ID,
		Reference:     reservation.Reference.String(),
		UserID:        reservation.UserID,
		PerformanceID: reservation.PerformanceID,
		Tickets:       tickets,
		CreatedAt:     reservation.CreatedAt,
	}
}
