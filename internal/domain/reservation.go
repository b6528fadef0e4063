package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Reservation struct {
	ID            int
	Reference     uuid.UUID
	UserID        int
	PerformanceID int
	Tickets       []Ticket
	CreatedAt     time.Time
}

// Ticket is immutable once persisted. Only a reservation commit creates tickets.
type Ticket struct {
	ID            int
	PerformanceID int
	ReservationID int
	Row           int
	Seat          int
}

func (t Ticket) Coordinate() Coordinate {
	return Coordinate{Row: t.Row, Seat: t.Seat}
}

// NewReservation builds an unsaved reservation whose tickets follow the order of seats.
func NewReservation(userID, performanceID int, seats []Coordinate) Reservation {
	tickets := make([]Ticket, len(seats))
	for i, c := range seats {
		tickets[i] = Ticket{
			PerformanceID: performanceID,
			Row:           c.Row,
			Seat:          c.Seat,
		}
	}

	return Reservation{
		Reference:     uuid.New(),
		UserID:        userID,
		PerformanceID: performanceID,
		Tickets:       tickets,
	}
}

func (r Reservation) Coordinates() []Coordinate {
	coords := make([]Coordinate, len(r.Tickets))
	for i, t := range r.Tickets {
		coords[i] = t.Coordinate()
	}

	return coords
}

// FindDuplicates returns every coordinate that appears more than once, each reported once
// in the order of its second occurrence.
func FindDuplicates(coords []Coordinate) []Coordinate {
	seen := make(map[Coordinate]int, len(coords))
	var duplicates []Coordinate

	for _, c := range coords {
		seen[c]++
		if seen[c] == 2 {
			duplicates = append(duplicates, c)
		}
	}

	return duplicates
}

// SeatCheck runs inside the commit transaction with the hall layout and the
// coordinates already sold for the performance at that moment.
type SeatCheck func(hall TheaterHall, taken []Coordinate) error

// ReservationSummary is one entry in a user's reservation history.
type ReservationSummary struct {
	ID            int
	Reference     uuid.UUID
	PerformanceID int
	PlayTitle     string
	HallName      string
	ShowTime      time.Time
	Tickets       []Ticket
	CreatedAt     time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *Reservation, check SeatCheck) error
	GetTakenSeats(ctx context.Context, performanceID int) ([]Coordinate, error)
	GetSummariesByUserId(ctx context.Context, userID int, pagination Pagination) ([]ReservationSummary, *Metadata, error)
}
