package domain

import (
	"context"
	"fmt"
)

// Coordinate is a (row, seat) pair inside a hall layout. Both parts are 1-based.
type Coordinate struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Seat)
}

type TheaterHall struct {
	ID         int
	Name       string
	Rows       int
	SeatsInRow int
}

func (h TheaterHall) Capacity() int {
	return h.Rows * h.SeatsInRow
}

// ValidateSeat reports whether the coordinate fits the hall layout. It has no side effects
// and is used both when a request is checked and again inside the commit transaction.
func (h TheaterHall) ValidateSeat(c Coordinate) error {
	if c.Row < 1 || c.Row > h.Rows || c.Seat < 1 || c.Seat > h.SeatsInRow {
		return NewSeatError(ErrOutOfRange, c)
	}

	return nil
}

// ValidateSeats checks every coordinate and reports all of the ones outside the layout.
func (h TheaterHall) ValidateSeats(coords []Coordinate) error {
	var outside []Coordinate

	for _, c := range coords {
		if h.ValidateSeat(c) != nil {
			outside = append(outside, c)
		}
	}

	if len(outside) > 0 {
		return NewSeatError(ErrOutOfRange, outside...)
	}

	return nil
}

type HallRepository interface {
	Create(ctx context.Context, hall *TheaterHall) error
	GetAll(ctx context.Context) ([]TheaterHall, error)
	GetById(ctx context.Context, id int) (*TheaterHall, error)
	Update(ctx context.Context, hall *TheaterHall) error
	Delete(ctx context.Context, id int) error
}
