package domain

import (
	"context"
	"time"
)

type Performance struct {
	ID        int
	PlayID    int
	HallID    int
	ShowTime  time.Time
	Play      *Play
	Hall      *TheaterHall
	CreatedAt time.Time
}

// PerformanceSummary is the list view of a performance.
type PerformanceSummary struct {
	ID               int
	ShowTime         time.Time
	PlayID           int
	PlayTitle        string
	HallID           int
	HallName         string
	HallCapacity     int
	TicketsAvailable int
}

// PerformanceDetail carries the performance with its play, hall and taken places.
type PerformanceDetail struct {
	Performance
	TakenPlaces []Coordinate
}

type PerformanceFilters struct {
	Pagination
	Date   *time.Time
	PlayID *int
}

type PerformanceRepository interface {
	Create(ctx context.Context, performance *Performance) error
	GetAll(ctx context.Context, filters PerformanceFilters) ([]PerformanceSummary, *Metadata, error)
	GetById(ctx context.Context, id int) (*Performance, error)
	GetDetail(ctx context.Context, id int) (*PerformanceDetail, error)
	Delete(ctx context.Context, id int) error
	CountTickets(ctx context.Context, id int) (int, error)
}
