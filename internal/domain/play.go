package domain

import "context"

type Play struct {
	ID          int
	Title       string
	Description string
	Genres      []string
	Actors      []string
}

type PlayRepository interface {
	Create(ctx context.Context, play *Play) error
	GetById(ctx context.Context, id int) (*Play, error)
}
