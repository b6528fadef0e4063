package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-box-office/internal/domain"
)

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

func (p *PostgresPlayRepository) Create(ctx context.Context, play *domain.Play) error {
	query := `
		INSERT INTO plays (title, description, genres, actors)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if play.Genres == nil {
		play.Genres = []string{}
	}
	if play.Actors == nil {
		play.Actors = []string{}
	}

	return p.db.QueryRow(ctx, query, play.Title, play.Description, play.Genres, play.Actors).Scan(&play.ID)
}

func (p *PostgresPlayRepository) GetById(ctx context.Context, id int) (*domain.Play, error) {
	query := `
		SELECT id, title, description, genres, actors
		FROM plays
		WHERE id = $1
	`

	var play domain.Play

	err := p.db.QueryRow(ctx, query, id).Scan(
		&play.ID,
		&play.Title,
		&play.Description,
		&play.Genres,
		&play.Actors,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &play, nil
}
