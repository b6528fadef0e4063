package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-box-office/internal/domain"
)

type PostgresPerformanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPerformanceRepository(db *pgxpool.Pool) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{
		db: db,
	}
}

func (p *PostgresPerformanceRepository) Create(ctx context.Context, performance *domain.Performance) error {
	query := `
		INSERT INTO performances (play_id, theater_hall_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		performance.PlayID,
		performance.HallID,
		performance.ShowTime).Scan(&performance.ID, &performance.CreatedAt)

	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresPerformanceRepository) GetAll(
	ctx context.Context,
	filters domain.PerformanceFilters) ([]domain.PerformanceSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			p.id,
			p.show_time,
			pl.id,
			pl.title,
			h.id,
			h.name,
			h.rows * h.seats_in_row,
			h.rows * h.seats_in_row - COALESCE(sold.count, 0)
		FROM performances p
		JOIN plays pl ON pl.id = p.play_id
		JOIN theater_halls h ON h.id = p.theater_hall_id
		LEFT JOIN LATERAL (
			SELECT COUNT(*) AS count
			FROM tickets t
			WHERE t.performance_id = p.id
		) sold ON true
		WHERE ($1::date IS NULL OR p.show_time::date = $1::date)
			AND ($2::bigint IS NULL OR p.play_id = $2)
		ORDER BY p.show_time, p.id
		LIMIT $3 OFFSET $4
	`

	rows, err := p.db.Query(ctx, query, filters.Date, filters.PlayID, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	performances := make([]domain.PerformanceSummary, 0, filters.PageSize)
	totalRecords := 0

	for rows.Next() {
		var summary domain.PerformanceSummary

		err := rows.Scan(
			&totalRecords,
			&summary.ID,
			&summary.ShowTime,
			&summary.PlayID,
			&summary.PlayTitle,
			&summary.HallID,
			&summary.HallName,
			&summary.HallCapacity,
			&summary.TicketsAvailable,
		)
		if err != nil {
			return nil, nil, err
		}

		performances = append(performances, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return performances, metadata, nil
}

func (p *PostgresPerformanceRepository) GetById(ctx context.Context, id int) (*domain.Performance, error) {
	query := `
		SELECT
			p.id,
			p.play_id,
			p.theater_hall_id,
			p.show_time,
			p.created_at,
			h.id,
			h.name,
			h.rows,
			h.seats_in_row
		FROM performances p
		JOIN theater_halls h ON h.id = p.theater_hall_id
		WHERE p.id = $1
	`

	var performance domain.Performance
	var hall domain.TheaterHall

	err := p.db.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.PlayID,
		&performance.HallID,
		&performance.ShowTime,
		&performance.CreatedAt,
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	performance.Hall = &hall

	return &performance, nil
}

func (p *PostgresPerformanceRepository) GetDetail(ctx context.Context, id int) (*domain.PerformanceDetail, error) {
	query := `
		SELECT
			p.id,
			p.show_time,
			p.created_at,
			pl.id,
			pl.title,
			pl.description,
			pl.genres,
			pl.actors,
			h.id,
			h.name,
			h.rows,
			h.seats_in_row
		FROM performances p
		JOIN plays pl ON pl.id = p.play_id
		JOIN theater_halls h ON h.id = p.theater_hall_id
		WHERE p.id = $1
	`

	var detail domain.PerformanceDetail
	var play domain.Play
	var hall domain.TheaterHall

	err := p.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.ShowTime,
		&detail.CreatedAt,
		&play.ID,
		&play.Title,
		&play.Description,
		&play.Genres,
		&play.Actors,
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	detail.PlayID = play.ID
	detail.HallID = hall.ID
	detail.Play = &play
	detail.Hall = &hall

	detail.TakenPlaces, err = takenSeats(ctx, p.db, id)
	if err != nil {
		return nil, err
	}

	return &detail, nil
}

func (p *PostgresPerformanceRepository) CountTickets(ctx context.Context, id int) (int, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE performance_id = $1`

	var count int

	err := p.db.QueryRow(ctx, query, id).Scan(&count)

	return count, err
}

// Delete removes a performance that has no tickets. Sold tickets are never cascaded away.
func (p *PostgresPerformanceRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM performances WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrPerformanceHasTickets
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
