package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-box-office/internal/domain"
)

const hallNameConstraint = "theater_halls_name_key"

type PostgresHallRepository struct {
	db *pgxpool.Pool
}

func NewPostgresHallRepository(db *pgxpool.Pool) *PostgresHallRepository {
	return &PostgresHallRepository{
		db: db,
	}
}

func (p *PostgresHallRepository) Create(ctx context.Context, hall *domain.TheaterHall) error {
	query := `
		INSERT INTO theater_halls (name, rows, seats_in_row)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow).Scan(&hall.ID)
	if err != nil {
		if isUniqueViolation(err, hallNameConstraint) {
			return domain.ErrHallNameTaken
		}

		return err
	}

	return nil
}

func (p *PostgresHallRepository) GetAll(ctx context.Context) ([]domain.TheaterHall, error) {
	query := `
		SELECT id, name, rows, seats_in_row
		FROM theater_halls
		ORDER BY id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	halls := make([]domain.TheaterHall, 0)

	for rows.Next() {
		var hall domain.TheaterHall

		err := rows.Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
		if err != nil {
			return nil, err
		}

		halls = append(halls, hall)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return halls, nil
}

func (p *PostgresHallRepository) GetById(ctx context.Context, id int) (*domain.TheaterHall, error) {
	query := `
		SELECT id, name, rows, seats_in_row
		FROM theater_halls
		WHERE id = $1
	`

	var hall domain.TheaterHall

	err := p.db.QueryRow(ctx, query, id).Scan(&hall.ID, &hall.Name, &hall.Rows, &hall.SeatsInRow)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &hall, nil
}

// Update changes the hall name and layout. Shrinking the layout is refused when a sold
// ticket of any performance in the hall would end up outside of it.
func (p *PostgresHallRepository) Update(ctx context.Context, hall *domain.TheaterHall) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `SELECT id FROM theater_halls WHERE id = $1 FOR UPDATE`

		err := tx.QueryRow(ctx, query, hall.ID).Scan(&hall.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		query = `
			SELECT EXISTS (
				SELECT 1
				FROM tickets t
				JOIN performances p ON p.id = t.performance_id
				WHERE p.theater_hall_id = $1
					AND (t.seat_row > $2 OR t.seat_number > $3)
			)
		`

		var invalidated bool

		err = tx.QueryRow(ctx, query, hall.ID, hall.Rows, hall.SeatsInRow).Scan(&invalidated)
		if err != nil {
			return err
		}

		if invalidated {
			return domain.ErrHallGeometryConflict
		}

		query = `
			UPDATE theater_halls
			SET name = $1, rows = $2, seats_in_row = $3
			WHERE id = $4
		`

		_, err = tx.Exec(ctx, query, hall.Name, hall.Rows, hall.SeatsInRow, hall.ID)

		return err
	})

	if isUniqueViolation(err, hallNameConstraint) {
		return domain.ErrHallNameTaken
	}

	return err
}

// Delete removes a hall only when no performance references it.
func (p *PostgresHallRepository) Delete(ctx context.Context, id int) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `SELECT id FROM theater_halls WHERE id = $1 FOR UPDATE`

		err := tx.QueryRow(ctx, query, id).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		query = `SELECT EXISTS (SELECT 1 FROM performances WHERE theater_hall_id = $1)`

		var inUse bool

		err = tx.QueryRow(ctx, query, id).Scan(&inUse)
		if err != nil {
			return err
		}

		if inUse {
			return domain.ErrHallInUse
		}

		_, err = tx.Exec(ctx, `DELETE FROM theater_halls WHERE id = $1`, id)

		return err
	})

	// a performance inserted concurrently still hits the restricting foreign key
	if isForeignKeyViolation(err) {
		return domain.ErrHallInUse
	}

	return err
}
