package repository

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-box-office/internal/domain"
)

const ticketSeatConstraint = "tickets_performance_seat_key"

// matches the key part of a unique violation detail:
// Key (performance_id, seat_row, seat_number)=(1, 3, 7) already exists.
var ticketSeatDetailRgx = regexp.MustCompile(`=\((\d+), (\d+), (\d+)\)`)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create commits the reservation and all of its tickets in one transaction. The check runs
// against the hall layout and the seats sold at that point of the same transaction; the
// unique constraint on (performance_id, seat_row, seat_number) settles the races the check
// cannot see and is reported as domain.ErrSeatAlreadyBooked.
func (p *PostgresReservationRepository) Create(
	ctx context.Context,
	reservation *domain.Reservation,
	check domain.SeatCheck) error {

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		// FOR SHARE keeps the layout stable until commit without blocking other bookings
		query := `
			SELECT h.id, h.name, h.rows, h.seats_in_row
			FROM performances p
			JOIN theater_halls h ON h.id = p.theater_hall_id
			WHERE p.id = $1
			FOR SHARE OF h
		`

		var hall domain.TheaterHall

		err := tx.QueryRow(ctx, query, reservation.PerformanceID).Scan(
			&hall.ID,
			&hall.Name,
			&hall.Rows,
			&hall.SeatsInRow,
		)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrRecordNotFound
			}

			return err
		}

		taken, err := takenSeats(ctx, tx, reservation.PerformanceID)
		if err != nil {
			return err
		}

		err = check(hall, taken)
		if err != nil {
			return err
		}

		query = `
			INSERT INTO reservations (reference, user_id, performance_id)
			VALUES ($1, $2, $3)
			RETURNING id, created_at
		`

		err = tx.QueryRow(
			ctx,
			query,
			reservation.Reference,
			reservation.UserID,
			reservation.PerformanceID).Scan(&reservation.ID, &reservation.CreatedAt)

		if err != nil {
			return err
		}

		return insertTickets(ctx, tx, reservation)
	})

	if isUniqueViolation(err, ticketSeatConstraint) {
		pgErr, _ := pgErrorCode(err)
		return domain.NewSeatError(domain.ErrSeatAlreadyBooked, conflictingSeats(pgErr.Detail, reservation)...)
	}

	return err
}

func insertTickets(ctx context.Context, tx pgx.Tx, reservation *domain.Reservation) error {
	rowNumbers := make([]int, len(reservation.Tickets))
	seatNumbers := make([]int, len(reservation.Tickets))

	for i, ticket := range reservation.Tickets {
		rowNumbers[i] = ticket.Row
		seatNumbers[i] = ticket.Seat
	}

	// position keeps the submission order while rows go in seat order, so concurrent
	// bookings take index locks in the same order
	query := `
		INSERT INTO tickets (reservation_id, performance_id, seat_row, seat_number, position)
		SELECT $1, $2, s.seat_row, s.seat_number, s.position
		FROM unnest($3::int[], $4::int[]) WITH ORDINALITY AS s(seat_row, seat_number, position)
		ORDER BY s.seat_row, s.seat_number
		RETURNING id, seat_row, seat_number
	`

	rows, err := tx.Query(ctx, query, reservation.ID, reservation.PerformanceID, rowNumbers, seatNumbers)
	if err != nil {
		return err
	}
	defer rows.Close()

	ids := make(map[domain.Coordinate]int, len(reservation.Tickets))

	for rows.Next() {
		var id int
		var c domain.Coordinate

		err := rows.Scan(&id, &c.Row, &c.Seat)
		if err != nil {
			return err
		}

		ids[c] = id
	}

	if err = rows.Err(); err != nil {
		return err
	}

	for i := range reservation.Tickets {
		ticket := &reservation.Tickets[i]

		ticket.ID = ids[ticket.Coordinate()]
		ticket.ReservationID = reservation.ID
		ticket.PerformanceID = reservation.PerformanceID
	}

	return nil
}

// conflictingSeats extracts the seat named by the violation detail. If the detail cannot be
// read, every requested seat is reported.
func conflictingSeats(detail string, reservation *domain.Reservation) []domain.Coordinate {
	match := ticketSeatDetailRgx.FindStringSubmatch(detail)
	if match == nil {
		return reservation.Coordinates()
	}

	row, rowErr := strconv.Atoi(match[2])
	seat, seatErr := strconv.Atoi(match[3])
	if rowErr != nil || seatErr != nil {
		return reservation.Coordinates()
	}

	return []domain.Coordinate{{Row: row, Seat: seat}}
}

func (p *PostgresReservationRepository) GetTakenSeats(ctx context.Context, performanceID int) ([]domain.Coordinate, error) {
	return takenSeats(ctx, p.db, performanceID)
}

func takenSeats(ctx context.Context, q querier, performanceID int) ([]domain.Coordinate, error) {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE performance_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := q.Query(ctx, query, performanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]domain.Coordinate, 0)

	for rows.Next() {
		var c domain.Coordinate

		err = rows.Scan(&c.Row, &c.Seat)
		if err != nil {
			return nil, err
		}

		seats = append(seats, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresReservationRepository) GetSummariesByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.ReservationSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			r.id,
			r.reference,
			r.performance_id,
			pl.title,
			h.name,
			p.show_time,
			r.created_at
		FROM reservations r
		JOIN performances p ON r.performance_id = p.id
		JOIN plays pl ON p.play_id = pl.id
		JOIN theater_halls h ON p.theater_hall_id = h.id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.ReservationSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.ReservationSummary

		err := rows.Scan(
			&totalRecords,
			&reservation.ID,
			&reservation.Reference,
			&reservation.PerformanceID,
			&reservation.PlayTitle,
			&reservation.HallName,
			&reservation.ShowTime,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	err = p.attachTickets(ctx, reservations)
	if err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) attachTickets(ctx context.Context, reservations []domain.ReservationSummary) error {
	if len(reservations) == 0 {
		return nil
	}

	ids := make([]int, len(reservations))
	positions := make(map[int]int, len(reservations))

	for i, r := range reservations {
		ids[i] = r.ID
		positions[r.ID] = i
	}

	query := `
		SELECT id, reservation_id, performance_id, seat_row, seat_number
		FROM tickets
		WHERE reservation_id = ANY($1)
		ORDER BY reservation_id, position
	`

	rows, err := p.db.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(&ticket.ID, &ticket.ReservationID, &ticket.PerformanceID, &ticket.Row, &ticket.Seat)
		if err != nil {
			return err
		}

		summary := &reservations[positions[ticket.ReservationID]]
		summary.Tickets = append(summary.Tickets, ticket)
	}

	return rows.Err()
}
