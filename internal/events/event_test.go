package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationCreatedPayload(t *testing.T) {
	reference := uuid.MustParse("8d2f1c6e-3b7a-4f0e-9a51-2c4d6e8f0a1b")
	createdAt := time.Date(2095, 1, 1, 18, 0, 0, 0, time.UTC)

	reservation := domain.Reservation{
		ID:            12,
		Reference:     reference,
		UserID:        4,
		PerformanceID: 2,
		Tickets: []domain.Ticket{
			{ID: 30, PerformanceID: 2, ReservationID: 12, Row: 1, Seat: 2},
			{ID: 31, PerformanceID: 2, ReservationID: 12, Row: 1, Seat: 3},
		},
		CreatedAt: createdAt,
	}

	body, err := json.Marshal(NewReservationCreated(reservation))
	require.NoError(t, err)

	expected := `{
		"reservationId": 12,
		"reference": "8d2f1c6e-3b7a-4f0e-9a51-2c4d6e8f0a1b",
		"userId": 4,
		"performanceId": 2,
		"tickets": [
			{"id": 30, "row": 1, "seat": 2},
			{"id": 31, "row": 1, "seat": 3}
		],
		"createdAt": "2095-01-01T18:00:00Z"
	}`

	assert.JSONEq(t, expected, string(body))
}
