package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/metinatakli/theater-box-office/api"
	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/metinatakli/theater-box-office/internal/mailer"
	"github.com/metinatakli/theater-box-office/internal/mocks"
	"github.com/metinatakli/theater-box-office/internal/validator"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testUserEmail = "user@example.com"

type ReservationsTestSuite struct {
	suite.Suite
	app             *Application
	reservationRepo *mocks.MockReservationRepo
	reservations    *mocks.MockReservationService
	mailer          *mailer.MockMailer
}

func (s *ReservationsTestSuite) SetupTest() {
	s.reservationRepo = new(mocks.MockReservationRepo)
	s.reservations = new(mocks.MockReservationService)
	s.mailer = mailer.NewMockMailer()

	s.app = newTestApplication(func(a *Application) {
		a.reservationRepo = s.reservationRepo
		a.reservations = s.reservations
		a.mailer = s.mailer
	})
}

func TestReservationsSuite(t *testing.T) {
	suite.Run(t, new(ReservationsTestSuite))
}

func (s *ReservationsTestSuite) TestCreateReservationHandler() {
	reference := uuid.MustParse("7f1c3f4e-2d0b-4c51-9d6a-0a5a8f0c2b11")
	createdAt := time.Date(2095, 1, 1, 10, 0, 0, 0, time.UTC)

	booked := &domain.Reservation{
		ID:            7,
		Reference:     reference,
		UserID:        1,
		PerformanceID: 3,
		Tickets: []domain.Ticket{
			{ID: 11, PerformanceID: 3, ReservationID: 7, Row: 1, Seat: 1},
			{ID: 12, PerformanceID: 3, ReservationID: 7, Row: 1, Seat: 2},
		},
		CreatedAt: createdAt,
	}

	tests := []struct {
		name           string
		setupSession   bool
		body           any
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantKind       string
		wantSeats      []api.Seat
		wantResponse   *api.Reservation
	}{
		{
			name:           "no session",
			body:           api.CreateReservationRequest{PerformanceId: 3, Tickets: []api.Seat{{Row: 1, Seat: 1}}},
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:           "malformed body",
			setupSession:   true,
			body:           `{"performanceId": 3,`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "body contains badly-formed JSON",
		},
		{
			name:           "unknown field",
			setupSession:   true,
			body:           `{"performanceId": 3, "price": 10}`,
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: `body contains unknown key "price"`,
		},
		{
			name:           "invalid performance id",
			setupSession:   true,
			body:           api.CreateReservationRequest{PerformanceId: 0, Tickets: []api.Seat{{Row: 1, Seat: 1}}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinValue, "1"),
		},
		{
			name:         "empty request",
			setupSession: true,
			body:         api.CreateReservationRequest{PerformanceId: 3},
			setupMock: func() {
				s.reservations.On("CreateReservation", mock.Anything, 1, 3, []domain.Coordinate{}).
					Return(nil, domain.ErrEmptyRequest)
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: domain.ErrEmptyRequest.Error(),
			wantKind:       KindEmptyRequest,
		},
		{
			name:         "seat out of range",
			setupSession: true,
			body:         api.CreateReservationRequest{PerformanceId: 3, Tickets: []api.Seat{{Row: 30, Seat: 1}}},
			setupMock: func() {
				s.reservations.On("CreateReservation", mock.Anything, 1, 3, []domain.Coordinate{{Row: 30, Seat: 1}}).
					Return(nil, domain.NewSeatError(domain.ErrOutOfRange, domain.Coordinate{Row: 30, Seat: 1}))
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "seat is outside of the hall layout: (30, 1)",
			wantKind:       KindOutOfRange,
			wantSeats:      []api.Seat{{Row: 30, Seat: 1}},
		},
		{
			name:         "duplicate seat",
			setupSession: true,
			body:         api.CreateReservationRequest{PerformanceId: 3, Tickets: []api.Seat{{Row: 1, Seat: 1}, {Row: 1, Seat: 1}}},
			setupMock: func() {
				s.reservations.On("CreateReservation", mock.Anything, 1, 3, []domain.Coordinate{{Row: 1, Seat: 1}, {Row: 1, Seat: 1}}).
					Return(nil, domain.NewSeatError(domain.ErrDuplicateInRequest, domain.Coordinate{Row: 1, Seat: 1}))
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "seat is requested more than once: (1, 1)",
			wantKind:       KindDuplicateInRequest,
			wantSeats:      []api.Seat{{Row: 1, Seat: 1}},
		},
		{
			name:         "seat already booked",
			setupSession: true,
			body:         api.CreateReservationRequest{PerformanceId: 3, Tickets: []api.Seat{{Row: 1, Seat: 1}}},
			setupMock: func() {
				s.reservations.On("CreateReservation", mock.Anything, 1, 3, []domain.Coordinate{{Row: 1, Seat: 1}}).
					Return(nil, domain.NewSeatError(domain.ErrSeatAlreadyBooked, domain.Coordinate{Row: 1, Seat: 1}))
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "seat(s) are already booked: (1, 1)",
			wantKind:       KindSeatAlreadyBooked,
			wantSeats:      []api.Seat{{Row: 1, Seat: 1}},
		},
		{
			name:         "performance not found",
			setupSession: true,
			body:         api.CreateReservationRequest{PerformanceId: 3, Tickets: []api.Seat{{Row: 1, Seat: 1}}},
			setupMock: func() {
				s.reservations.On("CreateReservation", mock.Anything, 1, 3, []domain.Coordinate{{Row: 1, Seat: 1}}).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name:         "storage unavailable",
			setupSession: true,
			body:         api.CreateReservationRequest{PerformanceId: 3, Tickets: []api.Seat{{Row: 1, Seat: 1}}},
			setupMock: func() {
				s.reservations.On("CreateReservation", mock.Anything, 1, 3, []domain.Coordinate{{Row: 1, Seat: 1}}).
					Return(nil, &domain.StorageError{Err: errors.New("connection refused")})
			},
			wantStatus:     http.StatusServiceUnavailable,
			wantErrMessage: ErrStorageUnavailable,
			wantKind:       KindStorageUnavailable,
		},
		{
			name:         "successful reservation",
			setupSession: true,
			body:         api.CreateReservationRequest{PerformanceId: 3, Tickets: []api.Seat{{Row: 1, Seat: 1}, {Row: 1, Seat: 2}}},
			setupMock: func() {
				s.reservations.On("CreateReservation", mock.Anything, 1, 3, []domain.Coordinate{{Row: 1, Seat: 1}, {Row: 1, Seat: 2}}).
					Return(booked, nil)
			},
			wantStatus: http.StatusCreated,
			wantResponse: &api.Reservation{
				Id:            7,
				Reference:     reference,
				PerformanceId: 3,
				Tickets: []api.Ticket{
					{Id: 11, PerformanceId: 3, Row: 1, Seat: 1},
					{Id: 12, PerformanceId: 3, Row: 1, Seat: 2},
				},
				CreatedAt: createdAt,
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.reservations.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodPost, "/reservations", tt.body)

			if tt.setupSession {
				r = setupTestSession(s.T(), s.app, r, testSession{userId: 1, email: testUserEmail})
			}

			serve(s.app, w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.Reservation
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)

				s.Eventually(func() bool {
					emails := s.mailer.GetSentEmails()
					return len(emails) == 1 &&
						emails[0].Recipient == testUserEmail &&
						emails[0].TemplateFile == mailer.ReservationConfirmedTemplate
				}, time.Second, 10*time.Millisecond)
				return
			}

			if tt.wantKind != "" {
				var errorResp api.ErrorResponse
				err := json.NewDecoder(w.Body).Decode(&errorResp)
				s.Require().NoError(err, "Failed to decode response")

				s.Equal(tt.wantErrMessage, errorResp.Message)
				s.Equal(tt.wantKind, errorResp.Kind)
				s.Equal(tt.wantSeats, errorResp.Seats)
				return
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}

func (s *ReservationsTestSuite) TestStorageUnavailableSetsRetryAfter() {
	s.reservations.On("CreateReservation", mock.Anything, 1, 3, []domain.Coordinate{{Row: 1, Seat: 1}}).
		Return(nil, &domain.StorageError{Err: errors.New("timeout")})

	w, r := executeRequest(s.T(), http.MethodPost, "/reservations",
		api.CreateReservationRequest{PerformanceId: 3, Tickets: []api.Seat{{Row: 1, Seat: 1}}})
	r = setupTestSession(s.T(), s.app, r, testSession{userId: 1})

	serve(s.app, w, r)

	s.Equal(http.StatusServiceUnavailable, w.Code)
	s.Equal("1", w.Header().Get("Retry-After"))
	s.Empty(s.mailer.GetSentEmails())
}

func (s *ReservationsTestSuite) TestGetReservationsOfUserHandler() {
	reference := uuid.MustParse("0d3b1f8a-5f0c-4e7e-9b1a-3c2f6d9e8a77")

	tests := []struct {
		name           string
		setupSession   bool
		params         api.GetReservationsOfUserHandlerParams
		setupMock      func()
		wantStatus     int
		wantErrMessage string
		wantResponse   *api.UserReservationsResponse
	}{
		{
			name:         "invalid page number",
			setupSession: true,
			params: api.GetReservationsOfUserHandlerParams{
				Page:     ptr(0),
				PageSize: ptr(10),
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMinValue, "1"),
		},
		{
			name:         "invalid page size",
			setupSession: true,
			params: api.GetReservationsOfUserHandlerParams{
				Page:     ptr(1),
				PageSize: ptr(101),
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: fmt.Sprintf(validator.ErrMaxValue, "100"),
		},
		{
			name:           "no session",
			setupSession:   false,
			wantStatus:     http.StatusUnauthorized,
			wantErrMessage: ErrUnauthorizedAccess,
		},
		{
			name:         "database error",
			setupSession: true,
			params: api.GetReservationsOfUserHandlerParams{
				Page:     ptr(1),
				PageSize: ptr(10),
			},
			setupMock: func() {
				s.reservationRepo.On("GetSummariesByUserId", mock.Anything, 1, domain.Pagination{
					Page:     1,
					PageSize: 10,
				}).Return(nil, nil, fmt.Errorf("database error"))
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
		{
			name:         "successful retrieval with default pagination",
			setupSession: true,
			setupMock: func() {
				s.reservationRepo.On("GetSummariesByUserId", mock.Anything, 1, domain.Pagination{
					Page:     DefaultPage,
					PageSize: DefaultPageSize,
				}).Return(
					[]domain.ReservationSummary{
						{
							ID:            1,
							Reference:     reference,
							PerformanceID: 4,
							PlayTitle:     "Hamlet",
							HallName:      "Main Stage",
							ShowTime:      time.Date(2095, 3, 15, 19, 0, 0, 0, time.UTC),
							Tickets: []domain.Ticket{
								{ID: 9, PerformanceID: 4, ReservationID: 1, Row: 2, Seat: 3},
							},
							CreatedAt: time.Date(2095, 3, 10, 10, 0, 0, 0, time.UTC),
						},
					},
					&domain.Metadata{
						CurrentPage:  1,
						PageSize:     10,
						FirstPage:    1,
						LastPage:     1,
						TotalRecords: 1,
					},
					nil,
				)
			},
			wantStatus: http.StatusOK,
			wantResponse: &api.UserReservationsResponse{
				Reservations: []api.ReservationSummary{
					{
						Id:            1,
						Reference:     reference,
						PerformanceId: 4,
						PlayTitle:     "Hamlet",
						HallName:      "Main Stage",
						ShowTime:      time.Date(2095, 3, 15, 19, 0, 0, 0, time.UTC),
						Tickets:       []api.Ticket{{Id: 9, PerformanceId: 4, Row: 2, Seat: 3}},
						CreatedAt:     time.Date(2095, 3, 10, 10, 0, 0, 0, time.UTC),
					},
				},
				Metadata: api.Metadata{
					CurrentPage:  1,
					PageSize:     10,
					FirstPage:    1,
					LastPage:     1,
					TotalRecords: 1,
				},
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.reservationRepo.AssertExpectations(s.T())

			if tt.setupMock != nil {
				tt.setupMock()
			}

			w, r := executeRequest(s.T(), http.MethodGet, "/users/me/reservations", nil)

			if tt.setupSession {
				r = setupTestSession(s.T(), s.app, r, testSession{userId: 1})
			}

			q := r.URL.Query()
			if tt.params.Page != nil {
				q.Add("page", fmt.Sprintf("%d", *tt.params.Page))
			}
			if tt.params.PageSize != nil {
				q.Add("pageSize", fmt.Sprintf("%d", *tt.params.PageSize))
			}
			r.URL.RawQuery = q.Encode()

			serve(s.app, w, r)

			s.Equal(tt.wantStatus, w.Code)

			if tt.wantResponse != nil {
				var response api.UserReservationsResponse
				err := json.NewDecoder(w.Body).Decode(&response)
				s.Require().NoError(err, "Failed to decode response")

				diff := cmp.Diff(tt.wantResponse, &response)
				s.Empty(diff, "Response mismatch (-want +got):\n%s", diff)
			}

			checkErrorResponse(s.T(), w, struct {
				wantStatus     int
				wantErrMessage string
			}{
				wantStatus:     tt.wantStatus,
				wantErrMessage: tt.wantErrMessage,
			})
		})
	}
}
