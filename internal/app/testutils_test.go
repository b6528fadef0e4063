package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/theater-box-office/api"
	"github.com/metinatakli/theater-box-office/internal/mailer"
	"github.com/metinatakli/theater-box-office/internal/mocks"
	"github.com/metinatakli/theater-box-office/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		validator:       validator.NewValidator(),
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:          mailer.NewMockMailer(),
		sessionManager:  scs.New(),
		hallRepo:        &mocks.MockHallRepo{},
		playRepo:        &mocks.MockPlayRepo{},
		performanceRepo: &mocks.MockPerformanceRepo{},
		reservationRepo: &mocks.MockReservationRepo{},
		reservations:    &mocks.MockReservationService{},
		availability:    &mocks.MockAvailabilityService{},
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

type testSession struct {
	userId  int
	email   string
	isStaff bool
}

func setupTestSession(t *testing.T, app *Application, r *http.Request, session testSession) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "session")
	if err != nil {
		t.Errorf("Failed to load session: %v", err)
	}

	app.sessionManager.Put(ctx, SessionKeyUserId.String(), session.userId)
	if session.email != "" {
		app.sessionManager.Put(ctx, SessionKeyEmail.String(), session.email)
	}
	if session.isStaff {
		app.sessionManager.Put(ctx, SessionKeyIsStaff.String(), true)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader = http.NoBody

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

// serve sends the request through the full router so URL params and middleware apply.
func serve(app *Application, w http.ResponseWriter, r *http.Request) {
	app.Routes().ServeHTTP(w, r)
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	switch tt.wantStatus {
	case http.StatusUnprocessableEntity:
		body := w.Body.Bytes()

		var validationResp api.ValidationErrorResponse
		if err := json.Unmarshal(body, &validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		if len(validationResp.ValidationErrors) == 0 {
			var errorResp api.ErrorResponse
			if err := json.Unmarshal(body, &errorResp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}

			if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
				t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
			}
			return
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[tt.wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", tt.wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if tt.wantErrMessage != "" && errorResp.Message != tt.wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, tt.wantErrMessage)
		}
	}
}

func ptr[T any](v T) *T {
	return &v
}
