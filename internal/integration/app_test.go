package integration_test

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/theater-box-office/internal/app"
	"github.com/metinatakli/theater-box-office/internal/mailer"
	"github.com/metinatakli/theater-box-office/internal/repository"
	appvalidator "github.com/metinatakli/theater-box-office/internal/validator"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type TestApp struct {
	App            *app.Application
	Handler        http.Handler
	DB             *pgxpool.Pool
	Redis          *redis.Client
	Mailer         *mailer.MockMailer
	SessionManager *scs.SessionManager
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		sessionManager,
		repository.NewPostgresHallRepository(db),
		repository.NewPostgresPlayRepository(db),
		repository.NewPostgresPerformanceRepository(db),
		repository.NewPostgresReservationRepository(db),
		nil,
		nil,
	)

	return &TestApp{
		App:            application,
		Handler:        application.Routes(),
		DB:             db,
		Redis:          redisClient,
		Mailer:         mailer,
		SessionManager: sessionManager,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.Redis.Close()
}

// sessionCookies stores a session the way the identity service does and returns its cookie.
func (a *TestApp) sessionCookies(t testing.TB, userId int, email string, isStaff bool) []http.Cookie {
	t.Helper()

	ctx, err := a.SessionManager.Load(context.Background(), "")
	require.NoError(t, err)

	a.SessionManager.Put(ctx, app.SessionKeyUserId.String(), userId)
	a.SessionManager.Put(ctx, app.SessionKeyEmail.String(), email)
	a.SessionManager.Put(ctx, app.SessionKeyIsStaff.String(), isStaff)

	token, _, err := a.SessionManager.Commit(ctx)
	require.NoError(t, err)

	return []http.Cookie{{Name: a.SessionManager.Cookie.Name, Value: token}}
}

func (a *TestApp) authenticatedUserCookies(t testing.TB) []http.Cookie {
	return a.sessionCookies(t, TestUserId, TestUserEmail, false)
}

func (a *TestApp) staffCookies(t testing.TB) []http.Cookie {
	return a.sessionCookies(t, TestStaffUserId, TestStaffEmail, true)
}
