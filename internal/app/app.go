package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/theater-box-office/api"
	"github.com/metinatakli/theater-box-office/internal/booking"
	"github.com/metinatakli/theater-box-office/internal/cache"
	"github.com/metinatakli/theater-box-office/internal/domain"
	"github.com/metinatakli/theater-box-office/internal/events"
	"github.com/metinatakli/theater-box-office/internal/mailer"
	"github.com/metinatakli/theater-box-office/internal/repository"
	appvalidator "github.com/metinatakli/theater-box-office/internal/validator"
	"github.com/metinatakli/theater-box-office/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

var _ api.ServerInterface = (*Application)(nil)

type ReservationService interface {
	CreateReservation(ctx context.Context, userID, performanceID int, seats []domain.Coordinate) (*domain.Reservation, error)
}

type AvailabilityService interface {
	AvailableSeats(ctx context.Context, performanceID int) (domain.Availability, error)
}

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager

	hallRepo        domain.HallRepository
	playRepo        domain.PlayRepository
	performanceRepo domain.PerformanceRepository
	reservationRepo domain.ReservationRepository

	reservations ReservationService
	availability AvailabilityService
}

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	Booking          BookingConfig
	AMQP             AMQPConfig
	SMTP             SMTPConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type BookingConfig struct {
	CommitTimeout   time.Duration
	AvailabilityTTL time.Duration
}

type AMQPConfig struct {
	URL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	hallRepo domain.HallRepository,
	playRepo domain.PlayRepository,
	performanceRepo domain.PerformanceRepository,
	reservationRepo domain.ReservationRepository,
	publisher booking.EventPublisher,
	metrics *booking.Metrics) *Application {

	availabilityCache := cache.NewRedisAvailabilityCache(redisClient, cfg.Booking.AvailabilityTTL)

	opts := []booking.Option{
		booking.WithCache(availabilityCache),
		booking.WithCommitTimeout(cfg.Booking.CommitTimeout),
		booking.WithMetrics(metrics),
	}
	if publisher != nil {
		opts = append(opts, booking.WithPublisher(publisher))
	}

	return &Application{
		config:          cfg,
		logger:          logger,
		db:              db,
		redis:           redisClient,
		validator:       validator,
		mailer:          mailer,
		sessionManager:  sessionManager,
		hallRepo:        hallRepo,
		playRepo:        playRepo,
		performanceRepo: performanceRepo,
		reservationRepo: reservationRepo,
		reservations:    booking.NewManager(logger, performanceRepo, reservationRepo, opts...),
		availability:    booking.NewAggregator(logger, performanceRepo, availabilityCache),
	}
}

func Run() error {
	// a missing .env file is fine, flags and the real environment still apply
	_ = godotenv.Load()

	var cfg Config

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "server port")
	flag.StringVar(&cfg.Env, "env", envString("ENV", "dev"), "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DB_DSN"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.DurationVar(&cfg.Booking.CommitTimeout, "reservation-timeout", booking.DefaultCommitTimeout, "Deadline for committing a reservation")
	flag.DurationVar(&cfg.Booking.AvailabilityTTL, "availability-cache-ttl", cache.DefaultAvailabilityTTL, "TTL of cached availability counts")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", os.Getenv("AMQP_URL"), "RabbitMQ URL, events are not published when empty")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", envString("SMTP_HOST", "sandbox.smtp.mailtrap.io"), "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", envInt("SMTP_PORT", 2525), "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", envString("SMTP_SENDER", "Box Office <no-reply@boxoffice.example.com>"), "SMTP sender")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	// telemetry comes first so that everything below logs through the OTLP bridge
	telemetry, err := InitTelemetry(cfg, slog.New(slog.NewTextHandler(os.Stdout, nil)))
	if err != nil {
		return err
	}
	defer telemetry.Shutdown(context.Background())

	logger := telemetry.Logger

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	var publisher booking.EventPublisher
	if cfg.AMQP.URL != "" {
		amqpPublisher := events.NewAMQPPublisher(cfg.AMQP.URL)
		defer amqpPublisher.Close()

		publisher = amqpPublisher
	}

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		repository.NewPostgresHallRepository(db),
		repository.NewPostgresPlayRepository(db),
		repository.NewPostgresPerformanceRepository(db),
		repository.NewPostgresReservationRepository(db),
		publisher,
		telemetry.Metrics,
	)

	return app.run()
}

func envString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}

func envInt(key string, fallback int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return value
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if cfg.OtelCollectorUrl != "" {
		err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
		if err != nil {
			rdb.Close()
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)

	if cfg.OtelCollectorUrl != "" {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(app.withRequestLogger)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	if app.config.OtelCollectorUrl != "" {
		r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	}
	r.Use(app.sessionManager.LoadAndSave)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.authorize},
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
