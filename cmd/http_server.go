package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adelicia-js/milestone-monitor-sub001/internal"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/auth"
	authPostgres "github.com/adelicia-js/milestone-monitor-sub001/internal/auth/postgres"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/core/events"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	facultyPostgres "github.com/adelicia-js/milestone-monitor-sub001/internal/faculty/postgres"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/notification"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/report"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
	submissionPostgres "github.com/adelicia-js/milestone-monitor-sub001/internal/submission/postgres"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/transport/rest"
	"github.com/adelicia-js/milestone-monitor-sub001/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	if err := setupRoutes(deps); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to wire routes: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func setupRoutes(deps *Dependencies) error {
	cfg := deps.Config
	lg := deps.Logger

	// Repositories
	facultyRepo := facultyPostgres.NewFacultyRepository(deps.GormDB)
	identityRepo := authPostgres.NewIdentityRepository(deps.GormDB)
	submissionRepo := submissionPostgres.NewSubmissionRepository(deps.GormDB)

	// Event bus and mail notifier
	bus := events.NewEventBus(lg)
	if cfg.Mail.Enabled() {
		mailer := notification.NewSMTPMailer(cfg.Mail)
		notifier := notification.NewNotifier(mailer, facultyRepo, lg)
		notifier.Register(bus)
	} else {
		lg.Warn("smtp not configured, submission notifications disabled")
	}

	// Services
	tokens := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenTTL,
		cfg.Security.RefreshTokenTTL,
	)
	authService := auth.NewService(identityRepo, tokens, cfg.Security.BCryptCost, lg)
	facultyService := faculty.NewService(facultyRepo, authService, lg)
	submissionService := submission.NewService(submissionRepo, bus, lg)
	reportService := report.NewService(submissionRepo, lg)

	// Handlers
	authHandler := auth.NewHandler(authService, facultyRepo)
	roles := auth.NewRoleAuthorization(lg)
	facultyHandler := faculty.NewHandler(facultyService)
	submissionHandler := submission.NewHandler(submissionService)
	reportHandler := report.NewHandler(reportService)

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, authHandler, roles, facultyHandler, submissionHandler, reportHandler, lg)
	return nil
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// GORM rides on the already-open pgx connection pool.
	gormDB, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	router := chi.NewRouter()

	return &Dependencies{
		Config: config,
		Logger: logger.LoggerWrapper(),
		DB:     db,
		GormDB: gormDB,
		Router: router,
	}, nil
}

// initDB initializes the database connection
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	// verify connection; close underlying *sql.DB on failure
	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
