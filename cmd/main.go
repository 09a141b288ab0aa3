package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/gms-project/gms-backend/cache"
	"github.com/gms-project/gms-backend/config"
	"github.com/gms-project/gms-backend/db"
	"github.com/gms-project/gms-backend/handlers"
	"github.com/gms-project/gms-backend/repositories"
	"github.com/gms-project/gms-backend/routes"
	"github.com/gms-project/gms-backend/schedule"
	"github.com/gms-project/gms-backend/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	wsHub := schedule.NewHub(logger)
	go wsHub.Run()
	logger.Info("websocket hub started")

	seedingCache := cache.NewMemorySeedingCache(time.Minute)
	defer seedingCache.Close()

	userRepo := repositories.NewPostgresUserRepository(dbConn)
	formatRepo := repositories.NewPostgresFormatRepository(dbConn)
	competitionRepo := repositories.NewPostgresCompetitionRepository(dbConn)
	clubRepo := repositories.NewPostgresClubRepository(dbConn)
	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)
	resultRepo := repositories.NewPostgresResultRepository(dbConn)
	standingRepo := repositories.NewPostgresStandingRepository(dbConn)
	logger.Info("repositories initialized")

	authService := services.NewAuthService(userRepo, cfg.JWTSecretKey)
	clubService := services.NewClubService(clubRepo)
	participantService := services.NewParticipantService(participantRepo)
	formatService := services.NewFormatService(formatRepo)
	competitionService := services.NewCompetitionService(competitionRepo, formatRepo)
	rosterProvider := services.NewRosterService(competitionRepo, seedingCache, cfg.SeedingTTL)
	standingsService := services.NewStandingsService(dbConn, competitionRepo, resultRepo, standingRepo, logger)
	scheduleService := services.NewScheduleService(
		dbConn,
		competitionRepo,
		formatRepo,
		matchRepo,
		resultRepo,
		standingRepo,
		rosterProvider,
		wsHub,
		logger,
		nil,
		nil,
	)
	matchService := services.NewMatchService(
		dbConn,
		competitionRepo,
		formatRepo,
		matchRepo,
		resultRepo,
		standingsService,
		wsHub,
		logger,
	)
	logger.Info("services initialized")

	router := routes.SetupRoutes(routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService),
		Competition: handlers.NewCompetitionHandler(competitionService),
		Format:      handlers.NewFormatHandler(formatService),
		Schedule:    handlers.NewScheduleHandler(scheduleService),
		Match:       handlers.NewMatchHandler(matchService),
		Standings:   handlers.NewStandingsHandler(standingsService),
		Club:        handlers.NewClubHandler(clubService),
		Participant: handlers.NewParticipantHandler(participantService),
		WebSocket:   handlers.NewWebSocketHandler(wsHub, logger),
	}, cfg.JWTSecretKey)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shut down gracefully")
	}
}
