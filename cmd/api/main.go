package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kerbside/kerbside-api/internal/logger"
	"github.com/kerbside/kerbside-api/internal/server"
	"github.com/kerbside/kerbside-api/internal/services"
)

// @title Kerbside Tax Engine API
// @version 1.0
// @description UK tax calculation and compliance engine for private hire fleet operators
// @BasePath /api/v1
func main() {
	// Load environment variables from .env for local development; deployed
	// environments inject them directly. Basic log here, the structured
	// logger is not up yet.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: error loading .env file: %v", err)
	}

	logger.InitLogger()
	defer func() { _ = logger.Sync() }()

	svc := server.NewServices()

	// Seed the registry with the current year's statutory deadlines so the
	// scheduler has work from first boot.
	year := time.Now().UTC().Year()
	svc.Deadlines.Register(svc.Deadlines.GenerateYearlyDeadlines(year)...)
	logger.Info("seeded statutory deadlines", zap.Int("year", year))

	scheduler := startReminderScheduler(svc.Deadlines)
	if scheduler != nil {
		defer scheduler.Stop()
	}

	router := server.NewRouter(svc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}

// startReminderScheduler wires the email dispatcher when Resend is
// configured. Without an API key the scheduler stays off; deadline status
// can still be advanced through the API.
func startReminderScheduler(deadlines *services.DeadlineService) *services.ReminderScheduler {
	apiKey := os.Getenv("RESEND_API_KEY")
	toEmail := os.Getenv("REMINDER_TO_EMAIL")
	if apiKey == "" || toEmail == "" {
		logger.Warn("RESEND_API_KEY or REMINDER_TO_EMAIL not set, reminder scheduler disabled")
		return nil
	}

	fromEmail := os.Getenv("REMINDER_FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "reminders@kerbside.uk"
	}

	dispatcher := services.NewEmailService(apiKey, fromEmail, "Kerbside Reminders", toEmail, logger.Log)

	interval := 6 * time.Hour
	if raw := os.Getenv("REMINDER_SWEEP_INTERVAL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			logger.Warn("invalid REMINDER_SWEEP_INTERVAL, using default",
				zap.String("value", raw), zap.Error(err))
		} else {
			interval = parsed
		}
	}

	scheduler := services.NewReminderScheduler(deadlines, dispatcher, interval)
	scheduler.Start()
	return scheduler
}
