package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"stablemate/internal/backup"
	backupStore "stablemate/internal/backup/store"
	"stablemate/internal/billing"
	billingStore "stablemate/internal/billing/store"
	"stablemate/internal/calendar"
	"stablemate/internal/config"
	"stablemate/internal/database"
	stablemateHttp "stablemate/internal/http"
	backupHandler "stablemate/internal/http/backup"
	billingHandler "stablemate/internal/http/billing"
	calendarHandler "stablemate/internal/http/calendar"
	joblogHandler "stablemate/internal/http/joblog"
	stableHandler "stablemate/internal/http/stable"
	"stablemate/internal/joblog"
	joblogStore "stablemate/internal/joblog/store"
	"stablemate/internal/stable"
	stableStore "stablemate/internal/stable/store"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		TimeFormat: time.Kitchen,
	})))

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		stableService   = stable.NewService(stableStore.New(db))
		joblogService   = joblog.NewService(joblogStore.New(db))
		billingService  = billing.NewService(billingStore.New(db), joblogService, stableService)
		calendarService = calendar.NewService(joblogService)
		backupService   = backup.NewService(backupStore.New(db), stableService, joblogService, billingService)
	)

	var (
		stableH   = stableHandler.NewHandler(stableService)
		joblogH   = joblogHandler.NewHandler(joblogService)
		billingH  = billingHandler.NewHandler(billingService)
		calendarH = calendarHandler.NewHandler(calendarService)
		backupH   = backupHandler.NewHandler(backupService)
	)

	router := stablemateHttp.New(stableH, joblogH, billingH, calendarH, backupH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
