package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvilela/lumo/internal/api"
	"github.com/mvilela/lumo/internal/clock"
	"github.com/mvilela/lumo/internal/config"
	"github.com/mvilela/lumo/internal/db"
	"github.com/mvilela/lumo/internal/events"
	"github.com/mvilela/lumo/internal/jobs"
	"github.com/mvilela/lumo/internal/logger"
	"github.com/mvilela/lumo/internal/repository/sqlite"
	"github.com/mvilela/lumo/internal/scheduler"
	"github.com/mvilela/lumo/internal/services"
	"github.com/mvilela/lumo/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	logger.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}

	log.Info("===========================================")
	log.Info("Lumo Progress Server Starting")
	log.Info("===========================================")
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("xp_per_review=%d", cfg.XPPerReview)
	log.Debug("base_streak_xp=%d", cfg.BaseStreakXP)
	log.Debug("activity_retention_days=%d", cfg.ActivityRetentionDays)
	log.Debug("maintenance_worker_count=%d", cfg.MaintenanceWorkers)
	log.Debug("maintenance_queue_size=%d", cfg.MaintenanceQueueSize)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	itemRepo := sqlite.NewItemRepository(database.DB)
	txnRepo := sqlite.NewTransactionRepository(database.DB)
	statsRepo := sqlite.NewStatsRepository(database.DB)
	badgeRepo := sqlite.NewBadgeRepository(database.DB)
	challengeRepo := sqlite.NewChallengeRepository(database.DB)
	activityRepo := sqlite.NewActivityRepository(database.DB)

	clk := clock.System{}
	statsLock := services.NewStatsLock()
	dispatcher := events.NewDispatcher()

	progressService := services.NewProgressService(statsLock, statsRepo, txnRepo, activityRepo, clk, dispatcher)
	streakService := services.NewStreakService(statsLock, statsRepo, progressService, clk, dispatcher, cfg.BaseStreakXP)
	challengeService := services.NewChallengeService(statsLock, challengeRepo, progressService, clk, dispatcher)
	badgeService := services.NewBadgeService(statsLock, badgeRepo, statsRepo, challengeRepo, progressService, clk)
	activityService := services.NewActivityService(statsLock, statsRepo, activityRepo, progressService, streakService, challengeService, clk, dispatcher)
	reviewService := services.NewReviewService(itemRepo, progressService, activityService, clk, cfg.XPPerReview)

	badgeService.RegisterHandlers(dispatcher)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := badgeService.Seed(startupCtx); err != nil {
		startupCancel()
		log.Error("failed to seed badge catalog: %v", err)
		os.Exit(1)
	}
	if _, err := challengeService.EnsureTodaysChallenges(startupCtx); err != nil {
		log.Warn("failed to generate today's challenges: %v", err)
	}
	startupCancel()

	maintenancePool := worker.NewPool(cfg.MaintenanceWorkers, cfg.MaintenanceQueueSize)
	rolloverJob := &jobs.RolloverJob{Challenges: challengeService}
	retentionJob := &jobs.RetentionJob{Activity: activityService, RetentionDays: cfg.ActivityRetentionDays}

	sched := scheduler.New(maintenancePool, rolloverJob, retentionJob)

	srv := &api.Server{
		ReviewService:    reviewService,
		ProgressService:  progressService,
		StreakService:    streakService,
		BadgeService:     badgeService,
		ChallengeService: challengeService,
		ActivityService:  activityService,
		MaintenancePool:  maintenancePool,
		MaintenanceJobs:  []worker.Job{rolloverJob, retentionJob},
	}

	ctx, cancel := context.WithCancel(context.Background())
	maintenancePool.Start(ctx)
	sched.Start()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping scheduler")
	sched.Stop()

	log.Debug("stopping worker pool")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	maintenancePool.Stop()

	log.Info("===========================================")
	log.Info("Lumo Progress Server Stopped")
	log.Info("===========================================")
}
