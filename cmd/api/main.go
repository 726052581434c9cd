package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"jobtracker/internal/config"
	"jobtracker/internal/handlers"
	"jobtracker/internal/scheduler"
	"jobtracker/internal/search"
	"jobtracker/internal/services"
	"jobtracker/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Store selection: real database when configured, otherwise the
	// in-memory seed store so the UI still works.
	var jobStore store.JobStore
	if cfg.HasDatabase() {
		pg, err := store.OpenPostgres(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		jobStore = pg
		logger.Info("connected to database")
	} else {
		jobStore = store.NewMemoryStore(store.SeedJobs())
		logger.Info("no DATABASE_URL set, running with in-memory seed data")
	}

	ctx := context.Background()

	// Clients for the tracker pipeline. Each degrades to empty results when
	// its key is missing rather than failing startup.
	searchClient := search.NewClient(cfg.SerperAPIKey, cfg.SearchLocation, logger)
	llmService := services.NewLLMService(ctx, cfg.GeminiAPIKey, logger)
	extractionService := services.NewExtractionService(llmService, cfg.CandidateProfile, logger)
	contactService := services.NewContactService(searchClient, llmService, cfg.SearchLocation, logger)

	jobService := services.NewJobService(jobStore)

	// The tracker and its daily schedule only exist with a persistent
	// store; discovered jobs have nowhere durable to go otherwise.
	var trackerService *services.TrackerService
	if cfg.HasDatabase() {
		trackerService = services.NewTrackerService(services.TrackerServiceOptions{
			Store:     jobStore,
			Search:    searchClient,
			Extractor: extractionService,
			Contacts:  contactService,
			Queries:   cfg.SearchQueries,
			Logger:    logger,
		})

		loc, err := time.LoadLocation(cfg.TrackerTimezone)
		if err != nil {
			log.Fatal("Invalid TRACKER_TIMEZONE:", err)
		}
		scheduler.New(trackerService, cfg.TrackerHour, loc, logger).Start(ctx)
	}

	jobHandler := handlers.NewJobHandler(jobService)
	trackerHandler := handlers.NewTrackerHandler(trackerService, jobStore)

	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/jobs", jobHandler.ListJobs)
		api.POST("/jobs", jobHandler.CreateJob)
		api.PUT("/jobs/:id", jobHandler.UpdateJob)
		api.DELETE("/jobs/:id", jobHandler.DeleteJob)
		api.GET("/stats", jobHandler.GetStats)

		api.POST("/tracker/run", trackerHandler.RunTracker)
		api.GET("/tracker/runs", trackerHandler.ListRuns)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
