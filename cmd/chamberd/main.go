package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chamber-directory/config"
	"chamber-directory/internal/api"
	"chamber-directory/internal/cachegate"
	"chamber-directory/internal/db"
	"chamber-directory/internal/directory"
	"chamber-directory/internal/loader"
	"chamber-directory/internal/page"
	"chamber-directory/internal/render"
	"chamber-directory/internal/store"
	"chamber-directory/internal/warmer"
	"chamber-directory/internal/weather"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "chamberd ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// The weather cache lives in the key-value store; "memory" keeps it in process.
	var kv store.Store
	if cfg.Database.Driver == "memory" {
		kv = store.NewMemoryStore()
		logger.Println("using in-memory key-value store")
	} else {
		gormDB, err := db.Init(&cfg.Database)
		if err != nil {
			logger.Fatalf("failed to initialize database: %v", err)
		}
		kv = store.NewGormStore(gormDB)
		logger.Println("database initialized successfully")
	}

	renderer, err := render.New()
	if err != nil {
		logger.Fatalf("failed to parse templates: %v", err)
	}

	fetcher := loader.New(cfg.Sources.HTTPProxy, cfg.Sources.Timeout)
	gate := cachegate.New(kv, cfg.Weather.CacheKey, cfg.Weather.Freshness)
	weatherSvc := weather.NewService(cfg.Weather, gate, fetcher)
	picker := directory.NewSeededPicker(cfg.Spotlight.Count, cfg.Spotlight.Seed)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go warmer.New(weatherSvc, cfg.Weather.WarmInterval).Run(ctx)

	site := page.NewSite(cfg.Sources, fetcher, weatherSvc, picker, renderer)
	handler := api.NewHandler(site, cfg.Server.DefaultTheme, time.Now())

	// Initialize router
	router := api.NewRouter(handler, cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
