package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/b1query/b1query-engine/pkg/assistant"
	"github.com/b1query/b1query-engine/pkg/catalog"
	"github.com/b1query/b1query-engine/pkg/config"
	"github.com/b1query/b1query-engine/pkg/datastore"
	"github.com/b1query/b1query-engine/pkg/handlers"
	"github.com/b1query/b1query-engine/pkg/llm"
	"github.com/b1query/b1query-engine/pkg/middleware"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Load .env for local development; a missing file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("environment", cfg.Env),
		zap.String("model", cfg.OpenAI.Model),
		zap.String("schema", cfg.Database.Schema),
		zap.Bool("datasource_configured", cfg.Database.DatasourceConfigured()))

	completions, err := llm.NewClient(&llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.OpenAI.RequestTimeout,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to create completion client", zap.Error(err))
	}

	// Execution is optional; without a datasource the engine still
	// generates, classifies, and summarizes.
	var executor datastore.Executor
	if cfg.Database.DatasourceConfigured() {
		sqlServer, err := datastore.NewSQLServer(&datastore.Config{
			Host:         cfg.Database.Host,
			Port:         cfg.Database.Port,
			User:         cfg.Database.User,
			Password:     cfg.Database.Password,
			Database:     cfg.Database.Database,
			QueryTimeout: cfg.Database.QueryTimeout,
			MaxRows:      cfg.Database.MaxRows,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to create datastore executor", zap.Error(err))
		}
		defer func() { _ = sqlServer.Close() }()
		executor = sqlServer
	} else {
		logger.Warn("No datasource configured; query execution disabled")
	}

	cat := catalog.New(cfg.Database.Schema)
	svc := assistant.New(completions, executor, cat, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(r)
	handlers.NewQueryHandler(svc, logger).RegisterRoutes(r)

	addr := cfg.BindAddr + ":" + cfg.Port
	logger.Info("Starting b1query-engine",
		zap.String("addr", addr),
		zap.String("version", cfg.Version))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "local" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
