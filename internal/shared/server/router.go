package server

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"strategix-backend/internal/analyses"
	"strategix-backend/internal/documents"
	"strategix-backend/internal/llm"
	llmanthropic "strategix-backend/internal/llm/anthropic"
	llmgemini "strategix-backend/internal/llm/gemini"
	"strategix-backend/internal/qa"
	"strategix-backend/internal/shared/config"
	"strategix-backend/internal/shared/metrics"
	"strategix-backend/internal/shared/server/middleware"
	"strategix-backend/internal/shared/server/respond"
	"strategix-backend/internal/shared/storage/db"
	localstore "strategix-backend/internal/shared/storage/object/local"
	"strategix-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Owner(),
		middleware.RateLimit(rateLimitConfig()),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Warn("database connect failed, falling back to memory", map[string]any{"error": err.Error()})
		} else {
			sqlDB = migrateOrClose(context.Background(), dbConn)
		}
	}

	var docRepo documents.DocumentsRepo
	var analysisRepo analyses.AnalysesRepo
	var artifactCache analyses.ArtifactCache
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
		artifactCache = &analyses.PGCache{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
		artifactCache = analyses.NewMemoryCache()
	}

	llmClient := buildLLMClient(cfg)
	docSvc := &documents.Service{Store: store, Repo: docRepo}
	analysisSvc := &analyses.Service{
		Repo:     analysisRepo,
		DocSvc:   docSvc,
		Answerer: buildAnswerer(llmClient),
		GenAI: &analyses.GenAI{
			LLM:        llmClient,
			Cache:      artifactCache,
			OnFallback: metrics.IncGenAIFallback,
		},
	}
	docHandler := documents.NewHandler(docSvc, analysisSvc)
	analysisHandler := analyses.NewHandler(analysisSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	docHandler.RegisterRoutes(api)
	analysisHandler.RegisterRoutes(api)
	r.GET("/metrics", metrics.Handler())

	return r
}

// migrateOrClose runs migrations on a fresh connection. On failure the
// connection is closed and nil is returned so the caller falls back to the
// memory repos without leaking the pool.
func migrateOrClose(ctx context.Context, dbConn *sql.DB) *sql.DB {
	if err := db.RunMigrations(ctx, dbConn); err != nil {
		telemetry.Warn("migrations failed, falling back to memory", map[string]any{"error": err.Error()})
		dbConn.Close()
		return nil
	}
	return dbConn
}

// buildLLMClient picks the provider from config; nil means local-only mode.
func buildLLMClient(cfg config.Config) llm.Client {
	switch cfg.LLMProvider {
	case "gemini":
		client, err := llmgemini.NewClient(cfg.GeminiAPIKey, cfg.LLMModel, llmTimeout(cfg))
		if err != nil {
			telemetry.Warn("gemini client unavailable", map[string]any{"error": err.Error()})
			return nil
		}
		return client
	case "anthropic":
		client, err := llmanthropic.NewClient(cfg.AnthropicAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Warn("anthropic client unavailable", map[string]any{"error": err.Error()})
			return nil
		}
		return client
	default:
		return nil
	}
}

// buildAnswerer prefers the generative path when a provider is configured.
func buildAnswerer(client llm.Client) qa.Answerer {
	if client == nil {
		return qa.Local{}
	}
	return &qa.Generative{
		LLM:           client,
		OnRateLimited: metrics.IncGenAIRateLimited,
		OnFallback:    metrics.IncGenAIFallback,
	}
}

func llmTimeout(cfg config.Config) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(cfg.LLMTimeoutSecs))
	if err != nil || secs <= 0 {
		secs = 60
	}
	return time.Duration(secs) * time.Second
}

func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: 5, Burst: 20},
			"CHAT":    {Rate: 0.5, Burst: 5},
		},
		GroupFor: func(c *gin.Context) string {
			if strings.HasSuffix(c.FullPath(), "/chat") {
				return "CHAT"
			}
			return "DEFAULT"
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
