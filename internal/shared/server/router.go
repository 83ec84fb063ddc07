package server

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cvgen-backend/internal/generate"
	"cvgen-backend/internal/history"
	"cvgen-backend/internal/llm/gemini"
	"cvgen-backend/internal/quota"
	"cvgen-backend/internal/shared/config"
	"cvgen-backend/internal/shared/server/middleware"
	"cvgen-backend/internal/shared/server/respond"
	"cvgen-backend/internal/shared/storage/db"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// A missing AI credential is a startup error, not a per-request one.
func NewRouter(cfg config.Config) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	llmClient, err := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, err
	}

	var historyRepo history.Repo
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		if dbConn != nil {
			historyRepo = &history.PGRepo{DB: dbConn}
		}
	}
	if historyRepo == nil {
		historyRepo = history.NewMemoryRepo()
	}

	historySvc := history.NewService(historyRepo)
	historyHandler := history.NewHandler(historySvc)

	ledger := quota.NewLedger()
	generateSvc := generate.NewService(llmClient)
	generateHandler := generate.NewHandler(generateSvc, ledger, historySvc, cfg.DailyLimit)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	generateHandler.RegisterRoutes(api)
	historyHandler.RegisterRoutes(api)

	return r, nil
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
