package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-score-backend/internal/ats"
	googleauth "ats-score-backend/internal/auth"
	"ats-score-backend/internal/documents"
	"ats-score-backend/internal/scores"
	"ats-score-backend/internal/shared/config"
	"ats-score-backend/internal/shared/metrics"
	"ats-score-backend/internal/shared/server/middleware"
	"ats-score-backend/internal/shared/server/respond"
	"ats-score-backend/internal/shared/storage/db"
	localstore "ats-score-backend/internal/shared/storage/object/local"
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
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"SCORE": {Rate: 5, Burst: 10},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/ats/score" {
					return "SCORE"
				}
				return ""
			},
		}),
	)

	// Dependencies
	store := localstore.New(cfg.LocalStoreDir)
	var sqlDB *sql.DB
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
		sqlDB = dbConn
	}

	var scoreRepo scores.Repo
	var docRepo documents.Repo
	if sqlDB != nil {
		scoreRepo = &scores.PGRepo{DB: sqlDB}
		docRepo = &documents.PGRepo{DB: sqlDB}
	} else {
		scoreRepo = scores.NewMemoryRepo()
		docRepo = documents.NewMemoryRepo()
	}

	engine := ats.New(ats.Options{NeutralMatchPercent: cfg.NeutralMatchPercent})
	scoreSvc := &scores.Service{Repo: scoreRepo, Engine: engine}
	scoreHandler := scores.NewHandler(scoreSvc)
	docSvc := &documents.Service{Store: store, Repo: docRepo}
	docHandler := documents.NewHandler(docSvc)
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)
	registerMeRoutes(api)
	scoreHandler.RegisterRoutes(api)
	docHandler.RegisterRoutes(api)

	return r
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
