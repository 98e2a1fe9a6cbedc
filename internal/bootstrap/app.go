// Package bootstrap assembles the application: storage, services, handlers
// and the route table. cmd/api stays a thin main on top of Build.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"readiness-backend/internal/assessments"
	"readiness-backend/internal/callrequests"
	"readiness-backend/internal/companies"
	"readiness-backend/internal/dimensions"
	"readiness-backend/internal/shared/config"
	"readiness-backend/internal/shared/metrics"
	"readiness-backend/internal/shared/server"
	"readiness-backend/internal/shared/server/middleware"
	"readiness-backend/internal/shared/server/respond"
	"readiness-backend/internal/shared/storage/db"
	"readiness-backend/internal/tracking"
	"readiness-backend/internal/users"
)

// Build constructs the gin engine with all routes registered. A reachable
// database backs the repos with Postgres; otherwise everything falls back to
// in-memory storage so local development and tests need no infrastructure.
func Build(cfg config.Config) (*gin.Engine, error) {
	r := server.NewEngine(cfg)

	sqlDB := connectDatabase(cfg)

	var (
		assessRepo  assessments.Repo
		trackRepo   tracking.Repo
		userRepo    users.Repo
		companyRepo companies.Repo
		callRepo    callrequests.Repo
	)
	if sqlDB != nil {
		assessRepo = &assessments.PGRepo{DB: sqlDB}
		trackRepo = &tracking.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
		companyRepo = &companies.PGRepo{DB: sqlDB}
		callRepo = &callrequests.PGRepo{DB: sqlDB}
	} else {
		assessRepo = assessments.NewMemoryRepo()
		trackRepo = tracking.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
		companyRepo = companies.NewMemoryRepo()
		callRepo = callrequests.NewMemoryRepo()
	}

	assessSvc := assessments.NewService(assessRepo)
	trackingSvc := tracking.NewService(trackRepo, assessSvc)
	assessSvc.Tracking = trackingSvc

	userSvc := users.NewService(userRepo, trackingSvc, assessSvc)
	companySvc := companies.NewService(companyRepo)
	callSvc := callrequests.NewService(callRepo)

	catalog, err := dimensions.Load()
	if err != nil {
		return nil, fmt.Errorf("load dimension catalog: %w", err)
	}

	assessHandler := assessments.NewHandler(assessSvc)
	userHandler := users.NewHandler(userSvc)
	companyHandler := companies.NewHandler(companySvc)
	callHandler := callrequests.NewHandler(callSvc)
	dimensionHandler := dimensions.NewHandler(catalog)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	api.Use(
		middleware.Identity(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"READ":  {Rate: 50, Burst: 100},
				"WRITE": {Rate: 5, Burst: 10},
			},
			DefaultGroup: "READ",
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodGet {
					return "READ"
				}
				return "WRITE"
			},
		}),
	)

	assessHandler.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	callHandler.RegisterPublicRoutes(api)
	dimensionHandler.RegisterRoutes(api)

	admin := api.Group("", middleware.RequireAdmin())
	companyHandler.RegisterRoutes(admin)
	callHandler.RegisterAdminRoutes(admin)

	return r, nil
}

func connectDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	ctx := context.Background()
	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("failed to connect database, falling back to memory: %v", err)
		return nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("failed to run migrations, falling back to memory: %v", err)
		sqlDB.Close()
		return nil
	}
	return sqlDB
}
