package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/careerdesk/job-portal/internal/config"
	"github.com/careerdesk/job-portal/internal/database"
	"github.com/careerdesk/job-portal/internal/handler"
	appmw "github.com/careerdesk/job-portal/internal/middleware"
	"github.com/careerdesk/job-portal/internal/repository"
	"github.com/careerdesk/job-portal/internal/router"
	"github.com/careerdesk/job-portal/internal/service"
)

func main() {
	_ = godotenv.Load() // read .env when present; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Create tables when missing and seed the default admin on an empty table.
	if err := database.Migrate(context.Background(), db, cfg.DefaultAdminUser, cfg.DefaultAdminPass, cfg.BcryptCost); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	admins := repository.NewAdminRepo(db)
	listings := repository.NewListingRepo(db)

	authHandler := handler.NewAuthHandler(cfg, admins)
	listingHandler := handler.NewListingHandler(listings, service.NewPublisher())

	// Response cache for the public routes; degrades to a pass-through when
	// Redis is unreachable or caching is disabled.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, response cache disabled")
	}
	cache := appmw.NewRedisCache(config.LoadCacheConfig(), rdb)

	e := echo.New()
	e.Use(echomw.CORS()) // the UI is served from a different origin

	router.RegisterRoutes(e)
	router.RegisterAPI(e, authHandler, listingHandler, cfg, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
