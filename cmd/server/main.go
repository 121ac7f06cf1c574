package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NehaP156/linkedln-clone-gemini/internal/application/services"
	"github.com/NehaP156/linkedln-clone-gemini/internal/config"
	"github.com/NehaP156/linkedln-clone-gemini/internal/delivery/handler"
	"github.com/NehaP156/linkedln-clone-gemini/internal/delivery/render"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure"
	"github.com/NehaP156/linkedln-clone-gemini/internal/infrastructure/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := postgres.Connect(cfg.PostgreSQL)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}

	redisService := infrastructure.NewRedisService()
	defer redisService.Close()

	userRepo := postgres.NewUserRepository(db)
	followRepo := postgres.NewFollowRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	hasher := infrastructure.NewBcryptHasher(cfg.BcryptCost)
	cookieService := infrastructure.NewCookieService(cfg.SessionSecret)
	loginLimiter := infrastructure.NewRateLimiter(time.Minute, 10)

	sessionManager := services.NewSessionService(sessionRepo, redisService, cfg.SessionTTL)

	// Prune expired session rows in the background; expiry itself is
	// enforced on read, this only keeps the table small.
	go func() {
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if removed, err := sessionManager.PruneExpired(context.Background()); err != nil {
				log.Printf("session cleanup failed: %v", err)
			} else if removed > 0 {
				log.Printf("session cleanup removed %d expired sessions", removed)
			}
		}
	}()
	userService := services.NewUserService(userRepo, sessionManager, hasher, loginLimiter)
	socialService := services.NewSocialService(userRepo, followRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	gate := handler.NewAuthGate(sessionManager, cookieService)
	h := handler.NewHandler(userService, socialService, cookieService, render.NewJSONRenderer())
	h.RegisterRoutes(e, gate)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	log.Println("Server running on :" + cfg.Port)
	log.Fatal(e.Start(":" + cfg.Port))
}
