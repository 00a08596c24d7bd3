package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/config"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/database"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/middleware"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/queue"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/repository"
	"github.com/JamesKenLuci/ENOVA-PROJECT/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	stores, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repository.EnsureAdmin(ctx, stores.Users, cfg.AdminUsername, cfg.AdminPassword, cfg.BcryptCost); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	router.RegisterRoutes(e, cfg, stores, rdb)

	// Background consumer turning booking activity events into logs/booking.log.
	go func() {
		if err := queue.StartActivityConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// buildStores selects the configured backend: MySQL repositories over a
// shared pool, or the single mutex-guarded in-memory store.
func buildStores(cfg config.Config) (repository.Stores, error) {
	if cfg.StoreDriver == config.DriverMemory {
		return repository.NewMemoryStore().Stores(), nil
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return repository.Stores{}, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.InitSchema(ctx, db); err != nil {
		return repository.Stores{}, err
	}
	return repository.Stores{
		Users:    repository.NewUserRepo(db),
		Events:   repository.NewEventRepo(db),
		Bookings: repository.NewBookingRepo(db),
		Tokens:   repository.NewTokenRepo(db),
	}, nil
}
