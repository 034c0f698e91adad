package main

import (
	"context"
	"log"

	"github.com/edudash/backend/internal/config"
	"github.com/edudash/backend/internal/model"
	"github.com/edudash/backend/internal/server"
	"github.com/edudash/backend/pkg/database"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	redisClient, err := database.NewRedisClient(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	if redisClient == nil {
		log.Println("REDIS_URL not set, list caching disabled")
	}

	srv := server.NewServer(db, redisClient, cfg)

	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Board{},
		&model.Class{},
		&model.Subject{},
		&model.Chapter{},
		&model.MCQQuestion{},
	)
}
