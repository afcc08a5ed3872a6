package main

import (
	"context"
	"log"
	"os"

	"luxe-jewelry-api/internal/config"
	"luxe-jewelry-api/internal/db"
	productrepo "luxe-jewelry-api/internal/repository/product"
	"luxe-jewelry-api/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	store := db.Connect(ctx, cfg.MongoURL, cfg.DBName, logger)
	if !store.Available() {
		logger.Fatalf("store unavailable, cannot seed")
	}
	defer store.Close(ctx)

	repo := productrepo.NewMongo(store, logger)
	msg, err := seed.New(repo, logger).Apply(ctx)
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println(msg)
}
