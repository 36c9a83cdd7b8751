package main

import (
	"context"
	"log"
	"os"

	"foodbrand-commerce/internal/config"
	"foodbrand-commerce/internal/db"
	productrepo "foodbrand-commerce/internal/repository/product"
	"foodbrand-commerce/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	repo := productrepo.NewPostgres(pool, logger)
	res, err := seed.New(repo, logger).Apply(ctx)
	if err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println(res.Message)
}
