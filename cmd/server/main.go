package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/globalhorizons/backend/auth"
	"github.com/globalhorizons/backend/config"
	"github.com/globalhorizons/backend/db"
	"github.com/globalhorizons/backend/db/postgres"
	"github.com/globalhorizons/backend/db/sqlite"
	"github.com/globalhorizons/backend/handlers"
	"github.com/globalhorizons/backend/repository"
	"github.com/globalhorizons/backend/routes"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	// DATABASE_URL present selects Postgres, otherwise the local SQLite file
	var store db.Store
	if cfg.DatabaseURL != "" {
		store = postgres.NewPostgresDB(cfg.DatabaseURL)
		log.Println("Connected to PostgreSQL")
	} else {
		store = sqlite.NewSQLiteDB(cfg.SQLitePath)
		log.Println("Connected to SQLite")
	}
	if err := store.Connect(); err != nil {
		panic(err)
	}
	defer store.Disconnect()

	// Table creation failures are logged, not fatal
	if err := db.InitSchema(context.Background(), store); err != nil {
		log.Printf("Failed to initialize database tables: %v", err)
	} else {
		log.Println("Database tables initialized")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret)

	userRepo := repository.NewSQLUserRepo(store)
	appRepo := repository.NewSQLApplicationRepo(store)

	userHandler := &handlers.UserHandler{Repo: userRepo, Tokens: tokens}
	appHandler := &handlers.ApplicationHandler{Repo: appRepo}

	mux := routes.SetupRoutes(userHandler, appHandler, tokens, cfg.StaticDir)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		panic(err)
	}
}
