package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/globalhorizons/backend/config"
	"github.com/globalhorizons/backend/db"
	"github.com/globalhorizons/backend/db/postgres"
	"github.com/globalhorizons/backend/db/sqlite"
	"github.com/globalhorizons/backend/models"
	"github.com/globalhorizons/backend/repository"
)

// Seeds the admin account. Safe to re-run: does nothing when the user exists.
func main() {
	cfg := config.LoadConfig()

	var store db.Store
	if cfg.DatabaseURL != "" {
		store = postgres.NewPostgresDB(cfg.DatabaseURL)
	} else {
		store = sqlite.NewSQLiteDB(cfg.SQLitePath)
	}
	if err := store.Connect(); err != nil {
		log.Fatalf("could not connect: %v", err)
	}
	defer store.Disconnect()

	if err := db.InitSchema(context.Background(), store); err != nil {
		log.Fatalf("could not initialize tables: %v", err)
	}

	username := "admin"
	password := cfg.AdminPassword
	if password == "" {
		password = "adminpassword123"
	}

	repo := repository.NewSQLUserRepo(store)

	existing, err := repo.GetUserByUsername(context.Background(), username)
	if err != nil {
		log.Fatalf("could not check for existing admin: %v", err)
	}
	if existing != nil {
		log.Println("Admin user already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("could not hash password: %v", err)
	}

	admin := &models.User{
		Username: username,
		Password: string(hashed),
		IsAdmin:  true,
	}
	if err := repo.CreateUser(context.Background(), admin); err != nil {
		log.Fatalf("could not create admin user: %v", err)
	}

	log.Println("Admin user created successfully.")
	log.Printf("Username: %s", username)
	log.Printf("Password: %s", password)
	log.Println("IMPORTANT: change this password before production.")
}
