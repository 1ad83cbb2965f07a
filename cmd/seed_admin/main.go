package main

import (
	"context"
	"log"
	"os"

	"packaging-catalog-be/internal/config"
	"packaging-catalog-be/internal/entity"
	"packaging-catalog-be/internal/repository/specification"
	"packaging-catalog-be/internal/repository/unitofwork"
	"packaging-catalog-be/pkg/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to DB: %v", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		log.Fatalf("Failed to look up user: %v", err)
	}

	if existing != nil {
		existing.PasswordHash = string(hash)
		if err := uow.UserRepository().Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin user: %v", err)
		}
		log.Printf("Updated password for admin user %q", username)
		return
	}

	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Printf("Created admin user %q", username)
}
