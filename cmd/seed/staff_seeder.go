package main

import (
	"context"
	"errors"
	"log"
	"os"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/eventbus"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/unitofwork"
	adminUser "eveshield-be/pkg/admin/user"

	"gorm.io/gorm"
)

// SeedStaff creates the first staff account from SEED_STAFF_USERNAME,
// SEED_STAFF_EMAIL and SEED_STAFF_PASSWORD. Nothing happens when any is unset.
func SeedStaff(db *gorm.DB, sysLogger logger.ILogger) {
	req := dto.AdminCreateUserRequest{
		Username: os.Getenv("SEED_STAFF_USERNAME"),
		Email:    os.Getenv("SEED_STAFF_EMAIL"),
		Password: os.Getenv("SEED_STAFF_PASSWORD"),
		Role:     string(entity.UserRoleStaff),
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Println("SEED_STAFF_* not set, skipping staff account")
		return
	}

	ctx := context.Background()
	manager := adminUser.NewManager(sysLogger, eventbus.NewPublisher(nil, sysLogger))

	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Printf("Error starting transaction: %v", err)
		return
	}
	defer uow.Rollback()

	user, err := manager.Create(ctx, uow, req)
	if errors.Is(err, adminUser.ErrUsernameExists) || errors.Is(err, adminUser.ErrEmailExists) {
		log.Printf("Staff account %s already exists, skipping", req.Username)
		return
	}
	if err != nil {
		log.Printf("Error creating staff account: %v", err)
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("Error committing staff account: %v", err)
		return
	}
	log.Printf("Created staff account: %s", user.Username)
}
