package infra

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"polisure/internal/models/db_models"
	"polisure/pkg/logger"
	"polisure/pkg/utils"
)

func InitPostgresql(log *logger.Logger) (*gorm.DB, error) {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.PolicyProduct{},
		&db_models.UserPolicy{},
		&db_models.Payment{},
		&db_models.Claim{},
		&db_models.AuditLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	if err := seedAdmin(db, log); err != nil {
		return nil, err
	}

	log.Info("postgres connected")
	return db, nil
}

// seedAdmin creates the bootstrap administrator when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user with that email exists yet.
func seedAdmin(db *gorm.DB, log *logger.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&db_models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	admin := &db_models.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: hash,
		Role:         db_models.RoleAdmin,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info("seeded bootstrap admin", "email", email)
	return nil
}

func ClosePostgresql(db *gorm.DB, log *logger.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("get database instance", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("close database connection", "error", err)
	}
}
