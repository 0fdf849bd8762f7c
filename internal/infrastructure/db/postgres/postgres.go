// Package postgres implements the repository ports on gorm/PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/talentlink/freelance-platform/internal/core/domain"
)

const (
	maxOpenConns    = 20
	maxIdleConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// Open connects to PostgreSQL, configures the pool and verifies connectivity.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrap sql.DB: %w", err)
	}
	configurePool(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

func configurePool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
}

// Migrate creates or updates every table the platform owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Job{},
		&domain.Application{},
		&domain.Review{},
		&domain.Message{},
		&domain.Notification{},
		&domain.Payment{},
		&domain.PricingPlan{},
		&domain.SalaryCategory{},
		&domain.SalaryRole{},
		&domain.SalaryInsight{},
		&domain.HiringSolution{},
		&domain.HiringStat{},
		&domain.HiringPlan{},
		&domain.EmployerResourceCategory{},
		&domain.EmployerGuide{},
		&domain.EmployerDownload{},
		&domain.EmployerFAQ{},
		&domain.PlatformSetting{},
	)
}

func paginate(page, limit int) (offset, capped int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return (page - 1) * limit, limit
}
