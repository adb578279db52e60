package database

import (
	"context"

	"gorm.io/gorm"
)

// Ping checks that the underlying connection pool can reach the server
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
