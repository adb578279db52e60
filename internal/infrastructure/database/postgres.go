package database

import (
	"fmt"

	"clinic-admin/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN builds the key/value connection string used by the gorm postgres driver
func DSN(cfg config.DBConfig) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone,
	)
}

// GormConfig is shared by every dialect so constraint errors are translated
// to gorm.ErrDuplicatedKey / gorm.ErrForeignKeyViolated the same way.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	}
}

func NewPostgresConnection(cfg config.DBConfig, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN(cfg)), GormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
