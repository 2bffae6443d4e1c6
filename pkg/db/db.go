package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blendata/cerberus/pkg/config"
)

// Connect establishes a database connection with a bounded pool, retrying at
// startup until the database accepts connections or the retry budget is
// exhausted. On exhaustion the last error is returned; the caller is expected
// to treat this as fatal.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	logMode := logger.Silent
	if cfg.LogLevel == "debug" {
		logMode = logger.Info
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectRetries; attempt++ {
		db, err := open(cfg.DSN(), logMode, cfg.PoolSize)
		if err == nil {
			return db, nil
		}
		lastErr = err

		log.Printf("Database not ready (attempt %d/%d): %v", attempt, cfg.ConnectRetries, err)
		if attempt < cfg.ConnectRetries {
			time.Sleep(cfg.ConnectRetryDelay())
		}
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.ConnectRetries, lastErr)
}

func open(dsn string, logMode logger.LogLevel, poolSize int) (*gorm.DB, error) {
	db, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(poolSize)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// gorm.Open does not guarantee a live connection; verify before handing
	// the pool out.
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	return db, nil
}
