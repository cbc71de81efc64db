package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects per driver: "sqlite" takes a file path (the default for a
// single-user ledger), "mysql" a DSN.
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		return OpenGormWithDialector(sqlite.Open(dsn))
	case "mysql":
		return OpenGormWithDialector(mysql.Open(dsn))
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}
