package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jrsanchez/musica/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) the sqlite database at dbPath and runs
// the schema migrations. TranslateError is enabled so that unique
// constraint violations surface as gorm.ErrDuplicatedKey, which the
// HTTP layer maps to conflict responses.
func NewDatabase(dbPath string, debug bool) (*Database, error) {
	logMode := logger.Silent
	if debug {
		logMode = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = db.AutoMigrate(
		&entities.User{},
		&entities.Song{},
		&entities.Favorite{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping verifies connectivity to the underlying store.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
