// Package memdb owns the process-lifetime note storage. It reuses the
// SQLite driver on an in-memory DSN: state lives exactly as long as the
// process and a fresh Init gives tests a clean, isolated store.
package memdb

import (
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"notekeep/internal/domain/entity"
)

func Init() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&entity.User{}, &entity.Note{})
	if err != nil {
		return nil, err
	}

	// A single connection keeps the in-memory database alive and
	// serializes store access, one operation at a time.
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
