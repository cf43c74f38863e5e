package archive

import (
	"context"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialite/internal/config"
)

type DB struct {
	Config *config.Config

	db *gorm.DB
}

func (d *DB) Init(_ context.Context) error {
	gormDB, err := gorm.Open(postgres.Open(d.Config.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	d.db = gormDB

	return d.db.AutoMigrate(&ArchivedMessage{}, &ArchivedEvent{})
}

func (d *DB) Model(a any) *gorm.DB {
	return d.db.Model(a)
}

func (d *DB) Shutdown(_ context.Context) error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return nil
	}
	return sqlDB.Close()
}
