package psql

import (
	"context"
	"fmt"

	"azoul/azoul/config"
	"azoul/azoul/sources/psql/models"
	"azoul/azoul/utils/logging"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	DB *gorm.DB
}

// DSN builds the postgres connection string from cfg.
func DSN(cfg config.Config) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
	)
}

// NewDatabase connects to postgres and migrates the content tables.
func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	logging.AppLogger.Info("connecting to database",
		zap.String("host", cfg.DBHost),
		zap.String("port", cfg.DBPort),
		zap.String("db", cfg.DBName),
	)
	db, err := Open(ctx, postgres.Open(DSN(cfg)))
	if err != nil {
		return nil, err
	}

	var currentDB string
	_ = db.DB.WithContext(ctx).Raw("SELECT current_database()").Scan(&currentDB).Error
	logging.AppLogger.Info("connected to database", zap.String("current", currentDB))
	return db, nil
}

// Open wraps any gorm dialector (sqlite in tests) and runs AutoMigrate.
func Open(ctx context.Context, dialector gorm.Dialector) (*Database, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	d := &Database{DB: db}
	if err := d.Migrate(ctx); err != nil {
		return nil, err
	}
	return d, nil
}

func (db *Database) Migrate(ctx context.Context) error {
	defer logging.LogDuration(ctx, "psql.Migrate")()
	if err := db.DB.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		logging.ErrorLogger.Error("auto-migrate failed", zap.Error(err))
		return fmt.Errorf("failed to auto-migrate: %w", err)
	}
	return nil
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}

func (db *Database) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
