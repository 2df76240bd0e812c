package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
	"moul.io/zapgorm2"

	"oleander_app_echo/internal/app"
	"oleander_app_echo/internal/models"
)

// InitDB initializes the postgres connection with connection pooling
func InitDB(dsn string, log *zap.Logger) (*gorm.DB, error) {
	return OpenDB(postgres.Open(dsn), log)
}

// OpenDB opens dialector with gorm's own logging routed through zap.
func OpenDB(dialector gorm.Dialector, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: zapgorm2.New(log.Named("gorm")).LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Get underlying sql.DB to configure connection pool
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("Database connection established")
	return db, nil
}

// CloseDB releases the connection pool behind db.
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running database migrations...")

	if err := db.AutoMigrate(&models.ViewSession{}); err != nil {
		return err
	}

	log.Info("Database migrations completed")
	return nil
}

// OpenGormSessionStore migrates db and wraps it in a store. The returned
// cleanup closes the pool; on error the pool is already closed.
func OpenGormSessionStore(db *gorm.DB, ttl time.Duration, log *zap.Logger) (*GormSessionStore, func(), error) {
	if err := AutoMigrate(db, log); err != nil {
		if closeErr := CloseDB(db); closeErr != nil {
			log.Warn("Failed to close database after migration error", zap.Error(closeErr))
		}
		return nil, nil, fmt.Errorf("migrate view sessions: %w", err)
	}
	cleanup := func() {
		if err := CloseDB(db); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}
	return NewGormSessionStore(db, ttl), cleanup, nil
}

// GormSessionStore keeps view state in the view_sessions table.
type GormSessionStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

// NewGormSessionStore stores entries for ttl after their last save.
func NewGormSessionStore(db *gorm.DB, ttl time.Duration) *GormSessionStore {
	return &GormSessionStore{db: db, ttl: ttl, now: time.Now}
}

func (s *GormSessionStore) Load(ctx context.Context, id string) (app.State, error) {
	var rows []models.ViewSession
	err := s.db.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&rows).Error
	if err != nil {
		return app.State{}, fmt.Errorf("load view session %s: %w", id, err)
	}
	if len(rows) == 0 || rows[0].Expired(s.now()) {
		return app.State{}, ErrSessionNotFound
	}

	var state app.State
	if err := json.Unmarshal([]byte(rows[0].State), &state); err != nil {
		return app.State{}, fmt.Errorf("decode view session %s: %w", id, err)
	}
	if state.Errors == nil {
		state.Errors = app.ErrorMap{}
	}
	return state, nil
}

// Save inserts the row or, for a known id, replaces its state and expiry
// while leaving created_at alone.
func (s *GormSessionStore) Save(ctx context.Context, id string, state app.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode view session %s: %w", id, err)
	}
	row := models.ViewSession{
		ID:        id,
		State:     string(data),
		ExpiresAt: s.now().Add(s.ttl),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "expires_at", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save view session %s: %w", id, err)
	}
	return nil
}

func (s *GormSessionStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.ViewSession{}, "id = ?", id).Error
}

// Sweep deletes every expired row.
func (s *GormSessionStore) Sweep(ctx context.Context) (int, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", s.now()).Delete(&models.ViewSession{})
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}
