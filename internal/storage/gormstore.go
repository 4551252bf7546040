package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// collectionRow stores one whole collection as a JSON payload keyed by its
// name. The record-store contract is full-collection replace, so a blob per
// collection is the honest relational mapping.
type collectionRow struct {
	Kind string `gorm:"primaryKey;column:kind"`
	Data []byte `gorm:"column:data"`
}

func (collectionRow) TableName() string { return "collections" }

// GormStore is the sqlite-backed RecordStore. It keeps the same semantics as
// FileStore; only the durable medium differs.
type GormStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormStore(path string, logger *slog.Logger) (*GormStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, fmt.Errorf("migrate collections table: %w", err)
	}
	return &GormStore{db: db, logger: logger}, nil
}

func (s *GormStore) Load(kind Collection, out any) error {
	resetSlice(out)

	var row collectionRow
	err := s.db.First(&row, "kind = ?", string(kind)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", kind, err)
	}

	if err := json.Unmarshal(row.Data, out); err != nil {
		s.logger.Warn("corrupt collection treated as empty",
			"collection", kind,
			"error", err)
		resetSlice(out)
		return nil
	}

	return nil
}

func (s *GormStore) Save(kind Collection, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", kind, err)
	}

	row := collectionRow{Kind: string(kind), Data: data}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"data"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save %s: %w", kind, err)
	}

	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
