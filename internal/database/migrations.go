package database

import (
	"errors"
	"time"

	"github.com/skorelabs/skore-api/internal/leads"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const migrationBackfillSubscriberSource = "2026-06-18_backfill_subscriber_source"

type migrationRecord struct {
	Name             string `gorm:"column:name;primaryKey;size:190;not null"`
	AppliedAtSeconds int64  `gorm:"column:applied_at_s;not null"`
}

func (migrationRecord) TableName() string {
	return "db_migrations"
}

type migrationDefinition struct {
	name  string
	apply func(*gorm.DB) error
}

func applyMigrations(db *gorm.DB, logger *zap.Logger) error {
	migrations := []migrationDefinition{
		{name: migrationBackfillSubscriberSource, apply: backfillSubscriberSource},
	}

	for _, migration := range migrations {
		var record migrationRecord
		err := db.Where("name = ?", migration.name).Take(&record).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := migration.apply(db); err != nil {
			return err
		}
		appliedAt := time.Now().UTC().Unix()
		if err := db.Create(&migrationRecord{Name: migration.name, AppliedAtSeconds: appliedAt}).Error; err != nil {
			return err
		}
		if logger != nil {
			logger.Info("database migration applied", zap.String("migration", migration.name))
		}
	}
	return nil
}

// Rows imported before the source column existed carry an empty source;
// every subscriber from that era came through the newsletter form.
func backfillSubscriberSource(db *gorm.DB) error {
	return db.Model(&leads.Subscriber{}).
		Where("source = ''").
		Update("source", leads.SourceNewsletter).Error
}
