package database

import (
	"github.com/ericwen511/fintentacle-backend/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate runs the schema migrations and seeds the initial rows.
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running database migrations...")

	// Migration order follows the foreign key dependencies.
	modelsInOrder := []interface{}{
		&model.User{},
		&model.Tag{},
		&model.Note{},
		&model.NewsBookmark{},
		&model.WatchlistEntry{},
		&model.SystemStat{},
	}

	for _, m := range modelsInOrder {
		if err := db.AutoMigrate(m); err != nil {
			logger.Error("Failed to run migrations", zap.Error(err))
			return err
		}
	}

	if err := createCustomConstraints(db); err != nil {
		logger.Error("Failed to create custom constraints", zap.Error(err))
		return err
	}

	if err := seed(db, logger); err != nil {
		logger.Error("Failed to seed initial rows", zap.Error(err))
		return err
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomConstraints covers what AutoMigrate does not express: the join
// table must drop its rows when either side goes away.
func createCustomConstraints(db *gorm.DB) error {
	statements := []string{
		`ALTER TABLE note_tags DROP CONSTRAINT IF EXISTS fk_note_tags_note`,
		`ALTER TABLE note_tags ADD CONSTRAINT fk_note_tags_note FOREIGN KEY (note_id) REFERENCES notes (id) ON DELETE CASCADE`,
		`ALTER TABLE note_tags DROP CONSTRAINT IF EXISTS fk_note_tags_tag`,
		`ALTER TABLE note_tags ADD CONSTRAINT fk_note_tags_tag FOREIGN KEY (tag_id) REFERENCES tags (id) ON DELETE CASCADE`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// seed creates the default counters and tag palette on an empty database.
func seed(db *gorm.DB, logger *zap.Logger) error {
	var statCount int64
	if err := db.Model(&model.SystemStat{}).Count(&statCount).Error; err != nil {
		return err
	}
	if statCount == 0 {
		stats := []model.SystemStat{
			{StatName: model.StatTotalUsers, StatValue: 0},
			{StatName: model.StatTotalNotes, StatValue: 0},
			{StatName: model.StatTotalNews, StatValue: 0},
		}
		if err := db.Create(&stats).Error; err != nil {
			return err
		}
		logger.Info("Seeded system stat counters")
	}

	var tagCount int64
	if err := db.Model(&model.Tag{}).Count(&tagCount).Error; err != nil {
		return err
	}
	if tagCount == 0 {
		tags := []model.Tag{
			{Name: "buy", Color: "#28a745"},
			{Name: "sell", Color: "#dc3545"},
			{Name: "watch", Color: "#ffc107"},
			{Name: "earnings", Color: "#17a2b8"},
			{Name: "technical", Color: "#6f42c1"},
			{Name: "fundamental", Color: "#fd7e14"},
			{Name: "risk", Color: "#e83e8c"},
			{Name: "opportunity", Color: "#20c997"},
		}
		if err := db.Create(&tags).Error; err != nil {
			return err
		}
		logger.Info("Seeded default tags")
	}

	return nil
}
