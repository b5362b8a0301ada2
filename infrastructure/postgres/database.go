package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"search-funnel/domain/models"
	"search-funnel/pkg/config"
)

func NewDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	return Open(cfg.DSN(), cfg.LogQueries, cfg.MaxOpenConns)
}

// Open connects with an explicit DSN. Integration tests use it directly.
func Open(dsn string, logQueries bool, maxOpenConns int) (*gorm.DB, error) {
	level := gormlogger.Warn
	if logQueries {
		level = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if maxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql db: %w", err)
		}
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns / 2)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Blog{},
		&models.RelatedSearch{},
		&models.WebResult{},
		&models.PreLandingConfig{},
		&models.AnalyticsEvent{},
		&models.EmailSubmission{},
	); err != nil {
		return fmt.Errorf("failed to run auto migrations: %w", err)
	}

	return runIndexMigrations(db)
}

// runIndexMigrations adds the composite indexes gorm tags cannot express.
func runIndexMigrations(db *gorm.DB) error {
	migrations := []string{
		`CREATE INDEX IF NOT EXISTS idx_related_searches_blog_order ON related_searches(blog_id, order_index)`,
		`CREATE INDEX IF NOT EXISTS idx_web_results_search_order ON web_results(related_search_id, is_sponsored DESC, order_index)`,
		`CREATE INDEX IF NOT EXISTS idx_blogs_status_published ON blogs(status, published_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_analytics_events_type_created ON analytics_events(event_type, created_at)`,
	}

	for _, sql := range migrations {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("migration failed: %s: %w", sql, err)
		}
	}
	return nil
}
