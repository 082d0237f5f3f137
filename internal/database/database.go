// Package database opens the GORM connection and migrates the schema.
package database

import (
	"fmt"
	"log/slog"

	"agro-registry/internal/config"
	"agro-registry/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models lists every persisted entity in dependency order.
var Models = []any{
	&model.Organization{},
	&model.Property{},
	&model.Region{},
	&model.Field{},
	&model.Crop{},
	&model.CropCycle{},
}

// Open connects to the configured database, applies pool limits and migrates
// the schema.
func Open(cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Silent
	if cfg.Env == "development" {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// relationship fields are read-only id+name projections; foreign keys
		// are created by applyConstraints instead
		IgnoreRelationshipsWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database ready", "driver", cfg.DBDriver)
	return db, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "postgres":
		return postgres.Open(cfg.DatabaseURL), nil
	case "sqlite":
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", cfg.DBDriver)
	}
}

// Migrate creates or updates all tables, then adds the foreign keys on
// dialects that support ALTER TABLE ... ADD CONSTRAINT.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	return applyConstraints(db)
}

// applyConstraints adds the foreign keys between entity tables. Each statement
// is guarded by an existence check so re-running is a no-op.
func applyConstraints(db *gorm.DB) error {
	constraints := []struct {
		name, table, column, ref, onDelete string
	}{
		{"fk_properties_organization", "properties", "organization_id", "organizations", "CASCADE"},
		{"fk_regions_property", "regions", "property_id", "properties", "CASCADE"},
		{"fk_regions_parent_region", "regions", "parent_region_id", "regions", "SET NULL"},
		{"fk_fields_region", "fields", "region_id", "regions", "CASCADE"},
		{"fk_crop_cycles_crop", "crop_cycles", "crop_id", "crops", "CASCADE"},
		{"fk_crop_cycles_field", "crop_cycles", "field_id", "fields", "CASCADE"},
		{"fk_crop_cycles_property", "crop_cycles", "property_id", "properties", "CASCADE"},
	}

	for _, c := range constraints {
		sql := fmt.Sprintf(`
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
    ALTER TABLE %[2]s
      ADD CONSTRAINT %[1]s FOREIGN KEY (%[3]s) REFERENCES %[4]s(id) ON DELETE %[5]s;
  END IF;
END $$`, c.name, c.table, c.column, c.ref, c.onDelete)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("constraint %q: %w", c.name, err)
		}
	}
	return nil
}
