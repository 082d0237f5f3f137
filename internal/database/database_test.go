package database_test

import (
	"path/filepath"
	"testing"

	"agro-registry/internal/config"
	"agro-registry/internal/database"
	"agro-registry/internal/model"
	"agro-registry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := &config.Config{
		Env:            "test",
		DBDriver:       "sqlite",
		SQLitePath:     filepath.Join(t.TempDir(), "agro.db"),
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}

	db, err := database.Open(cfg, testutil.Logger())
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	for _, m := range database.Models {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
	assert.True(t, db.Migrator().HasColumn(&model.Region{}, "parent_region_id"))
	assert.True(t, db.Migrator().HasColumn(&model.CropCycle{}, "harvest_date"))

	// re-running the migration is a no-op
	require.NoError(t, database.Migrate(db))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DBDriver: "mysql"}, testutil.Logger())
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}
