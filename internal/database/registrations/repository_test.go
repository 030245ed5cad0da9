package registrations

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/badcoders/filmbase/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_registrations_" + t.Name() + ".sdb"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Registration{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_Create(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	registration, err := repo.Create(3)

	require.NoError(t, err)
	require.NotNil(t, registration)
	assert.NotZero(t, registration.ID)
	assert.Equal(t, uint(3), registration.UserID)
	assert.Positive(t, registration.Code)
}

func TestRepository_Create_UniqueCodes(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Create(1)
	require.NoError(t, err)
	second, err := repo.Create(2)
	require.NoError(t, err)

	assert.NotEqual(t, first.Code, second.Code)
}

func TestRepository_GetByCode(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create(3)
	require.NoError(t, err)

	registration, err := repo.GetByCode(created.Code)

	require.NoError(t, err)
	require.NotNil(t, registration)
	assert.Equal(t, created.ID, registration.ID)
	assert.Equal(t, uint(3), registration.UserID)
}

func TestRepository_GetByCode_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	registration, err := repo.GetByCode(123456789)

	require.NoError(t, err)
	assert.Nil(t, registration)
}

func TestRepository_Confirm(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Create(3)
	require.NoError(t, err)

	err = repo.Confirm(created.Code)
	require.NoError(t, err)

	// The code is consumed; a second confirmation fails.
	err = repo.Confirm(created.Code)
	assert.ErrorIs(t, err, ErrCodeNotFound)

	registration, err := repo.GetByCode(created.Code)
	require.NoError(t, err)
	assert.Nil(t, registration)
}

func TestRepository_DeleteExpired(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	stale, err := repo.Create(1)
	require.NoError(t, err)
	fresh, err := repo.Create(2)
	require.NoError(t, err)

	// Backdate the first registration past the retention window.
	err = db.Model(&entities.Registration{}).
		Where("id = ?", stale.ID).
		Update("created_at", time.Now().Add(-100*time.Hour)).Error
	require.NoError(t, err)

	deleted, err := repo.DeleteExpired(72 * time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	gone, err := repo.GetByCode(stale.Code)
	require.NoError(t, err)
	assert.Nil(t, gone)

	kept, err := repo.GetByCode(fresh.Code)
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
