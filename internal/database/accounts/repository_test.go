package accounts

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/badcoders/filmbase/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_accounts_" + t.Name() + ".sdb"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.Account{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func TestRepository_AddUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := repo.AddUser("alice", "secret-secret", false, "a@x.com")

	require.NoError(t, err)
	assert.NotZero(t, id)
}

func TestRepository_AddUser_StoresHashNotPlaintext(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := repo.AddUser("alice", "secret-secret", false, "a@x.com")
	require.NoError(t, err)

	account, err := repo.GetUserByID(id)
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.NotEqual(t, "secret-secret", account.PasswordHash)
	assert.True(t, strings.HasPrefix(account.PasswordHash, "$2"), "expected a bcrypt hash")
}

func TestRepository_AddUser_DuplicateLogin(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.AddUser("alice", "secret-secret", false, "a@x.com")
	require.NoError(t, err)

	_, err = repo.AddUser("alice", "other-password", false, "b@x.com")
	assert.ErrorIs(t, err, ErrLoginTaken)
}

func TestRepository_GetUser(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := repo.AddUser("alice", "secret-secret", false, "a@x.com")
	require.NoError(t, err)

	account, err := repo.GetUser("alice", "secret-secret")

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, "alice", account.Login)
	assert.Equal(t, "a@x.com", account.Email)
	assert.False(t, account.IsAdmin)
}

func TestRepository_GetUser_WrongPassword(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.AddUser("alice", "secret-secret", false, "a@x.com")
	require.NoError(t, err)

	account, err := repo.GetUser("alice", "wrong-password")

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestRepository_GetUser_UnknownLogin(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	account, err := repo.GetUser("nobody", "whatever-pass")

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestRepository_GetUserByID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	id, err := repo.AddUser("admin", "admin-password", true, "root@x.com")
	require.NoError(t, err)

	account, err := repo.GetUserByID(id)

	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, "admin", account.Login)
	assert.True(t, account.IsAdmin)
	assert.False(t, account.DateCreated.IsZero())
}

func TestRepository_GetUserByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	account, err := repo.GetUserByID(999)

	require.NoError(t, err)
	assert.Nil(t, account)
}

func TestRepository_GetUserByLogin_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	account, err := repo.GetUserByLogin("ghost")

	require.NoError(t, err)
	assert.Nil(t, account)
}
