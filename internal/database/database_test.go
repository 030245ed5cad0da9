package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badcoders/filmbase/internal/database/ratings"
	"github.com/badcoders/filmbase/internal/entities"
)

func setupDatabase(t *testing.T) (*Database, func()) {
	dbPath := "./test_facade_" + t.Name() + ".sdb"

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")
	}

	return db, cleanup
}

func TestNewDatabase_CreatesFile(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	_, err := os.Stat("./test_facade_" + t.Name() + ".sdb")
	assert.NoError(t, err, "database file should be created")

	// Rerunning the migration against an existing file must be safe.
	require.NoError(t, db.Close())
	again, err := NewDatabase("./test_facade_" + t.Name() + ".sdb")
	require.NoError(t, err)
	require.NoError(t, again.Close())
}

func TestDatabase_AccountFlow(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	id, err := db.AddUser("alice", "secret-secret", false, "a@x.com")
	require.NoError(t, err)

	account, err := db.GetUser("alice", "secret-secret")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, id, account.ID)
	assert.False(t, account.IsAdmin)

	wrong, err := db.GetUser("alice", "wrong")
	require.NoError(t, err)
	assert.Nil(t, wrong)
}

func TestDatabase_RatingFlow(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	userID, err := db.AddUser("bob", "hunter2hunter2", false, "b@x.com")
	require.NoError(t, err)
	account, err := db.GetUserByID(userID)
	require.NoError(t, err)
	require.NotNil(t, account)

	filmID, err := db.AddFilm(&entities.Film{
		Name: "Copper Alley", Director: "Maren Holt", Actors: "Tomas Keel",
		Genre: "Noir", Description: "A debt collector changes his ways.",
	})
	require.NoError(t, err)

	rated, err := db.CanRateFilm(account, filmID)
	require.NoError(t, err)
	assert.False(t, rated)

	require.NoError(t, db.RateFilm(account, filmID, 4))

	rated, err = db.CanRateFilm(account, filmID)
	require.NoError(t, err)
	assert.True(t, rated)

	err = db.RateFilm(account, filmID, 5)
	assert.ErrorIs(t, err, ratings.ErrAlreadyRated)

	stats, err := db.GetFilmStats(filmID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, stats.MeanScore)
	assert.Equal(t, int64(1), stats.VoteCount)

	film, err := db.GetFilm(filmID)
	require.NoError(t, err)
	require.NotNil(t, film)
	assert.Equal(t, 4.0, film.MeanScore)
	assert.Equal(t, int64(1), film.VoteCount)
}

func TestDatabase_CommentFlow(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	userID, err := db.AddUser("carol", "swordfish-supreme", false, "c@x.com")
	require.NoError(t, err)
	account, err := db.GetUserByID(userID)
	require.NoError(t, err)

	filmID, err := db.AddFilm(&entities.Film{
		Name: "n", Director: "d", Actors: "a", Genre: "g", Description: "x",
	})
	require.NoError(t, err)

	commentID, err := db.AddComment(account, filmID, "The last reel broke me.")
	require.NoError(t, err)

	list, err := db.GetFilmComments(filmID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, commentID, list[0].ID)

	require.NoError(t, db.DeleteComment(commentID))

	comment, err := db.GetComment(commentID)
	require.NoError(t, err)
	assert.Nil(t, comment)
}

func TestDatabase_RecommendationsAreReadOnlyRows(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	userID, err := db.AddUser("dave", "ten-green-bottles", false, "d@x.com")
	require.NoError(t, err)
	account, err := db.GetUserByID(userID)
	require.NoError(t, err)

	list, err := db.GetRecommendations(account)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Rows arrive from an external batch job; simulate it writing directly.
	require.NoError(t, db.DB.Create(&entities.Recommendation{UserID: userID, FilmID: 9, Score: 4.2}).Error)

	list, err = db.GetRecommendations(account)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(9), list[0].FilmID)
}

func TestDatabase_RegistrationFlow(t *testing.T) {
	db, cleanup := setupDatabase(t)
	defer cleanup()

	userID, err := db.AddUser("erin", "long-enough-pass", false, "e@x.com")
	require.NoError(t, err)

	registration, err := db.CreateRegistration(userID)
	require.NoError(t, err)
	require.NotNil(t, registration)

	found, err := db.GetRegistrationByCode(registration.Code)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, userID, found.UserID)

	require.NoError(t, db.ConfirmRegistration(registration.Code))

	found, err = db.GetRegistrationByCode(registration.Code)
	require.NoError(t, err)
	assert.Nil(t, found)
}
