package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/badcoders/filmbase/internal/database/accounts"
	"github.com/badcoders/filmbase/internal/database/comments"
	"github.com/badcoders/filmbase/internal/database/films"
	"github.com/badcoders/filmbase/internal/database/ratings"
	"github.com/badcoders/filmbase/internal/database/registrations"
	"github.com/badcoders/filmbase/internal/entities"
	"github.com/badcoders/filmbase/internal/storage"
)

// models lists every table in creation order. Migration stops at the first
// failure and surfaces it; each step is create-if-absent, so rerunning on
// every start is safe.
var models = []interface{}{
	&entities.Comment{},
	&entities.Film{},
	&entities.FilmScore{},
	&entities.Recommendation{},
	&entities.Registration{},
	&entities.Account{},
}

// Database is the single access point to the film-rating data layer. It
// composes the per-domain repositories behind one API and owns the shared
// gorm handle.
type Database struct {
	DB *gorm.DB

	accounts      *accounts.Repository
	films         *films.Repository
	comments      *comments.Repository
	ratings       *ratings.Repository
	registrations *registrations.Repository
}

// NewDatabase opens (creating if absent) the SQLite file at dbPath and
// ensures the schema exists.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(storage.DSN(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return nil, fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{
		DB:            db,
		accounts:      accounts.NewRepository(db),
		films:         films.NewRepository(db),
		comments:      comments.NewRepository(db),
		ratings:       ratings.NewRepository(db),
		registrations: registrations.NewRepository(db),
	}, nil
}

// NewDatabaseFromName resolves a configured base name ("filmbase" becomes
// "filmbase.sdb") and opens it.
func NewDatabaseFromName(baseName string) (*Database, error) {
	return NewDatabase(storage.FilePath(baseName))
}

// Close releases the underlying connection.
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Accounts

func (d *Database) AddUser(login, password string, isAdmin bool, email string) (uint, error) {
	return d.accounts.AddUser(login, password, isAdmin, email)
}

func (d *Database) GetUser(login, password string) (*entities.Account, error) {
	return d.accounts.GetUser(login, password)
}

func (d *Database) GetUserByLogin(login string) (*entities.Account, error) {
	return d.accounts.GetUserByLogin(login)
}

func (d *Database) GetUserByID(id uint) (*entities.Account, error) {
	return d.accounts.GetUserByID(id)
}

// Films

func (d *Database) AddFilm(film *entities.Film) (uint, error) {
	return d.films.AddFilm(film)
}

func (d *Database) GetFilm(id uint) (*entities.Film, error) {
	return d.films.GetFilm(id)
}

func (d *Database) GetFilms() ([]entities.Film, error) {
	return d.films.GetFilms()
}

func (d *Database) GetFilmStats(id uint) (entities.FilmStats, error) {
	return d.films.GetFilmStats(id)
}

// Ratings and recommendations

func (d *Database) CanRateFilm(account *entities.Account, filmID uint) (bool, error) {
	return d.ratings.CanRateFilm(account.ID, filmID)
}

func (d *Database) RateFilm(account *entities.Account, filmID uint, score int) error {
	return d.ratings.RateFilm(account.ID, filmID, score)
}

func (d *Database) GetRecommendations(account *entities.Account) ([]entities.Recommendation, error) {
	return d.ratings.GetRecommendations(account.ID)
}

// Comments

func (d *Database) AddComment(account *entities.Account, filmID uint, text string) (uint, error) {
	return d.comments.AddComment(filmID, account.ID, text)
}

func (d *Database) GetComment(id uint) (*entities.Comment, error) {
	return d.comments.GetComment(id)
}

func (d *Database) GetFilmComments(filmID uint) ([]entities.Comment, error) {
	return d.comments.GetFilmComments(filmID)
}

func (d *Database) DeleteComment(id uint) error {
	return d.comments.DeleteComment(id)
}

// Registrations

func (d *Database) CreateRegistration(userID uint) (*entities.Registration, error) {
	return d.registrations.Create(userID)
}

func (d *Database) GetRegistrationByCode(code int64) (*entities.Registration, error) {
	return d.registrations.GetByCode(code)
}

func (d *Database) ConfirmRegistration(code int64) error {
	return d.registrations.Confirm(code)
}

func (d *Database) DeleteExpiredRegistrations(retention time.Duration) (int64, error) {
	return d.registrations.DeleteExpired(retention)
}

// Registrations exposes the registrations repository for callers that need
// the narrower interface (e.g. the cleanup task).
func (d *Database) Registrations() *registrations.Repository {
	return d.registrations
}
