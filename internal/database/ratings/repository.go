// Package ratings provides database operations for film scores and the
// precomputed recommendation rows.
package ratings

import (
	"errors"

	"gorm.io/gorm"

	"github.com/badcoders/filmbase/internal/entities"
	"github.com/badcoders/filmbase/internal/storage"
)

// ErrAlreadyRated is returned when a user tries to score the same film a
// second time. The film_score table enforces one score per (film, user)
// pair with a composite unique index, so concurrent attempts cannot slip
// past the check: exactly one insert wins.
var ErrAlreadyRated = errors.New("film already rated by this user")

// Repository handles all rating and recommendation database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new ratings repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CanRateFilm reports whether the user already has a score row for the
// film: false before any RateFilm call, true after. The name is historical;
// it is an advisory pre-check only, the unique index is what actually
// enforces the invariant.
func (r *Repository) CanRateFilm(userID, filmID uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.FilmScore{}).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// RateFilm records the user's score for a film. A duplicate score for the
// same (film, user) pair fails with ErrAlreadyRated.
func (r *Repository) RateFilm(userID, filmID uint, score int) error {
	record := entities.FilmScore{
		FilmID: filmID,
		UserID: userID,
		Score:  score,
	}
	if err := r.db.Create(&record).Error; err != nil {
		if storage.IsUniqueViolation(err) {
			return ErrAlreadyRated
		}
		return err
	}
	return nil
}

// GetRecommendations returns the precomputed recommendation rows for a
// user, best score first. This layer never writes them.
func (r *Repository) GetRecommendations(userID uint) ([]entities.Recommendation, error) {
	var list []entities.Recommendation
	err := r.db.Where("user_id = ?", userID).Order("score DESC").Find(&list).Error
	return list, err
}
