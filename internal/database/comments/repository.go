// Package comments provides database operations for film comments.
package comments

import (
	"errors"

	"gorm.io/gorm"

	"github.com/badcoders/filmbase/internal/entities"
)

// Repository handles all comment database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new comments repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddComment attaches a comment to a film and returns its generated id.
func (r *Repository) AddComment(filmID, userID uint, text string) (uint, error) {
	comment := entities.Comment{
		FilmID: filmID,
		UserID: userID,
		Text:   text,
	}
	if err := r.db.Create(&comment).Error; err != nil {
		return 0, err
	}
	return comment.ID, nil
}

// GetComment retrieves a comment by id, nil when absent.
func (r *Repository) GetComment(id uint) (*entities.Comment, error) {
	var comment entities.Comment
	err := r.db.First(&comment, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// GetFilmComments returns all comments for a film in insertion order.
func (r *Repository) GetFilmComments(filmID uint) ([]entities.Comment, error) {
	var list []entities.Comment
	err := r.db.Where("film_id = ?", filmID).Order("id ASC").Find(&list).Error
	return list, err
}

// DeleteComment removes a comment by id. Deleting a missing id is a no-op.
func (r *Repository) DeleteComment(id uint) error {
	return r.db.Delete(&entities.Comment{}, id).Error
}
