// Package films provides database operations for the film catalog.
//
// Every read enriches the film with its rating aggregate (mean score and
// vote count). The aggregate is computed from the film_score table at read
// time and never cached, so it always reflects the current ratings.
package films

import (
	"errors"

	"gorm.io/gorm"

	"github.com/badcoders/filmbase/internal/entities"
)

// Repository handles all film database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new films repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddFilm inserts a new catalog entry and returns its generated id. Any
// derived stats present on the input are ignored; stats are never stored.
func (r *Repository) AddFilm(film *entities.Film) (uint, error) {
	record := entities.Film{
		Name:        film.Name,
		Director:    film.Director,
		Actors:      film.Actors,
		Genre:       film.Genre,
		Description: film.Description,
	}
	if err := r.db.Create(&record).Error; err != nil {
		return 0, err
	}
	return record.ID, nil
}

// GetFilm retrieves a single film with its stats, nil when absent.
func (r *Repository) GetFilm(id uint) (*entities.Film, error) {
	var film entities.Film
	err := r.db.First(&film, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.enrich(&film); err != nil {
		return nil, err
	}
	return &film, nil
}

// GetFilms returns the whole catalog ordered by id, each film enriched
// with its stats. One aggregate query runs per film; fine for the small
// catalogs this serves.
func (r *Repository) GetFilms() ([]entities.Film, error) {
	var catalog []entities.Film
	if err := r.db.Order("id ASC").Find(&catalog).Error; err != nil {
		return nil, err
	}
	for i := range catalog {
		if err := r.enrich(&catalog[i]); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// GetFilmStats computes the rating aggregate for a film. A film with no
// ratings yields a zero mean and a zero vote count; the engine NULL from
// AVG never leaks to the caller.
func (r *Repository) GetFilmStats(id uint) (entities.FilmStats, error) {
	var stats entities.FilmStats
	err := r.db.Model(&entities.FilmScore{}).
		Select("COALESCE(AVG(score), 0) AS mean_score, COUNT(*) AS vote_count").
		Where("film_id = ?", id).
		Scan(&stats).Error
	if err != nil {
		return entities.FilmStats{}, err
	}
	return stats, nil
}

func (r *Repository) enrich(film *entities.Film) error {
	stats, err := r.GetFilmStats(film.ID)
	if err != nil {
		return err
	}
	film.MeanScore = stats.MeanScore
	film.VoteCount = stats.VoteCount
	return nil
}
