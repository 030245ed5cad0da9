package entities

// Film is a single catalog entry.
//
// MeanScore and VoteCount are derived from the film_score table on every
// read and are never persisted on the film row itself.
type Film struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Director    string `gorm:"size:255;not null" json:"director"`
	Actors      string `gorm:"type:text;not null" json:"actors"`
	Genre       string `gorm:"size:255;not null" json:"genre"`
	Description string `gorm:"type:text;not null" json:"description"`

	MeanScore float64 `gorm:"-" json:"mean_score"`
	VoteCount int64   `gorm:"-" json:"vote_count"`
}

func (Film) TableName() string { return "film" }

// FilmStats holds the rating aggregate for one film.
type FilmStats struct {
	MeanScore float64 `json:"mean_score"`
	VoteCount int64   `json:"vote_count"`
}
