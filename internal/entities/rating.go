package entities

// FilmScore is one user's rating of one film. The composite unique index
// guarantees at most one score row per (film, user) pair; a second insert
// fails at the engine level instead of silently duplicating the vote.
type FilmScore struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	FilmID uint `gorm:"not null;uniqueIndex:idx_film_score_film_user" json:"film_id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_film_score_film_user" json:"user_id"`
	Score  int  `gorm:"not null" json:"score"`
}

func (FilmScore) TableName() string { return "film_score" }

// Recommendation is a precomputed suggestion row for a user. This layer
// only reads them; population happens in an external batch job.
type Recommendation struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	UserID uint    `gorm:"index;not null" json:"user_id"`
	FilmID uint    `gorm:"not null" json:"film_id"`
	Score  float64 `gorm:"not null" json:"score"`
}

func (Recommendation) TableName() string { return "recommendation" }
