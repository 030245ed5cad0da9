package entities

// Comment is a user's remark attached to a film. References to the user
// and film rows are weak; no ownership check happens at this layer.
type Comment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	UserID uint   `gorm:"index;not null" json:"user_id"`
	FilmID uint   `gorm:"index;not null" json:"film_id"`
	Text   string `gorm:"type:text;not null" json:"text"`
}

func (Comment) TableName() string { return "comment" }
