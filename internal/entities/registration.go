package entities

import "time"

// Registration is a pending email-verification code for a freshly created
// account. The code is unique across all pending registrations and the row
// is deleted on confirmation or by the expiry cleanup task.
type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Code      int64     `gorm:"uniqueIndex;not null" json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

func (Registration) TableName() string { return "registration" }
