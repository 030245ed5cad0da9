package entities

import "time"

// Account is a registered user of the rating service.
//
// Passwords are stored as bcrypt hashes only; the plaintext never reaches
// the database layer. Login carries a unique index so that credential
// lookups identify at most one row.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Login        string    `gorm:"uniqueIndex;size:100;not null" json:"login"`
	PasswordHash string    `gorm:"size:60;not null" json:"-"`
	Email        string    `gorm:"size:255;not null" json:"email"`
	DateCreated  time.Time `gorm:"autoCreateTime" json:"date_created"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
}

// TableName keeps the historical table name used by earlier deployments.
func (Account) TableName() string { return "user" }
