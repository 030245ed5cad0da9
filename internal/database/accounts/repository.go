// Package accounts provides database operations for account management.
//
// # Usage
//
//	repo := accounts.NewRepository(db)
//	account, err := repo.GetUser(login, password)
package accounts

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/badcoders/filmbase/internal/auth"
	"github.com/badcoders/filmbase/internal/entities"
	"github.com/badcoders/filmbase/internal/storage"
)

// ErrLoginTaken is returned when an account with the same login already
// exists. The login column carries a unique index.
var ErrLoginTaken = errors.New("login already taken")

// Repository handles all account database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new accounts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddUser inserts a new account and returns its generated id. The password
// is bcrypt-hashed before it reaches the database.
func (r *Repository) AddUser(login, password string, isAdmin bool, email string) (uint, error) {
	hash, err := auth.HashPassword(password, auth.DefaultBcryptCost)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	account := entities.Account{
		Login:        login,
		PasswordHash: hash,
		Email:        email,
		IsAdmin:      isAdmin,
	}
	if err := r.db.Create(&account).Error; err != nil {
		if storage.IsUniqueViolation(err) {
			return 0, ErrLoginTaken
		}
		return 0, err
	}
	return account.ID, nil
}

// GetUser looks up an account by credentials. A missing login or a wrong
// password both yield a nil account, not an error.
func (r *Repository) GetUser(login, password string) (*entities.Account, error) {
	account, err := r.GetUserByLogin(login)
	if err != nil || account == nil {
		return nil, err
	}
	if err := auth.CheckPassword(password, account.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, nil
		}
		return nil, err
	}
	return account, nil
}

// GetUserByLogin retrieves an account by login, nil when absent.
func (r *Repository) GetUserByLogin(login string) (*entities.Account, error) {
	var account entities.Account
	err := r.db.Where("login = ?", login).First(&account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// GetUserByID retrieves an account by primary key, nil when absent.
func (r *Repository) GetUserByID(id uint) (*entities.Account, error) {
	var account entities.Account
	err := r.db.First(&account, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}
