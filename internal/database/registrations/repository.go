// Package registrations provides database operations for email-verification
// codes. A row is created alongside a new account, consumed by Confirm and
// reaped by the periodic cleanup task once expired.
package registrations

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/badcoders/filmbase/internal/entities"
	"github.com/badcoders/filmbase/internal/storage"
)

// ErrCodeNotFound is returned by Confirm when the code does not exist
// (never issued, already consumed, or reaped after expiry).
var ErrCodeNotFound = errors.New("registration code not found")

const maxCodeAttempts = 5

// Repository handles all registration database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new registrations repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create issues a fresh verification code for a user. Codes are random
// 63-bit integers; on the off chance of a collision with an existing row
// the insert is retried with a new code.
func (r *Repository) Create(userID uint) (*entities.Registration, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateCode()
		if err != nil {
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}

		registration := entities.Registration{
			UserID: userID,
			Code:   code,
		}
		err = r.db.Create(&registration).Error
		if err == nil {
			return &registration, nil
		}
		if !storage.IsUniqueViolation(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("failed to allocate a unique code after %d attempts", maxCodeAttempts)
}

// GetByCode retrieves a pending registration by its code, nil when absent.
func (r *Repository) GetByCode(code int64) (*entities.Registration, error) {
	var registration entities.Registration
	err := r.db.Where("code = ?", code).First(&registration).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// Confirm consumes a verification code, deleting its row.
func (r *Repository) Confirm(code int64) error {
	result := r.db.Where("code = ?", code).Delete(&entities.Registration{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCodeNotFound
	}
	return nil
}

// DeleteExpired removes registrations older than the retention period and
// returns how many rows were reaped.
func (r *Repository) DeleteExpired(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := r.db.Where("created_at < ?", cutoff).Delete(&entities.Registration{})
	return result.RowsAffected, result.Error
}

func generateCode() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	// Mask the sign bit so codes stay positive.
	return int64(binary.BigEndian.Uint64(buf[:]) &^ (1 << 63)), nil
}
