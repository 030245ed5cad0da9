package auth

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/badcoders/filmbase/internal/entities"
)

// Validation patterns
var (
	loginPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrLoginRequired      = errors.New("login is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrLoginInvalid       = errors.New("login must be 3-64 characters, alphanumeric and underscore/hyphen only")
	ErrEmailInvalid       = errors.New("invalid email format")
)

// AccountStore defines the account operations the service needs.
type AccountStore interface {
	AddUser(login, password string, isAdmin bool, email string) (uint, error)
	GetUser(login, password string) (*entities.Account, error)
	GetUserByLogin(login string) (*entities.Account, error)
	GetUserByID(id uint) (*entities.Account, error)
}

// RegistrationStore defines the verification-code operations the service needs.
type RegistrationStore interface {
	Create(userID uint) (*entities.Registration, error)
	Confirm(code int64) error
}

// Service handles registration and credential verification. It sits behind
// the (external) HTTP layer that extracts the login/password pair from the
// request headers.
type Service struct {
	accounts      AccountStore
	registrations RegistrationStore
}

// NewService creates a new authentication service.
func NewService(accounts AccountStore, registrations RegistrationStore) *Service {
	return &Service{
		accounts:      accounts,
		registrations: registrations,
	}
}

// Register validates the input, creates the account and issues an
// email-verification code for it.
func (s *Service) Register(login, email, password string) (*entities.Account, *entities.Registration, error) {
	if login == "" {
		return nil, nil, ErrLoginRequired
	}
	if email == "" {
		return nil, nil, ErrEmailRequired
	}
	if password == "" {
		return nil, nil, ErrPasswordRequired
	}

	if !loginPattern.MatchString(login) {
		return nil, nil, ErrLoginInvalid
	}

	// RFC 5321 caps the address at 254 characters
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return nil, nil, ErrEmailInvalid
	}

	existing, err := s.accounts.GetUserByLogin(login)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, nil, ErrUserExists
	}

	id, err := s.accounts.AddUser(login, password, false, email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	account, err := s.accounts.GetUserByID(id)
	if err != nil {
		return nil, nil, err
	}

	registration, err := s.registrations.Create(id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create registration code: %w", err)
	}

	return account, registration, nil
}

// Authenticate validates credentials and returns the account.
func (s *Service) Authenticate(login, password string) (*entities.Account, error) {
	account, err := s.accounts.GetUser(login, password)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// ConfirmRegistration consumes a verification code.
func (s *Service) ConfirmRegistration(code int64) error {
	return s.registrations.Confirm(code)
}
