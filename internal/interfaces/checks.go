// Package interfaces contains compile-time interface implementation
// checks. These ensure that concrete types satisfy their interfaces at
// compile time, catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...
package interfaces

import (
	"github.com/badcoders/filmbase/internal/auth"
	"github.com/badcoders/filmbase/internal/database/accounts"
	"github.com/badcoders/filmbase/internal/database/registrations"
	"github.com/badcoders/filmbase/internal/tasks"
)

// AccountStore implementations
var _ auth.AccountStore = (*accounts.Repository)(nil)

// RegistrationStore implementations
var _ auth.RegistrationStore = (*registrations.Repository)(nil)

// RegistrationCleaner implementations
var _ tasks.RegistrationCleaner = (*registrations.Repository)(nil)
