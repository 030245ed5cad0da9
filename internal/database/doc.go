// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go        # Connection setup, ordered migrations, facade
//	├── accounts/          # Account creation and credential lookups
//	├── films/             # Film catalog plus derived rating stats
//	├── comments/          # Comments attached to films
//	├── ratings/           # Film scores and precomputed recommendations
//	└── registrations/     # Email-verification codes
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./filmbase.sdb")
//
//	// Create domain-specific repositories
//	filmsRepo := films.NewRepository(db.DB)
//	ratingsRepo := ratings.NewRepository(db.DB)
//
//	// Use repositories
//	film, err := filmsRepo.GetFilm(123)
//	ok, err := ratingsRepo.CanRateFilm(userID, filmID)
//
// # Facade
//
// The Database struct in database.go composes all repositories and keeps
// one delegation method per operation, so callers that want a single entry
// point do not need to know the sub-package layout.
//
// # Conventions
//
//   - Single-row lookups return (nil, nil) when no row matches; callers
//     check for absence instead of matching a not-found error.
//   - Storage failures are returned unmodified; nothing in this layer
//     retries. Transient lock/busy failures are detectable through
//     storage.IsBusy so callers can retry.
//   - Invariants that matter (one score per user per film, unique logins,
//     unique registration codes) live in the schema as unique indexes and
//     surface as sentinel errors.
package database
