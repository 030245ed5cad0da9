// Package storage contains helpers shared by everything that touches the
// embedded SQLite file: database file naming, DSN construction and driver
// error classification.
package storage

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// Extension is the fixed suffix appended to the configured base name when
// resolving the on-disk database file.
const Extension = ".sdb"

const busyTimeoutMillis = 5000

// FilePath resolves a configured base name to the database file path.
func FilePath(baseName string) string {
	return baseName + Extension
}

// DSN builds the connection string for a database file. WAL mode and a
// busy timeout make concurrent writers queue on the file lock instead of
// failing immediately.
func DSN(path string) string {
	return fmt.Sprintf("%s?_journal=WAL&_busy_timeout=%d", path, busyTimeoutMillis)
}

// IsBusy reports whether err is a transient lock/busy failure from the
// engine. Operations failing with a busy error may be retried.
func IsBusy(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// IsUniqueViolation reports whether err is a unique-constraint failure.
func IsUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}
