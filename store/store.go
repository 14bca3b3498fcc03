// Package store is the PostgreSQL persistence layer. It carries one
// narrow store type per service package so each service sees only the
// tables it owns. Optimistic writes match on the row's version column
// and bump it; transactional closures retry a bounded number of times
// on version conflicts.
package store

import (
	"errors"

	"gorm.io/gorm"
)

// versionConflictRetries bounds how often Atomically re-runs a closure
// that lost an optimistic write race.
const versionConflictRetries = 3

func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
