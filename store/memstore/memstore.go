// Package memstore carries in-memory implementations of the service
// store interfaces for tests. Records are copied in and out, versions
// are checked and bumped exactly like the database store. Atomically
// does not roll back; tests that exercise failure paths assert on the
// error, not on partial state.
package memstore

import "sync"

// locker is the shared mutex embedded by both stores.
type locker struct {
	mu sync.Mutex
}
