package mes

import (
	"github.com/rs/zerolog"
)

// Service owns the work-order, dispatch and report ledgers plus the two
// quality sub-flows. All mutations go through the store's optimistic
// writes; the report cascade additionally runs inside one transaction.
type Service struct {
	store Store
	log   zerolog.Logger
}

// NewService wires a Service to its store.
func NewService(store Store, log zerolog.Logger) *Service {
	return &Service{store: store, log: log.With().Str("component", "mes").Logger()}
}
