package models

import (
	"fmt"
	"math/rand"
	"time"
)

// Document number prefixes, one per record family.
const (
	PrefixWorkOrder  = "WO"
	PrefixDispatch   = "DS"
	PrefixReport     = "RP"
	PrefixOutgassing = "OG"
	PrefixAoi        = "AOI"
	PrefixMovement   = "MV"
)

// NewDocumentNumber builds a human-readable document number like
// "WO-20250901-042". The random suffix only has to avoid collisions within
// a day per prefix; the unique index on the column is the real guard.
func NewDocumentNumber(prefix string) string {
	return fmt.Sprintf("%s-%s-%03d", prefix, time.Now().Format("20060102"), rand.Intn(1000))
}

// NewStockTakeNumber builds a session number like "ST20250901153000".
// Second precision keeps concurrent sessions at different locations apart.
func NewStockTakeNumber() string {
	return "ST" + time.Now().Format("20060102150405")
}
