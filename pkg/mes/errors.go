package mes

import "errors"

// Sentinel errors surfaced to callers. None of them is retried except
// ErrVersionConflict, which the store retries internally before giving up.
var (
	ErrNotFound            = errors.New("record not found")
	ErrValidation          = errors.New("missing or invalid field")
	ErrReworkLimitExceeded = errors.New("work order already reworked once; unit must be scrapped")
	ErrVersionConflict     = errors.New("record changed since read")
)
