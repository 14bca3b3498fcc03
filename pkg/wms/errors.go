package wms

import "errors"

// Sentinel errors surfaced to callers.
var (
	ErrNotFound        = errors.New("inventory record not found")
	ErrValidation      = errors.New("missing or invalid field")
	ErrVersionConflict = errors.New("record changed since read")
)
