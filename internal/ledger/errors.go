package ledger

import "errors"

// Sentinel errors returned by ledger operations. Callers match them with
// errors.Is to decide how to present the failure.
var (
	ErrInvalidDate         = errors.New("invalid date")
	ErrUnknownCategory     = errors.New("unknown category")
	ErrRecordNotFound      = errors.New("record not found")
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrDuplicateCategory   = errors.New("category already exists")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryInUse       = errors.New("category is in use")
	ErrLastCategory        = errors.New("cannot delete the last category")
)
