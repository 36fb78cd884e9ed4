package repository

import "errors"

// Adapters translate their store's unique-constraint violations into these.
var (
	ErrDuplicateEmail = errors.New("duplicate user email")
	ErrDuplicateSlot  = errors.New("duplicate appointment slot")
)
