// internal/services/errors.go
package services

import "errors"

// Failure kinds surfaced at the component boundary. Handlers map these onto
// HTTP statuses; anything else is treated as an internal storage failure.
var (
	ErrUserNotFound  = errors.New("User not found")
	ErrItemNotFound  = errors.New("Item not found")
	ErrOrderNotFound = errors.New("order not found")

	ErrInvalidPassword = errors.New("Invalid password")

	ErrEmailTaken         = errors.New("User already exists, please choose a different email address")
	ErrItemAlreadyInOrder = errors.New("item already exists in order")
	ErrItemAlreadyAdded   = errors.New("item already added to user")

	ErrMissingFields = errors.New("Missing data in the request body")
)
