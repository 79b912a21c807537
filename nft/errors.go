package nft

import "errors"

var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrMetadataNotSet      = errors.New("metadata not set")
	ErrSeriesExhausted     = errors.New("series exhausted")
	ErrInsufficientPayment = errors.New("insufficient payment")

	ErrInvalidSeries   = errors.New("invalid series")
	ErrInvalidIdentity = errors.New("invalid identity")
	ErrInvalidPayment  = errors.New("invalid payment")
	ErrItemNotFound    = errors.New("item not found")
	ErrNotOwner        = errors.New("not the item owner")
)
