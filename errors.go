package moneytracker

import "errors"

var (
	// ErrInvalidAmount is returned when an amount is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrStorageUnavailable is recorded by a Store whose storage failed its probe.
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrEmptyTitle         = errors.New("empty title")
	ErrEmptyReflection    = errors.New("empty reflection")
	ErrEmptyNote          = errors.New("empty note")
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrInvalidKind        = errors.New("invalid transaction kind")
	ErrInvalidMood        = errors.New("invalid mood")
	// ErrNotFound is returned when no record matches an id.
	ErrNotFound = errors.New("not found")
)
