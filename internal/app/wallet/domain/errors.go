package domain

import "errors"

var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrEmptyAddress      = errors.New("address must not be empty")
)
