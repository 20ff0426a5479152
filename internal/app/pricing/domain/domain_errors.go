package domain

import "errors"

// Domain errors as sentinel values
var (
	// Product errors
	ErrProductNotFound   = errors.New("product not found")
	ErrEmptyName         = errors.New("product name cannot be empty")
	ErrInvalidPrice      = errors.New("product price must be positive")
	ErrInvalidStockCount = errors.New("stock count cannot be negative")

	// Pricing cycle errors
	ErrBatchInFlight = errors.New("a pricing batch is already in flight")
)
