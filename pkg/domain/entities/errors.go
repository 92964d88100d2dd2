package entities

import "errors"

// Error taxonomy shared across the pipeline. Stock shortfalls degrade
// fulfillment outcomes instead of surfacing ErrInsufficientStock to
// callers; the rest are reported synchronously.
var (
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownRole       = errors.New("unknown role")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrDecode            = errors.New("barcode decode failed")
	ErrNotFound          = errors.New("product not found")
)
