package cart

import "github.com/pkg/errors"

// Aggregator contract violations.
var (
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidItem     = errors.New("invalid cart item")
)

// Business rules checked before the aggregator is called.
var (
	ErrNotFound             = errors.New("item not found")
	ErrOutOfStock           = errors.New("item is out of stock")
	ErrPrescriptionRequired = errors.New("item requires a prescription")
	ErrQuantityLimit        = errors.New("quantity exceeds the allowed limit")
)

// ErrNoSession is returned when the caller carries no session id.
var ErrNoSession = errors.New("missing session id")
