package game

import "errors"

// Command errors. All are recoverable: handlers return them with context and
// the presentation layer redisplays state and reprompts.
var (
	// ErrInvalidIndex reports an order index outside the referenced
	// collection.
	ErrInvalidIndex = errors.New("invalid order index")

	// ErrInvalidState reports an action attempted on an order that is not
	// in the state the action requires.
	ErrInvalidState = errors.New("order is not in the required state")

	// ErrInsufficientResources reports a failed all-or-nothing resource
	// check. No balance is touched when it is returned.
	ErrInsufficientResources = errors.New("not enough resources")

	// ErrCapacityExceeded reports that the active-order cap is already
	// reached.
	ErrCapacityExceeded = errors.New("active order capacity reached")
)
