package services

import "errors"

var (
	// ErrEmptyCart rejects order placement against a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUnknownService rejects a service request outside the fixed set.
	ErrUnknownService = errors.New("unknown service kind")

	// ErrNotFound surfaces mutations against an id absent from a ledger.
	ErrNotFound = errors.New("not found")

	// ErrIllegalTransition rejects a status change the state machine forbids.
	ErrIllegalTransition = errors.New("illegal status transition")

	ErrBadCreds = errors.New("invalid username or password")
)
