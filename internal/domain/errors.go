package domain

import "errors"

var (
	// ErrUnknownEventType is returned for an event whose type is not one of the five known kinds
	ErrUnknownEventType = errors.New("unknown event type")

	// ErrInvalidAmount is returned when amount text is not a plain decimal literal
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingAmount is returned for a deposit or withdrawal without an amount
	ErrMissingAmount = errors.New("deposit and withdrawal events require an amount")

	// ErrDuplicateTransaction is returned when a deposit reuses a transaction id
	ErrDuplicateTransaction = errors.New("duplicate transaction id")

	// ErrTransactionNotFound is returned when a deposit record does not exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrOrphanDeposit is returned when a stored deposit references a client without an account
	ErrOrphanDeposit = errors.New("deposit references a missing account")
)
