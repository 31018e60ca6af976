package domain

import (
	"fmt"
	"strings"
)

// EventType represents the kind of a transaction event
type EventType string

const (
	EventTypeDeposit    EventType = "deposit"
	EventTypeWithdrawal EventType = "withdrawal"
	EventTypeDispute    EventType = "dispute"
	EventTypeResolve    EventType = "resolve"
	EventTypeChargeback EventType = "chargeback"
)

// ParseEventType converts a textual type into an EventType (case-insensitive)
func ParseEventType(s string) (EventType, error) {
	t := EventType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case EventTypeDeposit, EventTypeWithdrawal, EventTypeDispute, EventTypeResolve, EventTypeChargeback:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
}

// RequiresAmount reports whether events of this type carry an amount
func (t EventType) RequiresAmount() bool {
	return t == EventTypeDeposit || t == EventTypeWithdrawal
}

// Event represents a single typed input event.
// Amount is only meaningful for deposits and withdrawals and is ignored otherwise.
type Event struct {
	Type   EventType
	Client ClientID
	Tx     TransactionID
	Amount *Amount // nil when absent
}

// NewDeposit creates a deposit event
func NewDeposit(client ClientID, tx TransactionID, amount Amount) Event {
	return Event{Type: EventTypeDeposit, Client: client, Tx: tx, Amount: &amount}
}

// NewWithdrawal creates a withdrawal event
func NewWithdrawal(client ClientID, tx TransactionID, amount Amount) Event {
	return Event{Type: EventTypeWithdrawal, Client: client, Tx: tx, Amount: &amount}
}

// NewDispute creates a dispute event
func NewDispute(client ClientID, tx TransactionID) Event {
	return Event{Type: EventTypeDispute, Client: client, Tx: tx}
}

// NewResolve creates a resolve event
func NewResolve(client ClientID, tx TransactionID) Event {
	return Event{Type: EventTypeResolve, Client: client, Tx: tx}
}

// NewChargeback creates a chargeback event
func NewChargeback(client ClientID, tx TransactionID) Event {
	return Event{Type: EventTypeChargeback, Client: client, Tx: tx}
}

// Validate ensures the event has one of the five well-formed shapes.
// Policy checks (amount sign, funds, dispute state) are not done here.
func (e Event) Validate() error {
	switch e.Type {
	case EventTypeDeposit, EventTypeWithdrawal:
		if e.Amount == nil {
			return fmt.Errorf("%w: %s tx %d", ErrMissingAmount, e.Type, e.Tx)
		}
	case EventTypeDispute, EventTypeResolve, EventTypeChargeback:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventType, string(e.Type))
	}

	return nil
}
