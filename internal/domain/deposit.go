package domain

// TransactionID identifies a transaction; assumed globally unique across the input
type TransactionID uint32

// DisputeState represents where a deposit is in the dispute lifecycle
type DisputeState string

const (
	DisputeStateUndisputed DisputeState = "UNDISPUTED"
	DisputeStateDisputed   DisputeState = "DISPUTED"
	// DisputeStateSettled is terminal: the deposit was charged back
	DisputeStateSettled DisputeState = "SETTLED"
)

// DepositRecord represents an accepted deposit that can later be disputed.
// Withdrawals are never recorded.
type DepositRecord struct {
	Tx     TransactionID
	Client ClientID
	Amount Amount // Fixed at creation
	State  DisputeState
}

// NewDepositRecord creates an undisputed deposit record
func NewDepositRecord(tx TransactionID, client ClientID, amount Amount) *DepositRecord {
	return &DepositRecord{
		Tx:     tx,
		Client: client,
		Amount: amount,
		State:  DisputeStateUndisputed,
	}
}

// BelongsTo reports whether the deposit was made by the client
func (d DepositRecord) BelongsTo(client ClientID) bool {
	return d.Client == client
}
