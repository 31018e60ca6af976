package domain

// AccountRepository defines the Account Table operations.
// Implementations are owned by a single sequential processor and need no locking.
type AccountRepository interface {
	// Get retrieves the account for a client, if it exists
	Get(client ClientID) (*Account, bool)

	// GetOrCreate retrieves the account for a client, creating an empty one if absent
	GetOrCreate(client ClientID) *Account

	// List returns every known account in unspecified order
	List() []*Account

	// Len returns the number of known accounts
	Len() int
}

// DepositRepository defines the Deposit Ledger operations.
// The ledger stores whatever dispute state it is told to; transition legality
// is enforced by the caller.
type DepositRepository interface {
	// Put inserts a new record; returns ErrDuplicateTransaction if the id exists
	Put(record *DepositRecord) error

	// Get returns a copy of the record for a transaction id, if it exists
	Get(tx TransactionID) (DepositRecord, bool)

	// MarkDisputed sets the record state to DISPUTED
	MarkDisputed(tx TransactionID) error

	// MarkResolved returns the record state to UNDISPUTED
	MarkResolved(tx TransactionID) error

	// MarkChargedBack sets the record state to SETTLED
	MarkChargedBack(tx TransactionID) error

	// Len returns the number of retained deposits
	Len() int
}
