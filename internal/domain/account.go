package domain

// ClientID identifies the owner of an account
type ClientID uint16

// Account represents a client's ledger state in the domain layer.
// Total is always derived from Available and Held, never stored.
type Account struct {
	Client    ClientID
	Available Amount // May go negative after a dispute on withdrawn funds
	Held      Amount // Funds escrowed by open disputes
	Locked    bool   // Set by a chargeback; blocks deposits and withdrawals
}

// NewAccount creates an empty, unlocked account for the client
func NewAccount(client ClientID) *Account {
	return &Account{Client: client}
}

// Total returns Available + Held
func (a *Account) Total() Amount {
	return a.Available.Add(a.Held)
}

// Credit adds amount to the available funds
func (a *Account) Credit(amount Amount) {
	a.Available = a.Available.Add(amount)
}

// HasSufficientFunds checks if the available funds cover the amount
func (a *Account) HasSufficientFunds(amount Amount) bool {
	return a.Available.GreaterThanOrEqual(amount)
}

// Debit subtracts amount from the available funds.
// Returns false and leaves the account untouched if funds are insufficient.
func (a *Account) Debit(amount Amount) bool {
	if !a.HasSufficientFunds(amount) {
		return false
	}
	a.Available = a.Available.Sub(amount)
	return true
}

// Hold moves amount from available to held funds.
// Available is allowed to go negative.
func (a *Account) Hold(amount Amount) {
	a.Available = a.Available.Sub(amount)
	a.Held = a.Held.Add(amount)
}

// Release moves amount from held back to available funds
func (a *Account) Release(amount Amount) {
	a.Held = a.Held.Sub(amount)
	a.Available = a.Available.Add(amount)
}

// ChargeBack removes amount from held funds and freezes the account
func (a *Account) ChargeBack(amount Amount) {
	a.Held = a.Held.Sub(amount)
	a.Locked = true
}
