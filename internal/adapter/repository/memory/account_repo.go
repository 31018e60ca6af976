package memory

import (
	"github.com/simaogato/txengine/internal/domain"
)

// accountRepository implements domain.AccountRepository on a map
type accountRepository struct {
	accounts map[domain.ClientID]*domain.Account
}

// NewAccountRepository creates an empty in-memory account table
func NewAccountRepository() domain.AccountRepository {
	return &accountRepository{accounts: make(map[domain.ClientID]*domain.Account)}
}

// Get retrieves the account for a client
func (r *accountRepository) Get(client domain.ClientID) (*domain.Account, bool) {
	account, ok := r.accounts[client]
	return account, ok
}

// GetOrCreate retrieves the account for a client, creating it lazily
func (r *accountRepository) GetOrCreate(client domain.ClientID) *domain.Account {
	if account, ok := r.accounts[client]; ok {
		return account
	}

	account := domain.NewAccount(client)
	r.accounts[client] = account
	return account
}

// List returns all accounts in map order
func (r *accountRepository) List() []*domain.Account {
	accounts := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}
	return accounts
}

func (r *accountRepository) Len() int {
	return len(r.accounts)
}
