package memory

import (
	"fmt"

	"github.com/simaogato/txengine/internal/domain"
)

// depositRepository implements domain.DepositRepository on a map.
// Records are never deleted so repeated dispute events can be checked against them.
type depositRepository struct {
	deposits map[domain.TransactionID]*domain.DepositRecord
}

// NewDepositRepository creates an empty in-memory deposit ledger
func NewDepositRepository() domain.DepositRepository {
	return &depositRepository{deposits: make(map[domain.TransactionID]*domain.DepositRecord)}
}

// Put inserts a new deposit record; the table is untouched on a duplicate id
func (r *depositRepository) Put(record *domain.DepositRecord) error {
	if _, exists := r.deposits[record.Tx]; exists {
		return fmt.Errorf("%w: %d", domain.ErrDuplicateTransaction, record.Tx)
	}

	stored := *record
	r.deposits[record.Tx] = &stored
	return nil
}

// Get returns a copy of the record so callers cannot bypass the Mark methods
func (r *depositRepository) Get(tx domain.TransactionID) (domain.DepositRecord, bool) {
	record, ok := r.deposits[tx]
	if !ok {
		return domain.DepositRecord{}, false
	}
	return *record, true
}

func (r *depositRepository) MarkDisputed(tx domain.TransactionID) error {
	return r.setState(tx, domain.DisputeStateDisputed)
}

func (r *depositRepository) MarkResolved(tx domain.TransactionID) error {
	return r.setState(tx, domain.DisputeStateUndisputed)
}

func (r *depositRepository) MarkChargedBack(tx domain.TransactionID) error {
	return r.setState(tx, domain.DisputeStateSettled)
}

func (r *depositRepository) Len() int {
	return len(r.deposits)
}

func (r *depositRepository) setState(tx domain.TransactionID, state domain.DisputeState) error {
	record, ok := r.deposits[tx]
	if !ok {
		return fmt.Errorf("%w: %d", domain.ErrTransactionNotFound, tx)
	}
	record.State = state
	return nil
}
