package processor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/simaogato/txengine/internal/domain"
	"go.uber.org/zap"
)

// Outcome labels reported to the Recorder for every processed event.
// Anything other than OutcomeApplied is a policy no-op.
const (
	OutcomeApplied              = "applied"
	OutcomeNonPositiveAmount    = "non_positive_amount"
	OutcomeAccountLocked        = "account_locked"
	OutcomeInsufficientFunds    = "insufficient_funds"
	OutcomeUnknownTransaction   = "unknown_transaction"
	OutcomeClientMismatch       = "client_mismatch"
	OutcomeDisputeStateMismatch = "dispute_state_mismatch"
)

// Recorder receives one observation per processed event
type Recorder interface {
	ObserveEvent(eventType domain.EventType, outcome string)
}

// EventSource yields events in input order and returns io.EOF when exhausted
type EventSource interface {
	Next() (domain.Event, error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveEvent(domain.EventType, string) {}

// Option configures a Processor
type Option func(*Processor)

// WithLogger sets the logger used for ignored events
func WithLogger(logger *zap.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(recorder Recorder) Option {
	return func(p *Processor) {
		if recorder != nil {
			p.recorder = recorder
		}
	}
}

// WithStrictTransactionIDs makes a withdrawal that reuses a retained deposit id
// a fatal ErrDuplicateTransaction instead of being processed normally
func WithStrictTransactionIDs(strict bool) Option {
	return func(p *Processor) {
		p.strictTxIDs = strict
	}
}

// Processor is the sole writer of the account table and the deposit ledger.
// It applies one event at a time and is not safe for concurrent use; independent
// streams get independent processors.
type Processor struct {
	AccountRepo domain.AccountRepository
	DepositRepo domain.DepositRepository

	logger      *zap.Logger
	recorder    Recorder
	strictTxIDs bool
}

// NewProcessor creates a new Processor instance
func NewProcessor(accountRepo domain.AccountRepository, depositRepo domain.DepositRepository, opts ...Option) *Processor {
	p := &Processor{
		AccountRepo: accountRepo,
		DepositRepo: depositRepo,
		logger:      zap.NewNop(),
		recorder:    nopRecorder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run applies every event from source in order until io.EOF.
// It stops at the first read error, fatal apply error or context cancellation
// and returns the number of events consumed before stopping.
func (p *Processor) Run(ctx context.Context, source EventSource) (int, error) {
	processed := 0
	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		event, err := source.Next()
		if errors.Is(err, io.EOF) {
			return processed, nil
		}
		if err != nil {
			return processed, fmt.Errorf("read event %d: %w", processed+1, err)
		}

		if err := p.Apply(event); err != nil {
			return processed, fmt.Errorf("apply event %d: %w", processed+1, err)
		}
		processed++
	}
}

// Apply processes a single event.
// Policy no-ops (insufficient funds, bad dispute references, ...) return nil and
// leave state untouched. A non-nil error is a fatal integrity error.
func (p *Processor) Apply(event domain.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}

	var (
		outcome string
		err     error
	)
	switch event.Type {
	case domain.EventTypeDeposit:
		outcome, err = p.deposit(event)
	case domain.EventTypeWithdrawal:
		outcome, err = p.withdrawal(event)
	case domain.EventTypeDispute:
		outcome, err = p.dispute(event)
	case domain.EventTypeResolve:
		outcome, err = p.resolve(event)
	case domain.EventTypeChargeback:
		outcome, err = p.chargeback(event)
	}
	if err != nil {
		return err
	}

	p.recorder.ObserveEvent(event.Type, outcome)
	if outcome != OutcomeApplied {
		p.logger.Debug("event ignored",
			zap.String("type", string(event.Type)),
			zap.Uint16("client", uint16(event.Client)),
			zap.Uint32("tx", uint32(event.Tx)),
			zap.String("reason", outcome),
		)
	}

	return nil
}

// deposit credits the client and records the deposit so it can be disputed later
func (p *Processor) deposit(event domain.Event) (string, error) {
	amount := *event.Amount
	if !amount.IsPositive() {
		return OutcomeNonPositiveAmount, nil
	}

	if _, exists := p.DepositRepo.Get(event.Tx); exists {
		return "", fmt.Errorf("%w: deposit tx %d", domain.ErrDuplicateTransaction, event.Tx)
	}

	account := p.AccountRepo.GetOrCreate(event.Client)
	if account.Locked {
		return OutcomeAccountLocked, nil
	}

	if err := p.DepositRepo.Put(domain.NewDepositRecord(event.Tx, event.Client, amount)); err != nil {
		return "", err
	}
	account.Credit(amount)

	return OutcomeApplied, nil
}

// withdrawal debits the client if funds allow; withdrawals are never recorded
func (p *Processor) withdrawal(event domain.Event) (string, error) {
	amount := *event.Amount
	if !amount.IsPositive() {
		return OutcomeNonPositiveAmount, nil
	}

	if p.strictTxIDs {
		if _, exists := p.DepositRepo.Get(event.Tx); exists {
			return "", fmt.Errorf("%w: withdrawal tx %d", domain.ErrDuplicateTransaction, event.Tx)
		}
	}

	account := p.AccountRepo.GetOrCreate(event.Client)
	if account.Locked {
		return OutcomeAccountLocked, nil
	}

	if !account.Debit(amount) {
		return OutcomeInsufficientFunds, nil
	}

	return OutcomeApplied, nil
}

// dispute moves the deposited amount from available to held.
// Allowed on locked accounts.
func (p *Processor) dispute(event domain.Event) (string, error) {
	record, account, outcome, err := p.lookupDeposit(event, domain.DisputeStateUndisputed)
	if outcome != "" || err != nil {
		return outcome, err
	}

	if err := p.DepositRepo.MarkDisputed(record.Tx); err != nil {
		return "", err
	}
	account.Hold(record.Amount)

	return OutcomeApplied, nil
}

// resolve returns held funds to available; the deposit can be disputed again
func (p *Processor) resolve(event domain.Event) (string, error) {
	record, account, outcome, err := p.lookupDeposit(event, domain.DisputeStateDisputed)
	if outcome != "" || err != nil {
		return outcome, err
	}

	if err := p.DepositRepo.MarkResolved(record.Tx); err != nil {
		return "", err
	}
	account.Release(record.Amount)

	return OutcomeApplied, nil
}

// chargeback removes held funds and freezes the account; the deposit is settled for good
func (p *Processor) chargeback(event domain.Event) (string, error) {
	record, account, outcome, err := p.lookupDeposit(event, domain.DisputeStateDisputed)
	if outcome != "" || err != nil {
		return outcome, err
	}

	if err := p.DepositRepo.MarkChargedBack(record.Tx); err != nil {
		return "", err
	}
	account.ChargeBack(record.Amount)

	return OutcomeApplied, nil
}

// lookupDeposit resolves the deposit and account referenced by a dispute-family event.
// A non-empty outcome means the event is a policy no-op.
func (p *Processor) lookupDeposit(event domain.Event, want domain.DisputeState) (domain.DepositRecord, *domain.Account, string, error) {
	record, ok := p.DepositRepo.Get(event.Tx)
	if !ok {
		return record, nil, OutcomeUnknownTransaction, nil
	}
	if !record.BelongsTo(event.Client) {
		return record, nil, OutcomeClientMismatch, nil
	}
	if record.State != want {
		return record, nil, OutcomeDisputeStateMismatch, nil
	}

	account, ok := p.AccountRepo.Get(record.Client)
	if !ok {
		return record, nil, "", fmt.Errorf("%w: client %d tx %d", domain.ErrOrphanDeposit, record.Client, record.Tx)
	}

	return record, account, "", nil
}
