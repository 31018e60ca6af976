package report

import (
	"sort"

	"github.com/simaogato/txengine/internal/domain"
)

// AccountSummary is the final, read-only view of one client account
type AccountSummary struct {
	Client    domain.ClientID
	Available domain.Amount
	Held      domain.Amount
	Total     domain.Amount
	Locked    bool
}

// Totals aggregates every account in the table
type Totals struct {
	Clients   int
	Locked    int
	Available domain.Amount
	Held      domain.Amount
	Total     domain.Amount
}

// ReportService builds the final account listing
type ReportService struct {
	AccountRepo domain.AccountRepository
}

// NewReportService creates a new ReportService instance
func NewReportService(accountRepo domain.AccountRepository) *ReportService {
	return &ReportService{AccountRepo: accountRepo}
}

// Accounts returns one summary per known client, ordered by client id.
// Total is computed here from Available and Held.
func (s *ReportService) Accounts() []AccountSummary {
	accounts := s.AccountRepo.List()
	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, AccountSummary{
			Client:    account.Client,
			Available: account.Available,
			Held:      account.Held,
			Total:     account.Total(),
			Locked:    account.Locked,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Client < summaries[j].Client
	})

	return summaries
}

// Totals sums balances across all accounts (saturating)
func (s *ReportService) Totals() Totals {
	var totals Totals
	for _, account := range s.AccountRepo.List() {
		totals.Clients++
		if account.Locked {
			totals.Locked++
		}
		totals.Available = totals.Available.Add(account.Available)
		totals.Held = totals.Held.Add(account.Held)
		totals.Total = totals.Total.Add(account.Total())
	}
	return totals
}
