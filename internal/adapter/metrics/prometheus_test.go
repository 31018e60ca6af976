package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/simaogato/txengine/internal/domain"
	"github.com/simaogato/txengine/internal/usecase/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_ObserveEvent(t *testing.T) {
	recorder := NewRecorder()

	recorder.ObserveEvent(domain.EventTypeDeposit, "applied")
	recorder.ObserveEvent(domain.EventTypeDeposit, "applied")
	recorder.ObserveEvent(domain.EventTypeWithdrawal, "insufficient_funds")

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.eventsTotal.WithLabelValues("deposit", "applied")))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.eventsTotal.WithLabelValues("withdrawal", "insufficient_funds")))
	assert.Equal(t, 2, testutil.CollectAndCount(recorder.eventsTotal))
}

func TestRecorder_IndependentRegistries(t *testing.T) {
	first := NewRecorder()
	second := NewRecorder()

	first.ObserveEvent(domain.EventTypeDispute, "applied")

	assert.Equal(t, 1.0, testutil.ToFloat64(first.eventsTotal.WithLabelValues("dispute", "applied")))
	assert.Equal(t, 0, testutil.CollectAndCount(second.eventsTotal))
}

func TestRecorder_ObserveLedger(t *testing.T) {
	recorder := NewRecorder()
	recorder.ObserveLedger(report.Totals{Clients: 3, Locked: 1}, 7)

	assert.Equal(t, 3.0, testutil.ToFloat64(recorder.accounts))
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.lockedAccounts))
	assert.Equal(t, 7.0, testutil.ToFloat64(recorder.retainedDeposits))
}

func TestRecorder_Registry(t *testing.T) {
	recorder := NewRecorder()
	recorder.ObserveEvent(domain.EventTypeDeposit, "applied")
	recorder.ObserveEvent(domain.EventTypeResolve, "unknown_transaction")
	recorder.ObserveLedger(report.Totals{Clients: 2, Locked: 1}, 5)

	expected := `
# HELP ledger_accounts Number of client accounts at the end of the run
# TYPE ledger_accounts gauge
ledger_accounts 2
# HELP ledger_events_total Total transaction events processed, labeled by type and outcome
# TYPE ledger_events_total counter
ledger_events_total{outcome="applied",type="deposit"} 1
ledger_events_total{outcome="unknown_transaction",type="resolve"} 1
# HELP ledger_locked_accounts Number of accounts frozen by a chargeback
# TYPE ledger_locked_accounts gauge
ledger_locked_accounts 1
# HELP ledger_retained_deposits Number of deposit records held for dispute lookups
# TYPE ledger_retained_deposits gauge
ledger_retained_deposits 5
`
	err := testutil.GatherAndCompare(recorder.Registry(), strings.NewReader(expected))
	assert.NoError(t, err)
}

func TestRecorder_WriteToTextfile(t *testing.T) {
	recorder := NewRecorder()
	recorder.ObserveEvent(domain.EventTypeChargeback, "applied")
	recorder.ObserveLedger(report.Totals{Clients: 1, Locked: 1}, 1)

	path := filepath.Join(t.TempDir(), "ledger.prom")
	require.NoError(t, recorder.WriteToTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `ledger_events_total{outcome="applied",type="chargeback"} 1`)
	assert.Contains(t, string(content), "ledger_locked_accounts 1")
}

func TestRecorder_WriteToTextfile_BadPath(t *testing.T) {
	recorder := NewRecorder()

	err := recorder.WriteToTextfile(filepath.Join(t.TempDir(), "missing", "ledger.prom"))
	assert.Error(t, err)
}
