package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/simaogato/txengine/internal/domain"
	"github.com/simaogato/txengine/internal/usecase/report"
)

// Recorder collects per-run ledger metrics on its own registry so that
// independent engine instances never share counters.
type Recorder struct {
	registry *prometheus.Registry

	eventsTotal      *prometheus.CounterVec
	accounts         prometheus.Gauge
	lockedAccounts   prometheus.Gauge
	retainedDeposits prometheus.Gauge
}

// NewRecorder creates a Recorder with a fresh registry
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ledger_events_total",
			Help: "Total transaction events processed, labeled by type and outcome",
		}, []string{"type", "outcome"}),
		accounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_accounts",
			Help: "Number of client accounts at the end of the run",
		}),
		lockedAccounts: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_locked_accounts",
			Help: "Number of accounts frozen by a chargeback",
		}),
		retainedDeposits: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ledger_retained_deposits",
			Help: "Number of deposit records held for dispute lookups",
		}),
	}
}

// ObserveEvent implements processor.Recorder
func (r *Recorder) ObserveEvent(eventType domain.EventType, outcome string) {
	r.eventsTotal.WithLabelValues(string(eventType), outcome).Inc()
}

// ObserveLedger records end-of-run table sizes
func (r *Recorder) ObserveLedger(totals report.Totals, retainedDeposits int) {
	r.accounts.Set(float64(totals.Clients))
	r.lockedAccounts.Set(float64(totals.Locked))
	r.retainedDeposits.Set(float64(retainedDeposits))
}

// Registry exposes the underlying registry as a gatherer
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteToTextfile writes the metrics in the node_exporter textfile format
func (r *Recorder) WriteToTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry()); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
