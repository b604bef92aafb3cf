package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the store
type Metrics struct {
	// Operation metrics
	OpTotal    *prometheus.CounterVec
	OpErrors   *prometheus.CounterVec
	NotFound   prometheus.Counter
	MergeTotal prometheus.Counter

	// WAL metrics
	WALAppends  *prometheus.CounterVec
	WALReplayed prometheus.Counter

	// Storage metrics
	LiveKeys prometheus.Gauge
}

var (
	// Default is the default metrics instance. Collectors are registered
	// on the default registry once, at package init.
	Default *Metrics
)

func init() {
	Default = newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		OpTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exdb_operations_total",
				Help: "Total number of store operations",
			},
			[]string{"op"},
		),
		OpErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exdb_operation_errors_total",
				Help: "Total number of failed store operations",
			},
			[]string{"op"},
		),
		NotFound: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "exdb_get_not_found_total",
				Help: "Total number of lookups for absent keys",
			},
		),
		MergeTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "exdb_merges_total",
				Help: "Total number of log merges into the table store",
			},
		),
		WALAppends: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exdb_wal_appends_total",
				Help: "Total number of records appended to the WAL",
			},
			[]string{"op"},
		),
		WALReplayed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "exdb_wal_replayed_records_total",
				Help: "Total number of WAL records replayed during recovery",
			},
		),
		LiveKeys: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "exdb_live_keys",
				Help: "Number of keys currently held in the in-memory mapping",
			},
		),
	}
}

// Common operation label values
const (
	OpPut    = "put"
	OpGet    = "get"
	OpDelete = "delete"
	OpMerge  = "merge"
)
