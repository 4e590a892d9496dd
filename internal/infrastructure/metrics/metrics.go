package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Loan metrics
	LoansCreated  prometheus.Counter
	LoansSettled  prometheus.Counter
	SchedulesBuilt *prometheus.CounterVec

	// Repayment metrics
	RepaymentsPosted   prometheus.Counter
	RepaymentDuration  prometheus.Histogram
	RepaymentAmount    prometheus.Histogram
	RepaymentErrors    *prometheus.CounterVec
	AllocationsByBucket *prometheus.CounterVec
	OverpaymentResiduals prometheus.Counter

	// Rule metrics
	RulesCreated    prometheus.Counter
	RulesDeleted    prometheus.Counter
	RuleResolutions *prometheus.CounterVec
	RuleCacheHits   prometheus.Counter
	RuleCacheMisses prometheus.Counter

	// Journal metrics
	EntriesPosted prometheus.Counter

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Loan metrics
		LoansCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_loans_created_total",
			Help: "Total number of loans created",
		}),
		LoansSettled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_loans_settled_total",
			Help: "Total number of loans fully repaid",
		}),
		SchedulesBuilt: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loancore_schedules_built_total",
				Help: "Total number of amortization schedules built by method",
			},
			[]string{"method"},
		),

		// Repayment metrics
		RepaymentsPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_repayments_posted_total",
			Help: "Total number of repayments posted",
		}),
		RepaymentDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loancore_repayment_duration_seconds",
			Help:    "Duration of repayment postings",
			Buckets: prometheus.DefBuckets,
		}),
		RepaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loancore_repayment_amount",
			Help:    "Repayment amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		RepaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loancore_repayment_errors_total",
				Help: "Total number of repayment errors by type",
			},
			[]string{"error_type"},
		),
		AllocationsByBucket: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loancore_allocations_total",
				Help: "Total allocations by charge bucket",
			},
			[]string{"bucket"},
		),
		OverpaymentResiduals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_overpayment_residuals_total",
			Help: "Total repayments that left an unallocated residual",
		}),

		// Rule metrics
		RulesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_rules_created_total",
			Help: "Total number of accounting rules created",
		}),
		RulesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_rules_deleted_total",
			Help: "Total number of accounting rules deleted",
		}),
		RuleResolutions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loancore_rule_resolutions_total",
				Help: "Total rule resolutions by outcome",
			},
			[]string{"outcome"},
		),
		RuleCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_rule_cache_hits_total",
			Help: "Total rule snapshot cache hits",
		}),
		RuleCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_rule_cache_misses_total",
			Help: "Total rule snapshot cache misses",
		}),

		// Journal metrics
		EntriesPosted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "loancore_journal_entries_total",
			Help: "Total journal entries posted",
		}),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loancore_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loancore_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "loancore_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loancore_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loancore_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loancore_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
