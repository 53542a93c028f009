package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Query outcomes used as the "outcome" label
const (
	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// queryMetrics tracks query counts and latency in a registry private to one
// Gateway, so several gateways (tests) never collide on registration.
type queryMetrics struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	rows     *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

func newQueryMetrics() *queryMetrics {
	m := &queryMetrics{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightdb",
			Name:      "queries_total",
			Help:      "Catalog queries executed, by query and outcome.",
		}, []string{"query", "outcome"}),
		rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flightdb",
			Name:      "rows_returned_total",
			Help:      "Records returned to callers, by query.",
		}, []string{"query"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flightdb",
			Name:      "query_duration_seconds",
			Help:      "Query latency including row materialization.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"query"}),
	}
	m.registry.MustRegister(m.queries, m.rows, m.latency)
	return m
}

// record updates metrics for one execution
func (m *queryMetrics) record(id QueryID, duration time.Duration, rows int, err error) {
	name := id.String()
	m.latency.WithLabelValues(name).Observe(duration.Seconds())

	switch {
	case err != nil:
		m.queries.WithLabelValues(name, outcomeError).Inc()
	case rows == 0:
		m.queries.WithLabelValues(name, outcomeEmpty).Inc()
	default:
		m.queries.WithLabelValues(name, outcomeOK).Inc()
	}
	m.rows.WithLabelValues(name).Add(float64(rows))
}

// QueryStats summarizes gateway activity
type QueryStats struct {
	// Connection stats
	OpenConnections int
	InUse           int
	Idle            int

	// Query stats
	TotalQueries  int64
	FailedQueries int64
	EmptyResults  int64
	RowsReturned  int64
	AvgLatency    time.Duration
}

// SuccessRate is the fraction of queries that did not fail
func (s QueryStats) SuccessRate() float64 {
	if s.TotalQueries == 0 {
		return 1
	}
	return float64(s.TotalQueries-s.FailedQueries) / float64(s.TotalQueries)
}

// summarize folds the gathered metric families into QueryStats
func (m *queryMetrics) summarize() (QueryStats, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return QueryStats{}, err
	}

	var (
		stats      QueryStats
		latencySum float64
		latencyN   uint64
	)
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch mf.GetName() {
			case "flightdb_queries_total":
				n := int64(metric.GetCounter().GetValue())
				stats.TotalQueries += n
				switch labelValue(metric, "outcome") {
				case outcomeError:
					stats.FailedQueries += n
				case outcomeEmpty:
					stats.EmptyResults += n
				}
			case "flightdb_rows_returned_total":
				stats.RowsReturned += int64(metric.GetCounter().GetValue())
			case "flightdb_query_duration_seconds":
				latencySum += metric.GetHistogram().GetSampleSum()
				latencyN += metric.GetHistogram().GetSampleCount()
			}
		}
	}
	if latencyN > 0 {
		stats.AvgLatency = time.Duration(latencySum / float64(latencyN) * float64(time.Second))
	}

	return stats, nil
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}
