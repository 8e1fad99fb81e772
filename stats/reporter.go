package stats

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Reporter periodically drains a ShardedStats and logs a structured
// progress line, the equivalent of cassandra-stress's own per-tick output
// (stats.rs's StatsPrinter.print_partial) but through structured logging
// rather than a fixed-width stdout table.
type Reporter struct {
	stats    *ShardedStats
	log      *logrus.Entry
	interval time.Duration
	tag      string

	startTime    time.Time
	previousTime time.Time
	totalOps     uint64

	promOps     *prometheus.CounterVec
	promErrors  *prometheus.CounterVec
	promLatency *prometheus.GaugeVec
}

// NewReporter returns a Reporter that logs a progress line every interval,
// tagging log fields and (if WithPrometheus is called) metric label values
// with tag — typically the workload or operation name.
func NewReporter(s *ShardedStats, log *logrus.Entry, interval time.Duration, tag string) *Reporter {
	now := time.Now()
	return &Reporter{
		stats:        s,
		log:          log,
		interval:     interval,
		tag:          tag,
		startTime:    now,
		previousTime: now,
	}
}

// WithPrometheus registers CounterVec/HistogramVec-equivalent metrics on reg
// and returns r for chaining; nothing in the core depends on this having
// been called. Latency is exported as a GaugeVec over quantile, not a
// HistogramVec: client_golang's Histogram expects individual raw
// observations, while what a periodic GetCombinedAndClear snapshot hands us
// is already-merged HDR bucket data with no per-sample record to replay, so
// the quantiles computed from it are published as gauges instead.
func (r *Reporter) WithPrometheus(reg prometheus.Registerer) *Reporter {
	r.promOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cql_stress_operations_total",
		Help: "Total operations accounted by the sharded stats reporter.",
	}, []string{"tag"})
	r.promErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cql_stress_errors_total",
		Help: "Total operation errors accounted by the sharded stats reporter.",
	}, []string{"tag"})
	r.promLatency = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cql_stress_latency_milliseconds",
		Help: "Operation latency in milliseconds, by quantile, over the last report interval.",
	}, []string{"tag", "quantile"})

	reg.MustRegister(r.promOps, r.promErrors, r.promLatency)
	return r
}

// Run blocks, calling GetCombinedAndClear and logging a progress line every
// interval, until ctx is cancelled.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Reporter) tick() {
	combined := r.stats.GetCombinedAndClear()

	now := time.Now()
	intervalSeconds := now.Sub(r.previousTime).Seconds()
	r.previousTime = now
	r.totalOps += combined.Operations

	var opRate float64
	if intervalSeconds > 0 {
		opRate = float64(combined.Operations) / intervalSeconds
	}

	r.log.WithFields(logrus.Fields{
		"tag":       r.tag,
		"total_ops": r.totalOps,
		"op_rate":   opRate,
		"errors":    combined.Errors,
		"mean_ms":   combined.MeanMillis(),
		"p50_ms":    combined.MedianMillis(),
		"p95_ms":    combined.QuantileMillis(95),
		"p99_ms":    combined.QuantileMillis(99),
		"p999_ms":   combined.QuantileMillis(99.9),
		"max_ms":    combined.MaxMillis(),
		"elapsed_s": now.Sub(r.startTime).Seconds(),
	}).Info("progress")

	if r.promOps == nil {
		return
	}
	r.promOps.WithLabelValues(r.tag).Add(float64(combined.Operations))
	r.promErrors.WithLabelValues(r.tag).Add(float64(combined.Errors))
	r.promLatency.WithLabelValues(r.tag, "p50").Set(combined.MedianMillis())
	r.promLatency.WithLabelValues(r.tag, "p95").Set(combined.QuantileMillis(95))
	r.promLatency.WithLabelValues(r.tag, "p99").Set(combined.QuantileMillis(99))
	r.promLatency.WithLabelValues(r.tag, "max").Set(combined.MaxMillis())
}
