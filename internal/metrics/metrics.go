// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the process-wide Prometheus collectors and the
// helpers that record into them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Transfer phases.
const (
	PhaseInitiate = "initiate"
	PhaseRedeem   = "redeem"
)

var (
	// transfersTotal counts transfer attempts by phase and outcome.
	transfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "item_transfers_total",
		Help: "Total number of transfer operations by phase and outcome",
	}, []string{"phase", "outcome"})

	// redemptionsPruned counts ledger rows removed by the pruner.
	redemptionsPruned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "item_transfer_redemptions_pruned_total",
		Help: "Total number of redemption ledger rows pruned",
	})

	// requestDuration tracks HTTP handler latency.
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Histogram of HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// RecordTransfer counts one transfer operation. outcome is "ok" or the
// error kind that stopped it.
func RecordTransfer(phase, outcome string) {
	transfersTotal.WithLabelValues(phase, outcome).Inc()
}

// RecordPruned adds n pruned ledger rows.
func RecordPruned(n int64) {
	if n > 0 {
		redemptionsPruned.Add(float64(n))
	}
}

// ObserveRequest records the latency of one HTTP request.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Handler exposes the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
