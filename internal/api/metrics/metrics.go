// Package metrics defines all custom Prometheus metrics for the ShipEase
// logistics API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shipease"

// ── Event metrics ─────────────────────────────────────────────────────────────

// EventsProcessedTotal counts tracking events that completed processing.
// Label:
//   - event_type: the event type applied (e.g. "location_update")
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of tracking events successfully processed.",
	},
	[]string{"event_type"},
)

// EventsErrorsTotal counts events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "process_failed")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of tracking events that failed processing.",
	},
	[]string{"reason"},
)

// EventsQueueDepth tracks the current number of events waiting in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var EventsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)

// EventProcessingDuration measures how long a single event takes to process end-to-end.
// Label:
//   - event_type: the processed event type, or "error" on failure
var EventProcessingDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "event_processing_duration_seconds",
		Help:      "Duration of event processing from dequeue to persistence.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"event_type"},
)

// ── Shipment metrics ──────────────────────────────────────────────────────────

// ShipmentsCreatedTotal counts newly created shipments.
// Label:
//   - service_type: the selected service tier (e.g. "standard", "express")
var ShipmentsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shipments_created_total",
		Help:      "Total number of shipments created, by service type.",
	},
	[]string{"service_type"},
)

// ── Notification metrics ─────────────────────────────────────────────────────

// NotificationsDispatchedTotal counts notification writes by outcome.
// Labels:
//   - type: the notification type (e.g. "assigned", "delivered")
//   - outcome: "ok" or "error"
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of notification dispatch attempts, by type and outcome.",
	},
	[]string{"type", "outcome"},
)
