// Package metrics defines the custom Prometheus metrics for the FitPro API.
// It is the single source of truth for metric names, labels, and help
// strings. Metrics register themselves with the default registry via
// promauto; the /metrics endpoint is mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fitpro"

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ProfileSavesTotal counts profile save operations.
// Label:
//   - metrics: "computed" when the save produced derived health metrics,
//     "skipped" when weight/height were missing or non-positive
var ProfileSavesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_saves_total",
		Help:      "Total number of profile saves, by whether health metrics were recomputed.",
	},
	[]string{"metrics"},
)

// BMIClassificationsTotal counts BMI classifications produced by saves.
// Label:
//   - status: "Underweight", "Healthy weight", "Overweight", or "Obesity"
var BMIClassificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bmi_classifications_total",
		Help:      "Total number of BMI classifications computed, by category.",
	},
	[]string{"status"},
)

// SessionRestoresTotal counts startup session restores.
// Label:
//   - result: "restored" or "none"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of persisted-session restore attempts, by result.",
	},
	[]string{"result"},
)
