// Package metrics exposes Prometheus counters for roster activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AttendeesImported = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ekklesia_attendees_imported_total",
		Help: "Attendees inserted through file import (including confirmed duplicates).",
	})
	ImportDuplicates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ekklesia_import_duplicates_total",
		Help: "Import rows flagged as duplicate candidates.",
	})
	CheckIns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ekklesia_checkins_total",
		Help: "Successful attendee check-ins.",
	})
)
