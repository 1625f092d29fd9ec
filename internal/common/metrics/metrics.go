// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PoolNamesLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zoo_intake_pool_names_loaded_total",
			Help: "Total number of candidate names loaded from the name pool",
		},
		[]string{"species"},
	)

	RecordsParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zoo_intake_records_parsed_total",
			Help: "Total number of arrival records parsed successfully",
		},
	)

	RecordsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zoo_intake_records_skipped_total",
			Help: "Total number of arrival lines skipped",
		},
		[]string{"reason"},
	)

	NamesAssigned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zoo_intake_names_assigned_total",
			Help: "Total number of names assigned, by outcome",
		},
		[]string{"outcome"},
	)

	ReportLinesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "zoo_intake_report_lines_written_total",
			Help: "Total number of lines appended to the population report",
		},
	)
)
