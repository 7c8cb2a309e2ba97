package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// JobsSubmitted counts job submissions by device.
	JobsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iqm_jobs_submitted_total",
		Help: "The total number of jobs submitted to the IQM endpoint",
	}, []string{"device"})

	// JobsCompleted counts finished jobs by terminal status.
	JobsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iqm_jobs_completed_total",
		Help: "The total number of jobs that reached a terminal status",
	}, []string{"status"})

	// JobWaitDuration observes how long jobs take from submission to a
	// terminal status.
	JobWaitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "iqm_job_wait_duration_ms",
		Help:    "Duration between job submission and terminal status in milliseconds",
		Buckets: prometheus.ExponentialBuckets(1, 2, 18), // 1ms to ~2m
	})

	// ResultPolls counts result queries by reported job status.
	ResultPolls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "iqm_result_polls_total",
		Help: "The total number of result queries by reported status",
	}, []string{"status"})
)
