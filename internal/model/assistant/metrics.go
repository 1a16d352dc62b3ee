package assistant

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "finova",
		Subsystem: "assistant",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
	},
	[]string{"source", "error"},
)

func observeResponse(elapsed time.Duration, source Source, err bool) {
	histogramResponseTime.
		WithLabelValues(string(source), strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
