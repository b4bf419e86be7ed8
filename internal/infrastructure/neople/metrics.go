package neople

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dnf_market",
		Subsystem: "neople",
		Name:      "requests_total",
		Help:      "Auction-sold requests by result.",
	}, []string{"result"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dnf_market",
		Subsystem: "neople",
		Name:      "request_duration_seconds",
		Help:      "Auction-sold request latency.",
		Buckets:   prometheus.DefBuckets,
	})
)

const (
	resultOK          = "ok"
	resultStatusError = "status_error"
	resultTransport   = "transport_error"
	resultDecodeError = "decode_error"
)
