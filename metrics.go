package contentful

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "contentful_client",
			Name:      "requests_total",
			Help:      "Delivery API requests that produced a response, by status code.",
		},
		[]string{"code"},
	)

	requestFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "contentful_client",
			Name:      "request_failures_total",
			Help:      "Delivery API requests that failed without a response.",
		},
	)
)

// metricsTransport counts requests; it never alters them.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := mt.base.RoundTrip(req)
	if err != nil {
		requestFailuresTotal.Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	return resp, nil
}
