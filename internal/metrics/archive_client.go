package metrics

import (
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	archiveRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive_client",
		Name:      "requests_total",
		Help:      "Count of block archive requests.",
	}, []string{"operation", "network", "status"})
	archiveRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "archive_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of block archive requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// ArchiveClient tracks requests sent to the block archive.
type ArchiveClient struct {
	network model.Network
}

// NewArchiveClient constructs a metrics collector for archive requests.
func NewArchiveClient(network model.Network) *ArchiveClient {
	return &ArchiveClient{network: network}
}

// Observe records a single archive request outcome and duration.
func (m ArchiveClient) Observe(operation string, err error, started time.Time) {
	labels := []string{operation, networkLabel(m.network), status(err)}
	archiveRequestsTotal.WithLabelValues(labels...).Inc()
	archiveRequestDuration.WithLabelValues(labels...).Observe(time.Since(started).Seconds())
}
