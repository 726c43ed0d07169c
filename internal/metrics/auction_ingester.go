package metrics

import (
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingesterFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auction_ingester",
		Name:      "fetch_range_total",
		Help:      "Count of attempts to resolve the next block range.",
	}, []string{"network", "status"})

	ingesterFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "auction_ingester",
		Name:      "fetch_range_duration_seconds",
		Help:      "Duration of resolving the next block range.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auction_ingester",
		Name:      "process_batch_total",
		Help:      "Count of block batches processed.",
	}, []string{"network", "status"})

	ingesterProcessBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "auction_ingester",
		Name:      "process_batch_duration_seconds",
		Help:      "Duration of processing a block batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	ingesterProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "auction_ingester",
		Name:      "process_batch_size",
		Help:      "Number of blocks per processed batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})

	ingesterIndexedHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "auction_ingester",
		Name:      "indexed_height",
		Help:      "Last committed block height.",
	}, []string{"network"})

	ingesterTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auction_ingester",
		Name:      "auction_transitions_total",
		Help:      "Count of auction lifecycle events by outcome.",
	}, []string{"network", "outcome"})

	ingesterTransfersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auction_ingester",
		Name:      "transfers_total",
		Help:      "Count of indexed balance transfers.",
	}, []string{"network"})
)

// AuctionIngester tracks metrics for the auction ingestion pipeline.
type AuctionIngester struct {
	network string
}

// NewAuctionIngester constructs an AuctionIngester collector for one network.
func NewAuctionIngester(network model.Network) *AuctionIngester {
	return &AuctionIngester{network: networkLabel(network)}
}

// ObserveFetchRange records a range resolution attempt.
func (m AuctionIngester) ObserveFetchRange(err error, started time.Time) {
	ingesterFetchTotal.WithLabelValues(m.network, status(err)).Inc()
	ingesterFetchDuration.WithLabelValues(m.network, status(err)).Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records processing of a block batch.
func (m AuctionIngester) ObserveProcessBatch(err error, blocks int, started time.Time) {
	ingesterProcessBatchTotal.WithLabelValues(m.network, status(err)).Inc()
	ingesterProcessBatchDuration.WithLabelValues(m.network, status(err)).Observe(time.Since(started).Seconds())
	ingesterProcessBatchSize.WithLabelValues(m.network).Observe(float64(blocks))
}

// ObserveIndexedHeight records the height of the last committed batch.
func (m AuctionIngester) ObserveIndexedHeight(height uint32) {
	ingesterIndexedHeight.WithLabelValues(m.network).Set(float64(height))
}

// ObserveTransfers counts transfers committed with a batch.
func (m AuctionIngester) ObserveTransfers(n int) {
	ingesterTransfersTotal.WithLabelValues(m.network).Add(float64(n))
}

// ObserveTransition counts an auction lifecycle outcome.
func (m AuctionIngester) ObserveTransition(outcome string) {
	ingesterTransitionsTotal.WithLabelValues(m.network, outcome).Inc()
}
