package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/slotauction-indexer/internal/archive"
	"github.com/goodnatureofminers/slotauction-indexer/internal/auction"
	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/clock"
	"github.com/goodnatureofminers/slotauction-indexer/internal/metrics"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/goodnatureofminers/slotauction-indexer/internal/repository/clickhouse"
	"github.com/goodnatureofminers/slotauction-indexer/internal/service/ingester"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Network       model.Network `long:"network" env:"INDEXER_NETWORK" description:"relay chain (polkadot or kusama)" required:"true"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	StartHeight   uint32        `long:"start-height" env:"INDEXER_START_HEIGHT" description:"first block to index when no progress is stored"`
	BatchSize     uint32        `long:"batch-size" env:"INDEXER_BATCH_SIZE" description:"blocks per batch" default:"1000"`
	LeaseOffset   *uint32       `long:"lease-offset" env:"INDEXER_LEASE_OFFSET" description:"override the slot lease offset in blocks"`
	StrictClose   bool          `long:"strict-close" env:"INDEXER_STRICT_CLOSE" description:"fail the batch when an unknown auction is closed"`
	MetricsAddr   string        `long:"metrics-addr" env:"INDEXER_METRICS_ADDR" description:"address for metrics server" default:":2112"`

	Archive struct {
		URL       string        `long:"url" env:"URL" description:"archive API base URL" required:"true"`
		RPS       int           `long:"rps" env:"RPS" description:"max requests per second, 0 disables the limit" default:"10"`
		ChunkSize uint32        `long:"chunk-size" env:"CHUNK_SIZE" description:"blocks per archive request" default:"500"`
		Workers   int           `long:"workers" env:"WORKERS" description:"parallel archive requests" default:"4"`
		Timeout   time.Duration `long:"timeout" env:"TIMEOUT" description:"HTTP timeout for archive requests" default:"30s"`
		Retries   uint64        `long:"retries" env:"RETRIES" description:"retries per archive request" default:"5"`
	} `group:"archive" namespace:"archive" env-namespace:"INDEXER_ARCHIVE"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("auction indexer failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	params, err := chain.ParametersFor(cfg.Network)
	if err != nil {
		return err
	}
	if cfg.LeaseOffset != nil {
		params = params.WithLeaseOffset(*cfg.LeaseOffset)
		logger.Info("lease offset overridden", zap.Uint32("offset", params.SlotLeaseOffsetBlocks))
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	source, err := archive.NewClient(archive.Config{
		URL:       cfg.Archive.URL,
		RPS:       cfg.Archive.RPS,
		ChunkSize: cfg.Archive.ChunkSize,
		Workers:   cfg.Archive.Workers,
		Timeout:   cfg.Archive.Timeout,
		Retry: clock.RetryPolicy{
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     10 * time.Second,
			MaxRetries:      cfg.Archive.Retries,
		},
	}, metrics.NewArchiveClient(cfg.Network))
	if err != nil {
		return fmt.Errorf("init archive client: %w", err)
	}

	closePolicy := auction.LenientClose
	if cfg.StrictClose {
		closePolicy = auction.StrictClose
	}
	svc, err := ingester.NewAuctionIngesterService(
		repo,
		source,
		metrics.NewAuctionIngester(cfg.Network),
		params,
		ingester.Config{
			StartHeight: cfg.StartHeight,
			BatchSize:   cfg.BatchSize,
			ClosePolicy: closePolicy,
		},
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
