// Package archive reads finalized blocks and their events from an HTTP block archive.
package archive

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/sling"
	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/clock"
	"github.com/goodnatureofminers/slotauction-indexer/pkg/safe"
	"github.com/goodnatureofminers/slotauction-indexer/pkg/workerpool"
	"go.uber.org/ratelimit"
)

const (
	defaultChunkSize = 500
	defaultWorkers   = 4
	defaultTimeout   = 30 * time.Second
)

// Config describes how to reach the archive.
type Config struct {
	URL       string
	RPS       int
	ChunkSize uint32
	Workers   int
	Timeout   time.Duration
	Retry     clock.RetryPolicy
	Events    []string
}

// Client implements chain.BlockSource over the archive HTTP API.
type Client struct {
	api       *sling.Sling
	limiter   ratelimit.Limiter
	metrics   Metrics
	retry     clock.RetryPolicy
	chunkSize uint32
	workers   int
	events    []string
}

var _ chain.BlockSource = (*Client)(nil)

// NewClient builds an archive client.
func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("archive url is required")
	}
	if metrics == nil {
		return nil, errors.New("archive metrics is required")
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = defaultChunkSize
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if len(cfg.Events) == 0 {
		cfg.Events = chain.IndexedEvents
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	base := cfg.URL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	httpClient := &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:       sling.New().Base(base).Client(httpClient),
		limiter:   limiter,
		metrics:   metrics,
		retry:     cfg.Retry,
		chunkSize: cfg.ChunkSize,
		workers:   cfg.Workers,
		events:    cfg.Events,
	}, nil
}

// Head returns the height of the newest finalized block known to the archive.
func (c *Client) Head(ctx context.Context) (uint32, error) {
	var resp heightResponse
	err := c.do(ctx, "height", func() (*http.Request, error) {
		return c.api.New().Get("height").Request()
	}, &resp)
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint32(resp.Height)
	if err != nil {
		return 0, fmt.Errorf("archive height: %w", err)
	}
	return height, nil
}

// Blocks returns the blocks of [from, to] that carry indexed events, in ascending height order.
// The range is split into chunks fetched concurrently.
func (c *Client) Blocks(ctx context.Context, from, to uint32) ([]chain.Block, error) {
	if from > to {
		return nil, fmt.Errorf("invalid range [%d, %d]", from, to)
	}

	chunks, err := workerpool.Map(ctx, c.workers, splitRange(from, to, c.chunkSize), c.fetchChunk)
	if err != nil {
		return nil, err
	}

	var out []chain.Block
	for _, chunk := range chunks {
		out = append(out, chunk...)
	}
	return out, nil
}

func (c *Client) fetchChunk(ctx context.Context, r blockRange) ([]chain.Block, error) {
	var resp blocksResponse
	err := c.do(ctx, "blocks", func() (*http.Request, error) {
		return c.api.New().Post("blocks").BodyJSON(blocksRequest{From: r.from, To: r.to, Events: c.events}).Request()
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("fetch blocks [%d, %d]: %w", r.from, r.to, err)
	}

	blocks := make([]chain.Block, 0, len(resp.Blocks))
	var prev uint32
	for i, dto := range resp.Blocks {
		b, err := toBlock(dto)
		if err != nil {
			return nil, fmt.Errorf("block %d of [%d, %d]: %w", i, r.from, r.to, err)
		}
		if b.Header.Height < r.from || b.Header.Height > r.to {
			return nil, fmt.Errorf("block %d outside requested range [%d, %d]", b.Header.Height, r.from, r.to)
		}
		if i > 0 && b.Header.Height <= prev {
			return nil, fmt.Errorf("block %d out of order after %d", b.Header.Height, prev)
		}
		prev = b.Header.Height
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func (c *Client) do(ctx context.Context, operation string, build func() (*http.Request, error), success any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	return c.retry.Do(ctx, func(ctx context.Context) error {
		c.limiter.Take()

		req, err := build()
		if err != nil {
			return clock.Permanent(fmt.Errorf("build %s request: %w", operation, err))
		}
		var failure apiError
		resp, err := c.api.Do(req.WithContext(ctx), success, &failure)
		if err != nil {
			return err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			statusErr := &StatusError{Operation: operation, Code: resp.StatusCode, Message: failure.Message}
			if statusErr.Temporary() {
				return statusErr
			}
			return clock.Permanent(statusErr)
		}
		return nil
	})
}

func toBlock(dto blockDTO) (chain.Block, error) {
	height, err := safe.Uint32(dto.Header.Height)
	if err != nil {
		return chain.Block{}, fmt.Errorf("height: %w", err)
	}
	specVersion, err := safe.Uint32(dto.Header.SpecVersion)
	if err != nil {
		return chain.Block{}, fmt.Errorf("spec version: %w", err)
	}
	if dto.Header.Hash == "" {
		return chain.Block{}, fmt.Errorf("block %d has no hash", height)
	}

	events := make([]chain.Event, 0, len(dto.Events))
	for i, e := range dto.Events {
		index, err := safe.Uint32(e.Index)
		if err != nil {
			return chain.Block{}, fmt.Errorf("event index: %w", err)
		}
		if i > 0 && index <= events[i-1].Index {
			return chain.Block{}, fmt.Errorf("block %d event %d out of order after %d", height, index, events[i-1].Index)
		}
		ev := chain.Event{
			Index:    index,
			Name:     e.Name,
			TypeHash: e.TypeHash,
			Args:     e.Args,
		}
		if e.Extrinsic != nil {
			ev.Extrinsic = &chain.Extrinsic{Hash: e.Extrinsic.Hash, Fee: e.Extrinsic.Fee}
		}
		events = append(events, ev)
	}

	return chain.Block{
		Header: chain.Header{
			Height:      height,
			Hash:        dto.Header.Hash,
			Timestamp:   dto.Header.Timestamp,
			SpecVersion: specVersion,
		},
		Events: events,
	}, nil
}

type blockRange struct {
	from uint32
	to   uint32
}

func splitRange(from, to, size uint32) []blockRange {
	var out []blockRange
	for start := uint64(from); start <= uint64(to); start += uint64(size) {
		end := start + uint64(size) - 1
		if end > uint64(to) {
			end = uint64(to)
		}
		out = append(out, blockRange{from: uint32(start), to: uint32(end)})
	}
	return out
}
