package ingester

import (
	"context"
	"fmt"
	"math"

	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
)

// cursorHeightFetcher resumes after the last committed height, never earlier than startHeight,
// and stops at the archive head.
type cursorHeightFetcher struct {
	source      BlockSource
	repository  ClickhouseRepository
	network     model.Network
	startHeight uint32
	batchSize   uint32
}

func (f *cursorHeightFetcher) Fetch(ctx context.Context) (BlockRange, bool, error) {
	last, ok, err := f.repository.LastIndexedHeight(ctx, f.network)
	if err != nil {
		return BlockRange{}, false, fmt.Errorf("last indexed height: %w", err)
	}

	next := f.startHeight
	if ok {
		if last == math.MaxUint32 {
			return BlockRange{}, false, nil
		}
		if last+1 > next {
			next = last + 1
		}
	}

	head, err := f.source.Head(ctx)
	if err != nil {
		return BlockRange{}, false, fmt.Errorf("archive head: %w", err)
	}
	if head < next {
		return BlockRange{}, false, nil
	}

	to := uint64(next) + uint64(f.batchSize) - 1
	if to > uint64(head) {
		to = uint64(head)
	}
	return BlockRange{From: next, To: uint32(to)}, true, nil
}
