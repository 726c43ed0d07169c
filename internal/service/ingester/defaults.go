package ingester

import "time"

const (
	defaultBatchSize uint32 = 1_000

	sleepDuration     = 5 * time.Second
	idleSleepDuration = 6 * time.Second
)
