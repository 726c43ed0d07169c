package auction

import "fmt"

// UnknownAuctionError is returned for a close event whose auction was never started within the
// indexed range.
type UnknownAuctionError struct {
	Index  uint32
	Height uint32
}

func (e *UnknownAuctionError) Error() string {
	return fmt.Sprintf("auction %d closed at block %d was never started", e.Index, e.Height)
}

// DuplicateStartWarning describes a start event for an index that already exists in the working
// set. The new start replaces an ongoing record and is dropped for a completed one.
type DuplicateStartWarning struct {
	Index          uint32
	Height         uint32
	PreviousHeight uint32
	PreviousStatus string
}

func (w *DuplicateStartWarning) Error() string {
	return fmt.Sprintf("auction %d started again at block %d (previously started at %d, %s)",
		w.Index, w.Height, w.PreviousHeight, w.PreviousStatus)
}

// MissingStartBlockError is returned when a start event refers to a block that was not observed
// in the current batch.
type MissingStartBlockError struct {
	Height uint32
}

func (e *MissingStartBlockError) Error() string {
	return fmt.Sprintf("block %d not observed in current batch", e.Height)
}
