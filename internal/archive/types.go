package archive

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records archive request outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
