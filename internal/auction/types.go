package auction

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics receives one observation per applied event.
	Metrics interface {
		ObserveTransition(outcome string)
	}
)
