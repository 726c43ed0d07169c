// Package metrics holds the Prometheus collectors of the indexer and the API gateway.
package metrics

import "github.com/goodnatureofminers/slotauction-indexer/internal/model"

const namespace = "slotauction"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
