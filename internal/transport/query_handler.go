package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/slotauction-indexer/internal/chain"
	"github.com/goodnatureofminers/slotauction-indexer/internal/model"
	"github.com/goodnatureofminers/slotauction-indexer/internal/repository/clickhouse"
	"github.com/goodnatureofminers/slotauction-indexer/pkg/ss58"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const (
	defaultTransfersLimit = 100
	maxTransfersLimit     = 1_000
)

// QueryHandler serves read-only views over the indexed data.
type QueryHandler struct {
	repo   Repository
	logger *zap.Logger
}

// NewQueryHandler returns a QueryHandler instance.
func NewQueryHandler(repo Repository, logger *zap.Logger) (*QueryHandler, error) {
	if repo == nil {
		return nil, errors.New("nil repository")
	}
	if logger == nil {
		return nil, errors.New("nil logger")
	}
	return &QueryHandler{repo: repo, logger: logger.Named("query_handler")}, nil
}

// Register mounts the handler routes on the gateway mux.
func (h *QueryHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{pattern: "/healthz", handler: h.Health},
		{pattern: "/v1/{network}/auctions", handler: h.Auctions},
		{pattern: "/v1/{network}/auctions/{id}", handler: h.Auction},
		{pattern: "/v1/{network}/transfers", handler: h.Transfers},
	}
	for _, route := range routes {
		if err := mux.HandlePath(http.MethodGet, route.pattern, route.handler); err != nil {
			return fmt.Errorf("register %s: %w", route.pattern, err)
		}
	}
	return nil
}

// Health reports server health.
func (h *QueryHandler) Health(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.write(w, http.StatusOK, healthResponse{Status: "ok"})
}

// Auctions lists every auction of a network ordered by index.
func (h *QueryHandler) Auctions(w http.ResponseWriter, r *http.Request, params map[string]string) {
	network, err := model.ParseNetwork(params["network"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	auctions, err := h.repo.FindAuctions(r.Context(), network)
	if err != nil {
		h.internal(w, "find auctions", err)
		return
	}
	resp := auctionsResponse{Auctions: make([]auctionResponse, 0, len(auctions))}
	for _, a := range auctions {
		resp.Auctions = append(resp.Auctions, newAuctionResponse(a))
	}
	h.write(w, http.StatusOK, resp)
}

// Auction returns one auction by id.
func (h *QueryHandler) Auction(w http.ResponseWriter, r *http.Request, params map[string]string) {
	network, err := model.ParseNetwork(params["network"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	id := params["id"]
	if _, err = strconv.ParseUint(id, 10, 32); err != nil {
		h.fail(w, http.StatusBadRequest, fmt.Errorf("invalid auction id %q", id))
		return
	}
	a, err := h.repo.FindAuction(r.Context(), network, id)
	if errors.Is(err, clickhouse.ErrNotFound) {
		h.fail(w, http.StatusNotFound, fmt.Errorf("auction %s not found", id))
		return
	}
	if err != nil {
		h.internal(w, "find auction", err)
		return
	}
	h.write(w, http.StatusOK, newAuctionResponse(a))
}

// Transfers lists the latest transfers, optionally those sent or received by one account.
func (h *QueryHandler) Transfers(w http.ResponseWriter, r *http.Request, params map[string]string) {
	network, err := model.ParseNetwork(params["network"])
	if err != nil {
		h.fail(w, http.StatusBadRequest, err)
		return
	}
	query := r.URL.Query()

	account := query.Get("account")
	if account != "" {
		if err = validateAccount(network, account); err != nil {
			h.fail(w, http.StatusBadRequest, err)
			return
		}
	}

	limit := uint64(defaultTransfersLimit)
	if raw := query.Get("limit"); raw != "" {
		limit, err = strconv.ParseUint(raw, 10, 32)
		if err != nil || limit == 0 || limit > maxTransfersLimit {
			h.fail(w, http.StatusBadRequest, fmt.Errorf("limit must be between 1 and %d", maxTransfersLimit))
			return
		}
	}

	transfers, err := h.repo.FindTransfers(r.Context(), network, account, uint32(limit))
	if err != nil {
		h.internal(w, "find transfers", err)
		return
	}
	resp := transfersResponse{Transfers: make([]transferResponse, 0, len(transfers))}
	for _, t := range transfers {
		resp.Transfers = append(resp.Transfers, newTransferResponse(t))
	}
	h.write(w, http.StatusOK, resp)
}

func validateAccount(network model.Network, account string) error {
	params, err := chain.ParametersFor(network)
	if err != nil {
		return err
	}
	prefix, _, err := ss58.Decode(account)
	if err != nil {
		return fmt.Errorf("account %q: %w", account, err)
	}
	if prefix != params.SS58Prefix {
		return fmt.Errorf("account %q is not a %s address", account, network)
	}
	return nil
}

func (h *QueryHandler) internal(w http.ResponseWriter, operation string, err error) {
	h.logger.Error("query failed", zap.String("operation", operation), zap.Error(err))
	h.write(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (h *QueryHandler) fail(w http.ResponseWriter, code int, err error) {
	h.write(w, code, errorResponse{Error: err.Error()})
}

func (h *QueryHandler) write(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
