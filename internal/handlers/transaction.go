package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/services"
)

// TransactionHandler serves the append-only ledger
type TransactionHandler struct {
	transactions services.TransactionService
	logger       *zap.Logger
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactions services.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{transactions: transactions, logger: logger}
}

type recordTransactionRequest struct {
	PortfolioID string          `json:"portfolio_id"`
	AssetTicker string          `json:"asset_ticker"`
	Side        string          `json:"transaction_type"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// HandleTransactions records a ledger entry or lists a portfolio's ledger.
// @Summary Record or list transactions
// @Accept json
// @Produce json
// @Param portfolio_id query string false "Portfolio ID (GET)"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string "Portfolio not found"
// @Router /transactions [post]
// @Router /transactions [get]
func (h *TransactionHandler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Token is missing")
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.recordTransaction(w, r, userID)
	case http.MethodGet:
		h.listTransactions(w, r, userID)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TransactionHandler) recordTransaction(w http.ResponseWriter, r *http.Request, userID string) {
	var req recordTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.PortfolioID == "" || req.AssetTicker == "" {
		writeMessage(w, http.StatusBadRequest, "portfolio_id and asset_ticker are required")
		return
	}

	tx, err := h.transactions.Record(r.Context(), userID, req.PortfolioID, req.AssetTicker, req.Side, req.Quantity, req.Price)
	if errors.Is(err, apperr.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	if errors.Is(err, apperr.ErrInvalid) {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("record transaction failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Transaction added",
		"id":      tx.ID,
	})
}

func (h *TransactionHandler) listTransactions(w http.ResponseWriter, r *http.Request, userID string) {
	portfolioID := r.URL.Query().Get("portfolio_id")
	if portfolioID == "" {
		writeMessage(w, http.StatusBadRequest, "portfolio_id is required")
		return
	}

	txs, err := h.transactions.ListByPortfolio(r.Context(), userID, portfolioID)
	if errors.Is(err, apperr.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	if err != nil {
		h.logger.Error("list transactions failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, txs)
}
