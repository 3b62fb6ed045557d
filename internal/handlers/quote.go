package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/models"
	"github.com/tropicaldog17/folio/internal/services"
)

// QuoteHandler serves price snapshots
type QuoteHandler struct {
	quotes services.QuoteService
	logger *zap.Logger
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quotes services.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, logger: logger}
}

type quoteResponse struct {
	Ticker    string          `json:"ticker"`
	QuoteDate string          `json:"quote_date"`
	Open      decimal.Decimal `json:"open"`
	Close     decimal.Decimal `json:"close"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Volume    int64           `json:"volume"`
}

type saveQuoteRequest struct {
	QuoteDate string          `json:"quote_date"`
	Open      decimal.Decimal `json:"open"`
	Close     decimal.Decimal `json:"close"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Volume    int64           `json:"volume"`
}

// HandleQuote returns the latest stored quote for a ticker, or the fixed
// placeholder when the asset is known but has no quote rows.
// @Summary Latest quote
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Success 200 {object} quoteResponse
// @Failure 404 {object} map[string]string "Asset not found"
// @Router /quotes/{ticker} [get]
func (h *QuoteHandler) HandleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ticker := mux.Vars(r)["ticker"]
	quote, err := h.quotes.Latest(r.Context(), ticker)
	if errors.Is(err, apperr.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Asset not found")
		return
	}
	if err != nil {
		h.logger.Error("quote lookup failed", zap.Error(err), zap.String("ticker", ticker))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, quoteResponse{
		Ticker:    ticker,
		QuoteDate: quote.Date.Format("2006-01-02"),
		Open:      quote.Open,
		Close:     quote.Close,
		High:      quote.High,
		Low:       quote.Low,
		Volume:    quote.Volume,
	})
}

// HandleSaveQuote upserts the quote row for a ticker on a given date.
// @Summary Save a quote
// @Accept json
// @Produce json
// @Param ticker path string true "Ticker symbol"
// @Success 201 {object} map[string]string
// @Router /quotes/{ticker} [post]
func (h *QuoteHandler) HandleSaveQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ticker := mux.Vars(r)["ticker"]
	var req saveQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	quote := &models.Quote{
		Open:   req.Open,
		Close:  req.Close,
		High:   req.High,
		Low:    req.Low,
		Volume: req.Volume,
	}
	if req.QuoteDate != "" {
		date, err := time.Parse("2006-01-02", req.QuoteDate)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "quote_date must be YYYY-MM-DD")
			return
		}
		quote.Date = date
	}

	if err := h.quotes.Save(r.Context(), ticker, quote); err != nil {
		h.logger.Error("save quote failed", zap.Error(err), zap.String("ticker", ticker))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeMessage(w, http.StatusCreated, "Quote saved")
}
