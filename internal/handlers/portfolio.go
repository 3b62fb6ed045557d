package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/services"
)

// PortfolioHandler serves portfolio CRUD and the aggregated summary
type PortfolioHandler struct {
	portfolios services.PortfolioService
	logger     *zap.Logger
}

// NewPortfolioHandler creates a new portfolio handler
func NewPortfolioHandler(portfolios services.PortfolioService, logger *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{portfolios: portfolios, logger: logger}
}

type createPortfolioRequest struct {
	Name string `json:"name"`
}

type portfolioResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// HandlePortfolios handles collection-level operations for portfolios.
// @Summary List or create portfolios
// @Accept json
// @Produce json
// @Success 200 {array} models.Portfolio
// @Success 201 {object} map[string]string
// @Router /portfolios [get]
// @Router /portfolios [post]
func (h *PortfolioHandler) HandlePortfolios(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Token is missing")
		return
	}

	switch r.Method {
	case http.MethodGet:
		portfolios, err := h.portfolios.List(r.Context(), userID)
		if err != nil {
			h.logger.Error("list portfolios failed", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		resp := make([]portfolioResponse, 0, len(portfolios))
		for _, p := range portfolios {
			resp = append(resp, portfolioResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt})
		}
		writeJSON(w, http.StatusOK, resp)
	case http.MethodPost:
		var req createPortfolioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		portfolio, err := h.portfolios.Create(r.Context(), userID, req.Name)
		if errors.Is(err, apperr.ErrInvalid) {
			writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		if err != nil {
			h.logger.Error("create portfolio failed", zap.Error(err))
			writeMessage(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{
			"message": "Portfolio created",
			"id":      portfolio.ID,
		})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleSummary returns the per-ticker net positions for one portfolio.
// @Summary Portfolio summary
// @Produce json
// @Param id path string true "Portfolio ID"
// @Success 200 {object} models.PortfolioSummary
// @Failure 404 {object} map[string]string "Portfolio not found"
// @Router /portfolio/{id} [get]
func (h *PortfolioHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := UserIDFrom(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Token is missing")
		return
	}

	portfolioID := mux.Vars(r)["id"]
	summary, err := h.portfolios.Summary(r.Context(), userID, portfolioID)
	if errors.Is(err, apperr.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	if err != nil {
		h.logger.Error("portfolio summary failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
