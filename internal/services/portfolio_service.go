package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/db"
	"github.com/tropicaldog17/folio/internal/models"
)

// portfolioService implements the PortfolioService interface
type portfolioService struct {
	db *db.DB
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(database *db.DB) PortfolioService {
	return &portfolioService{db: database}
}

// Create adds a portfolio for the user
func (s *portfolioService) Create(ctx context.Context, userID, name string) (*models.Portfolio, error) {
	portfolio := &models.Portfolio{
		UserID: userID,
		Name:   name,
	}
	if err := portfolio.Validate(); err != nil {
		return nil, &apperr.ErrValidation{Field: "portfolio", Message: err.Error()}
	}
	if err := s.db.WithContext(ctx).Create(portfolio).Error; err != nil {
		return nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	return portfolio, nil
}

// List returns the user's portfolios
func (s *portfolioService) List(ctx context.Context, userID string) ([]*models.Portfolio, error) {
	var portfolios []*models.Portfolio
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&portfolios).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	return portfolios, nil
}

// Summary loads the portfolio's full ledger and folds it into per-ticker net
// positions. The ownership filter doubles as the existence check.
func (s *portfolioService) Summary(ctx context.Context, userID, portfolioID string) (*models.PortfolioSummary, error) {
	portfolio, err := findOwnedPortfolio(s.db.WithContext(ctx), userID, portfolioID)
	if err != nil {
		return nil, err
	}

	var txs []*models.Transaction
	err = s.db.WithContext(ctx).
		Preload("Asset").
		Where("portfolio_id = ?", portfolioID).
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	return &models.PortfolioSummary{
		Portfolio: portfolio.Name,
		Summary:   models.Summarize(txs),
	}, nil
}

// findOwnedPortfolio fetches a portfolio scoped to its owner. A miss on
// either the id or the owner comes back as NotFound.
func findOwnedPortfolio(tx *gorm.DB, userID, portfolioID string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	err := tx.Where("id = ? AND user_id = ?", portfolioID, userID).First(&portfolio).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("portfolio not found: %w", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up portfolio: %w", err)
	}
	return &portfolio, nil
}
