package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/db"
	"github.com/tropicaldog17/folio/internal/models"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	db *db.DB
}

// NewTransactionService creates a new transaction service
func NewTransactionService(database *db.DB) TransactionService {
	return &transactionService{db: database}
}

// Record appends one immutable transaction to the portfolio's ledger,
// creating the asset row on first reference to the ticker. The ownership
// check doubles as the existence check, so a foreign portfolio id reads as
// NotFound. Quantity and price are recorded as submitted; there is no
// oversell or sign validation.
func (s *transactionService) Record(ctx context.Context, userID, portfolioID, ticker, side string, quantity, price decimal.Decimal) (*models.Transaction, error) {
	var created *models.Transaction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findOwnedPortfolio(tx, userID, portfolioID); err != nil {
			return err
		}

		asset, err := ensureAsset(tx, ticker)
		if err != nil {
			return err
		}

		t := &models.Transaction{
			PortfolioID: portfolioID,
			AssetID:     asset.ID,
			Side:        side,
			Quantity:    quantity,
			Price:       price,
		}
		if err := t.Validate(); err != nil {
			return &apperr.ErrValidation{Field: "transaction", Message: err.Error()}
		}
		if err := tx.Create(t).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		t.Asset = asset
		created = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// ListByPortfolio returns the portfolio's ledger, oldest first
func (s *transactionService) ListByPortfolio(ctx context.Context, userID, portfolioID string) ([]*models.Transaction, error) {
	if _, err := findOwnedPortfolio(s.db.WithContext(ctx), userID, portfolioID); err != nil {
		return nil, err
	}

	var txs []*models.Transaction
	err := s.db.WithContext(ctx).
		Preload("Asset").
		Where("portfolio_id = ?", portfolioID).
		Order("transaction_date ASC").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
