package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tropicaldog17/folio/internal/models"
)

// UserService defines the interface for registration and login
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (string, error)
}

// PortfolioService defines the interface for portfolio operations. Every
// method is scoped to the owning user; a portfolio owned by someone else is
// indistinguishable from one that does not exist.
type PortfolioService interface {
	Create(ctx context.Context, userID, name string) (*models.Portfolio, error)
	List(ctx context.Context, userID string) ([]*models.Portfolio, error)
	Summary(ctx context.Context, userID, portfolioID string) (*models.PortfolioSummary, error)
}

// TransactionService defines the interface for the append-only ledger
type TransactionService interface {
	Record(ctx context.Context, userID, portfolioID, ticker, side string, quantity, price decimal.Decimal) (*models.Transaction, error)
	ListByPortfolio(ctx context.Context, userID, portfolioID string) ([]*models.Transaction, error)
}

// QuoteService defines the interface for price snapshots
type QuoteService interface {
	Latest(ctx context.Context, ticker string) (*models.Quote, error)
	Save(ctx context.Context, ticker string, quote *models.Quote) error
}
