package handlers

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tropicaldog17/folio/internal/models"
	"github.com/tropicaldog17/folio/internal/services"
)

type mockUserService struct {
	registerErr error
	authErr     error
	userID      string
}

func (m *mockUserService) Register(_ context.Context, username, email, password string) (*models.User, error) {
	if m.registerErr != nil {
		return nil, m.registerErr
	}
	return &models.User{ID: m.userID, Username: username, Email: email}, nil
}

func (m *mockUserService) Authenticate(_ context.Context, username, password string) (string, error) {
	if m.authErr != nil {
		return "", m.authErr
	}
	return m.userID, nil
}

var _ services.UserService = (*mockUserService)(nil)

type mockPortfolioService struct {
	portfolios []*models.Portfolio
	summary    *models.PortfolioSummary
	err        error
}

func (m *mockPortfolioService) Create(_ context.Context, userID, name string) (*models.Portfolio, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &models.Portfolio{ID: "portfolio-1", UserID: userID, Name: name}, nil
}

func (m *mockPortfolioService) List(_ context.Context, userID string) ([]*models.Portfolio, error) {
	return m.portfolios, m.err
}

func (m *mockPortfolioService) Summary(_ context.Context, userID, portfolioID string) (*models.PortfolioSummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

var _ services.PortfolioService = (*mockPortfolioService)(nil)

type mockTransactionService struct {
	recorded *models.Transaction
	listed   []*models.Transaction
	err      error
}

func (m *mockTransactionService) Record(_ context.Context, userID, portfolioID, ticker, side string, quantity, price decimal.Decimal) (*models.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.recorded = &models.Transaction{
		ID:          "tx-1",
		PortfolioID: portfolioID,
		Side:        side,
		Quantity:    quantity,
		Price:       price,
	}
	return m.recorded, nil
}

func (m *mockTransactionService) ListByPortfolio(_ context.Context, userID, portfolioID string) ([]*models.Transaction, error) {
	return m.listed, m.err
}

var _ services.TransactionService = (*mockTransactionService)(nil)

type mockQuoteService struct {
	quote *models.Quote
	saved *models.Quote
	err   error
}

func (m *mockQuoteService) Latest(_ context.Context, ticker string) (*models.Quote, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.quote, nil
}

func (m *mockQuoteService) Save(_ context.Context, ticker string, quote *models.Quote) error {
	m.saved = quote
	return m.err
}

var _ services.QuoteService = (*mockQuoteService)(nil)
