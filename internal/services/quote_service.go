package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tropicaldog17/folio/internal/db"
	"github.com/tropicaldog17/folio/internal/models"
)

// quoteService implements the QuoteService interface
type quoteService struct {
	db *db.DB
}

// NewQuoteService creates a new quote service
func NewQuoteService(database *db.DB) QuoteService {
	return &quoteService{db: database}
}

// Latest returns the most recent stored quote for the ticker. An unknown
// ticker is NotFound; a known ticker with no stored rows gets the fixed
// placeholder snapshot dated today. The placeholder is never persisted.
func (s *quoteService) Latest(ctx context.Context, ticker string) (*models.Quote, error) {
	asset, err := findAsset(s.db.WithContext(ctx), ticker)
	if err != nil {
		return nil, err
	}

	var quote models.Quote
	err = s.db.WithContext(ctx).
		Where("asset_id = ?", asset.ID).
		Order("quote_date DESC").
		First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PlaceholderQuote(asset.ID, today()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load quote: %w", err)
	}
	return &quote, nil
}

// Save upserts a quote row for the ticker on its date, creating the asset on
// first reference. The (asset, date) unique index backs the upsert.
func (s *quoteService) Save(ctx context.Context, ticker string, quote *models.Quote) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		asset, err := ensureAsset(tx, ticker)
		if err != nil {
			return err
		}

		quote.AssetID = asset.ID
		if quote.Date.IsZero() {
			quote.Date = today()
		}
		if err := quote.Validate(); err != nil {
			return err
		}

		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "asset_id"}, {Name: "quote_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"open", "close", "high", "low", "volume",
			}),
		}).Create(quote).Error
		if err != nil {
			return fmt.Errorf("failed to save quote: %w", err)
		}
		return nil
	})
}

// today truncates now to a date in UTC
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
