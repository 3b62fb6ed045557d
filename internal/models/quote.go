package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Quote is a daily price snapshot for an asset. At most one row exists per
// (asset, date) pair.
type Quote struct {
	ID      string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	AssetID string          `json:"asset_id" gorm:"column:asset_id;type:varchar(255);not null;uniqueIndex:idx_quotes_asset_date"`
	Date    time.Time       `json:"quote_date" gorm:"column:quote_date;type:date;not null;uniqueIndex:idx_quotes_asset_date"`
	Open    decimal.Decimal `json:"open" gorm:"column:open;type:decimal(20,4)"`
	Close   decimal.Decimal `json:"close" gorm:"column:close;type:decimal(20,4)"`
	High    decimal.Decimal `json:"high" gorm:"column:high;type:decimal(20,4)"`
	Low     decimal.Decimal `json:"low" gorm:"column:low;type:decimal(20,4)"`
	Volume  int64           `json:"volume" gorm:"column:volume;type:bigint"`
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// BeforeCreate assigns a UUID primary key when none is set
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// Validate validates the quote data
func (q *Quote) Validate() error {
	if q.AssetID == "" {
		return errors.New("asset_id is required")
	}
	if q.Date.IsZero() {
		return errors.New("quote_date is required")
	}
	return nil
}

// PlaceholderQuote returns the fixed fallback snapshot served when an asset
// has no stored quote rows.
func PlaceholderQuote(assetID string, day time.Time) *Quote {
	return &Quote{
		AssetID: assetID,
		Date:    day,
		Open:    decimal.NewFromInt(100),
		Close:   decimal.NewFromInt(105),
		High:    decimal.NewFromInt(110),
		Low:     decimal.NewFromInt(95),
		Volume:  1000000,
	}
}
