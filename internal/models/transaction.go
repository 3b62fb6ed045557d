package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction sides
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// Transaction is one immutable buy/sell event in a portfolio's ledger.
// Rows are only ever appended; aggregation folds over the full history.
type Transaction struct {
	ID          string          `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	PortfolioID string          `json:"portfolio_id" gorm:"column:portfolio_id;type:varchar(255);not null;index"`
	AssetID     string          `json:"asset_id" gorm:"column:asset_id;type:varchar(255);not null;index"`
	Side        string          `json:"transaction_type" gorm:"column:transaction_type;type:varchar(10);not null"`
	Quantity    decimal.Decimal `json:"quantity" gorm:"column:quantity;type:decimal(20,4);not null"`
	Price       decimal.Decimal `json:"price" gorm:"column:price;type:decimal(20,4);not null"`
	Date        time.Time       `json:"transaction_date" gorm:"column:transaction_date;not null;index"`

	Asset *Asset `json:"asset,omitempty" gorm:"foreignKey:AssetID"`
}

// TableName returns the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}

// BeforeCreate assigns a UUID primary key and a default date when none is set
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = time.Now().UTC()
	}
	return nil
}

// Validate validates the transaction data. Quantity and price signs are not
// checked and over-selling is permitted; the ledger records what the caller
// submits.
func (t *Transaction) Validate() error {
	if t.PortfolioID == "" {
		return errors.New("portfolio_id is required")
	}
	if t.AssetID == "" {
		return errors.New("asset_id is required")
	}
	if t.Side != SideBuy && t.Side != SideSell {
		return errors.New("transaction_type must be buy or sell")
	}
	return nil
}
