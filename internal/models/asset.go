package models

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Default classification for assets created lazily from a transaction ticker.
const DefaultAssetType = "stock"

// Asset is a tradable instrument identified by its ticker. Rows are created
// on demand the first time an unknown ticker shows up in a transaction; the
// unique index on ticker is the only guard against two concurrent creations.
type Asset struct {
	ID        string `json:"id" gorm:"primaryKey;column:id;type:varchar(255)"`
	Ticker    string `json:"ticker" gorm:"column:ticker;type:varchar(10);not null;uniqueIndex"`
	Name      string `json:"name" gorm:"column:name;type:varchar(100)"`
	AssetType string `json:"asset_type" gorm:"column:asset_type;type:varchar(20)"`
}

// TableName returns the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}

// BeforeCreate assigns a UUID primary key when none is set
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// Validate validates the asset data
func (a *Asset) Validate() error {
	if a.Ticker == "" {
		return errors.New("ticker is required")
	}
	return nil
}
