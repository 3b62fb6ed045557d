package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tropicaldog17/folio/internal/apperr"
	"github.com/tropicaldog17/folio/internal/models"
)

// ensureAsset returns the asset for a ticker, creating it on first
// reference. Two callers racing on a new ticker are arbitrated by the unique
// index: the loser's insert fails and it falls back to the winner's row.
func ensureAsset(tx *gorm.DB, ticker string) (*models.Asset, error) {
	var asset models.Asset
	err := tx.Where("ticker = ?", ticker).First(&asset).Error
	if err == nil {
		return &asset, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up asset: %w", err)
	}

	asset = models.Asset{
		Ticker:    ticker,
		Name:      ticker,
		AssetType: models.DefaultAssetType,
	}
	if err := tx.Create(&asset).Error; err != nil {
		// Lost the creation race; the row exists now.
		var winner models.Asset
		if ferr := tx.Where("ticker = ?", ticker).First(&winner).Error; ferr == nil {
			return &winner, nil
		}
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return &asset, nil
}

// findAsset returns the asset for a ticker or NotFound
func findAsset(tx *gorm.DB, ticker string) (*models.Asset, error) {
	var asset models.Asset
	err := tx.Where("ticker = ?", ticker).First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("asset not found: %w", apperr.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up asset: %w", err)
	}
	return &asset, nil
}
