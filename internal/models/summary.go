package models

import "github.com/shopspring/decimal"

// AssetPosition is the net position for one ticker derived from the ledger.
type AssetPosition struct {
	Quantity      decimal.Decimal `json:"quantity"`
	TotalInvested decimal.Decimal `json:"total_invested"`
}

// PortfolioSummary pairs a portfolio's display name with its per-ticker
// positions.
type PortfolioSummary struct {
	Portfolio string                    `json:"portfolio"`
	Summary   map[string]*AssetPosition `json:"summary"`
}

// Summarize folds a portfolio's transaction history into per-ticker net
// positions. A buy adds quantity and quantity*price invested; a sell
// subtracts both. Nothing is clamped: selling more than was bought drives
// quantity and invested amount negative, which mirrors the ledger's
// no-validation contract. The fold is commutative, so transaction order does
// not matter.
//
// Transactions are keyed by their preloaded Asset's ticker; rows without the
// association loaded fall back to the raw asset id.
func Summarize(txs []*Transaction) map[string]*AssetPosition {
	summary := make(map[string]*AssetPosition)
	for _, t := range txs {
		key := t.AssetID
		if t.Asset != nil {
			key = t.Asset.Ticker
		}
		pos, ok := summary[key]
		if !ok {
			pos = &AssetPosition{Quantity: decimal.Zero, TotalInvested: decimal.Zero}
			summary[key] = pos
		}
		amount := t.Quantity.Mul(t.Price)
		if t.Side == SideBuy {
			pos.Quantity = pos.Quantity.Add(t.Quantity)
			pos.TotalInvested = pos.TotalInvested.Add(amount)
		} else {
			pos.Quantity = pos.Quantity.Sub(t.Quantity)
			pos.TotalInvested = pos.TotalInvested.Sub(amount)
		}
	}
	return summary
}
