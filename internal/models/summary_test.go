package models

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func tx(ticker, side string, quantity, price float64) *Transaction {
	return &Transaction{
		PortfolioID: "p1",
		AssetID:     "asset-" + ticker,
		Side:        side,
		Quantity:    decimal.NewFromFloat(quantity),
		Price:       decimal.NewFromFloat(price),
		Asset:       &Asset{ID: "asset-" + ticker, Ticker: ticker},
	}
}

func TestSummarizeBuySell(t *testing.T) {
	txs := []*Transaction{
		tx("XYZ", SideBuy, 10, 100),
		tx("XYZ", SideBuy, 5, 110),
		tx("XYZ", SideSell, 3, 120),
	}

	summary := Summarize(txs)

	pos, ok := summary["XYZ"]
	if !ok {
		t.Fatal("expected position for XYZ")
	}
	if !pos.Quantity.Equal(decimal.NewFromInt(12)) {
		t.Errorf("expected quantity 12, got %s", pos.Quantity)
	}
	// 10*100 + 5*110 - 3*120 = 1190
	if !pos.TotalInvested.Equal(decimal.NewFromInt(1190)) {
		t.Errorf("expected total invested 1190, got %s", pos.TotalInvested)
	}
}

func TestSummarizeOrderIndependent(t *testing.T) {
	txs := []*Transaction{
		tx("AAA", SideBuy, 2.5, 40.1),
		tx("BBB", SideBuy, 7, 12.34),
		tx("AAA", SideSell, 1.25, 44),
		tx("BBB", SideSell, 9, 11.5),
		tx("AAA", SideBuy, 0.75, 39.9999),
	}

	want := Summarize(txs)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*Transaction, len(txs))
		copy(shuffled, txs)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Summarize(shuffled)
		if len(got) != len(want) {
			t.Fatalf("permutation %d: expected %d tickers, got %d", i, len(want), len(got))
		}
		for ticker, wpos := range want {
			gpos, ok := got[ticker]
			if !ok {
				t.Fatalf("permutation %d: missing ticker %s", i, ticker)
			}
			if !gpos.Quantity.Equal(wpos.Quantity) || !gpos.TotalInvested.Equal(wpos.TotalInvested) {
				t.Errorf("permutation %d: %s mismatch: got (%s, %s), want (%s, %s)",
					i, ticker, gpos.Quantity, gpos.TotalInvested, wpos.Quantity, wpos.TotalInvested)
			}
		}
	}
}

func TestSummarizeAdditive(t *testing.T) {
	a := []*Transaction{
		tx("XYZ", SideBuy, 10, 100),
		tx("ABC", SideBuy, 4, 25),
	}
	b := []*Transaction{
		tx("XYZ", SideSell, 3, 120),
		tx("DEF", SideBuy, 1, 999.9999),
	}

	merged := Summarize(append(append([]*Transaction{}, a...), b...))
	sumA := Summarize(a)
	sumB := Summarize(b)

	for ticker, mpos := range merged {
		wantQty := decimal.Zero
		wantInvested := decimal.Zero
		if pos, ok := sumA[ticker]; ok {
			wantQty = wantQty.Add(pos.Quantity)
			wantInvested = wantInvested.Add(pos.TotalInvested)
		}
		if pos, ok := sumB[ticker]; ok {
			wantQty = wantQty.Add(pos.Quantity)
			wantInvested = wantInvested.Add(pos.TotalInvested)
		}
		if !mpos.Quantity.Equal(wantQty) || !mpos.TotalInvested.Equal(wantInvested) {
			t.Errorf("%s: merged (%s, %s) != sum of parts (%s, %s)",
				ticker, mpos.Quantity, mpos.TotalInvested, wantQty, wantInvested)
		}
	}
}

func TestSummarizeOverSellGoesNegative(t *testing.T) {
	txs := []*Transaction{
		tx("XYZ", SideBuy, 2, 50),
		tx("XYZ", SideSell, 5, 60),
	}

	pos := Summarize(txs)["XYZ"]
	if !pos.Quantity.Equal(decimal.NewFromInt(-3)) {
		t.Errorf("expected quantity -3, got %s", pos.Quantity)
	}
	// 2*50 - 5*60 = -200
	if !pos.TotalInvested.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("expected total invested -200, got %s", pos.TotalInvested)
	}
}

func TestSummarizeDecimalPrecision(t *testing.T) {
	// Many small fractional buys must not accumulate binary rounding drift.
	txs := make([]*Transaction, 0, 1000)
	for i := 0; i < 1000; i++ {
		txs = append(txs, tx("XYZ", SideBuy, 0.0001, 0.1))
	}

	pos := Summarize(txs)["XYZ"]
	if !pos.Quantity.Equal(decimal.NewFromFloat(0.1)) {
		t.Errorf("expected quantity 0.1, got %s", pos.Quantity)
	}
	if !pos.TotalInvested.Equal(decimal.NewFromFloat(0.01)) {
		t.Errorf("expected total invested 0.01, got %s", pos.TotalInvested)
	}
}

func TestSummarizeEmptyLedger(t *testing.T) {
	summary := Summarize(nil)
	if len(summary) != 0 {
		t.Errorf("expected empty summary, got %d entries", len(summary))
	}
}
