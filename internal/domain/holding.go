package domain

import "github.com/shopspring/decimal"

// RawHolding is a single brokerage line item as reported by the holdings
// endpoint. The same symbol may appear more than once (separate lots).
type RawHolding struct {
	Symbol          string
	Quantity        int64
	CostPrice       decimal.Decimal
	LastTradedPrice decimal.Decimal
	ProfitLoss      decimal.Decimal
	MarketValue     decimal.Decimal
}

// Holding is a normalized, merged position. Rebuilt from scratch on every
// reconciliation cycle; never persisted.
type Holding struct {
	Symbol          string
	Quantity        int64
	CostPrice       decimal.Decimal
	LastTradedPrice decimal.Decimal
	ProfitLoss      decimal.Decimal
	MarketValue     decimal.Decimal
	PercentChange   decimal.Decimal
}

// HoldingsSummary carries aggregate statistics over the merged holdings of
// the last reconciliation.
type HoldingsSummary struct {
	MeanPercentChange   float64
	MedianPercentChange float64
}
