package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candidate is a symbol surfaced by a screener source as a buy opportunity.
// Immutable after creation. CurrentPrice is zero when the source row carried
// no parsable price; the dispatcher resolves a live quote in that case.
type Candidate struct {
	Symbol       string          `json:"symbol" csv:"symbol"`
	Name         string          `json:"name" csv:"name"`
	CurrentPrice decimal.Decimal `json:"currentPrice" csv:"current_price"`
	DiscoveredAt time.Time       `json:"discoveredAt" csv:"discovered_at"`
}
