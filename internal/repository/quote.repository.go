package repository

import (
	"fmt"

	"github.com/piquette/finance-go/quote"
	"github.com/shopspring/decimal"
)

// QuoteRepository resolves a live market price for a symbol. Used when a
// candidate carries no scraped price but budget-based sizing needs one.
type QuoteRepository interface {
	LatestPrice(symbol string) (decimal.Decimal, error)
}

func NewQuoteRepository() QuoteRepository {
	return quoteRepositoryHandler{}
}

type quoteRepositoryHandler struct{}

func (h quoteRepositoryHandler) LatestPrice(symbol string) (decimal.Decimal, error) {
	q, err := quote.Get(symbol)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return decimal.Zero, fmt.Errorf("no quote returned for %s", symbol)
	}

	price := decimal.NewFromFloat(q.RegularMarketPrice)
	if price.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("failed to get price for %s: got %s", symbol, price.String())
	}
	return price.Round(2), nil
}
