package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type StatusResponse struct {
	Holdings            []HoldingResponse `json:"holdings"`
	TotalProfitLoss     float64           `json:"totalProfitLoss"`
	MeanPercentChange   float64           `json:"meanPercentChange"`
	MedianPercentChange float64           `json:"medianPercentChange"`
	ReconciledAt        *string           `json:"reconciledAt"`
}

type HoldingResponse struct {
	Symbol          string  `json:"symbol"`
	Quantity        int64   `json:"quantity"`
	CostPrice       float64 `json:"costPrice"`
	LastTradedPrice float64 `json:"lastTradedPrice"`
	ProfitLoss      float64 `json:"profitLoss"`
	MarketValue     float64 `json:"marketValue"`
	PercentChange   float64 `json:"percentChange"`
}

// status serves the last completed reconciliation snapshot. It is read-only:
// reconciliation is driven by the scheduler, never by page loads.
func (m ApiHandler) status(c *gin.Context) {
	holdings, totalProfitLoss, summary, reconciledAt := m.EngineState.HoldingsSnapshot()

	out := StatusResponse{
		Holdings:            []HoldingResponse{},
		TotalProfitLoss:     totalProfitLoss.InexactFloat64(),
		MeanPercentChange:   summary.MeanPercentChange,
		MedianPercentChange: summary.MedianPercentChange,
	}
	if !reconciledAt.IsZero() {
		ts := reconciledAt.Format(time.RFC3339)
		out.ReconciledAt = &ts
	}
	for _, h := range holdings {
		out.Holdings = append(out.Holdings, HoldingResponse{
			Symbol:          h.Symbol,
			Quantity:        h.Quantity,
			CostPrice:       h.CostPrice.InexactFloat64(),
			LastTradedPrice: h.LastTradedPrice.InexactFloat64(),
			ProfitLoss:      h.ProfitLoss.InexactFloat64(),
			MarketValue:     h.MarketValue.InexactFloat64(),
			PercentChange:   h.PercentChange.InexactFloat64(),
		})
	}

	c.JSON(200, out)
}
