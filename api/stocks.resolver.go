package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

type StockResponse struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"currentPrice"`
	DiscoveredAt string  `json:"discoveredAt"`
}

// listStocks returns the discovered-candidate list. Read-only, no side
// effects.
func (m ApiHandler) listStocks(c *gin.Context) {
	candidates := m.EngineState.Candidates()

	out := []StockResponse{}
	for _, candidate := range candidates {
		out = append(out, StockResponse{
			Symbol:       candidate.Symbol,
			Name:         candidate.Name,
			CurrentPrice: candidate.CurrentPrice.InexactFloat64(),
			DiscoveredAt: candidate.DiscoveredAt.Format(time.RFC3339),
		})
	}

	c.JSON(200, out)
}

// exportStocks serves the same list as a CSV download.
func (m ApiHandler) exportStocks(c *gin.Context) {
	candidates := m.EngineState.Candidates()

	csv, err := gocsv.MarshalString(&candidates)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="stocks.csv"`)
	c.Data(200, "text/csv", []byte(csv))
}
