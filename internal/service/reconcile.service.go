package service

import (
	"context"
	"sort"
	"time"

	"sureshot/internal/domain"
	"sureshot/internal/logger"
	"sureshot/internal/repository"
	"sureshot/internal/state"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// HoldingsReconciler rebuilds the holdings snapshot from the brokerage on
// every cycle, merges duplicate-symbol line items, and exits positions whose
// percent change is strictly above the configured threshold.
type HoldingsReconciler interface {
	Reconcile(ctx context.Context) decimal.Decimal
}

func NewHoldingsReconciler(
	brokerageRepository repository.BrokerageRepository,
	orderDispatcher OrderDispatcher,
	engineState *state.EngineState,
	exitThresholdPercent decimal.Decimal,
) HoldingsReconciler {
	return holdingsReconcilerHandler{
		BrokerageRepository:  brokerageRepository,
		OrderDispatcher:      orderDispatcher,
		EngineState:          engineState,
		ExitThresholdPercent: exitThresholdPercent,
	}
}

type holdingsReconcilerHandler struct {
	BrokerageRepository  repository.BrokerageRepository
	OrderDispatcher      OrderDispatcher
	EngineState          *state.EngineState
	ExitThresholdPercent decimal.Decimal
}

// Reconcile returns the rounded total P/L over all original line items. A
// brokerage transport failure degrades to zero and leaves the previous
// snapshot untouched; a malformed line item is skipped, not fatal.
func (h holdingsReconcilerHandler) Reconcile(ctx context.Context) decimal.Decimal {
	log := logger.FromContext(ctx)

	raw, err := h.BrokerageRepository.GetHoldings()
	if err != nil {
		log.Errorw("holdings fetch failed", "error", err)
		return decimal.Zero
	}

	totalProfitLoss := decimal.Zero
	merged := []*domain.Holding{}
	bySymbol := map[string]*domain.Holding{}

	for _, r := range raw {
		if !domain.IsValidSymbol(r.Symbol) {
			continue
		}
		symbol := domain.CleanSymbol(r.Symbol)
		costPrice := domain.RoundTwo(r.CostPrice)
		lastTraded := domain.RoundTwo(r.LastTradedPrice)
		profitLoss := domain.RoundTwo(r.ProfitLoss)
		marketValue := domain.RoundTwo(r.MarketValue)

		percentChange, err := domain.PercentChange(costPrice, lastTraded)
		if err != nil {
			log.Warnw("skipping holding line item", "symbol", symbol, "error", err)
			continue
		}

		// pre-merge sum: every surviving line item counts individually
		totalProfitLoss = totalProfitLoss.Add(profitLoss)

		if existing, ok := bySymbol[symbol]; ok {
			existing.Quantity += r.Quantity
			existing.ProfitLoss = existing.ProfitLoss.Add(profitLoss)
			existing.MarketValue = existing.MarketValue.Add(marketValue)
			// last write wins on prices, not volume-weighted
			existing.CostPrice = costPrice
			existing.LastTradedPrice = lastTraded
			existing.PercentChange = percentChange
			continue
		}

		holding := &domain.Holding{
			Symbol:          symbol,
			Quantity:        r.Quantity,
			CostPrice:       costPrice,
			LastTradedPrice: lastTraded,
			ProfitLoss:      profitLoss,
			MarketValue:     marketValue,
			PercentChange:   percentChange,
		}
		bySymbol[symbol] = holding
		merged = append(merged, holding)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PercentChange.LessThan(merged[j].PercentChange)
	})

	for _, holding := range merged {
		if holding.PercentChange.GreaterThan(h.ExitThresholdPercent) && !h.EngineState.HasSold(holding.Symbol) {
			h.OrderDispatcher.Dispatch(ctx, DispatchInput{
				Symbol:   holding.Symbol,
				Side:     domain.OrderSideSell,
				Quantity: holding.Quantity,
			})
		}
	}

	snapshot := make([]domain.Holding, 0, len(merged))
	for _, holding := range merged {
		snapshot = append(snapshot, *holding)
	}

	total := domain.RoundTwo(totalProfitLoss)
	h.EngineState.SetHoldings(snapshot, total, summarize(snapshot), time.Now().UTC())

	log.Infow("reconciliation complete",
		"holdings", len(snapshot), "totalProfitLoss", total.InexactFloat64())
	return total
}

func summarize(holdings []domain.Holding) domain.HoldingsSummary {
	if len(holdings) == 0 {
		return domain.HoldingsSummary{}
	}

	percentChanges := make([]float64, 0, len(holdings))
	for _, h := range holdings {
		percentChanges = append(percentChanges, h.PercentChange.InexactFloat64())
	}

	mean, _ := stats.Mean(percentChanges)
	median, _ := stats.Median(percentChanges)
	return domain.HoldingsSummary{
		MeanPercentChange:   mean,
		MedianPercentChange: median,
	}
}
