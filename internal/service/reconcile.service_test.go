package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"sureshot/internal/domain"
	"sureshot/internal/repository"
	mock_repository "sureshot/internal/repository/mocks"
	"sureshot/internal/state"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReconciler(t *testing.T, exitThresholdPercent decimal.Decimal) (holdingsReconcilerHandler, *mock_repository.MockBrokerageRepository, *state.EngineState) {
	t.Helper()
	ctrl := gomock.NewController(t)
	brokerage := mock_repository.NewMockBrokerageRepository(ctrl)
	engineState := state.NewEngineState()

	dispatcher := orderDispatcherHandler{
		BrokerageRepository: brokerage,
		EngineState:         engineState,
		Config: DispatcherConfig{
			SizingMode:    BuySizingFixed,
			FixedQuantity: 1,
		},
	}

	return holdingsReconcilerHandler{
		BrokerageRepository:  brokerage,
		OrderDispatcher:      dispatcher,
		EngineState:          engineState,
		ExitThresholdPercent: exitThresholdPercent,
	}, brokerage, engineState
}

func rawHolding(symbol string, qty int64, cost, ltp, pl, marketValue float64) domain.RawHolding {
	return domain.RawHolding{
		Symbol:          symbol,
		Quantity:        qty,
		CostPrice:       decimal.NewFromFloat(cost),
		LastTradedPrice: decimal.NewFromFloat(ltp),
		ProfitLoss:      decimal.NewFromFloat(pl),
		MarketValue:     decimal.NewFromFloat(marketValue),
	}
}

func TestReconcile_MergesDuplicateLotsAndSumsPreMerge(t *testing.T) {
	// threshold far above any gain so no sell fires
	handler, brokerage, engineState := newTestReconciler(t, decimal.NewFromInt(1000))

	brokerage.EXPECT().GetHoldings().Return([]domain.RawHolding{
		rawHolding("NSE:TCS-EQ", 10, 100, 110, 100, 1100),
		rawHolding("INFY", 5, 200, 190, -50, 950),
		rawHolding("NSE:TCS-EQ", 4, 105, 110, 20, 440),
	}, nil)

	total := handler.Reconcile(context.Background())

	// pre-merge sum: 100 - 50 + 20
	require.Equal(t, "70", total.String())

	holdings, storedTotal, _, reconciledAt := engineState.HoldingsSnapshot()
	require.Equal(t, "70", storedTotal.String())
	require.False(t, reconciledAt.IsZero())
	require.Len(t, holdings, 2)

	// ascending percentChange: INFY (-5%) before TCS
	require.Equal(t, "INFY", holdings[0].Symbol)
	require.Equal(t, "TCS", holdings[1].Symbol)

	merged := holdings[1]
	require.Equal(t, int64(14), merged.Quantity)
	require.Equal(t, "120", merged.ProfitLoss.String())
	require.Equal(t, "1540", merged.MarketValue.String())
	// last write wins on prices
	require.Equal(t, "105", merged.CostPrice.String())
	require.Equal(t, "4.76", merged.PercentChange.String())
}

func TestReconcile_SellsStrictlyAboveThreshold(t *testing.T) {
	handler, brokerage, engineState := newTestReconciler(t, decimal.NewFromInt(2))

	brokerage.EXPECT().GetHoldings().Return([]domain.RawHolding{
		rawHolding("AAA", 10, 100, 102, 20, 1020),    // exactly 2.00, not sold
		rawHolding("BBB", 7, 100, 102.01, 14.07, 714), // 2.01, sold
	}, nil)

	brokerage.EXPECT().PlaceOrder(gomock.Any()).DoAndReturn(func(req repository.PlaceOrderRequest) error {
		require.Equal(t, "BBB", req.Symbol)
		require.Equal(t, domain.OrderSideSell, req.Side)
		require.True(t, req.Quantity.Equal(decimal.NewFromInt(7)), "full exit, got %s", req.Quantity.String())
		return nil
	})

	handler.Reconcile(context.Background())
	require.True(t, engineState.HasSold("BBB"))
	require.False(t, engineState.HasSold("AAA"))
}

func TestReconcile_SellsAtMostOnceAcrossCycles(t *testing.T) {
	handler, brokerage, _ := newTestReconciler(t, decimal.NewFromInt(2))

	brokerage.EXPECT().GetHoldings().Return([]domain.RawHolding{
		rawHolding("BBB", 7, 100, 110, 70, 770),
	}, nil).Times(3)
	brokerage.EXPECT().PlaceOrder(gomock.Any()).Return(nil).Times(1)

	for i := 0; i < 3; i++ {
		handler.Reconcile(context.Background())
	}
}

func TestReconcile_TransportFailureDegradesToZero(t *testing.T) {
	handler, brokerage, engineState := newTestReconciler(t, decimal.NewFromInt(2))

	previous := []domain.Holding{{Symbol: "TCS", Quantity: 10}}
	previousAt := time.Now().Add(-time.Minute)
	engineState.SetHoldings(previous, decimal.NewFromInt(55), domain.HoldingsSummary{}, previousAt)

	brokerage.EXPECT().GetHoldings().Return(nil, fmt.Errorf("connection reset"))

	total := handler.Reconcile(context.Background())
	require.True(t, total.IsZero())

	// previous snapshot untouched
	holdings, storedTotal, _, reconciledAt := engineState.HoldingsSnapshot()
	require.Equal(t, previous, holdings)
	require.Equal(t, "55", storedTotal.String())
	require.Equal(t, previousAt, reconciledAt)
}

func TestReconcile_SkipsInvalidAndZeroCostItems(t *testing.T) {
	handler, brokerage, engineState := newTestReconciler(t, decimal.NewFromInt(1000))

	brokerage.EXPECT().GetHoldings().Return([]domain.RawHolding{
		rawHolding("NIFTY", 1, 100, 110, 10, 110),  // index, filtered out
		rawHolding("", 1, 100, 110, 10, 110),       // empty symbol
		rawHolding("FREEBIE", 1, 0, 10, 10, 10),    // zero cost, skipped
		rawHolding("TCS", 2, 100, 101, 2, 202),
	}, nil)

	total := handler.Reconcile(context.Background())
	require.Equal(t, "2", total.String())

	holdings, _, _, _ := engineState.HoldingsSnapshot()
	require.Len(t, holdings, 1)
	require.Equal(t, "TCS", holdings[0].Symbol)
}

func TestReconcile_StopLossVariant(t *testing.T) {
	// a negative threshold exits everything above the stop-loss floor
	handler, brokerage, engineState := newTestReconciler(t, decimal.NewFromInt(-15))

	brokerage.EXPECT().GetHoldings().Return([]domain.RawHolding{
		rawHolding("DOWNALOT", 3, 100, 80, -60, 240), // -20%, kept
		rawHolding("FLAT", 4, 100, 100, 0, 400),      // 0%, sold
	}, nil)

	brokerage.EXPECT().PlaceOrder(gomock.Any()).DoAndReturn(func(req repository.PlaceOrderRequest) error {
		require.Equal(t, "FLAT", req.Symbol)
		return nil
	})

	handler.Reconcile(context.Background())
	require.True(t, engineState.HasSold("FLAT"))
	require.False(t, engineState.HasSold("DOWNALOT"))
}
