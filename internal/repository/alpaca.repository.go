package repository

import (
	"fmt"

	"sureshot/internal/domain"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BrokerageRepository is the engine's view of the brokerage account. Order
// placement success is determined solely by the absence of an error from the
// call; the response body is not inspected.
type BrokerageRepository interface {
	GetHoldings() ([]domain.RawHolding, error)
	PlaceOrder(req PlaceOrderRequest) error
}

func NewAlpacaRepository(apiKey, apiSecret, endpoint string) BrokerageRepository {
	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:     apiKey,
		APISecret:  apiSecret,
		BaseURL:    endpoint,
		RetryLimit: 3,
	})

	return &alpacaRepositoryHandler{
		Client: client,
	}
}

type alpacaRepositoryHandler struct {
	Client *alpaca.Client
}

func (h alpacaRepositoryHandler) GetHoldings() ([]domain.RawHolding, error) {
	positions, err := h.Client.GetPositions()
	if err != nil {
		return nil, fmt.Errorf("get holdings: %w", err)
	}

	out := make([]domain.RawHolding, 0, len(positions))
	for _, p := range positions {
		out = append(out, domain.RawHolding{
			Symbol:          p.Symbol,
			Quantity:        p.Qty.IntPart(),
			CostPrice:       p.AvgEntryPrice,
			LastTradedPrice: derefDecimal(p.CurrentPrice),
			ProfitLoss:      derefDecimal(p.UnrealizedPL),
			MarketValue:     derefDecimal(p.MarketValue),
		})
	}
	return out, nil
}

type PlaceOrderRequest struct {
	ClientOrderID uuid.UUID
	Symbol        string
	Quantity      decimal.Decimal
	Side          domain.OrderSide
}

func (r PlaceOrderRequest) isValid() error {
	if r.Quantity.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("quantity is <= 0, order of |%s %s| not sent", r.Quantity.String(), r.Side)
	}
	return nil
}

// PlaceOrder submits an immediate market order, good for the day, against
// the cash (carry-forward) account.
func (h alpacaRepositoryHandler) PlaceOrder(req PlaceOrderRequest) error {
	if err := req.isValid(); err != nil {
		return fmt.Errorf("invalid input to submit order %s: %w", req.ClientOrderID.String(), err)
	}

	side := alpaca.Buy
	if req.Side == domain.OrderSideSell {
		side = alpaca.Sell
	}

	_, err := h.Client.PlaceOrder(alpaca.PlaceOrderRequest{
		Symbol:        req.Symbol,
		Qty:           &req.Quantity,
		Side:          side,
		Type:          alpaca.Market,
		TimeInForce:   alpaca.Day,
		ClientOrderID: req.ClientOrderID.String(),
	})
	if err != nil {
		return fmt.Errorf("order %s %s %s failed: %w", req.Side, req.Symbol, req.Quantity.String(), err)
	}

	return nil
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
