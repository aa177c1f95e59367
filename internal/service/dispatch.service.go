package service

import (
	"context"
	"fmt"

	"sureshot/internal/domain"
	"sureshot/internal/logger"
	"sureshot/internal/repository"
	"sureshot/internal/state"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BuySizingMode string

const (
	// BuySizingFixed submits every buy with a fixed unit quantity.
	BuySizingFixed BuySizingMode = "fixed"
	// BuySizingBudget sizes every buy as floor(budget / currentPrice).
	BuySizingBudget BuySizingMode = "budget"
)

// OrderDispatcher turns a buy/sell decision into a brokerage order, enforcing
// at-most-once-per-symbol semantics for each side. Dispatch never returns an
// error: any failure is logged and surfaces as submitted=false.
type OrderDispatcher interface {
	Dispatch(ctx context.Context, input DispatchInput) bool
}

type DispatchInput struct {
	Symbol string
	Side   domain.OrderSide

	// Quantity is the full held quantity for sells; ignored for buys,
	// which are sized by the configured policy.
	Quantity int64

	// CurrentPrice feeds budget-based buy sizing when known. Zero means
	// unknown; the dispatcher falls back to a live quote.
	CurrentPrice decimal.Decimal
}

type DispatcherConfig struct {
	SizingMode    BuySizingMode
	FixedQuantity int64
	Budget        decimal.Decimal
}

func (c DispatcherConfig) Validate() error {
	switch c.SizingMode {
	case BuySizingFixed:
		if c.FixedQuantity <= 0 {
			return fmt.Errorf("fixed sizing requires a positive quantity, got %d", c.FixedQuantity)
		}
	case BuySizingBudget:
		if c.Budget.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("budget sizing requires a positive budget, got %s", c.Budget.String())
		}
	default:
		return fmt.Errorf("unrecognized buy sizing mode %q", c.SizingMode)
	}
	return nil
}

func NewOrderDispatcher(
	brokerageRepository repository.BrokerageRepository,
	quoteRepository repository.QuoteRepository,
	engineState *state.EngineState,
	config DispatcherConfig,
) (OrderDispatcher, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dispatcher config: %w", err)
	}
	return orderDispatcherHandler{
		BrokerageRepository: brokerageRepository,
		QuoteRepository:     quoteRepository,
		EngineState:         engineState,
		Config:              config,
	}, nil
}

type orderDispatcherHandler struct {
	BrokerageRepository repository.BrokerageRepository
	QuoteRepository     repository.QuoteRepository
	EngineState         *state.EngineState
	Config              DispatcherConfig
}

func (h orderDispatcherHandler) Dispatch(ctx context.Context, input DispatchInput) bool {
	log := logger.FromContext(ctx)

	switch input.Side {
	case domain.OrderSideBuy:
		if h.EngineState.HasBought(input.Symbol) {
			log.Debugw("already bought, skipping", "symbol", input.Symbol)
			return false
		}
	case domain.OrderSideSell:
		if h.EngineState.HasSold(input.Symbol) {
			log.Debugw("already sold, skipping", "symbol", input.Symbol)
			return false
		}
	default:
		log.Errorw("unrecognized order side", "symbol", input.Symbol, "side", input.Side)
		return false
	}

	quantity := input.Quantity
	if input.Side == domain.OrderSideBuy {
		var err error
		quantity, err = h.buyQuantity(input)
		if err != nil {
			log.Errorw("buy sizing failed, order not sent",
				"symbol", input.Symbol, "error", err)
			return false
		}
	}
	if quantity <= 0 {
		log.Errorw("non-positive order quantity, order not sent",
			"symbol", input.Symbol, "side", input.Side, "quantity", quantity)
		return false
	}

	err := h.BrokerageRepository.PlaceOrder(repository.PlaceOrderRequest{
		ClientOrderID: uuid.New(),
		Symbol:        input.Symbol,
		Quantity:      decimal.NewFromInt(quantity),
		Side:          input.Side,
	})
	if err != nil {
		log.Errorw("order placement failed",
			"symbol", input.Symbol, "side", input.Side, "quantity", quantity, "error", err)
		return false
	}

	switch input.Side {
	case domain.OrderSideBuy:
		h.EngineState.MarkBought(input.Symbol)
	case domain.OrderSideSell:
		h.EngineState.MarkSold(input.Symbol)
	}

	log.Infow("order placed",
		"symbol", input.Symbol, "side", input.Side, "quantity", quantity)
	return true
}

// buyQuantity applies the configured sizing policy. Budget sizing needs a
// price: the scraped candidate price when present, otherwise a live quote.
// With no usable price the dispatch fails closed.
func (h orderDispatcherHandler) buyQuantity(input DispatchInput) (int64, error) {
	if h.Config.SizingMode == BuySizingFixed {
		return h.Config.FixedQuantity, nil
	}

	price := input.CurrentPrice
	if price.LessThanOrEqual(decimal.Zero) {
		var err error
		price, err = h.QuoteRepository.LatestPrice(input.Symbol)
		if err != nil {
			return 0, fmt.Errorf("no current price for %s: %w", input.Symbol, err)
		}
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("no current price for %s", input.Symbol)
	}

	return h.Config.Budget.Div(price).IntPart(), nil
}
