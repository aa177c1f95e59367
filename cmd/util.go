package cmd

import (
	"fmt"
	"time"

	"sureshot/api"
	"sureshot/internal/app"
	"sureshot/internal/repository"
	"sureshot/internal/service"
	"sureshot/internal/state"
	"sureshot/internal/util"
)

func InitializeDependencies() (*api.ApiHandler, *app.SchedulerHandler, *util.Config, error) {
	config, err := util.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	engineState := state.NewEngineState()

	brokerageRepository := repository.NewAlpacaRepository(
		config.Alpaca.ApiKey,
		config.Alpaca.ApiSecret,
		config.Alpaca.Endpoint,
	)
	screenerRepository := repository.NewScreenerRepository(
		time.Duration(config.Screener.RequestTimeoutSeconds)*time.Second,
		config.Screener.RequestsPerSecond,
	)
	quoteRepository := repository.NewQuoteRepository()

	orderDispatcher, err := service.NewOrderDispatcher(
		brokerageRepository,
		quoteRepository,
		engineState,
		service.DispatcherConfig{
			SizingMode:    service.BuySizingMode(config.Engine.BuySizingMode),
			FixedQuantity: config.Engine.FixedQuantity,
			Budget:        config.Engine.BudgetPerBuy,
		},
	)
	if err != nil {
		return nil, nil, nil, err
	}

	holdingsReconciler := service.NewHoldingsReconciler(
		brokerageRepository,
		orderDispatcher,
		engineState,
		config.Engine.ExitThresholdPercent,
	)
	candidateScanner := service.NewCandidateScanner(
		screenerRepository,
		orderDispatcher,
		engineState,
		config.Screener.SourceURLs,
	)

	schedulerHandler := &app.SchedulerHandler{
		HoldingsReconciler: holdingsReconciler,
		CandidateScanner:   candidateScanner,
		ReconcileInterval:  time.Duration(config.Engine.ReconcileIntervalSeconds) * time.Second,
		ScanInterval:       time.Duration(config.Engine.ScanIntervalSeconds) * time.Second,
		ScanDailyAt:        config.Engine.ScanDailyAt,
		Timezone:           config.Engine.Timezone,
	}

	apiHandler := &api.ApiHandler{
		EngineState: engineState,
	}

	return apiHandler, schedulerHandler, config, nil
}
