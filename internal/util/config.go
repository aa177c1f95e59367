package util

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

type Config struct {
	ListenPort int            `json:"listenPort"`
	Alpaca     AlpacaConfig   `json:"alpaca"`
	Screener   ScreenerConfig `json:"screener"`
	Engine     EngineConfig   `json:"engine"`
}

type AlpacaConfig struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type ScreenerConfig struct {
	SourceURLs            []string `json:"sourceUrls"`
	RequestTimeoutSeconds int      `json:"requestTimeoutSeconds"`
	RequestsPerSecond     float64  `json:"requestsPerSecond"`
}

type EngineConfig struct {
	// ExitThresholdPercent is the percentChange boundary past which a
	// position is exited; the comparison is strict >. Positive values give
	// take-profit behavior, negative values stop-loss-and-above.
	ExitThresholdPercent decimal.Decimal `json:"exitThresholdPercent"`

	// BuySizingMode is "fixed" or "budget".
	BuySizingMode string          `json:"buySizingMode"`
	FixedQuantity int64           `json:"fixedQuantity"`
	BudgetPerBuy  decimal.Decimal `json:"budgetPerBuy"`

	ReconcileIntervalSeconds int `json:"reconcileIntervalSeconds"`
	ScanIntervalSeconds      int `json:"scanIntervalSeconds"`
	// ScanDailyAt ("HH:MM") switches the scan trigger to a daily calendar
	// time; leave empty for interval mode.
	ScanDailyAt string `json:"scanDailyAt"`
	Timezone    string `json:"timezone"`
}

func LoadConfig() (*Config, error) {
	configFile := "/go/src/app/config.json"
	if os.Getenv("SURESHOT_ENV") == "dev" {
		configFile = "config-dev.json"
	} else if os.Getenv("SURESHOT_ENV") == "test" {
		configFile = "config-test.json"
	}
	f, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", configFile, err)
	}

	config := Config{}
	err = json.Unmarshal(f, &config)
	if err != nil {
		return nil, err
	}
	config.applyDefaults()

	if len(config.Screener.SourceURLs) == 0 {
		return nil, fmt.Errorf("config has no screener source urls")
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.ListenPort == 0 {
		c.ListenPort = 5001
	}
	if c.Screener.RequestTimeoutSeconds == 0 {
		c.Screener.RequestTimeoutSeconds = 10
	}
	if c.Screener.RequestsPerSecond == 0 {
		c.Screener.RequestsPerSecond = 1
	}
	if c.Engine.ExitThresholdPercent.IsZero() {
		c.Engine.ExitThresholdPercent = decimal.NewFromInt(2)
	}
	if c.Engine.BuySizingMode == "" {
		c.Engine.BuySizingMode = "budget"
	}
	if c.Engine.FixedQuantity == 0 {
		c.Engine.FixedQuantity = 1
	}
	if c.Engine.BudgetPerBuy.IsZero() {
		c.Engine.BudgetPerBuy = decimal.NewFromInt(5000)
	}
	if c.Engine.ReconcileIntervalSeconds == 0 {
		c.Engine.ReconcileIntervalSeconds = 60
	}
	if c.Engine.ScanIntervalSeconds == 0 {
		c.Engine.ScanIntervalSeconds = 180
	}
	if c.Engine.Timezone == "" {
		c.Engine.Timezone = "America/New_York"
	}
}
