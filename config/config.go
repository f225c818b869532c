package config

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration. It is built once by Load and
// treated as read-only afterwards; every component receives it explicitly.
type Config struct {
	// PrivateKeys is the list of wallet private keys the batch operates on.
	PrivateKeys []string

	// AmountMin/AmountMax bound the bridged amount in whole token units.
	// AmountToSwap is drawn uniformly from that range once per invocation.
	AmountMin    int
	AmountMax    int
	AmountToSwap int

	// Slippage is the accepted loss fraction on the destination amount.
	Slippage float64

	// StartJitterMin/Max bound the random per-wallet startup delay.
	StartJitterMin time.Duration
	StartJitterMax time.Duration

	// PollInterval is the source-chain balance polling period.
	PollInterval time.Duration

	// WaitTimeout bounds the balance wait loop. Zero means wait forever,
	// matching the historical behavior.
	WaitTimeout time.Duration

	// Times is the number of full transfer cycles the cycle command runs.
	Times int

	// RefuelUSD is the dollar value of native gas sent by the refuel command.
	RefuelUSD float64
}

// Load reads configuration from environment variables and an optional config
// file. Private keys are sourced from the BRIDGER_PRIVATE_KEYS variable as a
// comma separated list (a .env file is loaded by main before this runs).
func Load() (*Config, error) {
	viper.SetConfigName(".stargate-bridger")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	viper.SetDefault("amount_min", 100)
	viper.SetDefault("amount_max", 150)
	viper.SetDefault("slippage", 0.005)
	viper.SetDefault("start_jitter_min_seconds", 1)
	viper.SetDefault("start_jitter_max_seconds", 200)
	viper.SetDefault("poll_interval_seconds", 30)
	viper.SetDefault("wait_timeout_seconds", 0)
	viper.SetDefault("times", 1)
	viper.SetDefault("refuel_usd", 10)

	viper.SetEnvPrefix("BRIDGER")
	viper.AutomaticEnv()

	// Config file is optional
	_ = viper.ReadInConfig()

	cfg := &Config{
		PrivateKeys:    splitKeys(viper.GetString("private_keys")),
		AmountMin:      viper.GetInt("amount_min"),
		AmountMax:      viper.GetInt("amount_max"),
		Slippage:       viper.GetFloat64("slippage"),
		StartJitterMin: time.Duration(viper.GetInt("start_jitter_min_seconds")) * time.Second,
		StartJitterMax: time.Duration(viper.GetInt("start_jitter_max_seconds")) * time.Second,
		PollInterval:   time.Duration(viper.GetInt("poll_interval_seconds")) * time.Second,
		WaitTimeout:    time.Duration(viper.GetInt("wait_timeout_seconds")) * time.Second,
		Times:          viper.GetInt("times"),
		RefuelUSD:      viper.GetFloat64("refuel_usd"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.AmountToSwap = cfg.AmountMin
	if cfg.AmountMax > cfg.AmountMin {
		cfg.AmountToSwap = cfg.AmountMin + rand.Intn(cfg.AmountMax-cfg.AmountMin+1)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.PrivateKeys) == 0 {
		return fmt.Errorf("no wallets configured. Please set BRIDGER_PRIVATE_KEYS (comma separated private keys) or add private_keys to a .stargate-bridger.yaml config file")
	}
	if c.AmountMin <= 0 || c.AmountMax < c.AmountMin {
		return fmt.Errorf("invalid amount range [%d, %d]", c.AmountMin, c.AmountMax)
	}
	if c.Slippage < 0 || c.Slippage >= 1 {
		return fmt.Errorf("slippage must be in [0, 1), got %v", c.Slippage)
	}
	if c.StartJitterMin < 0 || c.StartJitterMax < c.StartJitterMin {
		return fmt.Errorf("invalid start jitter range [%s, %s]", c.StartJitterMin, c.StartJitterMax)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	if c.Times < 1 {
		return fmt.Errorf("times must be at least 1, got %d", c.Times)
	}
	return nil
}

func splitKeys(raw string) []string {
	keys := make([]string, 0)
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		if key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}
