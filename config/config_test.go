package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BRIDGER_PRIVATE_KEYS", testKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{testKey}, cfg.PrivateKeys)
	assert.Equal(t, 100, cfg.AmountMin)
	assert.Equal(t, 150, cfg.AmountMax)
	assert.InDelta(t, 0.005, cfg.Slippage, 1e-9)
	assert.Equal(t, time.Second, cfg.StartJitterMin)
	assert.Equal(t, 200*time.Second, cfg.StartJitterMax)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Zero(t, cfg.WaitTimeout)
	assert.Equal(t, 1, cfg.Times)

	assert.GreaterOrEqual(t, cfg.AmountToSwap, cfg.AmountMin)
	assert.LessOrEqual(t, cfg.AmountToSwap, cfg.AmountMax)
}

func TestLoadSplitsMultipleKeys(t *testing.T) {
	t.Setenv("BRIDGER_PRIVATE_KEYS", testKey+" , "+testKey+",")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Len(t, cfg.PrivateKeys, 2)
}

func TestLoadFailsWithoutWallets(t *testing.T) {
	t.Setenv("BRIDGER_PRIVATE_KEYS", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no wallets configured")
}

func TestLoadRejectsBadAmountRange(t *testing.T) {
	t.Setenv("BRIDGER_PRIVATE_KEYS", testKey)
	t.Setenv("BRIDGER_AMOUNT_MIN", "200")
	t.Setenv("BRIDGER_AMOUNT_MAX", "100")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount range")
}

func TestLoadRejectsBadSlippage(t *testing.T) {
	t.Setenv("BRIDGER_PRIVATE_KEYS", testKey)
	t.Setenv("BRIDGER_SLIPPAGE", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slippage")
}

func TestLoadAppliesOverrides(t *testing.T) {
	t.Setenv("BRIDGER_PRIVATE_KEYS", testKey)
	t.Setenv("BRIDGER_POLL_INTERVAL_SECONDS", "5")
	t.Setenv("BRIDGER_WAIT_TIMEOUT_SECONDS", "600")
	t.Setenv("BRIDGER_AMOUNT_MIN", "10")
	t.Setenv("BRIDGER_AMOUNT_MAX", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 10*time.Minute, cfg.WaitTimeout)
	assert.Equal(t, 10, cfg.AmountToSwap)
}
