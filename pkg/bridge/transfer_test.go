package bridge

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stargate-bridger/config"
	"stargate-bridger/pkg/chains"
	"stargate-bridger/pkg/wallet"
)

func TestNewTransferResolvesRouteEnds(t *testing.T) {
	registry, err := chains.Connect()
	require.NoError(t, err)
	defer registry.Close()

	for _, code := range chains.Modes() {
		route, err := chains.ResolveMode(code)
		require.NoError(t, err)

		transfer, err := NewTransfer(registry, route)
		require.NoError(t, err, "route %s", code)

		assert.NotEqual(t, transfer.Source.Name, transfer.Dest.Name)
		assert.Equal(t, route.SourceToken, transfer.Binding.Symbol)
		assert.Equal(t, route.DestToken, transfer.DstBinding.Symbol)

		// Pool ids must match the token choices on both ends of the route.
		if route.SourceToken == "USDT" {
			assert.Equal(t, int64(2), transfer.Binding.PoolID.Int64())
		} else {
			assert.Equal(t, int64(1), transfer.Binding.PoolID.Int64())
		}
		if route.DestToken == "USDT" {
			assert.Equal(t, int64(2), transfer.DstBinding.PoolID.Int64())
		} else {
			assert.Equal(t, int64(1), transfer.DstBinding.PoolID.Int64())
		}
	}
}

func TestTransferTaskCarriesPolicyAndRoute(t *testing.T) {
	registry, err := chains.Connect()
	require.NoError(t, err)
	defer registry.Close()

	route, err := chains.ResolveMode("pb")
	require.NoError(t, err)
	transfer, err := NewTransfer(registry, route)
	require.NoError(t, err)

	w, err := wallet.FromKey(testKey)
	require.NoError(t, err)

	cfg := &config.Config{
		AmountToSwap:   120,
		Slippage:       0.005,
		StartJitterMin: time.Second,
		StartJitterMax: 200 * time.Second,
		PollInterval:   30 * time.Second,
	}

	task := transfer.Task(w, cfg, zerolog.Nop())

	assert.Equal(t, "POLYGON", task.FromChain)
	assert.Equal(t, "BSC", task.ToChain)
	assert.Equal(t, "USDC", task.Token)
	assert.Equal(t, uint16(102), task.DstChainID)
	assert.Equal(t, int64(1), task.SrcPoolID.Int64())
	assert.Equal(t, int64(2), task.DstPoolID.Int64())
	assert.Equal(t, 120, task.Policy.AmountUnits)
	assert.Equal(t, 30*time.Second, task.Policy.PollInterval)
	assert.NotNil(t, task.Submitter)
	assert.NotNil(t, task.TokenReader)
}
