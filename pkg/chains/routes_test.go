package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTableCoversAllOrderedPairs(t *testing.T) {
	require.NoError(t, validateRouteTable())
	assert.Len(t, routeTable, 12)

	seen := make(map[string]bool)
	for _, code := range Modes() {
		route, err := ResolveMode(code)
		require.NoError(t, err)

		assert.NotEqual(t, route.Source, route.Dest, "route %s maps a chain to itself", code)
		seen[route.Source+"-"+route.Dest] = true
	}
	assert.Len(t, seen, 12)
}

func TestRouteTokenSelection(t *testing.T) {
	for _, code := range Modes() {
		route, err := ResolveMode(code)
		require.NoError(t, err)

		// BSC only carries a USDT pool; every other chain bridges USDC.
		if route.Source == "bsc" {
			assert.Equal(t, "USDT", route.SourceToken, "route %s", code)
		} else {
			assert.Equal(t, "USDC", route.SourceToken, "route %s", code)
		}
		if route.Dest == "bsc" {
			assert.Equal(t, "USDT", route.DestToken, "route %s", code)
		} else {
			assert.Equal(t, "USDC", route.DestToken, "route %s", code)
		}

		// The selected tokens must exist on both chain specs.
		_, ok := specs[route.Source].Tokens[route.SourceToken]
		assert.True(t, ok, "route %s: %s missing on %s", code, route.SourceToken, route.Source)
		_, ok = specs[route.Dest].Tokens[route.DestToken]
		assert.True(t, ok, "route %s: %s missing on %s", code, route.DestToken, route.Dest)
	}
}

func TestResolveModeRejectsUnknownCodes(t *testing.T) {
	_, err := ResolveMode("")
	assert.Error(t, err)

	_, err = ResolveMode("pp")
	assert.Error(t, err)

	_, err = ResolveMode("xy")
	assert.Error(t, err)
}

func TestResolveModeNormalizesInput(t *testing.T) {
	route, err := ResolveMode("  PF ")
	require.NoError(t, err)
	assert.Equal(t, "polygon-fantom", route.Describe())
}

func TestPoolIDsMatchTokens(t *testing.T) {
	assert.Equal(t, int64(1), poolIDs["USDC"])
	assert.Equal(t, int64(2), poolIDs["USDT"])
}
