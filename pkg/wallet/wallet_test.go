package wallet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromKeyDerivesAddress(t *testing.T) {
	// Hardhat's first well-known development key pair.
	w, err := FromKey("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	assert.Equal(t, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", w.Address.Hex())
}

func TestFromKeyAcceptsBarePrefix(t *testing.T) {
	withPrefix, err := FromKey("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)
	withoutPrefix, err := FromKey("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	require.NoError(t, err)

	assert.Equal(t, withPrefix.Address, withoutPrefix.Address)
}

func TestFromKeyRejectsGarbage(t *testing.T) {
	_, err := FromKey("not-a-key")
	assert.Error(t, err)
}

func TestFromKeysReportsOffendingWallet(t *testing.T) {
	_, err := FromKeys([]string{
		"0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
		"bogus",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wallet 2")
}

func TestGenerateRoundTrips(t *testing.T) {
	w, privateKey, err := Generate()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(privateKey, "0x"))

	parsed, err := FromKey(privateKey)
	require.NoError(t, err)
	assert.Equal(t, w.Address, parsed.Address)
}
