package contracts

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var parsedRefuelABI = mustParseABI(refuelABI)

// Refuel wraps a Socket gas mover (Bungee refuel) contract.
type Refuel struct {
	client  *ethclient.Client
	address common.Address
}

// NewRefuel creates a wrapper for the refuel contract at the given address.
func NewRefuel(client *ethclient.Client, address common.Address) *Refuel {
	return &Refuel{client: client, address: address}
}

// DepositNativeToken sends amountWei of the source chain's native asset to
// be delivered as gas on the destination chain.
func (r *Refuel) DepositNativeToken(
	ctx context.Context,
	key *ecdsa.PrivateKey,
	destinationChainID *big.Int,
	to common.Address,
	amountWei *big.Int,
	opts TxOpts,
) (common.Hash, error) {
	data, err := parsedRefuelABI.Pack("depositNativeToken", destinationChainID, to)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack depositNativeToken data: %w", err)
	}

	opts.Value = amountWei
	return transact(ctx, r.client, key, r.address, data, opts)
}
