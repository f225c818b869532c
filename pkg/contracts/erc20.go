package contracts

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// ERC20 is a read/write wrapper around a standard token contract.
type ERC20 struct {
	client  *ethclient.Client
	address common.Address
}

// NewERC20 creates a wrapper for the token at the given address.
func NewERC20(client *ethclient.Client, address common.Address) *ERC20 {
	return &ERC20{client: client, address: address}
}

// Address returns the token contract address.
func (t *ERC20) Address() common.Address {
	return t.address
}

var parsedERC20ABI = mustParseABI(erc20ABI)

func (t *ERC20) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	data, err := parsedERC20ABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s data: %w", method, err)
	}

	result, err := t.client.CallContract(ctx, ethereum.CallMsg{To: &t.address, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}

	values, err := parsedERC20ABI.Unpack(method, result)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return values, nil
}

// Decimals returns the token's decimal count.
func (t *ERC20) Decimals(ctx context.Context) (uint8, error) {
	values, err := t.call(ctx, "decimals")
	if err != nil {
		return 0, err
	}
	return values[0].(uint8), nil
}

// Symbol returns the token's ticker symbol.
func (t *ERC20) Symbol(ctx context.Context) (string, error) {
	values, err := t.call(ctx, "symbol")
	if err != nil {
		return "", err
	}
	return values[0].(string), nil
}

// BalanceOf returns the token balance held by owner.
func (t *ERC20) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	values, err := t.call(ctx, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}

// Allowance returns the amount spender may move on behalf of owner.
func (t *ERC20) Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error) {
	values, err := t.call(ctx, "allowance", owner, spender)
	if err != nil {
		return nil, err
	}
	return values[0].(*big.Int), nil
}

// Approve grants spender the right to move amount tokens of the signer.
func (t *ERC20) Approve(
	ctx context.Context,
	key *ecdsa.PrivateKey,
	spender common.Address,
	amount *big.Int,
	opts TxOpts,
) (common.Hash, error) {
	data, err := parsedERC20ABI.Pack("approve", spender, amount)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to pack approve data: %w", err)
	}
	return transact(ctx, t.client, key, t.address, data, opts)
}
