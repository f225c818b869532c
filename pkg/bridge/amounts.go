package bridge

import (
	"context"
	"fmt"
	"math/big"
)

// Amounts converts a whole-unit swap amount into the token's smallest
// denomination and derives the slippage-adjusted minimum acceptable amount
// on the destination side.
func Amounts(ctx context.Context, token TokenReader, units int, slippage float64) (amountIn, minAmountOut *big.Int, err error) {
	decimals, err := token.Decimals(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get token decimals: %w", err)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	amountIn = new(big.Int).Mul(big.NewInt(int64(units)), scale)

	// Deduct the rounded slippage cut instead of scaling by (1 - slippage)
	// to keep the result exact at stable-token magnitudes.
	cut := new(big.Float).Mul(new(big.Float).SetInt(amountIn), big.NewFloat(slippage))
	cut.Add(cut, big.NewFloat(0.5))
	cutInt, _ := cut.Int(nil)
	minAmountOut = new(big.Int).Sub(amountIn, cutInt)

	return amountIn, minAmountOut, nil
}
