// Package refuel tops up destination-chain gas through the Socket (Bungee)
// refuel contracts, sizing the deposit from a dollar target.
package refuel

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"math/rand"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"

	"stargate-bridger/pkg/chains"
	"stargate-bridger/pkg/prices"
	"stargate-bridger/pkg/wallet"
)

const limitsURL = "https://refuel.socket.tech/chains"

// Native assets carry 18 decimals on every supported chain.
var weiPerNative = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

type limitsResponse struct {
	Result []chainLimits `json:"result"`
}

type chainLimits struct {
	ChainID int64   `json:"chainId"`
	Limits  []limit `json:"limits"`
}

type limit struct {
	ChainID   int64  `json:"chainId"`
	IsEnabled bool   `json:"isEnabled"`
	MinAmount string `json:"minAmount"`
	MaxAmount string `json:"maxAmount"`
}

// Service performs refuel transfers between two chains.
type Service struct {
	httpClient *http.Client
	prices     *prices.Client
	limitsURL  string
	log        zerolog.Logger
}

// NewService creates a refuel service.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		prices:     prices.NewClient(),
		limitsURL:  limitsURL,
		log:        log,
	}
}

// Refuel deposits roughly usd worth of the source chain's native asset for
// delivery as gas on the destination chain.
func (s *Service) Refuel(
	ctx context.Context,
	from, to *chains.Profile,
	w *wallet.Wallet,
	usd float64,
) (common.Hash, error) {
	log := s.log.With().Str("wallet", w.Address.Hex()).Logger()
	log.Info().Msgf("REFUEL | starting refuel from %s to %s", from.Name, to.Name)

	price, err := s.prices.TokenPrice(ctx, from.NativeSymbol)
	if err != nil {
		return common.Hash{}, err
	}

	// Random bump of up to 10% so deposits are not uniform across runs.
	amount := usd / price * (1 + rand.Float64()*0.1)
	amountWei := nativeToWei(amount)

	minWei, maxWei, err := s.limits(ctx, from, to)
	if err != nil {
		return common.Hash{}, err
	}
	if err := CheckAmount(amountWei, minWei, maxWei); err != nil {
		return common.Hash{}, fmt.Errorf(
			"transferring %.5f %s from %s is not possible: %w", amount, from.NativeSymbol, from.Name, err,
		)
	}

	// Refuel deposits get double the chain's usual gas budget.
	opts := from.TxOpts()
	opts.GasLimit *= 2

	txHash, err := from.Refuel.DepositNativeToken(ctx, w.PrivateKey, to.NativeChainID, w.Address, amountWei, opts)
	if err != nil {
		return common.Hash{}, fmt.Errorf("refuel deposit failed: %w", err)
	}

	log.Info().Msgf("REFUEL | transaction: %s", from.ExplorerTxURL(txHash))
	return txHash, nil
}

// CheckAmount validates a deposit against the bridge's per-route limits.
func CheckAmount(amountWei, minWei, maxWei *big.Int) error {
	if amountWei.Cmp(minWei) < 0 || amountWei.Cmp(maxWei) > 0 {
		return fmt.Errorf("amount %s wei outside bridge limits [%s, %s]", amountWei, minWei, maxWei)
	}
	return nil
}

// limits fetches the min/max deposit bounds (in wei) for the from→to pair.
func (s *Service) limits(ctx context.Context, from, to *chains.Profile) (minWei, maxWei *big.Int, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.limitsURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build limits request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch refuel limits: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("refuel API returned status code %d", resp.StatusCode)
	}

	var payload limitsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, nil, fmt.Errorf("failed to decode refuel limits: %w", err)
	}

	for _, chain := range payload.Result {
		if chain.ChainID != from.NativeChainID.Int64() {
			continue
		}
		for _, l := range chain.Limits {
			if l.ChainID != to.NativeChainID.Int64() {
				continue
			}
			if !l.IsEnabled {
				return nil, nil, fmt.Errorf("destination chain %s is not enabled for refuel", to.Name)
			}
			return parseLimits(l)
		}
	}
	return nil, nil, fmt.Errorf("no refuel route from %s to %s", from.Name, to.Name)
}

func parseLimits(l limit) (minWei, maxWei *big.Int, err error) {
	minWei, ok := new(big.Int).SetString(l.MinAmount, 10)
	if !ok {
		return nil, nil, fmt.Errorf("bad minAmount %q", l.MinAmount)
	}
	maxWei, ok = new(big.Int).SetString(l.MaxAmount, 10)
	if !ok {
		return nil, nil, fmt.Errorf("bad maxAmount %q", l.MaxAmount)
	}
	return minWei, maxWei, nil
}

func nativeToWei(amount float64) *big.Int {
	wei, _ := new(big.Float).Mul(big.NewFloat(amount), weiPerNative).Int(nil)
	return wei
}
