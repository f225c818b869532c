// Package prices looks up spot prices for native assets, used to size
// refuel deposits from a dollar target.
package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const priceURL = "https://min-api.cryptocompare.com/data/price?fsym=%s&tsyms=USDT"

// Client fetches token prices quoted in USDT.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a price client with a sane request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    priceURL,
	}
}

// TokenPrice returns the USDT price of a token symbol (e.g. "MATIC").
func (c *Client) TokenPrice(ctx context.Context, symbol string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(c.baseURL, symbol), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build price request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch %s price: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("price API returned status code %d", resp.StatusCode)
	}

	var payload map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode price response: %w", err)
	}

	price, ok := payload["USDT"]
	if !ok || price <= 0 {
		return 0, fmt.Errorf("no USDT price for %s", symbol)
	}
	return price, nil
}
