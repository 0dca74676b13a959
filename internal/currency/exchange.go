package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultRateURL is the free currency CDN the dashboard already uses.
// One unauthenticated GET per lookup, best effort, no retries.
const DefaultRateURL = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@latest/v1/currencies"

type RateClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewRateClient() *RateClient {
	return &RateClient{
		BaseURL:    DefaultRateURL,
		HTTPClient: http.DefaultClient,
	}
}

// Rate looks up the from→to exchange rate. The API serves one JSON document
// per source currency: {"date": "...", "<from>": {"<to>": 0.9, ...}}.
func (c *RateClient) Rate(ctx context.Context, from, to string) (float64, error) {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	if from == "" || to == "" {
		return 0, fmt.Errorf("exchange rate: missing currency code")
	}

	url := fmt.Sprintf("%s/%s.json", c.BaseURL, from)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("exchange rate: unexpected status %d for %s", resp.StatusCode, from)
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("exchange rate: decoding response: %w", err)
	}
	table, ok := payload[from].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("exchange rate: no table for %q", from)
	}
	rate, ok := table[to].(float64)
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("exchange rate: no rate %s->%s", from, to)
	}
	return rate, nil
}
