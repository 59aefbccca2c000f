package exchange

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/finance-tracker/internal/logger"
)

type config interface {
	Endpoint() string
	TimeoutSec() int
}

// Client pulls spot rates from the public exchangerate-api latest
// endpoint. No API key is required.
type Client struct {
	endpoint string
	client   *http.Client
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

func New(config config) *Client {
	return &Client{
		endpoint: config.Endpoint(),
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSec()) * time.Second,
		},
	}
}

// GetRates returns multipliers relative to base, restricted to the
// requested symbols. The base itself always maps to 1.
func (c *Client) GetRates(ctx context.Context, base string, symbols []string) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/"+base, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building rates request")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "requesting rates")
	}
	defer func() {
		if closeErr := res.Body.Close(); closeErr != nil {
			logger.Warn("failed to close rates response body", zap.Error(closeErr))
		}
	}()

	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("rate service returned status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading rates response")
	}

	var parsed ratesResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "unmarshalling rates response")
	}
	if len(parsed.Rates) == 0 {
		return nil, errors.New("rate service returned no rates")
	}

	rates := map[string]float64{base: 1}
	for _, symbol := range symbols {
		if rate, ok := parsed.Rates[symbol]; ok && rate > 0 {
			rates[symbol] = rate
		}
	}
	logger.Info("pulled exchange rates",
		zap.String("base", base), zap.Int("count", len(rates)), zap.String("date", parsed.Date))
	return rates, nil
}
