package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"flighttrack-service/internal/domain/entity"
	"flighttrack-service/internal/domain/repository"
	"flighttrack-service/pkg/logger"
)

// AviationstackClient performs the single outbound call to the flight
// status provider. It never retries and never interprets the payload;
// the orchestrator owns all of that.
type AviationstackClient struct {
	logger  logger.Logger
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAviationstackClient creates a new provider client. An empty API key is
// allowed; the client then reports itself as not configured and the
// pipeline degrades to synthetic answers.
func NewAviationstackClient(baseURL, apiKey string, logger logger.Logger) repository.FlightProvider {
	if baseURL == "" {
		baseURL = "http://api.aviationstack.com/v1"
	}

	return &AviationstackClient{
		logger:  logger,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Configured reports whether an API key is present
func (c *AviationstackClient) Configured() bool {
	return c.apiKey != ""
}

// Fetch requests the latest record for one flight code, limited to a
// single result, and returns the parsed body verbatim
func (c *AviationstackClient) Fetch(ctx context.Context, flightIata string) (*entity.ProviderResponse, error) {
	url := fmt.Sprintf("%s/flights", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}

	q := req.URL.Query()
	q.Set("access_key", c.apiKey)
	q.Set("flight_iata", flightIata)
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	c.logger.Info("Calling flight provider", "flightIata", flightIata)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call flight provider: %w", err)
	}
	defer resp.Body.Close()

	var parsed entity.ProviderResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	c.logger.Debug("Provider responded",
		"flightIata", flightIata,
		"httpStatus", resp.StatusCode,
		"results", len(parsed.Data))

	return &parsed, nil
}
