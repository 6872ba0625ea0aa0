package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"masalog-backend/config"
)

// LogAPIClient pulls the raw text body of a named log from the upstream
// endpoint. One-shot batch pull, no auth, no retry; failures surface as
// errors with no partial data.
type LogAPIClient interface {
	FetchRaw(ctx context.Context, logName string, testEnv bool) (string, error)
}

type logAPIClient struct {
	baseURL     string
	testBaseURL string
	httpClient  *http.Client
}

func NewLogAPIClient(cfg *config.Config) LogAPIClient {
	timeout := cfg.LogAPI.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &logAPIClient{
		baseURL:     cfg.LogAPI.BaseURL,
		testBaseURL: cfg.LogAPI.TestBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *logAPIClient) FetchRaw(ctx context.Context, logName string, testEnv bool) (string, error) {
	base := c.baseURL
	if testEnv {
		base = c.testBaseURL
	}
	url := fmt.Sprintf(base, logName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		log.Error().Err(err).Str("log_name", logName).Msg("Failed to create log API request")
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Log API request failed")
		return "", fmt.Errorf("log API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().Err(err).Str("url", url).Msg("Failed to read log API response body")
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("url", url).Msg("Log API returned non-2xx status")
		return "", fmt.Errorf("log API returned status %d", resp.StatusCode)
	}

	return string(body), nil
}
