// Package recaptcha verifies client tokens against Google's siteverify
// endpoint. A true result from the endpoint is the only pass condition.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

type Client struct {
	secret     string
	endpoint   string
	httpClient *http.Client
}

func NewClient(secret string) *Client {
	return &Client{
		secret:   secret,
		endpoint: defaultEndpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// WithEndpoint overrides the verification URL. Used by tests.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the token to the verification endpoint. A missing secret
// fails verification rather than erroring: the gate stays closed when the
// service is misconfigured.
func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	if c.secret == "" {
		return false, nil
	}

	form := url.Values{
		"secret":   {c.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("failed to create verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to reach verification service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("verification service returned status %d", resp.StatusCode)
	}

	var out verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("failed to decode verification response: %w", err)
	}

	return out.Success, nil
}
