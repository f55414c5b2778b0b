package minhareceita

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"brainagro/cmd/internal/domain/entity"
)

const (
	DefaultBaseURL = "https://minhareceita.org/"
	DefaultTimeout = 10 * time.Second
)

var (
	ErrNotFound = errors.New("not found")
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for the given base URL, falling back to the
// public instance when it is empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// GetRegistration asks the registry about cnpj. ErrNotFound means the registry
// does not know it.
func (c *Client) GetRegistration(ctx context.Context, cnpj string) (*entity.Registration, error) {
	endpoint, err := url.JoinPath(c.baseURL, cnpj)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// minhareceita answers 400 for well formed but unknown CNPJs
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("minhareceita failed with status code: %d", resp.StatusCode)
	}

	var payload registrationResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.ToDomain(), nil
}
