package spoonacular

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/pageza/mealcraft/backend/internal/models"
)

const (
	// DefaultBaseURL is the public Spoonacular API host.
	DefaultBaseURL = "https://api.spoonacular.com"

	searchPath = "/recipes/complexSearch"

	// maxBodyBytes caps how much of a response is read.
	maxBodyBytes = 4 << 20
)

// Client issues recipe searches against the Spoonacular API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, such as a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a client authenticating with apiKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchRecipes performs one search and returns the normalized results.
// A non-2xx response yields an *APIError carrying the status and raw body.
// A successful response with no results yields an empty slice and no error.
func (c *Client) FetchRecipes(ctx context.Context, q Query) ([]models.RecipeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+searchPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.URL.RawQuery = q.Values(c.apiKey).Encode()
	req.Header.Set("Accept", "application/json")

	slog.Debug("searching recipes",
		"max_calories", q.MaxCalories,
		"health", q.Health,
		"diet", q.Diet,
		"number", q.Number)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to send request: %w", ErrUnavailable, redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", ErrUnavailable, redactKey(err, c.apiKey))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("recipe search failed", "status", resp.StatusCode)
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	recipes, err := parseSearchResponse(body)
	if err != nil {
		return nil, err
	}
	slog.Debug("recipe search complete", "results", len(recipes))
	return recipes, nil
}

// redactKey strips the credential from transport errors, which embed the
// request URL.
func redactKey(err error, apiKey string) error {
	if apiKey == "" || !strings.Contains(err.Error(), apiKey) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), apiKey, "REDACTED"), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }
