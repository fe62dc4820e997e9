package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dcode-github/property_portal_web/models"
)

// Client wraps outbound calls to the listing API: base URL resolution,
// bearer token attachment and error decoding. Failures are not retried;
// they propagate to the page handlers.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError carries the HTTP status and the server-provided message of a
// non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
}

// NewClientWithHTTP is intended for callers that need a custom transport,
// such as one with a request timeout.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	c := NewClient(baseURL)
	c.httpClient = httpClient
	return c
}

// SearchProperties runs a filtered property search. Empty filter fields are
// omitted from the query string by SearchFilters.Values.
func (c *Client) SearchProperties(ctx context.Context, token string, filters models.SearchFilters) (*models.SearchResult, error) {
	var result models.SearchResult
	if err := c.do(ctx, http.MethodGet, "/properties", token, filters.Values(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProperty fetches a single property by ID.
func (c *Client) GetProperty(ctx context.Context, token, id string) (*models.Property, error) {
	var property models.Property
	if err := c.do(ctx, http.MethodGet, "/properties/"+url.PathEscape(id), token, nil, nil, &property); err != nil {
		return nil, err
	}
	return &property, nil
}

// ToggleFavorite flips the favorite state of a property for the current
// session and returns the new state.
func (c *Client) ToggleFavorite(ctx context.Context, token, propertyID string) (bool, error) {
	var result struct {
		IsFavorite bool `json:"isFavorite"`
	}
	if err := c.do(ctx, http.MethodPost, "/favorites/"+url.PathEscape(propertyID), token, nil, nil, &result); err != nil {
		return false, err
	}
	return result.IsFavorite, nil
}

// GetFavorites fetches the current session's favorite properties.
func (c *Client) GetFavorites(ctx context.Context, token string) ([]models.Property, error) {
	var properties []models.Property
	if err := c.do(ctx, http.MethodGet, "/favorites", token, nil, nil, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// Login exchanges credentials for a session payload.
func (c *Client) Login(ctx context.Context, email, password string) (*models.Session, error) {
	return c.authenticate(ctx, "/auth/login", email, password)
}

// Register creates an account and returns its session payload.
func (c *Client) Register(ctx context.Context, email, password string) (*models.Session, error) {
	return c.authenticate(ctx, "/auth/register", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*models.Session, error) {
	var session models.Session
	body := models.Credentials{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, path, "", nil, body, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response from %s: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
	}
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(raw, &payload) == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
