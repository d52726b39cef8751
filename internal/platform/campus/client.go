// Package campus is the typed client for the remote campus REST API. Every
// entity the portal shows is owned by that API; this package only moves
// envelopes back and forth and never holds authoritative state.
package campus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"campus_portal/internal/common"
	"campus_portal/internal/platform/logging"

	"go.uber.org/zap"
)

// Envelope is the response wrapper the campus API uses on every endpoint.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	retryMax   int // extra attempts for reads; 401s and mutations are never retried

	Auth     *AuthAPI
	Users    *UsersAPI
	Events   *EventsAPI
	Notices  *NoticesAPI
	Programs *ProgramsAPI
	Blogs    *BlogsAPI
}

func NewClient(baseURL string, timeout time.Duration, retryMax int) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		retryMax: retryMax,
	}
	c.Auth = &AuthAPI{client: c}
	c.Users = &UsersAPI{client: c}
	c.Events = &EventsAPI{client: c}
	c.Notices = &NoticesAPI{client: c}
	c.Programs = &ProgramsAPI{client: c}
	c.Blogs = &BlogsAPI{client: c}
	return c
}

// get issues a read with the fixed retry policy: transport errors and 5xx
// responses are retried up to retryMax times, a 401 is surfaced immediately
// so an expired token never hammers the API.
func (c *Client) get(ctx context.Context, token, path string, query url.Values, out interface{}) error {
	var lastErr error
	for attempt := 0; attempt <= c.retryMax; attempt++ {
		err := c.do(ctx, http.MethodGet, token, path, query, nil, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable(err) {
			return err
		}
		if attempt < c.retryMax {
			logging.L.Debug("Retrying campus API read",
				zap.String("path", path), zap.Int("attempt", attempt+1), zap.Error(err))
		}
	}
	return lastErr
}

// mutate issues a write exactly once; failed mutations are surfaced, never
// replayed.
func (c *Client) mutate(ctx context.Context, method, token, path string, body, out interface{}) error {
	return c.do(ctx, method, token, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, token, path string, query url.Values, body, out interface{}) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrRemoteUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", common.ErrRemoteUnavailable, err)
	}

	var env Envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 500 {
				return fmt.Errorf("%w: status %d", common.ErrRemoteUnavailable, resp.StatusCode)
			}
			return fmt.Errorf("failed to decode campus API response: %w", err)
		}
	}

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, env.Message)
	}
	// An empty 2xx body (e.g. a 204 on delete) counts as success; only an
	// envelope that explicitly reports failure is an error.
	if len(raw) > 0 && !env.Success {
		return statusError(resp.StatusCode, env.Message)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode campus API data: %w", err)
		}
	}
	return nil
}

func statusError(code int, message string) error {
	var sentinel error
	switch {
	case code == http.StatusUnauthorized:
		sentinel = common.ErrUnauthorized
	case code == http.StatusForbidden:
		sentinel = common.ErrForbidden
	case code == http.StatusNotFound:
		sentinel = common.ErrNotFound
	case code == http.StatusConflict:
		sentinel = common.ErrConflict
	case code >= 500:
		sentinel = common.ErrRemoteUnavailable
	default:
		sentinel = common.ErrBadRequest
	}
	if message == "" {
		message = http.StatusText(code)
	}
	return fmt.Errorf("%w: %s", sentinel, message)
}

func retryable(err error) bool {
	if errors.Is(err, common.ErrUnauthorized) ||
		errors.Is(err, common.ErrForbidden) ||
		errors.Is(err, common.ErrNotFound) ||
		errors.Is(err, common.ErrConflict) ||
		errors.Is(err, common.ErrBadRequest) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
