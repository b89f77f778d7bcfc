package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/catgar/catgar/internal/infrastructure/config"
	"github.com/catgar/catgar/internal/infrastructure/logging"
)

// dayFormat is the calendar-date format Garmin Connect uses in URLs.
const dayFormat = "2006-01-02"

// Client is an authenticated Garmin Connect session.
//
// Thread Safety: safe for concurrent use after Connect returns; the
// underlying http.Client and cookie jar handle their own locking.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logging.Logger
}

// Connect signs in to Garmin Connect and returns a ready client.
//
// Parameters:
//   - ctx: Context for timeout/cancellation of the sign-in request
//   - cfg: Garmin credentials and base URL
//   - log: Logger for request diagnostics
//
// Returns:
//   - *Client: Authenticated client
//   - error: ErrAuthFailed if credentials are rejected, ErrRequestFailed on
//     transport problems
func Connect(ctx context.Context, cfg config.GarminConfig, log *logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: cookie jar: %w", ErrRequestFailed, err)
	}

	c := &Client{
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		baseURL: strings.TrimRight(cfg.URL, "/"),
		log:     log.With("component", "garmin"),
	}

	if err := c.signIn(ctx, cfg.Email, cfg.Password); err != nil {
		return nil, err
	}

	c.log.Info("signed in to garmin connect", "url", c.baseURL)
	return c, nil
}

// signIn posts credentials to the sign-in endpoint. The session cookies it
// sets authenticate all subsequent fetches.
func (c *Client) signIn(ctx context.Context, email, password string) error {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/sso/signin", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: building sign-in request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: sign-in: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrAuthFailed, resp.StatusCode)
	default:
		return fmt.Errorf("%w: sign-in returned status %d", ErrRequestFailed, resp.StatusCode)
	}
}

// get fetches path and decodes the JSON response body.
//
// A 404 maps to ErrNotFound (benign absence), any other non-2xx status to
// ErrRequestFailed.
func (c *Client) get(ctx context.Context, path string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request for %s: %w", ErrRequestFailed, path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRequestFailed, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("%w: %s returned status %d", ErrRequestFailed, path, resp.StatusCode)
	}

	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrRequestFailed, path, err)
	}
	return payload, nil
}
