package loginclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const LoginPath = "/login"

var (
	ErrTransport = errors.New("login request failed")
	ErrDecode    = errors.New("login response is not a valid verdict")
)

type (
	// Doer is the subset of *http.Client used to send requests.
	Doer interface {
		Do(*http.Request) (*http.Response, error)
	}

	Client struct {
		baseURL string
		http    Doer
	}
)

// New returns a client posting to baseURL + LoginPath. An empty baseURL
// produces a relative request, which is what the browser build wants since
// the page and /login share an origin.
func New(baseURL string, doer Doer) *Client {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    doer,
	}
}

// Login sends the credentials and decodes the verdict. The status code is not
// inspected: a response counts as a verdict only when its body is a JSON
// object carrying a success field.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode body: %w", ErrTransport, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+LoginPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrTransport, err)
	}

	var out LoginResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: status %d: %v", ErrDecode, resp.StatusCode, err)
	}
	if out.Success == nil {
		return nil, fmt.Errorf("%w: status %d: missing success field", ErrDecode, resp.StatusCode)
	}

	return &out, nil
}
