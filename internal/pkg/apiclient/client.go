// Package apiclient is a small JSON client for the admin API list endpoints.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-admin-go/internal/domain/auth"
	"github.com/cmlabs-hris/hris-admin-go/internal/pkg/listquery"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
	if len(e.Details) > 0 {
		parts := make([]string, 0, len(e.Details))
		for field, m := range e.Details {
			parts = append(parts, field+": "+m)
		}
		msg += " (" + strings.Join(parts, "; ") + ")"
	}
	return msg
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta *listquery.Meta `json:"meta"`
}

// ListParams is the query of a list endpoint.
type ListParams struct {
	Search string
	Facets map[string][]string
	Page   int
	Limit  int
}

func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	for name, values := range p.Facets {
		for _, value := range values {
			v.Add(name, value)
		}
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// ListPage is one page of a list endpoint with its facet summary.
type ListPage struct {
	Items   []map[string]any  `json:"items"`
	Summary listquery.Summary `json:"summary"`
	Meta    listquery.Meta    `json:"-"`
}

// Login exchanges credentials for an access token and keeps it for later
// requests.
func (c *Client) Login(ctx context.Context, email, password string) (auth.TokenResponse, error) {
	var token auth.TokenResponse
	body := auth.LoginRequest{Email: email, Password: password}
	if _, err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &token); err != nil {
		return auth.TokenResponse{}, err
	}
	c.token = token.AccessToken
	return token, nil
}

// List fetches one page of the list endpoint at path, e.g. "/employees".
func (c *Client) List(ctx context.Context, path string, params ListParams) (ListPage, error) {
	var page ListPage
	meta, err := c.do(ctx, http.MethodGet, path, params.Values(), nil, &page)
	if err != nil {
		return ListPage{}, err
	}
	if meta != nil {
		page.Meta = *meta
	}
	return page, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*listquery.Meta, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Code: "DECODE_ERROR", Message: err.Error()}
	}

	if resp.StatusCode >= 300 || !env.Success {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
			apiErr.Details = env.Error.Details
		}
		return nil, apiErr
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return env.Meta, nil
}
