package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/techflow/pkg/domain/model"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public Airtable API endpoint
	DefaultBaseURL = "https://api.airtable.com"
	// DefaultRateLimit is the per-base request limit of the Airtable API
	DefaultRateLimit = 5.0

	pageSize = 100
)

var (
	ErrTagUnauthorized = goerr.NewTag("unauthorized")
	ErrTagNotFound     = goerr.NewTag("not_found")
	ErrTagRateLimited  = goerr.NewTag("rate_limited")
	ErrTagBadResponse  = goerr.NewTag("bad_response")
)

// Client lists records of one Airtable table
type Client struct {
	apiKey     string
	baseID     string
	table      string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures Client
type Option func(*Client)

// WithBaseURL overrides the API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithRateLimit sets the maximum number of requests per second. A value of
// zero or less disables pacing.
func WithRateLimit(perSecond float64) Option {
	return func(c *Client) {
		if perSecond <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// New creates a client for the table in the base
func New(apiKey, baseID, table string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseID:     baseID,
		table:      table,
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listResponse struct {
	Records []model.RawRecord `json:"records"`
	Offset  string            `json:"offset"`
}

// ListRecords returns every record of the table, following the offset cursor
// until the last page
func (c *Client) ListRecords(ctx context.Context) ([]model.RawRecord, error) {
	logger := ctxlog.From(ctx)
	records := []model.RawRecord{}
	offset := ""

	for page := 1; ; page++ {
		resp, err := c.listPage(ctx, offset)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list records",
				goerr.V("table", c.table),
				goerr.V("page", page))
		}
		records = append(records, resp.Records...)
		logger.Debug("Fetched record page", "page", page, "records", len(resp.Records))

		if resp.Offset == "" {
			break
		}
		offset = resp.Offset
	}

	return records, nil
}

func (c *Client) listPage(ctx context.Context, offset string) (*listResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, goerr.Wrap(err, "rate limiter wait aborted")
	}

	query := url.Values{}
	query.Set("pageSize", strconv.Itoa(pageSize))
	if offset != "" {
		query.Set("offset", offset)
	}
	endpoint := c.baseURL + "/v0/" + url.PathEscape(c.baseID) + "/" + url.PathEscape(c.table) + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "request to Airtable failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, responseError(resp.StatusCode, body)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var out listResponse
	if err := dec.Decode(&out); err != nil {
		return nil, goerr.Wrap(err, "failed to decode list response", goerr.T(ErrTagBadResponse))
	}
	return &out, nil
}

// apiError is the error body of the Airtable API. The error member is either
// an object with type and message or a bare string code.
type apiError struct {
	Type    string
	Message string
}

func parseAPIError(body []byte) apiError {
	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		return apiError{Message: strings.TrimSpace(string(body))}
	}

	var detail struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &detail); err == nil {
		return apiError{Type: detail.Type, Message: detail.Message}
	}

	var code string
	if err := json.Unmarshal(envelope.Error, &code); err == nil {
		return apiError{Type: code}
	}
	return apiError{Message: string(envelope.Error)}
}

func responseError(status int, body []byte) error {
	apiErr := parseAPIError(body)
	opts := []goerr.Option{
		goerr.V("status", status),
		goerr.V("type", apiErr.Type),
		goerr.V("message", apiErr.Message),
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		opts = append(opts, goerr.T(ErrTagUnauthorized))
	case status == http.StatusNotFound:
		opts = append(opts, goerr.T(ErrTagNotFound))
	case status == http.StatusTooManyRequests:
		opts = append(opts, goerr.T(ErrTagRateLimited))
	default:
		opts = append(opts, goerr.T(ErrTagBadResponse))
	}

	return goerr.New("Airtable API returned error", opts...)
}
