package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/github2/logger"
	"github.com/kbukum/github2/observability"
	"github.com/kbukum/github2/resilience"
)

const (
	paramAccessToken = "access_token"
	paramLogin       = "login"
	paramToken       = "token"

	headerRequestID = "X-Request-ID"
)

// Client sends API requests. It is safe for concurrent use; credentials can
// be swapped while requests are in flight.
type Client struct {
	httpClient *http.Client
	config     Config
	header     http.Header
	limiter    *resilience.Limiter
	log        *logger.Logger

	mu          sync.RWMutex
	login       string
	apiToken    string
	accessToken string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client. Its timeout is left
// as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a client from cfg.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		config:      cfg,
		header:      cfg.header(),
		limiter:     resilience.NewLimiter(cfg.RateLimit),
		log:         logger.Nop(),
		login:       cfg.Login,
		apiToken:    cfg.APIToken,
		accessToken: cfg.AccessToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("transport")
	return c, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config { return c.config }

// AccessToken returns the OAuth access token, or "".
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// APIToken returns the API token, or "".
func (c *Client) APIToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiToken
}

// Login returns the login sent with the API token.
func (c *Client) Login() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.login
}

// SetAccessToken replaces the OAuth access token.
func (c *Client) SetAccessToken(token string) {
	c.mu.Lock()
	c.accessToken = token
	c.mu.Unlock()
}

// SetAPIToken replaces the login and API token pair.
func (c *Client) SetAPIToken(login, token string) {
	c.mu.Lock()
	c.login, c.apiToken = login, token
	c.mu.Unlock()
}

// Get fetches {domain}/{path}/{args...}.
func (c *Client) Get(ctx context.Context, domain, path string, args ...string) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Domain: domain, Path: path, Args: args})
}

// Post sends fields as a form to {domain}/{path}/{args...}.
func (c *Client) Post(ctx context.Context, domain, path string, args []string, fields map[string]any) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Domain: domain, Path: path, Args: args, Fields: fields})
}

// Put sends fields with PUT.
func (c *Client) Put(ctx context.Context, domain, path string, args []string, fields map[string]any) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Domain: domain, Path: path, Args: args, Fields: fields})
}

// Delete sends fields with DELETE.
func (c *Client) Delete(ctx context.Context, domain, path string, args []string, fields map[string]any) (any, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Domain: domain, Path: path, Args: args, Fields: fields})
}

// Do sends req once and decodes the JSON answer.
func (c *Client) Do(ctx context.Context, req Request) (any, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}
	return c.do(ctx, req)
}

func (c *Client) do(ctx context.Context, req Request) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, NewTimeoutError(err)
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	requestID := httpReq.Header.Get(headerRequestID)
	target := redact(httpReq.URL)

	ctx, span := observability.StartSpan(ctx, observability.SpanHTTPRequest, trace.WithAttributes(
		attribute.String(observability.AttrVerb, req.Method),
		attribute.String(observability.AttrDomain, req.Domain),
		attribute.String(observability.AttrPath, req.Path),
		attribute.String(observability.AttrRequestID, requestID),
	))
	defer span.End()
	httpReq = httpReq.WithContext(ctx)

	log := c.log.WithRequestID(requestID)
	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		var tErr *Error
		if ctx.Err() != nil || isTimeout(err) {
			tErr = NewTimeoutError(err)
		} else {
			tErr = NewConnectionError(err)
		}
		tErr.URL = target
		observability.SetSpanError(span, tErr)
		log.Error("request failed", logger.AddError(logger.Fields(logger.FieldURL, target), err))
		return nil, tErr
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		tErr := NewConnectionError(fmt.Errorf("read response body: %w", err))
		tErr.URL = target
		observability.SetSpanError(span, tErr)
		return nil, tErr
	}
	span.SetAttributes(attribute.Int(observability.AttrStatus, resp.StatusCode))
	log.Debug("request", logger.AddDuration(logger.Fields(
		logger.FieldVerb, req.Method,
		logger.FieldURL, target,
		logger.FieldStatus, resp.StatusCode,
	), time.Since(start)))

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		classErr.URL = target
		observability.SetSpanError(span, classErr)
		return nil, classErr
	}
	return decode(body)
}

// buildRequest resolves the URL, credentials and body of req.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	u, err := BuildURL(c.config.BaseURL, c.config.Format, req.Domain, req.Path, req.Args...)
	if err != nil {
		return nil, &Error{Code: ErrCodeValidation, Message: err.Error(), Err: err}
	}

	c.mu.RLock()
	login, apiToken, accessToken := c.login, c.apiToken, c.accessToken
	c.mu.RUnlock()

	query := u.Query()
	if accessToken != "" {
		query.Set(paramAccessToken, accessToken)
	}

	var body io.Reader
	if req.Method == http.MethodGet {
		if apiToken != "" {
			query.Set(paramLogin, login)
			query.Set(paramToken, apiToken)
		}
	} else {
		form := EncodeForm(req.Fields)
		if apiToken != "" {
			form.Set(paramLogin, login)
			form.Set(paramToken, apiToken)
		}
		body = strings.NewReader(form.Encode())
	}
	u.RawQuery = query.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, &Error{Code: ErrCodeValidation, Message: err.Error(), Err: err}
	}
	httpReq.Header = c.header.Clone()
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	httpReq.Header.Set(headerRequestID, uuid.NewString())
	return httpReq, nil
}

// decode parses a success body. An empty body decodes to nil.
func decode(body []byte) (any, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, nil
	}
	var out any
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, NewDecodeError(body, err)
	}
	return out, nil
}

func isTimeout(err error) bool {
	var ue *url.Error
	return errors.As(err, &ue) && ue.Timeout()
}
