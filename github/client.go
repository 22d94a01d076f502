package github

import (
	"context"
	"net/http"

	"github.com/kbukum/github2/command"
	"github.com/kbukum/github2/config"
	"github.com/kbukum/github2/logger"
	"github.com/kbukum/github2/observability"
	"github.com/kbukum/github2/transport"
)

// Client bundles the command groups over one shared transport.
type Client struct {
	Users        *Users
	Issues       *Issues
	Commits      *Commits
	Repositories *Repositories

	transport *transport.Client
	log       *logger.Logger
	shutdown  observability.ShutdownFunc
}

type options struct {
	httpClient *http.Client
	log        *logger.Logger
}

// Option configures New.
type Option func(*options)

// WithHTTPClient sends requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger replaces the logger built from the logging config.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// New builds a client from cfg. It installs the telemetry providers cfg
// enables; Close flushes them.
func New(ctx context.Context, cfg config.Config, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := o.log
	if log == nil {
		log = logger.New(&cfg.Logging, cfg.Base.Name)
	}

	shutdown, err := observability.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		return nil, err
	}
	metrics, err := observability.NewMetrics(observability.Meter(observability.InstrumentationName))
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	tc, err := transport.New(cfg.GitHub, transport.WithLogger(log), transport.WithHTTPClient(o.httpClient))
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	cmdOpts := []command.CommandOption{command.WithLogger(log), command.WithMetrics(metrics)}
	c := &Client{
		Users:        NewUsers(command.New(tc, UserDomain, cmdOpts...)),
		Issues:       NewIssues(command.New(tc, IssueDomain, cmdOpts...)),
		Commits:      NewCommits(command.New(tc, CommitDomain, cmdOpts...)),
		Repositories: NewRepositories(command.New(tc, RepositoryDomain, cmdOpts...)),
		transport:    tc,
		log:          log,
		shutdown:     shutdown,
	}
	log.Debug("client ready", logger.Fields(
		logger.FieldURL, cfg.GitHub.BaseURL,
		"authenticated", c.Authenticated(),
	))
	return c, nil
}

// Transport returns the shared transport.
func (c *Client) Transport() *transport.Client { return c.transport }

// Authenticated reports whether any credentials are set.
func (c *Client) Authenticated() bool {
	return c.transport.AccessToken() != "" || c.transport.APIToken() != ""
}

// SetAccessToken sets the OAuth access token for every group.
func (c *Client) SetAccessToken(token string) { c.transport.SetAccessToken(token) }

// SetAPIToken sets the login and API token for every group.
func (c *Client) SetAPIToken(login, token string) { c.transport.SetAPIToken(login, token) }

// Close flushes telemetry.
func (c *Client) Close(ctx context.Context) error {
	if c.shutdown == nil {
		return nil
	}
	return c.shutdown(ctx)
}

// Catalogs returns the operation catalog of every domain.
func Catalogs() []*command.Catalog {
	return []*command.Catalog{UserOperations, IssueOperations, CommitOperations, RepositoryOperations}
}
