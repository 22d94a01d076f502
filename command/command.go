package command

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/github2/errors"
	"github.com/kbukum/github2/logger"
	"github.com/kbukum/github2/observability"
	"github.com/kbukum/github2/schema"
)

// Command issues requests for one resource domain through a shared
// Requester. It holds no mutable state of its own.
type Command struct {
	requester Requester
	domain    string
	log       *logger.Logger
	metrics   *observability.Metrics
}

// CommandOption configures a Command.
type CommandOption func(*Command)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) CommandOption {
	return func(c *Command) {
		if l != nil {
			c.log = l
		}
	}
}

// WithMetrics records dispatch metrics on m.
func WithMetrics(m *observability.Metrics) CommandOption {
	return func(c *Command) {
		c.metrics = m
	}
}

// New creates a command bound to requester and domain.
func New(requester Requester, domain string, opts ...CommandOption) *Command {
	c := &Command{
		requester: requester,
		domain:    domain,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("command").WithFields(logger.Fields(logger.FieldDomain, domain))
	return c
}

// Domain returns the resource domain.
func (c *Command) Domain() string { return c.domain }

// Requester returns the shared transport.
func (c *Command) Requester() Requester { return c.requester }

// Authenticated reports whether the requester holds an access or API token.
func (c *Command) Authenticated() bool {
	return c.requester.AccessToken() != "" || c.requester.APIToken() != ""
}

// Guard enforces the auth mode of op. Only AuthRequired operations can fail.
func (c *Command) Guard(op Operation) error {
	if op.RequiresAuth() && !c.Authenticated() {
		return errors.AuthRequired(op.Name)
	}
	return nil
}

// Dispatch issues one request and returns the decoded result, or the value
// under the filter key when one is set.
func (c *Command) Dispatch(ctx context.Context, path string, opts ...Option) (any, error) {
	return c.dispatch(ctx, path, newRequest(opts))
}

func (c *Command) dispatch(ctx context.Context, path string, req *request) (any, error) {
	if req.op != nil {
		if err := c.Guard(*req.op); err != nil {
			c.log.Warn("operation rejected", logger.Fields(
				logger.FieldOperation, req.op.Name,
				logger.FieldError, err.Error(),
			))
			c.metrics.RecordError(ctx, c.domain, "auth")
			return nil, err
		}
	}

	verb := SelectVerb(req.method, req.postData)
	ctx, span := observability.StartSpan(ctx, observability.SpanDispatch, trace.WithAttributes(
		attribute.String(observability.AttrDomain, c.domain),
		attribute.String(observability.AttrPath, path),
		attribute.String(observability.AttrVerb, string(verb)),
	))
	defer span.End()
	if req.op != nil {
		span.SetAttributes(attribute.String(observability.AttrOperation, req.op.Name))
	}

	start := time.Now()
	raw, err := c.call(ctx, verb, path, req)
	elapsed := time.Since(start)

	fields := logger.Fields(logger.FieldPath, path, logger.FieldVerb, string(verb))
	if err != nil {
		observability.SetSpanError(span, err)
		c.metrics.RecordDispatch(ctx, c.domain, string(verb), "error", elapsed)
		c.metrics.RecordError(ctx, c.domain, "transport")
		c.log.Debug("dispatch failed", logger.AddDuration(logger.AddError(fields, err), elapsed))
		return nil, err
	}
	c.metrics.RecordDispatch(ctx, c.domain, string(verb), "ok", elapsed)
	c.log.Debug("dispatch", logger.AddDuration(fields, elapsed))

	if req.filter == "" {
		return raw, nil
	}
	span.SetAttributes(attribute.String(observability.AttrFilter, req.filter))
	value, err := filter(raw, req.filter)
	if err != nil {
		observability.SetSpanError(span, err)
		c.metrics.RecordError(ctx, c.domain, "lookup")
		return nil, err
	}
	return value, nil
}

func (c *Command) call(ctx context.Context, verb Verb, path string, req *request) (any, error) {
	switch verb {
	case VerbPost:
		return c.requester.Post(ctx, c.domain, path, req.args, req.postData)
	case VerbPut:
		return c.requester.Put(ctx, c.domain, path, req.args, req.postData)
	case VerbDelete:
		return c.requester.Delete(ctx, c.domain, path, req.args, req.postData)
	default:
		return c.requester.Get(ctx, c.domain, path, req.args...)
	}
}

func filter(raw any, key string) (any, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.Shape("object", raw).WithDetail("key", key)
	}
	value, ok := m[key]
	if !ok {
		return nil, errors.Lookup(key)
	}
	return value, nil
}

// GetValue dispatches and, when WithDatatype is given, builds one record
// from the resulting object. The result is then a *schema.Record.
func (c *Command) GetValue(ctx context.Context, path string, opts ...Option) (any, error) {
	req := newRequest(opts)
	raw, err := c.dispatch(ctx, path, req)
	if err != nil || req.datatype == nil {
		return raw, err
	}
	rec, err := build(req.datatype, raw)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// GetValues dispatches and, when WithDatatype is given, builds one record
// per element of the resulting list. The result is then a []*schema.Record;
// without a datatype the raw list is returned.
func (c *Command) GetValues(ctx context.Context, path string, opts ...Option) (any, error) {
	req := newRequest(opts)
	raw, err := c.dispatch(ctx, path, req)
	if err != nil || req.datatype == nil {
		return raw, err
	}
	records, err := buildAll(req.datatype, raw)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func build(s *schema.Schema, raw any) (*schema.Record, error) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, errors.Shape("object", raw).WithDetail(logger.FieldSchema, s.Name())
	}
	return s.New(m)
}

func buildAll(s *schema.Schema, raw any) ([]*schema.Record, error) {
	var items []any
	switch v := raw.(type) {
	case nil:
		return []*schema.Record{}, nil
	case []any:
		items = v
	case []map[string]any:
		items = make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
	default:
		return nil, errors.Shape("list", raw).WithDetail(logger.FieldSchema, s.Name())
	}

	records := make([]*schema.Record, 0, len(items))
	for i, item := range items {
		rec, err := build(s, item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Value dispatches, builds one record of s and wraps it with wrap.
func Value[T any](ctx context.Context, c *Command, s *schema.Schema, wrap func(*schema.Record) T, path string, opts ...Option) (T, error) {
	var zero T
	raw, err := c.Dispatch(ctx, path, opts...)
	if err != nil {
		return zero, err
	}
	rec, err := build(s, raw)
	if err != nil {
		return zero, err
	}
	return wrap(rec), nil
}

// Values dispatches, builds one record of s per list element and wraps each.
func Values[T any](ctx context.Context, c *Command, s *schema.Schema, wrap func(*schema.Record) T, path string, opts ...Option) ([]T, error) {
	raw, err := c.Dispatch(ctx, path, opts...)
	if err != nil {
		return nil, err
	}
	records, err := buildAll(s, raw)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(records))
	for i, rec := range records {
		out[i] = wrap(rec)
	}
	return out, nil
}
