package command

import (
	"maps"

	"github.com/kbukum/github2/schema"
)

// request collects the per-call options of a dispatch.
type request struct {
	args     []string
	filter   string
	postData map[string]any
	method   string
	op       *Operation
	datatype *schema.Schema
}

func newRequest(opts []Option) *request {
	req := &request{method: string(VerbGet)}
	for _, opt := range opts {
		opt(req)
	}
	return req
}

// Option configures a single dispatch.
type Option func(*request)

// WithArgs appends positional path arguments.
func WithArgs(args ...string) Option {
	return func(r *request) {
		r.args = append(r.args, args...)
	}
}

// WithFilter returns only the given key of the response.
func WithFilter(key string) Option {
	return func(r *request) {
		r.filter = key
	}
}

// WithPostData sets the fields sent with POST, PUT and DELETE calls. The map
// is copied.
func WithPostData(fields map[string]any) Option {
	return func(r *request) {
		if r.postData == nil {
			r.postData = make(map[string]any, len(fields))
		}
		maps.Copy(r.postData, fields)
	}
}

// WithMethod sets the requested HTTP method. The default is GET.
func WithMethod(method string) Option {
	return func(r *request) {
		r.method = method
	}
}

// WithOperation names the logical operation so its auth mode is enforced.
func WithOperation(op Operation) Option {
	return func(r *request) {
		r.op = &op
	}
}

// WithDatatype builds records of the given schema from the response.
// Dispatch ignores it; GetValue and GetValues honour it.
func WithDatatype(s *schema.Schema) Option {
	return func(r *request) {
		r.datatype = s
	}
}
