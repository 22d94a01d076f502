package schema

import (
	"encoding/json"
	"iter"
	"math"
	"slices"
	"time"

	"github.com/kbukum/github2/errors"
)

// Record is one value of a record kind. Declared fields start absent; a
// declared field whose value is nil is absent. Undeclared fields keep nil.
type Record struct {
	schema *Schema
	values map[string]any
	extra  map[string]any
}

func newRecord(s *Schema) *Record {
	return &Record{
		schema: s,
		values: make(map[string]any, len(s.fields)),
		extra:  make(map[string]any),
	}
}

// Schema returns the schema the record was built from.
func (r *Record) Schema() *Schema { return r.schema }

// Set assigns a field. Declared fields go through ToNative; other names are
// stored verbatim.
func (r *Record) Set(name string, value any) error {
	attr, declared := r.schema.Lookup(name)
	if !declared {
		r.extra[name] = value
		return nil
	}
	native, err := attr.ToNative(value)
	if err != nil {
		return errors.Wrap(err).WithDetail("field", name)
	}
	if native == nil {
		delete(r.values, name)
		return nil
	}
	r.values[name] = native
	return nil
}

// Unset makes a field absent again.
func (r *Record) Unset(name string) {
	delete(r.values, name)
	delete(r.extra, name)
}

// Get returns the current value of a declared or extra field.
func (r *Record) Get(name string) (any, bool) {
	if v, ok := r.values[name]; ok {
		return v, true
	}
	v, ok := r.extra[name]
	return v, ok
}

// Has reports whether a field holds a value.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Len returns the number of declared fields holding a value.
func (r *Record) Len() int { return len(r.values) }

// All yields the declared fields that hold a value, in declaration order.
func (r *Record) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, f := range r.schema.fields {
			v, ok := r.values[f.Name]
			if !ok {
				continue
			}
			if !yield(f.Name, v) {
				return
			}
		}
	}
}

// Extras yields the undeclared fields, sorted by name.
func (r *Record) Extras() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		names := make([]string, 0, len(r.extra))
		for name := range r.extra {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			if !yield(name, r.extra[name]) {
				return
			}
		}
	}
}

// Wire converts the record back to a wire map, extras included.
func (r *Record) Wire() (map[string]any, error) {
	out := make(map[string]any, len(r.values)+len(r.extra))
	for name, value := range r.All() {
		attr, _ := r.schema.Lookup(name)
		wire, err := attr.ToWire(value)
		if err != nil {
			return nil, errors.Wrap(err).WithDetail("field", name)
		}
		if wire != nil {
			out[name] = wire
		}
	}
	for name, value := range r.extra {
		out[name] = value
	}
	return out, nil
}

// String returns a string field, or "" when absent or not a string.
func (r *Record) String(name string) string {
	v, _ := r.Get(name)
	s, _ := v.(string)
	return s
}

// Int returns a numeric field as an int, or 0 when absent or not numeric.
// JSON numbers decode as float64; fractional values are truncated.
func (r *Record) Int(name string) int {
	v, _ := r.Get(name)
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(math.Trunc(n))
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return int(i)
	}
	return 0
}

// Bool returns a boolean field, or false when absent or not a bool.
func (r *Record) Bool(name string) bool {
	v, _ := r.Get(name)
	b, _ := v.(bool)
	return b
}

// Time returns a time field, or the zero time when absent or not a time.
func (r *Record) Time(name string) time.Time {
	v, _ := r.Get(name)
	t, _ := v.(time.Time)
	return t
}
