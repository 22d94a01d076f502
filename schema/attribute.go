package schema

import (
	"time"

	"github.com/kbukum/github2/datecodec"
	"github.com/kbukum/github2/errors"
)

// Attribute describes one declared field of a record and converts its value
// between wire and native form. Both conversions are idempotent: converting a
// value that is already in the target form returns it unchanged.
type Attribute interface {
	// Help returns the documentation text of the field.
	Help() string
	// ToNative converts a wire value to its native form.
	ToNative(value any) (any, error)
	// ToWire converts a native value to its wire form.
	ToWire(value any) (any, error)
}

// Generic is an attribute whose conversions are the identity.
type Generic struct {
	help string
}

// NewGeneric creates an identity attribute.
func NewGeneric(help string) *Generic {
	return &Generic{help: help}
}

// Help returns the documentation text of the field.
func (a *Generic) Help() string { return a.help }

// ToNative returns value unchanged.
func (a *Generic) ToNative(value any) (any, error) { return value, nil }

// ToWire returns value unchanged.
func (a *Generic) ToWire(value any) (any, error) { return value, nil }

// Date is an attribute holding a timestamp in one of the datecodec formats.
type Date struct {
	help  string
	codec datecodec.Codec
}

// NewDate creates a date attribute. The format defaults to datecodec.GitHub.
func NewDate(help string, format ...datecodec.Format) *Date {
	f := datecodec.GitHub
	if len(format) > 0 && format[0] != "" {
		f = format[0]
	}
	return &Date{help: help, codec: datecodec.For(f)}
}

// Help returns the documentation text of the field.
func (a *Date) Help() string { return a.help }

// Format returns the wire format of the field.
func (a *Date) Format() datecodec.Format { return a.codec.Format() }

// ToNative parses non-empty strings. Nil, empty strings and times pass
// through unchanged.
func (a *Date) ToNative(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return nil, nil
		}
		return *v, nil
	case string:
		if v == "" {
			return v, nil
		}
		return a.codec.Parse(v)
	}
	return nil, errors.InvalidFormat(string(a.codec.Format())+" date", "string or time.Time")
}

// ToWire formats non-zero times. Anything else passes through unchanged.
func (a *Date) ToWire(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil, nil
		}
		return a.codec.Render(v), nil
	case *time.Time:
		if v == nil || v.IsZero() {
			return nil, nil
		}
		return a.codec.Render(*v), nil
	}
	return value, nil
}
