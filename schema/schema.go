package schema

import (
	"fmt"
	"strings"

	"github.com/kbukum/github2/datecodec"
	"github.com/kbukum/github2/errors"
)

// Field pairs a field name with its attribute.
type Field struct {
	Name string
	Attr Attribute
}

// Attr declares an identity field.
func Attr(name, help string) Field {
	return Field{Name: name, Attr: NewGeneric(help)}
}

// DateAttr declares a date field in the given format.
func DateAttr(name, help string, format datecodec.Format) Field {
	return Field{Name: name, Attr: NewDate(help, format)}
}

// Schema is the immutable, ordered set of fields of one record kind.
type Schema struct {
	name   string
	doc    string
	fields []Field
	index  map[string]int
}

// New builds a schema. Field names must be non-empty and unique, and every
// field needs an attribute. A schema without fields is valid.
func New(name, doc string, fields ...Field) (*Schema, error) {
	if name == "" {
		return nil, errors.Schema("<unnamed>", "name is required")
	}
	s := &Schema{
		name:   name,
		doc:    doc,
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, errors.Schema(name, "field name is required")
		}
		if f.Attr == nil {
			return nil, errors.Schema(name, fmt.Sprintf("field %q has no attribute", f.Name))
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, errors.Schema(name, fmt.Sprintf("duplicate field %q", f.Name))
		}
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustNew is like New but panics on error. Intended for package-level
// schema declarations.
func MustNew(name, doc string, fields ...Field) *Schema {
	s, err := New(name, doc, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the record kind name.
func (s *Schema) Name() string { return s.name }

// Doc returns the undecorated documentation text.
func (s *Schema) Doc() string { return s.doc }

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns a copy of the declared fields in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Lookup returns the attribute of a declared field.
func (s *Schema) Lookup(name string) (Attribute, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].Attr, true
}

// Describe returns the documentation text followed by one bullet per field.
func (s *Schema) Describe() string {
	var b strings.Builder
	b.WriteString(s.doc)
	if len(s.fields) == 0 {
		return b.String()
	}
	if s.doc != "" {
		b.WriteString("\n\n")
	}
	for i, f := range s.fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- %s: %s", f.Name, f.Attr.Help())
		if d, ok := f.Attr.(*Date); ok {
			fmt.Fprintf(&b, " (%s date)", d.Format())
		}
	}
	return b.String()
}

// New constructs a record from a decoded wire map. Declared keys are
// converted to native form; other keys are stored verbatim.
func (s *Schema) New(data map[string]any) (*Record, error) {
	r := newRecord(s)
	for name, value := range data {
		if err := r.Set(name, value); err != nil {
			return nil, err
		}
	}
	return r, nil
}
