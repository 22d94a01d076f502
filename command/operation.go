package command

import (
	"slices"

	"github.com/kbukum/github2/errors"
)

// AuthMode states how an operation relates to an authenticated session.
type AuthMode int

const (
	// AuthNone operations behave the same with or without credentials.
	AuthNone AuthMode = iota
	// AuthRequired operations fail without credentials.
	AuthRequired
	// AuthEnhanced operations run either way but return more when authenticated.
	AuthEnhanced
)

// String returns the mode name.
func (m AuthMode) String() string {
	switch m {
	case AuthRequired:
		return "required"
	case AuthEnhanced:
		return "enhanced"
	default:
		return "none"
	}
}

// Documentation notes appended by Operation.Documentation.
const (
	NoteAuthRequired = "Warning: requires authentication."
	NoteAuthEnhanced = "Note: this call is enhanced with authentication."
)

// Operation describes one logical API call of a command group.
type Operation struct {
	Name string
	Doc  string
	Auth AuthMode
}

// Op declares an operation without auth requirements.
func Op(name, doc string) Operation {
	return Operation{Name: name, Doc: doc}
}

// RequiresAuth declares an operation that fails without credentials.
func RequiresAuth(name, doc string) Operation {
	return Operation{Name: name, Doc: doc, Auth: AuthRequired}
}

// EnhancedByAuth declares an operation whose results improve with credentials.
func EnhancedByAuth(name, doc string) Operation {
	return Operation{Name: name, Doc: doc, Auth: AuthEnhanced}
}

// RequiresAuth reports whether the operation needs credentials.
func (o Operation) RequiresAuth() bool { return o.Auth == AuthRequired }

// EnhancedByAuth reports whether the operation is enhanced by credentials.
func (o Operation) EnhancedByAuth() bool { return o.Auth == AuthEnhanced }

// Documentation returns the doc text with the auth note appended.
func (o Operation) Documentation() string {
	var note string
	switch o.Auth {
	case AuthRequired:
		note = NoteAuthRequired
	case AuthEnhanced:
		note = NoteAuthEnhanced
	default:
		return o.Doc
	}
	if o.Doc == "" {
		return note
	}
	return o.Doc + "\n\n" + note
}

// Catalog lists the operations of one command group for introspection.
type Catalog struct {
	domain string
	ops    []Operation
}

// NewCatalog builds a catalog. Operation names must be unique.
func NewCatalog(domain string, ops ...Operation) *Catalog {
	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		if seen[op.Name] {
			panic("command: duplicate operation " + op.Name + " in " + domain)
		}
		seen[op.Name] = true
	}
	return &Catalog{domain: domain, ops: slices.Clone(ops)}
}

// Domain returns the resource domain of the group.
func (c *Catalog) Domain() string { return c.domain }

// Operations returns the operations in declaration order.
func (c *Catalog) Operations() []Operation { return slices.Clone(c.ops) }

// Lookup finds an operation by name.
func (c *Catalog) Lookup(name string) (Operation, error) {
	for _, op := range c.ops {
		if op.Name == name {
			return op, nil
		}
	}
	return Operation{}, errors.NotFound("operation", c.domain+"."+name)
}
