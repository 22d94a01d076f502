package command

import (
	"net/http"
	"strings"
)

// Verb is the transport call issued for a dispatch.
type Verb string

const (
	VerbGet    Verb = http.MethodGet
	VerbPost   Verb = http.MethodPost
	VerbPut    Verb = http.MethodPut
	VerbDelete Verb = http.MethodDelete
)

// SelectVerb applies the dispatch precedence: POST or GET with non-empty
// post data is POST, then PUT, then DELETE, and everything else is GET.
func SelectVerb(method string, postData map[string]any) Verb {
	m := strings.ToUpper(method)
	switch {
	case (m == http.MethodPost || m == http.MethodGet) && len(postData) > 0:
		return VerbPost
	case m == http.MethodPut:
		return VerbPut
	case m == http.MethodDelete:
		return VerbDelete
	default:
		return VerbGet
	}
}
