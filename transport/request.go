package transport

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/github2/datecodec"
)

// Request is one resolved API call.
type Request struct {
	Method string
	Domain string
	Path   string
	Args   []string
	Fields map[string]any
}

// BuildURL joins base, format, domain, path and args into a request URL.
// Path and args may hold several slash-separated segments, so a file path
// argument keeps its separators. Every segment is escaped on its own.
func BuildURL(base, format, domain, path string, args ...string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(base, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	segments := []string{format, domain}
	segments = append(segments, strings.Split(strings.Trim(path, "/"), "/")...)
	for _, arg := range args {
		segments = append(segments, strings.Split(arg, "/")...)
	}

	var raw strings.Builder
	raw.WriteString(u.EscapedPath())
	for _, s := range segments {
		if s == "" {
			continue
		}
		raw.WriteByte('/')
		raw.WriteString(url.PathEscape(s))
	}
	decoded, err := url.PathUnescape(raw.String())
	if err != nil {
		return nil, err
	}
	u.Path = decoded
	u.RawPath = raw.String()
	return u, nil
}

// EncodeForm renders post fields as form values. Nil values are skipped,
// times use the API's date format and string slices repeat the key.
func EncodeForm(fields map[string]any) url.Values {
	form := make(url.Values, len(fields))
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		switch v := fields[k].(type) {
		case nil:
		case string:
			form.Add(k, v)
		case []string:
			for _, s := range v {
				form.Add(k, s)
			}
		case bool:
			form.Add(k, strconv.FormatBool(v))
		case int:
			form.Add(k, strconv.Itoa(v))
		case int64:
			form.Add(k, strconv.FormatInt(v, 10))
		case float64:
			form.Add(k, strconv.FormatFloat(v, 'f', -1, 64))
		case time.Time:
			form.Add(k, datecodec.For(datecodec.GitHub).Render(v))
		case fmt.Stringer:
			form.Add(k, v.String())
		default:
			form.Add(k, fmt.Sprint(v))
		}
	}
	return form
}

// redact strips credential parameters from a URL for logs and errors.
func redact(u *url.URL) string {
	c := *u
	q := c.Query()
	for _, k := range []string{paramAccessToken, paramToken} {
		if q.Has(k) {
			q.Set(k, "REDACTED")
		}
	}
	c.RawQuery = q.Encode()
	return c.String()
}
