package transport

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		domain string
		path   string
		args   []string
		want   string
	}{
		{"plain", "https://github.com/api/v2", "user", "show", []string{"octocat"}, "https://github.com/api/v2/json/user/show/octocat"},
		{"trailing slash", "https://github.com/api/v2/", "user", "show", nil, "https://github.com/api/v2/json/user/show"},
		{"nested path", "https://github.com/api/v2", "issues", "label/add", []string{"u", "r", "bug", "3"}, "https://github.com/api/v2/json/issues/label/add/u/r/bug/3"},
		{"escaped arg", "https://github.com/api/v2", "user", "search", []string{"a b?"}, "https://github.com/api/v2/json/user/search/a%20b%3F"},
		{"slash in arg", "https://github.com/api/v2", "commits", "list", []string{"ask", "python-github2", "master", "docs/index.rst"}, "https://github.com/api/v2/json/commits/list/ask/python-github2/master/docs/index.rst"},
		{"empty args skipped", "http://localhost:8080", "repos", "show", []string{"", "r"}, "http://localhost:8080/json/repos/show/r"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u, err := BuildURL(tc.base, "json", tc.domain, tc.path, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, u.String())
		})
	}
}

func TestBuildURL_BadBase(t *testing.T) {
	_, err := BuildURL("://nope", "json", "user", "show")
	assert.Error(t, err)
}

func TestEncodeForm(t *testing.T) {
	form := EncodeForm(map[string]any{
		"title":  "Crash",
		"labels": []string{"bug", "ui"},
		"closed": true,
		"number": 3,
		"big":    int64(1) << 40,
		"ratio":  0.5,
		"when":   time.Date(2010, 4, 21, 10, 31, 0, 0, time.UTC),
		"none":   nil,
		"other":  struct{ A int }{1},
	})
	assert.Equal(t, url.Values{
		"title":  {"Crash"},
		"labels": {"bug", "ui"},
		"closed": {"true"},
		"number": {"3"},
		"big":    {"1099511627776"},
		"ratio":  {"0.5"},
		"when":   {"2010/04/21 10:31:00 -0700"},
		"other":  {"{1}"},
	}, form)
}

func TestRedact(t *testing.T) {
	u, _ := url.Parse("https://github.com/api/v2/json/user/show?access_token=abc&token=def&login=me")
	got := redact(u)
	assert.NotContains(t, got, "abc")
	assert.NotContains(t, got, "def")
	assert.Contains(t, got, "login=me")
}
