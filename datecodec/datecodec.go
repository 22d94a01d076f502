package datecodec

import (
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/github2/errors"
)

// Format names a wire date format family.
type Format string

const (
	// GitHub is the format of most v2 API timestamps. It is the default.
	GitHub Format = "github"
	// Commit is the format of commit author and committer dates.
	Commit Format = "commit"
	// User is the format of user created_at fields, which differ between
	// user show and user search responses.
	User Format = "user"
	// ISO is an ISO-8601 timestamp in UTC with a literal Z suffix.
	ISO Format = "iso"
)

const (
	// GitHubTimezone is appended to every github-formatted timestamp.
	GitHubTimezone = "-0700"
	// CommitTimezone is appended to every commit-formatted timestamp.
	CommitTimezone = "-07:00"

	githubLayout = "2006/01/02 15:04:05"
	commitLayout = "2006-01-02T15:04:05"

	// Parsing accepts one or two digits in every field but the year.
	githubParseLayout = "2006/1/2 15:4:5"
	commitParseLayout = "2006-1-2T15:4:5"
	userParseLayout   = "2006-1-2T15:4:5Z"
)

// Formats returns every supported format in a stable order.
func Formats() []Format {
	return []Format{GitHub, Commit, User, ISO}
}

// ParseFormat resolves a format by name. An empty name selects GitHub.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return GitHub, nil
	}
	f := Format(strings.ToLower(name))
	if !f.Valid() {
		return "", errors.InvalidInput("format", fmt.Sprintf("unknown date format %q", name))
	}
	return f, nil
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case GitHub, Commit, User, ISO:
		return true
	}
	return false
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Parse converts wire text in format f to a time.Time.
func Parse(f Format, text string) (time.Time, error) {
	switch f {
	case GitHub:
		return parseGitHub(text)
	case Commit:
		return parseCommit(text)
	case User:
		return parseUser(text)
	case ISO:
		return parseISO(text)
	}
	return time.Time{}, errors.InvalidInput("format", fmt.Sprintf("unknown date format %q", string(f)))
}

// Render renders t in format f.
func Render(f Format, t time.Time) (string, error) {
	switch f {
	case GitHub, User:
		return t.Format(githubLayout) + " " + GitHubTimezone, nil
	case Commit:
		return t.Format(commitLayout) + CommitTimezone, nil
	case ISO:
		return formatISO(t), nil
	}
	return "", errors.InvalidInput("format", fmt.Sprintf("unknown date format %q", string(f)))
}

// parseGitHub keeps only the date and time tokens; the offset is dropped.
func parseGitHub(text string) (time.Time, error) {
	parts := strings.Fields(text)
	if len(parts) < 2 {
		return time.Time{}, errors.DateFormat(string(GitHub), text, nil)
	}
	t, err := time.Parse(githubParseLayout, parts[0]+" "+parts[1])
	if err != nil {
		return time.Time{}, errors.DateFormat(string(GitHub), text, err)
	}
	return t, nil
}

func parseCommit(text string) (time.Time, error) {
	if len(text) < len(CommitTimezone) {
		return time.Time{}, errors.DateFormat(string(Commit), text, nil)
	}
	t, err := time.Parse(commitParseLayout, text[:len(text)-len(CommitTimezone)])
	if err != nil {
		return time.Time{}, errors.DateFormat(string(Commit), text, err)
	}
	return t, nil
}

func parseUser(text string) (time.Time, error) {
	if t, err := parseGitHub(text); err == nil {
		return t, nil
	}
	t, err := time.Parse(userParseLayout, text)
	if err != nil {
		return time.Time{}, errors.DateFormat(string(User), text, err)
	}
	return t, nil
}

// parseISO drops the final character, expected to be Z, whatever it is.
func parseISO(text string) (time.Time, error) {
	if text == "" {
		return time.Time{}, errors.DateFormat(string(ISO), text, nil)
	}
	t, err := time.Parse(commitParseLayout, text[:len(text)-1])
	if err != nil {
		return time.Time{}, errors.DateFormat(string(ISO), text, err)
	}
	return t, nil
}

// formatISO writes microseconds only when present.
func formatISO(t time.Time) string {
	s := t.Format(commitLayout)
	if us := t.Nanosecond() / int(time.Microsecond); us != 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s + "Z"
}

// Codec binds a format to its parse and format functions.
type Codec struct {
	format Format
}

// For returns the codec for f. Unknown formats fall back to GitHub.
func For(f Format) Codec {
	if !f.Valid() {
		f = GitHub
	}
	return Codec{format: f}
}

// Format returns the bound format. The zero Codec is bound to GitHub.
func (c Codec) Format() Format {
	if c.format == "" {
		return GitHub
	}
	return c.format
}

// Parse converts wire text to a time.Time.
func (c Codec) Parse(text string) (time.Time, error) {
	return Parse(c.Format(), text)
}

// Render converts t to wire text.
func (c Codec) Render(t time.Time) string {
	s, _ := Render(c.Format(), t)
	return s
}
