package github

import (
	"time"

	"github.com/kbukum/github2/datecodec"
	"github.com/kbukum/github2/schema"
)

// Record kinds, registered in schema.Default.
var (
	UserSchema = schema.MustRegister(schema.MustNew("user", "A GitHub user",
		schema.Attr("id", "The user's id"),
		schema.Attr("login", "The login name of the user"),
		schema.Attr("name", "The full name of the user"),
		schema.Attr("company", "Name of the company the user is associated with"),
		schema.Attr("location", "Location of the user"),
		schema.Attr("email", "The user's e-mail address"),
		schema.Attr("blog", "The user's blog"),
		schema.Attr("gravatar_id", "The user's gravatar id"),
		schema.Attr("following_count", "Number of users the user is following"),
		schema.Attr("followers_count", "Number of users following the user"),
		schema.Attr("public_gist_count", "Number of active public gists owned by the user"),
		schema.Attr("public_repo_count", "Number of active repositories owned by the user"),
		schema.Attr("total_private_repo_count", "Number of private repositories"),
		schema.Attr("collaborators", "Number of collaborators"),
		schema.Attr("disk_usage", "Currently used disk space"),
		schema.Attr("owned_private_repo_count", "Number of privately owned repositories"),
		schema.Attr("private_gist_count", "Number of private gists owned by the user"),
		schema.Attr("plan", "Current active GitHub plan"),
		schema.DateAttr("created_at", "The date this user was registered", datecodec.User),
	))

	IssueSchema = schema.MustRegister(schema.MustNew("issue", "An issue on GitHub",
		schema.Attr("position", "The position of this issue in a list"),
		schema.Attr("number", "The issue number, unique within a repository"),
		schema.Attr("votes", "Number of votes for this issue"),
		schema.Attr("body", "The full description of this issue"),
		schema.Attr("title", "Issue title"),
		schema.Attr("user", "The login of the user that created the issue"),
		schema.Attr("state", "State of this issue, open or closed"),
		schema.Attr("labels", "Labels associated with this issue"),
		schema.Attr("comments", "Number of comments made on this issue"),
		schema.Attr("gravatar_id", "Gravatar id of the issue author"),
		schema.Attr("html_url", "URL of the issue page"),
		schema.Attr("pull_request_url", "URL of the pull request, if any"),
		schema.DateAttr("created_at", "Date this issue was created", datecodec.GitHub),
		schema.DateAttr("updated_at", "Date this issue was last updated", datecodec.GitHub),
		schema.DateAttr("closed_at", "Date this issue was closed", datecodec.GitHub),
	))

	CommentSchema = schema.MustRegister(schema.MustNew("comment", "An issue comment",
		schema.Attr("id", "The comment id"),
		schema.Attr("body", "The text of the comment"),
		schema.Attr("user", "The login of the commenter"),
		schema.Attr("gravatar_id", "Gravatar id of the commenter"),
		schema.DateAttr("created_at", "When the comment was created", datecodec.GitHub),
		schema.DateAttr("updated_at", "When the comment was last updated", datecodec.GitHub),
	))

	CommitSchema = schema.MustRegister(schema.MustNew("commit", "A commit",
		schema.Attr("id", "Commit ID"),
		schema.Attr("message", "Commit message"),
		schema.Attr("parents", "List of parents for this commit"),
		schema.Attr("url", "Canonical URL for this commit"),
		schema.Attr("author", "Author metadata (name, email, login)"),
		schema.Attr("committer", "Committer metadata (name, email, login)"),
		schema.Attr("tree", "Tree SHA for this commit"),
		schema.Attr("added", "(If present) Datastructure representing what's been added since last commit"),
		schema.Attr("removed", "(if present) Datastructure representing what's been removed since last commit"),
		schema.Attr("modified", "(If present) Datastructure representing what's been modified since last commit"),
		schema.DateAttr("authored_date", "Date of authorship", datecodec.Commit),
		schema.DateAttr("committed_date", "Date of commit", datecodec.Commit),
	))

	RepositorySchema = schema.MustRegister(schema.MustNew("repository", "A GitHub repository",
		schema.Attr("name", "Name of repository"),
		schema.Attr("description", "Repository description"),
		schema.Attr("owner", "Username of the user owning this repository"),
		schema.Attr("url", "Canonical URL to this repository"),
		schema.Attr("homepage", "Homepage URL"),
		schema.Attr("language", "Primary language"),
		schema.Attr("forks", "Number of forks of this repository"),
		schema.Attr("watchers", "Number of people watching this repository"),
		schema.Attr("open_issues", "Number of open issues"),
		schema.Attr("size", "Size of the repository"),
		schema.Attr("private", "True if private repository"),
		schema.Attr("fork", "True if this is a fork of another repository"),
		schema.Attr("parent", "The repository this was forked from, if any"),
		schema.Attr("source", "The root of the fork network, if any"),
		schema.Attr("master_branch", "Default branch, if set"),
		schema.Attr("integration_branch", "Integration branch, if set"),
		schema.Attr("has_downloads", "True if downloads are enabled"),
		schema.Attr("has_wiki", "True if the wiki is enabled"),
		schema.Attr("has_issues", "True if the issue tracker is enabled"),
		schema.DateAttr("created_at", "Datetime this repository was created", datecodec.GitHub),
		schema.DateAttr("pushed_at", "Datetime of the last push to this repository", datecodec.GitHub),
	))
)

// User is a GitHub user.
type User struct{ *schema.Record }

func wrapUser(r *schema.Record) User { return User{r} }

func (u User) Login() string        { return u.String("login") }
func (u User) Name() string         { return u.String("name") }
func (u User) Email() string        { return u.String("email") }
func (u User) Company() string      { return u.String("company") }
func (u User) Location() string     { return u.String("location") }
func (u User) Followers() int       { return u.Int("followers_count") }
func (u User) Following() int       { return u.Int("following_count") }
func (u User) PublicRepos() int     { return u.Int("public_repo_count") }
func (u User) CreatedAt() time.Time { return u.Time("created_at") }

// IsAuthenticated reports whether the record carries private fields, which
// the API only returns for the authenticated user's own account.
func (u User) IsAuthenticated() bool { return u.Has("plan") }

// Issue is an issue or pull request.
type Issue struct{ *schema.Record }

func wrapIssue(r *schema.Record) Issue { return Issue{r} }

func (i Issue) Number() int          { return i.Int("number") }
func (i Issue) Title() string        { return i.String("title") }
func (i Issue) Body() string         { return i.String("body") }
func (i Issue) State() string        { return i.String("state") }
func (i Issue) Author() string       { return i.String("user") }
func (i Issue) Votes() int           { return i.Int("votes") }
func (i Issue) Comments() int        { return i.Int("comments") }
func (i Issue) CreatedAt() time.Time { return i.Time("created_at") }
func (i Issue) UpdatedAt() time.Time { return i.Time("updated_at") }
func (i Issue) ClosedAt() time.Time  { return i.Time("closed_at") }

// Comment is a comment on an issue.
type Comment struct{ *schema.Record }

func wrapComment(r *schema.Record) Comment { return Comment{r} }

func (c Comment) ID() int              { return c.Int("id") }
func (c Comment) Body() string         { return c.String("body") }
func (c Comment) Author() string       { return c.String("user") }
func (c Comment) CreatedAt() time.Time { return c.Time("created_at") }
func (c Comment) UpdatedAt() time.Time { return c.Time("updated_at") }

// Labels returns the label names.
func (i Issue) Labels() []string {
	v, _ := i.Get("labels")
	return stringsOf(v)
}

// Commit is a commit in a repository.
type Commit struct{ *schema.Record }

func wrapCommit(r *schema.Record) Commit { return Commit{r} }

func (c Commit) ID() string               { return c.String("id") }
func (c Commit) Message() string          { return c.String("message") }
func (c Commit) URL() string              { return c.String("url") }
func (c Commit) Tree() string             { return c.String("tree") }
func (c Commit) AuthoredDate() time.Time  { return c.Time("authored_date") }
func (c Commit) CommittedDate() time.Time { return c.Time("committed_date") }
func (c Commit) AuthorName() string       { return c.person("author", "name") }
func (c Commit) AuthorLogin() string      { return c.person("author", "login") }
func (c Commit) CommitterName() string    { return c.person("committer", "name") }

// Parents returns the parent commit ids.
func (c Commit) Parents() []string {
	v, _ := c.Get("parents")
	list, _ := v.([]any)
	out := make([]string, 0, len(list))
	for _, p := range list {
		if m, ok := p.(map[string]any); ok {
			if id, ok := m["id"].(string); ok {
				out = append(out, id)
			}
		}
	}
	return out
}

// Repository is a GitHub repository.
type Repository struct{ *schema.Record }

func wrapRepository(r *schema.Record) Repository { return Repository{r} }

func (r Repository) Name() string         { return r.String("name") }
func (r Repository) Owner() string        { return r.String("owner") }
func (r Repository) Description() string  { return r.String("description") }
func (r Repository) URL() string          { return r.String("url") }
func (r Repository) Language() string     { return r.String("language") }
func (r Repository) Forks() int           { return r.Int("forks") }
func (r Repository) Watchers() int        { return r.Int("watchers") }
func (r Repository) Private() bool        { return r.Bool("private") }
func (r Repository) Fork() bool           { return r.Bool("fork") }
func (r Repository) CreatedAt() time.Time { return r.Time("created_at") }
func (r Repository) PushedAt() time.Time  { return r.Time("pushed_at") }

// Project returns "owner/name".
func (r Repository) Project() string { return r.Owner() + "/" + r.Name() }

// stringsOf keeps the string elements of a decoded list.
func stringsOf(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// person reads one key of an author or committer map.
func (c Commit) person(field, key string) string {
	v, _ := c.Get(field)
	m, _ := v.(map[string]any)
	s, _ := m[key].(string)
	return s
}
