package github

import (
	"context"
	"net/http"
	"strconv"

	"github.com/kbukum/github2/command"
	"github.com/kbukum/github2/validation"
)

// IssueDomain is the API domain of the issue operations.
const IssueDomain = "issues"

// Issue states.
const (
	StateOpen   = "open"
	StateClosed = "closed"
)

var (
	opIssueSearch   = command.Op("search", "Search a repository's issues for a term.")
	opIssueList     = command.Op("list", "List a repository's issues in a given state.")
	opIssueShow     = command.Op("show", "Get one issue.")
	opIssueOpen     = command.RequiresAuth("open", "Open a new issue.")
	opIssueClose    = command.RequiresAuth("close", "Close an issue.")
	opIssueReopen   = command.RequiresAuth("reopen", "Reopen a closed issue.")
	opIssueComments = command.Op("comments", "List the comments on an issue.")
	opIssueComment  = command.RequiresAuth("comment", "Comment on an issue.")

	// IssueOperations lists the operations of the issues domain.
	IssueOperations = command.NewCatalog(IssueDomain,
		opIssueSearch, opIssueList, opIssueShow, opIssueOpen, opIssueClose,
		opIssueReopen, opIssueComments, opIssueComment)
)

// Issues groups the issue operations.
type Issues struct {
	cmd *command.Command
}

// NewIssues binds the issue operations to cmd.
func NewIssues(cmd *command.Command) *Issues {
	return &Issues{cmd: cmd}
}

// Search returns the issues of user/repo in state that match term.
func (i *Issues) Search(ctx context.Context, user, repo, term, state string) ([]Issue, error) {
	state = stateOrOpen(state)
	if err := validateProject(user, repo).Required("term", term).OneOf("state", state, issueStates).Err(); err != nil {
		return nil, err
	}
	return command.Values(ctx, i.cmd, IssueSchema, wrapIssue, "search",
		command.WithArgs(user, repo, state, term),
		command.WithFilter("issues"),
		command.WithOperation(opIssueSearch))
}

// List returns the issues of user/repo in state. An empty state lists open
// issues.
func (i *Issues) List(ctx context.Context, user, repo, state string) ([]Issue, error) {
	state = stateOrOpen(state)
	if err := validateProject(user, repo).OneOf("state", state, issueStates).Err(); err != nil {
		return nil, err
	}
	return command.Values(ctx, i.cmd, IssueSchema, wrapIssue, "list",
		command.WithArgs(user, repo, state),
		command.WithFilter("issues"),
		command.WithOperation(opIssueList))
}

// Show returns issue number of user/repo.
func (i *Issues) Show(ctx context.Context, user, repo string, number int) (Issue, error) {
	return i.one(ctx, opIssueShow, user, repo, number)
}

// Open creates an issue and returns it.
func (i *Issues) Open(ctx context.Context, user, repo, title, body string) (Issue, error) {
	if err := validateProject(user, repo).Required("title", title).Err(); err != nil {
		return Issue{}, err
	}
	return command.Value(ctx, i.cmd, IssueSchema, wrapIssue, "open",
		command.WithArgs(user, repo),
		command.WithMethod(http.MethodPost),
		command.WithPostData(map[string]any{"title": title, "body": body}),
		command.WithFilter("issue"),
		command.WithOperation(opIssueOpen))
}

// Close closes issue number and returns it.
func (i *Issues) Close(ctx context.Context, user, repo string, number int) (Issue, error) {
	return i.one(ctx, opIssueClose, user, repo, number)
}

// Reopen reopens issue number and returns it.
func (i *Issues) Reopen(ctx context.Context, user, repo string, number int) (Issue, error) {
	return i.one(ctx, opIssueReopen, user, repo, number)
}

// Comments returns the comments on issue number.
func (i *Issues) Comments(ctx context.Context, user, repo string, number int) ([]Comment, error) {
	if err := validateIssue(user, repo, number).Err(); err != nil {
		return nil, err
	}
	return command.Values(ctx, i.cmd, CommentSchema, wrapComment, "comments",
		command.WithArgs(user, repo, strconv.Itoa(number)),
		command.WithFilter("comments"),
		command.WithOperation(opIssueComments))
}

// Comment adds a comment to issue number and returns it.
func (i *Issues) Comment(ctx context.Context, user, repo string, number int, text string) (Comment, error) {
	if err := validateIssue(user, repo, number).Required("comment", text).Err(); err != nil {
		return Comment{}, err
	}
	return command.Value(ctx, i.cmd, CommentSchema, wrapComment, "comment",
		command.WithArgs(user, repo, strconv.Itoa(number)),
		command.WithMethod(http.MethodPost),
		command.WithPostData(map[string]any{"comment": text}),
		command.WithFilter("comment"),
		command.WithOperation(opIssueComment))
}

func (i *Issues) one(ctx context.Context, op command.Operation, user, repo string, number int) (Issue, error) {
	if err := validateIssue(user, repo, number).Err(); err != nil {
		return Issue{}, err
	}
	return command.Value(ctx, i.cmd, IssueSchema, wrapIssue, op.Name,
		command.WithArgs(user, repo, strconv.Itoa(number)),
		command.WithFilter("issue"),
		command.WithOperation(op))
}

var issueStates = []string{StateOpen, StateClosed}

func stateOrOpen(state string) string {
	if state == "" {
		return StateOpen
	}
	return state
}

func validateProject(user, repo string) *validation.Validator {
	return validation.New().Login("user", user).Repository("repo", repo)
}

func validateIssue(user, repo string, number int) *validation.Validator {
	return validateProject(user, repo).IssueNumber("number", number)
}
