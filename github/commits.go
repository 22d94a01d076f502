package github

import (
	"context"

	"github.com/kbukum/github2/command"
)

// CommitDomain is the API domain of the commit operations.
const CommitDomain = "commits"

// DefaultBranch is listed when no branch is given.
const DefaultBranch = "master"

var (
	opCommitList = command.Op("list", "List the commits on a branch, optionally limited to one file.")
	opCommitShow = command.Op("show", "Get one commit.")

	// CommitOperations lists the operations of the commits domain.
	CommitOperations = command.NewCatalog(CommitDomain, opCommitList, opCommitShow)
)

// Commits groups the commit operations.
type Commits struct {
	cmd *command.Command
}

// NewCommits binds the commit operations to cmd.
func NewCommits(cmd *command.Command) *Commits {
	return &Commits{cmd: cmd}
}

// List returns the commits of user/repo on branch, newest first. A non-empty
// file limits the list to commits touching that path.
func (c *Commits) List(ctx context.Context, user, repo, branch, file string) ([]Commit, error) {
	if branch == "" {
		branch = DefaultBranch
	}
	if err := validateProject(user, repo).Err(); err != nil {
		return nil, err
	}
	args := []string{user, repo, branch}
	if file != "" {
		args = append(args, file)
	}
	return command.Values(ctx, c.cmd, CommitSchema, wrapCommit, "list",
		command.WithArgs(args...),
		command.WithFilter("commits"),
		command.WithOperation(opCommitList))
}

// Show returns the commit sha of user/repo.
func (c *Commits) Show(ctx context.Context, user, repo, sha string) (Commit, error) {
	if err := validateProject(user, repo).Required("sha", sha).Err(); err != nil {
		return Commit{}, err
	}
	return command.Value(ctx, c.cmd, CommitSchema, wrapCommit, "show",
		command.WithArgs(user, repo, sha),
		command.WithFilter("commit"),
		command.WithOperation(opCommitShow))
}
