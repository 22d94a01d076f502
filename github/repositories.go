package github

import (
	"context"

	"github.com/kbukum/github2/command"
	"github.com/kbukum/github2/validation"
)

// RepositoryDomain is the API domain of the repository operations.
const RepositoryDomain = "repos"

var (
	opRepoSearch  = command.Op("search", "Search repositories by name or description.")
	opRepoShow    = command.Op("show", "Get one repository.")
	opRepoList    = command.EnhancedByAuth("list", "List a user's repositories. Private ones need the owner's credentials.")
	opRepoWatch   = command.RequiresAuth("watch", "Watch a repository.")
	opRepoUnwatch = command.RequiresAuth("unwatch", "Stop watching a repository.")
	opRepoFork    = command.RequiresAuth("fork", "Fork a repository into the authenticated account.")

	// RepositoryOperations lists the operations of the repos domain.
	RepositoryOperations = command.NewCatalog(RepositoryDomain,
		opRepoSearch, opRepoShow, opRepoList, opRepoWatch, opRepoUnwatch, opRepoFork)
)

// Repositories groups the repository operations.
type Repositories struct {
	cmd *command.Command
}

// NewRepositories binds the repository operations to cmd.
func NewRepositories(cmd *command.Command) *Repositories {
	return &Repositories{cmd: cmd}
}

// Search returns the repositories matching term.
func (r *Repositories) Search(ctx context.Context, term string) ([]Repository, error) {
	if err := validation.Required("term", term); err != nil {
		return nil, err
	}
	return command.Values(ctx, r.cmd, RepositorySchema, wrapRepository, "search",
		command.WithArgs(term),
		command.WithFilter("repositories"),
		command.WithOperation(opRepoSearch))
}

// Show returns user/repo.
func (r *Repositories) Show(ctx context.Context, user, repo string) (Repository, error) {
	return r.one(ctx, opRepoShow, "show", user, repo)
}

// ListFor returns the repositories of user.
func (r *Repositories) ListFor(ctx context.Context, user string) ([]Repository, error) {
	if err := validation.New().Login("user", user).Err(); err != nil {
		return nil, err
	}
	return command.Values(ctx, r.cmd, RepositorySchema, wrapRepository, "show",
		command.WithArgs(user),
		command.WithFilter("repositories"),
		command.WithOperation(opRepoList))
}

// Watch starts watching user/repo.
func (r *Repositories) Watch(ctx context.Context, user, repo string) (Repository, error) {
	return r.one(ctx, opRepoWatch, "watch", user, repo)
}

// Unwatch stops watching user/repo.
func (r *Repositories) Unwatch(ctx context.Context, user, repo string) (Repository, error) {
	return r.one(ctx, opRepoUnwatch, "unwatch", user, repo)
}

// Fork forks user/repo and returns the new repository.
func (r *Repositories) Fork(ctx context.Context, user, repo string) (Repository, error) {
	return r.one(ctx, opRepoFork, "fork", user, repo)
}

func (r *Repositories) one(ctx context.Context, op command.Operation, path, user, repo string) (Repository, error) {
	if err := validateProject(user, repo).Err(); err != nil {
		return Repository{}, err
	}
	return command.Value(ctx, r.cmd, RepositorySchema, wrapRepository, path,
		command.WithArgs(user, repo),
		command.WithFilter("repository"),
		command.WithOperation(op))
}
