package github

import (
	"context"

	"github.com/kbukum/github2/command"
	"github.com/kbukum/github2/validation"
)

// UserDomain is the API domain of the user operations.
const UserDomain = "user"

var (
	opUserSearch    = command.Op("search", "Search for users by login or full name.")
	opUserShow      = command.EnhancedByAuth("show", "Get information about a user.")
	opUserFollowers = command.Op("followers", "List the logins of a user's followers.")
	opUserFollowing = command.Op("following", "List the logins of the users a user follows.")
	opUserFollow    = command.RequiresAuth("follow", "Follow a user.")
	opUserUnfollow  = command.RequiresAuth("unfollow", "Stop following a user.")

	// UserOperations lists the operations of the user domain.
	UserOperations = command.NewCatalog(UserDomain,
		opUserSearch, opUserShow, opUserFollowers, opUserFollowing, opUserFollow, opUserUnfollow)
)

// Users groups the user operations.
type Users struct {
	cmd *command.Command
}

// NewUsers binds the user operations to cmd.
func NewUsers(cmd *command.Command) *Users {
	return &Users{cmd: cmd}
}

// Search finds users matching query.
func (u *Users) Search(ctx context.Context, query string) ([]User, error) {
	if err := validation.Required("query", query); err != nil {
		return nil, err
	}
	return command.Values(ctx, u.cmd, UserSchema, wrapUser, "search",
		command.WithArgs(query),
		command.WithFilter("users"),
		command.WithOperation(opUserSearch))
}

// Show returns a user. An empty login shows the authenticated user. With
// credentials for the same account the record includes private fields.
func (u *Users) Show(ctx context.Context, login string) (User, error) {
	opts := []command.Option{command.WithFilter("user"), command.WithOperation(opUserShow)}
	if login != "" {
		if err := validation.New().Login("login", login).Err(); err != nil {
			return User{}, err
		}
		opts = append(opts, command.WithArgs(login))
	}
	return command.Value(ctx, u.cmd, UserSchema, wrapUser, "show", opts...)
}

// Followers returns the logins following login.
func (u *Users) Followers(ctx context.Context, login string) ([]string, error) {
	return u.logins(ctx, opUserFollowers, "show", login, "followers")
}

// Following returns the logins login follows.
func (u *Users) Following(ctx context.Context, login string) ([]string, error) {
	return u.logins(ctx, opUserFollowing, "show", login, "following")
}

// Follow makes the authenticated user follow login and returns the updated
// list of followed logins. v2 takes follow requests on an authenticated GET.
func (u *Users) Follow(ctx context.Context, login string) ([]string, error) {
	return u.logins(ctx, opUserFollow, "follow", login)
}

// Unfollow reverses Follow.
func (u *Users) Unfollow(ctx context.Context, login string) ([]string, error) {
	return u.logins(ctx, opUserUnfollow, "unfollow", login)
}

func (u *Users) logins(ctx context.Context, op command.Operation, path, login string, rest ...string) ([]string, error) {
	if err := validation.New().Login("login", login).Err(); err != nil {
		return nil, err
	}
	raw, err := u.cmd.Dispatch(ctx, path,
		command.WithArgs(append([]string{login}, rest...)...),
		command.WithFilter("users"),
		command.WithOperation(op))
	if err != nil {
		return nil, err
	}
	return stringsOf(raw), nil
}
