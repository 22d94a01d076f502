// Package github is a client for the GitHub v2 API built on the command
// core.
//
// Each resource domain is a group of operations sharing one transport:
//
//	client, err := github.New(ctx, cfg)
//	user, err := client.Users.Show(ctx, "octocat")
//	issues, err := client.Issues.List(ctx, "octocat", "hello-world", github.StateOpen)
//
// Results are typed records (User, Issue, Comment, Commit, Repository) whose
// dates are already parsed. Operations that change state need credentials
// and fail with an AUTH_REQUIRED error before any request is sent.
package github
