package command

import "context"

// Requester is the transport collaborator of a Command. Results are decoded
// wire values: map[string]any, []any or scalars.
type Requester interface {
	Get(ctx context.Context, domain, path string, args ...string) (any, error)
	Post(ctx context.Context, domain, path string, args []string, fields map[string]any) (any, error)
	Put(ctx context.Context, domain, path string, args []string, fields map[string]any) (any, error)
	Delete(ctx context.Context, domain, path string, args []string, fields map[string]any) (any, error)

	// AccessToken returns the OAuth access token, or "".
	AccessToken() string
	// APIToken returns the account API token, or "".
	APIToken() string
}
