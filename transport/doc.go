// Package transport is the HTTP requester behind every command group.
//
// A Client turns (domain, path, args) into a v2 API URL of the form
//
//	{base}/{format}/{domain}/{path}/{args...}
//
// sends it with the configured credentials, and decodes the JSON body into
// plain Go values (map[string]any, []any, string, float64, bool, nil).
// Non-2xx answers come back as *Error with the API's own message when the
// body carries one.
//
//	c, err := transport.New(transport.Config{Login: "octocat", APIToken: token})
//	raw, err := c.Get(ctx, "user", "show", "octocat")
package transport
