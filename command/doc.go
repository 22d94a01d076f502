// Package command maps logical API operations onto transport calls.
//
// A Command binds a Requester (the HTTP transport, or a fake in tests) to a
// resource domain such as "user" or "issues". Dispatch picks the transport
// verb from the requested method and post data, optionally extracts one key
// of the response, and GetValue / GetValues build schema records from the
// result:
//
//	users := command.New(requester, "user")
//	rec, err := users.GetValue(ctx, "show",
//	    command.WithArgs("octocat"),
//	    command.WithFilter("user"),
//	    command.WithDatatype(userSchema),
//	)
//
// Verb selection follows a fixed precedence: a POST, or a GET carrying post
// data, is sent as POST; otherwise PUT and DELETE are honoured; anything else
// is a plain GET without post data. The GET promotion is part of the v2 API
// contract and is kept on purpose.
//
// Operations that need credentials are declared with RequiresAuth and passed
// to Dispatch with WithOperation; the guard fails before the requester is
// touched when neither an access token nor an API token is set.
package command
