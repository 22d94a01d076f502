// Package errors provides the structured error type shared by the github2
// packages.
//
// Every failure raised by the modeling and dispatch core is an *AppError with
// a machine-readable code. Callers branch on the code through the Is*
// predicates rather than on message text:
//
//	rec, err := users.Show(ctx, "octocat")
//	switch {
//	case errors.IsAuthRequired(err):
//	    // operation needs a token
//	case errors.IsLookup(err):
//	    // response did not carry the expected key
//	case errors.IsDateFormat(err):
//	    // a date field did not match its declared format
//	}
//
// Transport failures are not AppErrors; they propagate from the transport
// package unchanged.
package errors
