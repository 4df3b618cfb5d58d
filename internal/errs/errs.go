// Package errs defines the application error types.
//
// Every error that reaches a client, either in the JSON error envelope of
// the HTTP layer or in the "extensions" of a GraphQL error, is an
// *HTTPError, so clients always receive a machine code, a message and a
// status they can act on.
package errs
