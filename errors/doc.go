// Package errors carries the categorized failures the service reports to its callers.
//
// Every failure that should reach a client with a specific status is a
// *StructuredError with one of the ErrorCode values below. Anything else is
// treated as INTERNAL_SERVER_ERROR by the HTTP layer.
package errors
