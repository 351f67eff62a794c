package github

import "errors"

// Sentinel errors for library calls and fetches.
// Callers should use errors.Is to check.
var (
	// ErrMissingArguments indicates addFormat was called with fewer than the two required parameters.
	ErrMissingArguments = errors.New("github: addFormat requires at least 2 parameters")
	// ErrUnknownFunction indicates a call to a name the GitHub library does not provide.
	ErrUnknownFunction = errors.New("github: no such function in the GitHub library")
	// ErrFetchFailed indicates the contents request did not produce a body:
	// transport failure, non-success status, or a body read error.
	ErrFetchFailed = errors.New("github: fetch failed")
)
