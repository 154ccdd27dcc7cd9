package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrTagSourceUnavailable marks failures to read commits: not a repository, no HEAD, empty window.
	ErrTagSourceUnavailable = goerr.NewTag("source_unavailable")

	// ErrTagInvalidArgument marks bad user input such as a negative day count or unknown type.
	ErrTagInvalidArgument = goerr.NewTag("invalid_argument")

	// ErrTagStore marks failures of the decision store itself.
	ErrTagStore = goerr.NewTag("store")
)
