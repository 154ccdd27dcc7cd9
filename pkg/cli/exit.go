package cli

import (
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Process exit codes
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitInvalidArgument   = 2
	ExitSourceUnavailable = 3
	ExitStoreFailure      = 4
)

// ExitCodeOf maps the failure kind tagged anywhere in err's chain to a process exit code
func ExitCodeOf(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case goerr.HasTag(err, types.ErrTagInvalidArgument):
		return ExitInvalidArgument
	case goerr.HasTag(err, types.ErrTagSourceUnavailable):
		return ExitSourceUnavailable
	case goerr.HasTag(err, types.ErrTagStore):
		return ExitStoreFailure
	default:
		return ExitFailure
	}
}
