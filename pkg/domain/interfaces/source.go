package interfaces

import (
	"context"
	"time"

	"github.com/m-mizutani/devmemory/pkg/domain/model"
)

// CommitSource yields commits from version control.
type CommitSource interface {
	// Commits returns every commit whose commit time is at or after since, newest first.
	Commits(ctx context.Context, since time.Time) ([]*model.Commit, error)
}
