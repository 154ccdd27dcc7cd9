package interfaces

import (
	"context"

	"github.com/m-mizutani/devmemory/pkg/domain/model"
)

// DecisionRepository persists and queries classified decisions.
type DecisionRepository interface {
	// Save stores d and assigns its ID. When a decision for the same commit hash already exists the
	// call is a no-op returning false, unless force is set, in which case the record is replaced.
	Save(ctx context.Context, d *model.Decision, force bool) (bool, error)

	// FindByHash returns nil without error when no decision exists for the hash.
	FindByHash(ctx context.Context, hash string) (*model.Decision, error)

	// FindByID returns nil without error when no decision exists for the id.
	FindByID(ctx context.Context, id int64) (*model.Decision, error)

	Find(ctx context.Context, filter model.DecisionFilter) ([]*model.Decision, error)
	Count(ctx context.Context) (int64, error)
	CountByType(ctx context.Context) ([]model.GroupCount, error)
	CountByAuthor(ctx context.Context) ([]model.GroupCount, error)

	Close() error
}
