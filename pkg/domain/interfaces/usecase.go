package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
)

// AnalyzeOptions controls one batch analysis run.
type AnalyzeOptions struct {
	Days  int
	Force bool

	// Progress, when set, is called once before the loop with the commit count and then once per
	// processed commit.
	Progress func(done, total int)
}

// AnalyzeUseCase classifies commits from a CommitSource into a DecisionRepository.
type AnalyzeUseCase interface {
	Analyze(ctx context.Context, opts AnalyzeOptions) (*model.AnalysisResult, error)
}

// DecisionUseCase serves the read paths over stored decisions.
type DecisionUseCase interface {
	List(ctx context.Context, limit int, decisionType types.DecisionType) ([]*model.Decision, error)
	Search(ctx context.Context, query string) ([]*model.Decision, error)
	Get(ctx context.Context, id int64) (*model.Decision, error)
	Recent(ctx context.Context, days int) ([]*model.Decision, error)
	Timeline(ctx context.Context, days int) ([]*model.Decision, error)
	Statistics(ctx context.Context) (*model.Statistics, error)
	Summary(ctx context.Context) (*model.Summary, error)
}

// ExportUseCase writes every stored decision to w in the given format.
type ExportUseCase interface {
	Export(ctx context.Context, w io.Writer, format string) (int, error)
}
