package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type analyzeUseCase struct {
	source interfaces.CommitSource
	repo   interfaces.DecisionRepository
	cfg    *config
}

// NewAnalyze creates a new instance of AnalyzeUseCase
func NewAnalyze(source interfaces.CommitSource, repo interfaces.DecisionRepository, opts ...Option) interfaces.AnalyzeUseCase {
	return &analyzeUseCase{
		source: source,
		repo:   repo,
		cfg:    newConfig(opts),
	}
}

// Analyze classifies every commit in the last opts.Days days and stores the decisions found.
// Store failures are logged per commit and never abort the run.
func (uc *analyzeUseCase) Analyze(ctx context.Context, opts interfaces.AnalyzeOptions) (*model.AnalysisResult, error) {
	if opts.Days <= 0 {
		return nil, goerr.New("days must be a positive number",
			goerr.V("days", opts.Days),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	runID := uuid.NewString()
	logger := ctxlog.From(ctx).With("run_id", runID)
	ctx = ctxlog.With(ctx, logger)

	since := uc.cfg.now().AddDate(0, 0, -opts.Days)
	logger.Info("Analyzing commits",
		"days", opts.Days,
		"since", since,
		"force", opts.Force,
	)

	commits, err := uc.source.Commits(ctx, since)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load commits",
			goerr.V("days", opts.Days),
			goerr.T(types.ErrTagSourceUnavailable),
		)
	}
	if len(commits) == 0 {
		return nil, goerr.New("no commits in range",
			goerr.V("days", opts.Days),
			goerr.T(types.ErrTagSourceUnavailable),
		)
	}

	result := &model.AnalysisResult{
		RunID:   runID,
		Days:    opts.Days,
		Scanned: len(commits),
		ByType:  make(map[types.DecisionType]int),
	}

	report := opts.Progress
	if report == nil {
		report = func(int, int) {}
	}

	report(0, len(commits))
	for i, commit := range commits {
		uc.process(ctx, commit, opts.Force, result)
		report(i+1, len(commits))
	}

	logger.Info("Analysis complete",
		"scanned", result.Scanned,
		"skipped", result.Skipped,
		"found", result.Found,
		"saved", result.Saved,
		"failed", result.Failed,
	)

	return result, nil
}

func (uc *analyzeUseCase) process(ctx context.Context, commit *model.Commit, force bool, result *model.AnalysisResult) {
	logger := ctxlog.From(ctx)

	if !force {
		existing, err := uc.repo.FindByHash(ctx, commit.Hash)
		if err != nil {
			logger.Error("Failed to look up decision", "hash", commit.Hash, "error", err)
			result.Failed++
			return
		}
		if existing != nil {
			result.Skipped++
			return
		}
	}

	decision := uc.cfg.classifier.ClassifyCommit(commit)
	if decision == nil {
		return
	}

	result.Found++
	result.ByType[decision.Type]++

	logger.Debug("Decision detected",
		"hash", commit.ShortHash(),
		"type", decision.Type,
		"confidence", decision.Confidence,
		"indicators", decision.Indicators,
	)

	saved, err := uc.repo.Save(ctx, decision.ToDecision(), force)
	if err != nil {
		logger.Error("Failed to save decision", "hash", commit.Hash, "error", err)
		result.Failed++
		return
	}
	if saved {
		result.Saved++
	}
}
