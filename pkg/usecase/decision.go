package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/devmemory/pkg/domain/interfaces"
	"github.com/m-mizutani/devmemory/pkg/domain/model"
	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	summaryTopAuthors = 5
	summaryRecent     = 5
)

type decisionUseCase struct {
	repo interfaces.DecisionRepository
	cfg  *config
}

// NewDecisions creates a new instance of DecisionUseCase
func NewDecisions(repo interfaces.DecisionRepository, opts ...Option) interfaces.DecisionUseCase {
	return &decisionUseCase{
		repo: repo,
		cfg:  newConfig(opts),
	}
}

// List returns up to limit decisions, newest first, optionally restricted to one type
func (uc *decisionUseCase) List(ctx context.Context, limit int, decisionType types.DecisionType) ([]*model.Decision, error) {
	if limit <= 0 {
		return nil, goerr.New("limit must be a positive number",
			goerr.V("limit", limit),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}
	if decisionType != "" && !decisionType.IsValid() {
		return nil, goerr.New("unknown decision type",
			goerr.V("type", decisionType),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	return uc.repo.Find(ctx, model.DecisionFilter{
		Type:  decisionType,
		Limit: limit,
	})
}

// Search returns decisions whose title, summary or tags contain query
func (uc *decisionUseCase) Search(ctx context.Context, query string) ([]*model.Decision, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, goerr.New("search query is empty", goerr.T(types.ErrTagInvalidArgument))
	}

	return uc.repo.Find(ctx, model.DecisionFilter{Query: query})
}

// Get returns the decision with id, or nil when it does not exist
func (uc *decisionUseCase) Get(ctx context.Context, id int64) (*model.Decision, error) {
	return uc.repo.FindByID(ctx, id)
}

// Recent returns decisions from the last days days, newest first
func (uc *decisionUseCase) Recent(ctx context.Context, days int) ([]*model.Decision, error) {
	return uc.window(ctx, days, model.SortNewestFirst)
}

// Timeline returns decisions from the last days days, oldest first
func (uc *decisionUseCase) Timeline(ctx context.Context, days int) ([]*model.Decision, error) {
	return uc.window(ctx, days, model.SortOldestFirst)
}

func (uc *decisionUseCase) window(ctx context.Context, days int, order model.SortOrder) ([]*model.Decision, error) {
	if days <= 0 {
		return nil, goerr.New("days must be a positive number",
			goerr.V("days", days),
			goerr.T(types.ErrTagInvalidArgument),
		)
	}

	now := uc.cfg.now()
	return uc.repo.Find(ctx, model.DecisionFilter{
		Since: now.AddDate(0, 0, -days),
		Until: now,
		Order: order,
	})
}

// Statistics counts decisions in total, by type and by author
func (uc *decisionUseCase) Statistics(ctx context.Context) (*model.Statistics, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := uc.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	byAuthor, err := uc.repo.CountByAuthor(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Statistics{
		Total:    total,
		ByType:   byType,
		ByAuthor: byAuthor,
	}, nil
}

// Summary builds the project overview: totals, date span, top authors and latest decisions
func (uc *decisionUseCase) Summary(ctx context.Context) (*model.Summary, error) {
	stats, err := uc.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	summary := &model.Summary{
		Total:      stats.Total,
		ByType:     stats.ByType,
		TopAuthors: stats.ByAuthor,
	}
	if len(summary.TopAuthors) > summaryTopAuthors {
		summary.TopAuthors = summary.TopAuthors[:summaryTopAuthors]
	}

	if stats.Total == 0 {
		return summary, nil
	}

	first, err := uc.repo.Find(ctx, model.DecisionFilter{Limit: 1, Order: model.SortOldestFirst})
	if err != nil {
		return nil, err
	}
	recent, err := uc.repo.Find(ctx, model.DecisionFilter{Limit: summaryRecent})
	if err != nil {
		return nil, err
	}

	if len(first) > 0 {
		summary.First = &first[0].CreatedAt
	}
	if len(recent) > 0 {
		summary.Last = &recent[0].CreatedAt
	}
	summary.Recent = recent

	return summary, nil
}
